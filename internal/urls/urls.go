package urls

// ProjectHome is the project page, shown in --help output
const ProjectHome = "https://github.com/muurk/odintv"

// GeminiAPIKeys is where users create the API key that enables trending
// topics and video detection.
const GeminiAPIKeys = "https://aistudio.google.com/apikey"

// GeminiModels lists the model names accepted by --model and gemini.model
const GeminiModels = "https://ai.google.dev/gemini-api/docs/models"

// GeminiStatus reports API outages, the usual cause of HTTP 5xx errors
const GeminiStatus = "https://aistudio.google.com/status"
