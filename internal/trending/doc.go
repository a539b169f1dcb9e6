// Package trending fetches dashboard "trending topics" and per-site video
// hints from the Gemini generateContent REST API.
//
// Both calls ask Gemini for structured JSON output through a response schema.
// The dashboard never shows provider errors: FetchOrEmpty and DetectOrNone
// collapse any failure (including a missing API key) into the empty result,
// which the UI renders as its "loading" placeholder. Callers that want the
// failure, such as the CLI, call the Provider directly and inspect *Error.
package trending
