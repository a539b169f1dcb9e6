package trending

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muurk/odintv/internal/logging"
)

const (
	// DefaultBaseURL is the public Gemini REST endpoint
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model used when none is configured
	DefaultModel = "gemini-3-flash-preview"

	// DefaultTimeout bounds a single generateContent call
	DefaultTimeout = 15 * time.Second

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 1 << 20

	trendingPrompt = "List 5 trending global topics for a TV dashboard focus. Be concise."
)

// GeminiClient calls the Gemini generateContent API
type GeminiClient struct {
	// APIKey authenticates requests. An empty key disables the client.
	APIKey string

	// Model is the Gemini model name, e.g. "gemini-3-flash-preview"
	Model string

	// BaseURL is the API root including the version segment
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewGeminiClient creates a client with default model, endpoint and timeout
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey:     apiKey,
		Model:      DefaultModel,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *GeminiClient) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Enabled reports whether the client has an API key
func (c *GeminiClient) Enabled() bool {
	return c != nil && c.APIKey != ""
}

// FetchTrending asks the model for five trending topics
func (c *GeminiClient) FetchTrending(ctx context.Context) ([]Item, error) {
	text, err := c.generate(ctx, trendingPrompt, trendingSchema)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, newError(ErrKindParse, "model output is not a topic list", err)
	}

	topics := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		topics = append(topics, item)
	}
	return topics, nil
}

// DetectVideo asks the model whether a site is likely to carry video streams
func (c *GeminiClient) DetectVideo(ctx context.Context, title, pageURL string) (VideoHint, error) {
	prompt := fmt.Sprintf("The user is browsing %s at %s. "+
		"Act as a TV Browser smart engine. Predict if this site likely contains video streams "+
		"and what ExoPlayer optimization we should apply. Return JSON.", title, pageURL)

	text, err := c.generate(ctx, prompt, videoSchema)
	if err != nil {
		return VideoHint{}, err
	}

	var hint VideoHint
	if err := json.Unmarshal([]byte(text), &hint); err != nil {
		return VideoHint{}, newError(ErrKindParse, "model output is not a video hint", err)
	}
	return hint, nil
}

var trendingSchema = schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"title":   {Type: "STRING"},
			"summary": {Type: "STRING"},
		},
		Required: []string{"title", "summary"},
	},
}

var videoSchema = schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"hasVideo":        {Type: "BOOLEAN"},
		"videoType":       {Type: "STRING", Description: "HLS, MP4, or DASH"},
		"confidence":      {Type: "NUMBER"},
		"optimizationTip": {Type: "STRING"},
	},
	Required: []string{"hasVideo", "videoType", "optimizationTip"},
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// generate runs one generateContent call and returns the first candidate's text
func (c *GeminiClient) generate(ctx context.Context, prompt string, s schema) (string, error) {
	if !c.Enabled() {
		return "", newError(ErrKindConfig, "trending provider disabled", ErrNoAPIKey)
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   s,
		},
	})
	if err != nil {
		return "", newError(ErrKindParse, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", newError(ErrKindConfig, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", newError(ErrKindNetwork, "gemini unreachable", err)
	}
	defer resp.Body.Close()

	logging.LogHTTPRequest("gemini", req.Method, endpoint, resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", newError(ErrKindNetwork, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		e := newError(ErrKindHTTP, "generateContent failed", nil)
		e.StatusCode = resp.StatusCode
		var apiErr apiErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			e.Err = errors.New(apiErr.Error.Message)
		}
		return "", e
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", newError(ErrKindParse, "malformed generateContent response", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", newError(ErrKindParse, "response has no candidates", nil)
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

func (c *GeminiClient) endpoint() (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Host == "" {
		return "", newError(ErrKindConfig, fmt.Sprintf("invalid base URL %q", base), err)
	}
	return u.String() + "/models/" + url.PathEscape(model) + ":generateContent", nil
}
