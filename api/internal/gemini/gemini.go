// Package gemini is the generation-source client: one generateContent call
// per solution request.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"leetrelay/api/internal/leetcode"
	"leetrelay/api/internal/prompt"
	"leetrelay/api/internal/upstream"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	requestTimeout = 60 * time.Second

	// Generated solutions can be long; cap how much of the response is read.
	maxResponseBytes = 10 << 20

	// Returned verbatim when the API answers 200 with no candidates, so the
	// caller always has some text to hand back.
	noResponseFallback = "No response generated from Gemini API"

	// Returned when the extracted text is blank.
	emptySolutionFallback = "Error: No solution generated from AI service."
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	log     *zap.Logger
}

type Options struct {
	// BaseURL overrides the Google endpoint, mainly for tests.
	BaseURL string
	APIKey  string
	Model   string
	Http    *http.Client
	Log     *zap.Logger
}

func New(opts Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   strings.TrimSpace(opts.Model),
		httpc:   opts.Http,
		log:     opts.Log,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: requestTimeout}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// GenerateSolution builds the prompt for the question and asks the model for
// a solution (includeCode) or an approach write-up. The returned text is
// never empty: shape mismatches and blank generations are replaced with
// placeholder strings rather than surfaced as errors.
func (c *Client) GenerateSolution(ctx context.Context, q *leetcode.QuestionDetail, language string, includeCode bool) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: API key is empty")
	}

	p := prompt.Build(q, language, includeCode)
	solutionType := "approach"
	if includeCode {
		solutionType = "code"
	}
	c.log.Info("generating solution",
		zap.String("question", q.Title),
		zap.String("language", language),
		zap.String("solutionType", solutionType),
		zap.Int("promptLength", len(p)))

	body := map[string]any{
		"contents": []any{
			map[string]any{
				"parts": []any{
					map[string]any{"text": p},
				},
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		statusErr := upstream.NewStatusError("gemini", resp)
		c.log.Error("gemini error response",
			zap.Int("status", statusErr.StatusCode),
			zap.String("body", statusErr.Body))
		return "", statusErr
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	text := noResponseFallback
	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		text = out.Candidates[0].Content.Parts[0].Text
	} else {
		c.log.Warn("gemini response carried no candidates")
	}

	return c.validateSolution(text), nil
}

// validateSolution is advisory only: it replaces blank output with a
// placeholder and logs when expected components look absent, but never
// alters or rejects non-blank text.
func (c *Client) validateSolution(solution string) string {
	if strings.TrimSpace(solution) == "" {
		return emptySolutionFallback
	}

	lower := strings.ToLower(solution)
	hasComplexity := strings.Contains(lower, "time complexity") || strings.Contains(lower, "space complexity")
	hasExplanation := strings.Contains(lower, "approach") || strings.Contains(lower, "explanation") ||
		strings.Contains(lower, "algorithm")
	hasCode := strings.Contains(solution, "```") || strings.Contains(solution, "def ") ||
		strings.Contains(solution, "public ") || strings.Contains(solution, "class ") ||
		strings.Contains(solution, "function ") || strings.Contains(solution, "int ")

	c.log.Info("solution validation",
		zap.Int("length", len(solution)),
		zap.Bool("hasComplexity", hasComplexity),
		zap.Bool("hasExplanation", hasExplanation),
		zap.Bool("hasCode", hasCode))

	if !hasComplexity || !hasExplanation {
		c.log.Warn("generated solution may be incomplete",
			zap.Bool("hasComplexity", hasComplexity),
			zap.Bool("hasExplanation", hasExplanation))
	}
	return solution
}
