// Package narrative turns wrap statistics into a personality blurb via Groq.
// The analyzer never fails a wrap: any upstream problem degrades to the rule
// based scorer in core/personality
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"gitwrapped/internal/core/personality"
	perr "gitwrapped/internal/platform/errors"
	"gitwrapped/internal/platform/logger"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultTimeout = 30 * time.Second

	temperature = 0.7
	maxTokens   = 300
	topP        = 1
)

// models is the fallback chain, tried in order until one answers
var models = []string{
	"llama-3.1-8b-instant",
	"mixtral-8x7b-32768",
	"llama-3.1-70b-versatile",
}

// Options configures the Groq analyzer
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Analyzer produces a Personality from prompt stats
type Analyzer interface {
	Analyze(ctx context.Context, stats personality.PromptStats) personality.Personality
}

// Groq is the HTTP implementation of Analyzer
type Groq struct {
	http *http.Client
	opts Options
	log  logger.Logger
	pick func(n int) int
}

// New creates a Groq analyzer with sane defaults
func New(o Options) *Groq {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Groq{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("groq"),
		pick: rand.IntN,
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	TopP           float64       `json:"top_p"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze asks each model in the chain for a personality and falls back to
// rule based scoring when none answers usably
func (g *Groq) Analyze(ctx context.Context, stats personality.PromptStats) personality.Personality {
	if g.opts.APIKey == "" {
		g.log.Warn().Msg("groq api key missing, using default personality")
		return personality.Default(stats.Year)
	}

	prompt := personality.BuildPrompt(stats)

	var lastErr error
	for _, model := range models {
		content, err := g.complete(ctx, model, prompt)
		if err != nil {
			g.log.Warn().Err(err).Str("model", model).Msg("groq model failed, trying next")
			lastErr = err
			continue
		}
		if p, ok := parsePersonality(content); ok {
			g.log.Info().Str("model", model).Str("archetype", p.Archetype).Msg("groq personality ready")
			return p
		}
		g.log.Warn().Str("model", model).Msg("groq returned unusable personality json")
		return personality.Default(stats.Year)
	}

	g.log.Warn().Err(lastErr).Msg("all groq models failed, using rule based personality")
	return personality.Fallback(stats, g.pick)
}

// complete runs one chat completion against a single model
func (g *Groq) complete(ctx context.Context, model, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: personality.SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
	}
	reqBody.ResponseFormat.Type = "json_object"

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "groq encode failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.opts.BaseURL, bytes.NewReader(b))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "groq new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+g.opts.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "groq do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", perr.Unavailablef("groq status %d body %s", resp.StatusCode, string(tail))
	}

	var out chatResponse
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeMalformedUpstream, "groq decode failed")
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", perr.MalformedUpstreamf("groq response has no content")
	}
	return out.Choices[0].Message.Content, nil
}

// parsePersonality validates the model output and normalizes trait arity
func parsePersonality(content string) (personality.Personality, bool) {
	var p personality.Personality
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return personality.Personality{}, false
	}
	if p.Archetype == "" || p.Description == "" || p.Traits == nil {
		return personality.Personality{}, false
	}
	p.Traits = personality.CoerceTraits(p.Traits)
	return p, true
}
