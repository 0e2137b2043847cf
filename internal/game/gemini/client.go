// Package gemini implements the remote tier of the content pipeline on top
// of the Google generative AI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"google.golang.org/api/option"

	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/game"
)

const (
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 6 * time.Second
	// Transient-network retries only. Cross-tier fallback is the
	// orchestrator's job, not ours.
	defaultMaxRetries = 2
)

// Config holds connection details for the generator.
type Config struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries uint64
}

// Client implements game.RemoteGenerator.
type Client struct {
	cfg    Config
	synth  *distractor.Synthesizer
	logger zerolog.Logger
}

var _ game.RemoteGenerator = (*Client)(nil)

func NewClient(cfg Config, synth *distractor.Synthesizer, logger zerolog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if synth == nil {
		synth = distractor.New()
	}
	return &Client{
		cfg:    cfg,
		synth:  synth,
		logger: logger.With().Str("component", "gemini_client").Logger(),
	}
}

func (c *Client) GenerateQuestion(ctx context.Context, params game.GameParameters, index int) (*game.Question, error) {
	raw, err := c.generate(ctx, questionSystem, questionPrompt(params, index))
	if err != nil {
		return nil, err
	}
	return ParseQuestion(raw, params, c.synth)
}

func (c *Client) GenerateBatch(ctx context.Context, params game.GameParameters) (*game.BatchResult, error) {
	raw, err := c.generate(ctx, batchSystem, batchPrompt(params))
	if err != nil {
		return nil, err
	}
	return ParseBatch(raw, params, c.synth)
}

func (c *Client) GenerateStory(ctx context.Context, params game.GameParameters) (*game.StoryData, error) {
	raw, err := c.generate(ctx, storySystem, storyPrompt(params))
	if err != nil {
		return nil, err
	}
	return ParseStory(raw)
}

// generate runs one prompt with the configured timeout and a bounded
// transient retry. Any terminal failure surfaces as an error; the caller
// demotes to the next tier.
func (c *Client) generate(ctx context.Context, system, user string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", game.ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.cfg.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	model := cl.GenerativeModel(c.cfg.Model)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.8),
		ResponseMIMEType: "application/json",
	}
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	var out string
	backoff := retry.WithMaxRetries(c.cfg.MaxRetries, retry.NewFibonacci(300*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, genErr := model.GenerateContent(ctx, genai.Text(user))
		if genErr != nil {
			return retry.RetryableError(genErr)
		}
		txt := firstText(resp)
		if txt == "" {
			return errors.New("gemini: empty response")
		}
		out = txt
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("model", c.cfg.Model).Msg("generation failed")
		return "", err
	}
	return out, nil
}

// firstText concatenates the text parts of the first non-empty candidate;
// streamed responses arrive as multiple parts.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func ptrFloat32(f float32) *float32 { return &f }
