package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/aventura-edu/backend/internal/game"
)

// hotCache is the Redis layer (see Cache). Misses are (nil, nil).
type hotCache interface {
	GetQuestion(ctx context.Context, params game.GameParameters, slot int) (*game.Question, error)
	SetQuestion(ctx context.Context, params game.GameParameters, slot int, q game.Question) error
	GetStory(ctx context.Context, params game.GameParameters) (*game.StoryData, error)
	SetStory(ctx context.Context, params game.GameParameters, st game.StoryData) error
}

// persistent is the Postgres layer (see Repo).
type persistent interface {
	QueryPayloads(ctx context.Context, kind string, params game.GameParameters, slot, limit int) ([][]byte, error)
	InsertPayload(ctx context.Context, kind string, params game.GameParameters, slot int, payload []byte) error
}

// Client is the store tier of the content pipeline: Redis in front of
// Postgres, with read-through backfill. It implements game.ContentStore.
// Either layer may be nil; a fully nil client never serves and never errors
// loudly, it just reports misses.
type Client struct {
	cache  hotCache
	repo   persistent
	logger zerolog.Logger
}

var _ game.ContentStore = (*Client)(nil)

func NewClient(cache *Cache, repo *Repo, logger zerolog.Logger) *Client {
	c := &Client{logger: logger.With().Str("component", "content_store").Logger()}
	// Typed nils must not survive the interface conversion.
	if cache != nil {
		c.cache = cache
	}
	if repo != nil {
		c.repo = repo
	}
	return c
}

func (c *Client) GetQuestion(ctx context.Context, params game.GameParameters, index int) (*game.Question, error) {
	if c.cache != nil {
		q, err := c.cache.GetQuestion(ctx, params, index)
		if err != nil {
			c.logger.Warn().Err(err).Msg("cache read failed, trying store")
		} else if q != nil {
			return q, nil
		}
	}
	if c.repo == nil {
		return nil, nil
	}
	payloads, err := c.repo.QueryPayloads(ctx, kindQuestion, params, index, 1)
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, nil
	}
	var q game.Question
	if err := json.Unmarshal(payloads[0], &q); err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.SetQuestion(ctx, params, index, q); err != nil {
			c.logger.Warn().Err(err).Msg("cache backfill failed")
		}
	}
	return &q, nil
}

func (c *Client) GetStory(ctx context.Context, params game.GameParameters) (*game.StoryData, error) {
	if c.cache != nil {
		st, err := c.cache.GetStory(ctx, params)
		if err != nil {
			c.logger.Warn().Err(err).Msg("cache read failed, trying store")
		} else if st != nil {
			return st, nil
		}
	}
	if c.repo == nil {
		return nil, nil
	}
	payloads, err := c.repo.QueryPayloads(ctx, kindStory, params, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, nil
	}
	var st game.StoryData
	if err := json.Unmarshal(payloads[0], &st); err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.SetStory(ctx, params, st); err != nil {
			c.logger.Warn().Err(err).Msg("cache backfill failed")
		}
	}
	return &st, nil
}

func (c *Client) SaveQuestion(ctx context.Context, params game.GameParameters, index int, q game.Question) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.SetQuestion(ctx, params, index, q); err != nil {
			c.logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	if c.repo == nil {
		return nil
	}
	return c.repo.InsertPayload(ctx, kindQuestion, params, index, payload)
}

func (c *Client) SaveStory(ctx context.Context, params game.GameParameters, story game.StoryData) error {
	payload, err := json.Marshal(story)
	if err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.SetStory(ctx, params, story); err != nil {
			c.logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	if c.repo == nil {
		return nil
	}
	return c.repo.InsertPayload(ctx, kindStory, params, 0, payload)
}
