// Package store implements the cache tier of the content pipeline: a Redis
// hot cache in front of a Postgres store of previously generated content.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aventura-edu/backend/internal/game"
	"github.com/aventura-edu/backend/internal/textnorm"
)

const defaultCacheTTL = 5 * time.Minute

// Cache provides Redis-backed storage of generated questions and stories so
// repeated games on the same theme skip the generator.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(kind string, params game.GameParameters, slot int) string {
	parts := []string{
		"aventura", kind,
		keyPart(params.Subject), keyPart(params.Theme), keyPart(params.SchoolGrade),
	}
	if slot >= 0 {
		parts = append(parts, fmt.Sprint(slot))
	}
	return strings.Join(parts, ":")
}

func keyPart(s string) string {
	s = strings.ToLower(textnorm.StripDiacritics(strings.TrimSpace(s)))
	return strings.ReplaceAll(s, " ", "-")
}

func (c *Cache) GetQuestion(ctx context.Context, params game.GameParameters, slot int) (*game.Question, error) {
	data, err := c.client.Get(ctx, cacheKey("question", params, slot)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var q game.Question
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Cache) SetQuestion(ctx context.Context, params game.GameParameters, slot int, q game.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey("question", params, slot), data, c.ttl).Err()
}

func (c *Cache) GetStory(ctx context.Context, params game.GameParameters) (*game.StoryData, error) {
	data, err := c.client.Get(ctx, cacheKey("story", params, -1)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var st game.StoryData
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *Cache) SetStory(ctx context.Context, params game.GameParameters, st game.StoryData) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey("story", params, -1), data, c.ttl).Err()
}
