package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aventura-edu/backend/internal/game"
)

var storeParams = game.GameParameters{Subject: "Ciências", Theme: "Corpo Humano", SchoolGrade: "6º ano"}

type stubCache struct {
	questions map[int]game.Question
	stories   map[string]game.StoryData
	getErr    error
	setCalls  int
}

func newStubCache() *stubCache {
	return &stubCache{questions: map[int]game.Question{}, stories: map[string]game.StoryData{}}
}

func (s *stubCache) GetQuestion(_ context.Context, _ game.GameParameters, slot int) (*game.Question, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if q, ok := s.questions[slot]; ok {
		return &q, nil
	}
	return nil, nil
}

func (s *stubCache) SetQuestion(_ context.Context, _ game.GameParameters, slot int, q game.Question) error {
	s.setCalls++
	s.questions[slot] = q
	return nil
}

func (s *stubCache) GetStory(_ context.Context, _ game.GameParameters) (*game.StoryData, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if st, ok := s.stories["story"]; ok {
		return &st, nil
	}
	return nil, nil
}

func (s *stubCache) SetStory(_ context.Context, _ game.GameParameters, st game.StoryData) error {
	s.setCalls++
	s.stories["story"] = st
	return nil
}

type stubRepo struct {
	payloads map[string][][]byte
	inserts  int
	queryErr error
}

func newStubRepo() *stubRepo { return &stubRepo{payloads: map[string][][]byte{}} }

func (s *stubRepo) QueryPayloads(_ context.Context, kind string, _ game.GameParameters, _ int, limit int) ([][]byte, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	rows := s.payloads[kind]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *stubRepo) InsertPayload(_ context.Context, kind string, _ game.GameParameters, _ int, payload []byte) error {
	s.inserts++
	s.payloads[kind] = append(s.payloads[kind], payload)
	return nil
}

func testClient(cache hotCache, repo persistent) *Client {
	return &Client{cache: cache, repo: repo, logger: zerolog.Nop()}
}

func sampleQuestion() game.Question {
	return game.Question{
		ID:      "q-1",
		Content: "Qual órgão bombeia o sangue?",
		Choices: []string{"Coração", "Pulmões", "Rins", "Fígado"},
		Answer:  "Coração",
		Word:    "circulação",
		Source:  game.SourceRemote,
	}
}

func TestClientGetQuestionMissEverywhere(t *testing.T) {
	c := testClient(newStubCache(), newStubRepo())
	q, err := c.GetQuestion(context.Background(), storeParams, 0)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestClientGetQuestionCacheHitSkipsRepo(t *testing.T) {
	cache := newStubCache()
	cache.questions[0] = sampleQuestion()
	repo := newStubRepo()
	repo.queryErr = errors.New("must not be called")

	c := testClient(cache, repo)
	q, err := c.GetQuestion(context.Background(), storeParams, 0)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Coração", q.Answer)
}

func TestClientGetQuestionBackfillsCache(t *testing.T) {
	cache := newStubCache()
	repo := newStubRepo()
	payload, err := json.Marshal(sampleQuestion())
	require.NoError(t, err)
	repo.payloads[kindQuestion] = [][]byte{payload}

	c := testClient(cache, repo)
	q, err := c.GetQuestion(context.Background(), storeParams, 0)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "circulação", q.Word)
	assert.Equal(t, 1, cache.setCalls, "repo hit should backfill the cache")
}

func TestClientGetQuestionCacheErrorFallsThrough(t *testing.T) {
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	repo := newStubRepo()
	payload, err := json.Marshal(sampleQuestion())
	require.NoError(t, err)
	repo.payloads[kindQuestion] = [][]byte{payload}

	c := testClient(cache, repo)
	q, err := c.GetQuestion(context.Background(), storeParams, 0)
	require.NoError(t, err)
	require.NotNil(t, q)
}

func TestClientGetQuestionRepoErrorSurfaces(t *testing.T) {
	repo := newStubRepo()
	repo.queryErr = errors.New("pg down")
	c := testClient(newStubCache(), repo)
	_, err := c.GetQuestion(context.Background(), storeParams, 0)
	assert.Error(t, err)
}

func TestClientSaveQuestionWritesBothLayers(t *testing.T) {
	cache := newStubCache()
	repo := newStubRepo()
	c := testClient(cache, repo)

	require.NoError(t, c.SaveQuestion(context.Background(), storeParams, 2, sampleQuestion()))
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, 1, repo.inserts)
}

func TestClientStoryRoundTrip(t *testing.T) {
	cache := newStubCache()
	repo := newStubRepo()
	c := testClient(cache, repo)
	st := game.StoryData{Title: "O Rio", Content: "Você desceu o rio comigo até a curva dos botos."}

	require.NoError(t, c.SaveStory(context.Background(), storeParams, st))

	got, err := c.GetStory(context.Background(), storeParams)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "O Rio", got.Title)
}

func TestClientNilLayersReportMiss(t *testing.T) {
	c := testClient(nil, nil)
	q, err := c.GetQuestion(context.Background(), storeParams, 0)
	require.NoError(t, err)
	assert.Nil(t, q)
	require.NoError(t, c.SaveQuestion(context.Background(), storeParams, 0, sampleQuestion()))
}

func TestCacheKeyNormalizesParams(t *testing.T) {
	key := cacheKey("question", storeParams, 3)
	assert.Equal(t, "aventura:question:ciencias:corpo-humano:6º-ano:3", key)
}
