package game

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/game/safety"
)

// storyWordSoftMin/Max bound the soft word-count check for stories. Being
// outside the range only logs; it never rejects.
const (
	storyWordSoftMin = 150
	storyWordSoftMax = 400
)

// Service is the fallback orchestrator. Per request it walks the tier chain
// remote -> cache/store -> static-specific -> static-generic -> emergency,
// validates and deduplicates each candidate against the session uniqueness
// tracker, and returns the first acceptable result. A duplicate or error
// demotes that tier permanently for the request; it is never retried. The
// emergency tier cannot fail, so every public operation returns a value.
type Service struct {
	remote  RemoteGenerator
	store   ContentStore
	library FallbackLibrary

	sources      []questionSource
	storySources []storySource
	emergency    *emergencyGenerator

	logger  zerolog.Logger
	metrics *Metrics

	mu   sync.Mutex
	sess *sessionState
}

// NewService wires the tier chain. remote and store may be nil; the matching
// tiers are then skipped. library must not be nil.
func NewService(remote RemoteGenerator, store ContentStore, library FallbackLibrary, synth *distractor.Synthesizer, logger zerolog.Logger, metrics *Metrics) *Service {
	if synth == nil {
		synth = distractor.New()
	}
	s := &Service{
		remote:    remote,
		store:     store,
		library:   library,
		emergency: newEmergencyGenerator(synth),
		logger:    logger.With().Str("component", "game_service").Logger(),
		metrics:   metrics,
		sess:      newSessionState(0),
	}
	if remote != nil {
		s.sources = append(s.sources, remoteSource{gen: remote})
		s.storySources = append(s.storySources, remoteSource{gen: remote})
	}
	if store != nil {
		s.sources = append(s.sources, storeSource{store: store})
		s.storySources = append(s.storySources, storeSource{store: store})
	}
	s.sources = append(s.sources,
		staticSource{lib: library},
		staticSource{lib: library, generic: true},
	)
	s.storySources = append(s.storySources,
		staticSource{lib: library},
		staticSource{lib: library, generic: true},
	)
	return s
}

// GenerateQuestion resolves one question for the given angle index (0..3).
// It never returns an error: every internal failure demotes to the next tier
// and the emergency tier always succeeds.
func (s *Service) GenerateQuestion(ctx context.Context, params GameParameters, index int) Question {
	if index < 0 || index >= len(Angles) {
		index = 0
	}
	return s.generateQuestion(ctx, params, index, s.currentVersion())
}

func (s *Service) generateQuestion(ctx context.Context, params GameParameters, index int, version uint64) Question {
	for _, src := range s.sources {
		q, err := src.provide(ctx, params, index)
		if err != nil {
			s.demote(src.name(), err)
			continue
		}
		if err := q.Validate(); err != nil {
			s.demote(src.name(), ErrSchema)
			continue
		}
		if !s.accept(version, q) {
			s.demote(src.name(), ErrDuplicate)
			continue
		}
		s.metrics.recordServed(src.name(), "question")
		s.writeBack(ctx, params, index, q)
		return *q
	}

	q := s.emergency.question(params, index, s.sessionUsed(version))
	s.accept(version, &q)
	s.metrics.recordServed(SourceEmergency, "question")
	return q
}

// GenerateQuestionBatch produces the 4 questions of a fresh game. The session
// uniqueness tracker is cleared first. A single combined remote call is
// preferred; if it fails structural or cross-set uniqueness validation the
// whole remote batch is rejected and the 4 slots are generated sequentially
// through the regular per-question chain.
func (s *Service) GenerateQuestionBatch(ctx context.Context, params GameParameters) [4]Question {
	version := s.resetSession()

	if s.remote != nil {
		batch, err := s.remote.GenerateBatch(ctx, params)
		switch {
		case err != nil:
			s.demote(SourceRemote, err)
		case !s.validBatch(batch):
			s.demote(SourceRemote, ErrSchema)
		default:
			if out, ok := s.acceptBatch(version, batch); ok {
				s.metrics.recordServed(SourceRemote, "batch")
				for i := range out {
					s.writeBack(ctx, params, i, &out[i])
				}
				if batch.Story != nil {
					s.writeBackStory(ctx, params, batch.Story)
				}
				return out
			}
			s.demote(SourceRemote, ErrDuplicate)
		}
	}

	var out [4]Question
	for i := range out {
		out[i] = s.generateQuestion(ctx, params, i, version)
	}
	return out
}

// GenerateStory resolves the unlockable story. A story bundled with a prior
// combined batch call wins; otherwise the tier chain runs with narrative
// validation at every step.
func (s *Service) GenerateStory(ctx context.Context, params GameParameters) StoryData {
	if st := s.pendingStory(); st != nil {
		s.metrics.recordServed(SourceCache, "story")
		return *st
	}

	for _, src := range s.storySources {
		st, err := src.provideStory(ctx, params)
		if err != nil {
			s.demote(src.name(), err)
			continue
		}
		if err := s.validateStory(st); err != nil {
			s.demote(src.name(), err)
			continue
		}
		s.metrics.recordServed(src.name(), "story")
		return *st
	}

	s.metrics.recordServed(SourceEmergency, "story")
	return s.emergency.story(params)
}

// ClearSessionState resets the uniqueness tracker and drops any story cached
// from a combined batch call. In-flight generation started before the reset
// observes the version bump and discards its result.
func (s *Service) ClearSessionState() {
	s.resetSession()
}

// ---- session plumbing ----

func (s *Service) currentVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.version
}

func (s *Service) resetSession() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = newSessionState(s.sess.version + 1)
	return s.sess.version
}

// accept registers the candidate's hashes, refusing duplicates and results
// that resolved after a session restart (stale version).
func (s *Service) accept(version uint64, q *Question) bool {
	content, word := q.Hashes()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.version != version {
		return false
	}
	if s.sess.seen(content, word) {
		return false
	}
	s.sess.register(content, word)
	return true
}

func (s *Service) acceptBatch(version uint64, batch *BatchResult) ([4]Question, bool) {
	var out [4]Question
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.version != version {
		return out, false
	}
	type hashes struct{ content, word string }
	pending := make([]hashes, 0, len(batch.Questions))
	for _, q := range batch.Questions {
		content, word := q.Hashes()
		if s.sess.seen(content, word) {
			return out, false
		}
		for _, p := range pending {
			if p.content == content || p.word == word {
				return out, false
			}
		}
		pending = append(pending, hashes{content, word})
	}
	for i, q := range batch.Questions {
		s.sess.register(pending[i].content, pending[i].word)
		out[i] = q
	}
	if batch.Story != nil && s.validateStory(batch.Story) == nil {
		st := *batch.Story
		s.sess.pendingStory = &st
	}
	return out, true
}

func (s *Service) sessionUsed(version uint64) func(contentHash, wordHash string) bool {
	return func(contentHash, wordHash string) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.sess.version != version {
			return false
		}
		return s.sess.seen(contentHash, wordHash)
	}
}

func (s *Service) pendingStory() *StoryData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.pendingStory == nil {
		return nil
	}
	st := *s.sess.pendingStory
	return &st
}

// ---- candidate validation ----

func (s *Service) validBatch(batch *BatchResult) bool {
	if batch == nil || len(batch.Questions) != 4 {
		return false
	}
	for i := range batch.Questions {
		batch.Questions[i].Source = SourceRemote
		if err := batch.Questions[i].Validate(); err != nil {
			return false
		}
	}
	return true
}

func (s *Service) validateStory(st *StoryData) error {
	if st == nil || strings.TrimSpace(st.Title) == "" || strings.TrimSpace(st.Content) == "" {
		return ErrSchema
	}
	if term, bad := safety.Check(st.Title, st.Content); bad {
		s.logger.Warn().Str("pattern", term).Msg("story rejected by safety rules")
		return ErrSafety
	}
	if safety.LooksLikeOnboarding(st.Content) || !safety.IsNarrative(st.Content) {
		return ErrSchema
	}
	if n := len(strings.Fields(st.Content)); n < storyWordSoftMin || n > storyWordSoftMax {
		s.logger.Warn().Int("words", n).Msg("story length outside soft range")
	}
	return nil
}

// ---- bookkeeping ----

func (s *Service) demote(tier string, err error) {
	reason := "error"
	switch {
	case errors.Is(err, ErrUnavailable):
		reason = "unavailable"
	case errors.Is(err, ErrSchema):
		reason = "schema"
	case errors.Is(err, ErrSafety):
		reason = "safety"
	case errors.Is(err, ErrDuplicate):
		reason = "duplicate"
	}
	event := s.logger.Debug()
	if reason == "safety" {
		// Safety hits are security-relevant, keep them visible.
		event = s.logger.Warn()
	}
	event.Str("tier", tier).Str("reason", reason).Err(err).Msg("tier demoted")
	s.metrics.recordDemotion(tier, reason)
}

// writeBack persists freshly accepted remote content so the cache tier can
// serve it when the generator is unavailable later. Best effort.
func (s *Service) writeBack(ctx context.Context, params GameParameters, index int, q *Question) {
	if s.store == nil || q.Source != SourceRemote {
		return
	}
	if err := s.store.SaveQuestion(ctx, params, index, *q); err != nil {
		s.logger.Debug().Err(err).Msg("question write-back failed")
	}
}

func (s *Service) writeBackStory(ctx context.Context, params GameParameters, st *StoryData) {
	if s.store == nil || st == nil {
		return
	}
	if err := s.store.SaveStory(ctx, params, *st); err != nil {
		s.logger.Debug().Err(err).Msg("story write-back failed")
	}
}
