package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/textnorm"
)

var svcParams = GameParameters{Subject: "Ciências", Theme: "Corpo Humano", SchoolGrade: "6º ano"}

// ---- stubs ----

type stubRemote struct {
	question func(ctx context.Context, params GameParameters, index int) (*Question, error)
	batch    func(ctx context.Context, params GameParameters) (*BatchResult, error)
	story    func(ctx context.Context, params GameParameters) (*StoryData, error)
}

func (s *stubRemote) GenerateQuestion(ctx context.Context, params GameParameters, index int) (*Question, error) {
	if s.question == nil {
		return nil, ErrUnavailable
	}
	return s.question(ctx, params, index)
}

func (s *stubRemote) GenerateBatch(ctx context.Context, params GameParameters) (*BatchResult, error) {
	if s.batch == nil {
		return nil, ErrUnavailable
	}
	return s.batch(ctx, params)
}

func (s *stubRemote) GenerateStory(ctx context.Context, params GameParameters) (*StoryData, error) {
	if s.story == nil {
		return nil, ErrUnavailable
	}
	return s.story(ctx, params)
}

type stubStore struct {
	questions      map[int]Question
	story          *StoryData
	getErr         error
	savedQuestions int
	savedStories   int
}

func newStubStore() *stubStore { return &stubStore{questions: map[int]Question{}} }

func (s *stubStore) GetQuestion(_ context.Context, _ GameParameters, index int) (*Question, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if q, ok := s.questions[index]; ok {
		return &q, nil
	}
	return nil, nil
}

func (s *stubStore) GetStory(_ context.Context, _ GameParameters) (*StoryData, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.story, nil
}

func (s *stubStore) SaveQuestion(_ context.Context, _ GameParameters, index int, q Question) error {
	s.savedQuestions++
	return nil
}

func (s *stubStore) SaveStory(_ context.Context, _ GameParameters, st StoryData) error {
	s.savedStories++
	return nil
}

type stubLibrary struct {
	specificQ func(params GameParameters, index int) (*Question, bool)
	genericQ  func(params GameParameters, index int) (*Question, bool)
	specificS func(params GameParameters) (*StoryData, bool)
	genericS  func(params GameParameters) (*StoryData, bool)
}

func (s *stubLibrary) SpecificQuestion(params GameParameters, index int) (*Question, bool) {
	if s.specificQ == nil {
		return nil, false
	}
	return s.specificQ(params, index)
}

func (s *stubLibrary) GenericQuestion(params GameParameters, index int) (*Question, bool) {
	if s.genericQ == nil {
		return nil, false
	}
	return s.genericQ(params, index)
}

func (s *stubLibrary) SpecificStory(params GameParameters) (*StoryData, bool) {
	if s.specificS == nil {
		return nil, false
	}
	return s.specificS(params)
}

func (s *stubLibrary) GenericStory(params GameParameters) (*StoryData, bool) {
	if s.genericS == nil {
		return nil, false
	}
	return s.genericS(params)
}

// ---- helpers ----

func makeQuestion(n int) *Question {
	return &Question{
		ID:      fmt.Sprintf("q-%d", n),
		Content: fmt.Sprintf("Qual é o elemento número %d do corpo humano estudado aqui?", n),
		Choices: []string{
			fmt.Sprintf("Resposta certa %d", n),
			fmt.Sprintf("Alternativa alfa %d", n),
			fmt.Sprintf("Alternativa beta %d", n),
			fmt.Sprintf("Alternativa gama %d", n),
		},
		Answer: fmt.Sprintf("Resposta certa %d", n),
		Word:   []string{"circulação", "respiração", "digestão", "esqueleto", "neurônio", "membrana"}[n%6],
	}
}

func narrativeStory(title string) *StoryData {
	return &StoryData{
		Title: title,
		Content: "Naquela tarde você abriu o portão do jardim e eu segui seus passos pela " +
			"trilha das descobertas, contando as pedras do caminho até o velho laboratório.",
	}
}

func newTestService(t *testing.T, remote RemoteGenerator, store ContentStore, lib FallbackLibrary) *Service {
	t.Helper()
	if lib == nil {
		lib = &stubLibrary{}
	}
	return NewService(remote, store, lib, distractor.NewSeeded(7), zerolog.Nop(), NewMetrics(prometheus.NewRegistry()))
}

// ---- question chain ----

func TestGenerateQuestionPrefersRemote(t *testing.T) {
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		return makeQuestion(1), nil
	}}
	store := newStubStore()
	svc := newTestService(t, remote, store, nil)

	q := svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.Equal(t, SourceRemote, q.Source)
	assert.Equal(t, 1, store.savedQuestions, "remote content is written back")
}

func TestGenerateQuestionDemotesToStoreOnRemoteError(t *testing.T) {
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		return nil, errors.New("transport exploded")
	}}
	store := newStubStore()
	store.questions[0] = *makeQuestion(2)
	svc := newTestService(t, remote, store, nil)

	q := svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.Equal(t, SourceCache, q.Source)
	assert.Equal(t, 0, store.savedQuestions, "cached content is not re-persisted")
}

func TestGenerateQuestionDuplicateDemotesWithinRequest(t *testing.T) {
	first := makeQuestion(3)
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		dup := *first
		return &dup, nil
	}}
	lib := &stubLibrary{specificQ: func(GameParameters, int) (*Question, bool) {
		return makeQuestion(4), true
	}}
	svc := newTestService(t, remote, nil, lib)

	q1 := svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.Equal(t, SourceRemote, q1.Source)

	// The remote tier repeats itself; the request must fall through to the
	// static tier instead of retrying the same tier.
	q2 := svc.GenerateQuestion(context.Background(), svcParams, 1)
	assert.Equal(t, SourceStaticSpecific, q2.Source)
	assert.NotEqual(t, textnorm.ContentHash(q1.Content), textnorm.ContentHash(q2.Content))
}

func TestGenerateQuestionSchemaFailureDemotes(t *testing.T) {
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		return &Question{Content: "incompleta"}, nil
	}}
	lib := &stubLibrary{specificQ: func(GameParameters, int) (*Question, bool) {
		return makeQuestion(5), true
	}}
	svc := newTestService(t, remote, nil, lib)

	q := svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.Equal(t, SourceStaticSpecific, q.Source)
}

func TestGenerateQuestionEmergencyNeverFails(t *testing.T) {
	svc := newTestService(t, nil, nil, &stubLibrary{})

	seenContent := map[string]bool{}
	seenWord := map[string]bool{}
	for i := 0; i < 12; i++ {
		q := svc.GenerateQuestion(context.Background(), svcParams, i%4)
		require.NoError(t, q.Validate())
		assert.Equal(t, SourceEmergency, q.Source)

		content, word := q.Hashes()
		assert.False(t, seenContent[content], "emergency content repeated: %q", q.Content)
		assert.False(t, seenWord[word], "emergency word repeated: %q", q.Word)
		seenContent[content] = true
		seenWord[word] = true
	}
}

func TestGenerateQuestionDuplicateCounterIncrements(t *testing.T) {
	q := makeQuestion(6)
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		dup := *q
		return &dup, nil
	}}
	svc := newTestService(t, remote, nil, &stubLibrary{})

	svc.GenerateQuestion(context.Background(), svcParams, 0)
	svc.GenerateQuestion(context.Background(), svcParams, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.metrics.duplicates))
}

// ---- batch ----

func validBatchResult() *BatchResult {
	b := &BatchResult{}
	for i := 0; i < 4; i++ {
		b.Questions = append(b.Questions, *makeQuestion(i))
	}
	return b
}

func TestBatchUsesCombinedRemoteCall(t *testing.T) {
	remote := &stubRemote{batch: func(context.Context, GameParameters) (*BatchResult, error) {
		b := validBatchResult()
		b.Story = narrativeStory("A Expedição")
		return b, nil
	}}
	store := newStubStore()
	svc := newTestService(t, remote, store, nil)

	out := svc.GenerateQuestionBatch(context.Background(), svcParams)

	seen := map[string]bool{}
	for _, q := range out {
		assert.Equal(t, SourceRemote, q.Source)
		require.NoError(t, q.Validate())
		content, word := q.Hashes()
		assert.False(t, seen[content])
		assert.False(t, seen[word])
		seen[content], seen[word] = true, true
	}
	assert.Equal(t, 4, store.savedQuestions)
	assert.Equal(t, 1, store.savedStories)

	// The bundled story is served later without touching any source.
	st := svc.GenerateStory(context.Background(), svcParams)
	assert.Equal(t, "A Expedição", st.Title)
}

func TestBatchWithInternalDuplicatesFallsBackToSequential(t *testing.T) {
	remote := &stubRemote{
		batch: func(context.Context, GameParameters) (*BatchResult, error) {
			b := &BatchResult{}
			q := makeQuestion(1)
			for i := 0; i < 4; i++ {
				b.Questions = append(b.Questions, *q)
			}
			return b, nil
		},
		question: func(context.Context, GameParameters, int) (*Question, error) {
			return nil, ErrUnavailable
		},
	}
	lib := &stubLibrary{specificQ: func(_ GameParameters, index int) (*Question, bool) {
		return makeQuestion(index), true
	}}
	svc := newTestService(t, remote, nil, lib)

	out := svc.GenerateQuestionBatch(context.Background(), svcParams)
	seen := map[string]bool{}
	for _, q := range out {
		require.NoError(t, q.Validate())
		content, _ := q.Hashes()
		assert.False(t, seen[content], "batch slots must be pairwise distinct")
		seen[content] = true
	}
}

func TestBatchFillsFromEmergencyWhenLibraryRepeats(t *testing.T) {
	same := makeQuestion(2)
	lib := &stubLibrary{specificQ: func(GameParameters, int) (*Question, bool) {
		dup := *same
		return &dup, true
	}}
	svc := newTestService(t, nil, nil, lib)

	out := svc.GenerateQuestionBatch(context.Background(), svcParams)
	assert.Equal(t, SourceStaticSpecific, out[0].Source)
	for i := 1; i < 4; i++ {
		assert.Equal(t, SourceEmergency, out[i].Source, "slot %d", i)
		require.NoError(t, out[i].Validate())
	}
}

func TestBatchResetsSessionState(t *testing.T) {
	lib := &stubLibrary{specificQ: func(_ GameParameters, index int) (*Question, bool) {
		return makeQuestion(index), true
	}}
	svc := newTestService(t, nil, nil, lib)

	first := svc.GenerateQuestionBatch(context.Background(), svcParams)
	second := svc.GenerateQuestionBatch(context.Background(), svcParams)
	// Same static content is acceptable again because the batch starts a
	// fresh session.
	assert.Equal(t, first[0].Content, second[0].Content)
	assert.Equal(t, SourceStaticSpecific, second[0].Source)
}

func TestSessionResetDropsInFlightResults(t *testing.T) {
	var svc *Service
	resets := 0
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		// Simulates a restart racing the first request.
		if resets == 0 {
			resets++
			svc.ClearSessionState()
		}
		return makeQuestion(7), nil
	}}
	lib := &stubLibrary{specificQ: func(GameParameters, int) (*Question, bool) {
		return makeQuestion(8), true
	}}
	svc = newTestService(t, remote, nil, lib)

	// Every candidate resolved under the old version is stale, so the
	// request ends on the emergency tier and registers nothing.
	q := svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.NotEqual(t, SourceRemote, q.Source, "stale remote result must be discarded")
	assert.Equal(t, SourceEmergency, q.Source)
	require.NoError(t, q.Validate())

	next := svc.GenerateQuestion(context.Background(), svcParams, 1)
	assert.Equal(t, SourceRemote, next.Source, "fresh session accepts remote content again")
}

// ---- story ----

func TestGenerateStoryWalksChain(t *testing.T) {
	lib := &stubLibrary{specificS: func(GameParameters) (*StoryData, bool) {
		return narrativeStory("O Laboratório"), true
	}}
	svc := newTestService(t, nil, nil, lib)

	st := svc.GenerateStory(context.Background(), svcParams)
	assert.Equal(t, "O Laboratório", st.Title)
}

func TestGenerateStoryRejectsOnboardingText(t *testing.T) {
	remote := &stubRemote{story: func(context.Context, GameParameters) (*StoryData, error) {
		return &StoryData{Title: "Bem-vindo", Content: "Prepare-se para a aventura e responda as perguntas!"}, nil
	}}
	lib := &stubLibrary{genericS: func(GameParameters) (*StoryData, bool) {
		return narrativeStory("O Mapa"), true
	}}
	svc := newTestService(t, remote, nil, lib)

	st := svc.GenerateStory(context.Background(), svcParams)
	assert.Equal(t, "O Mapa", st.Title)
}

func TestGenerateStoryEmergencyIsNarrative(t *testing.T) {
	svc := newTestService(t, nil, nil, &stubLibrary{})

	st := svc.GenerateStory(context.Background(), svcParams)
	require.NotEmpty(t, st.Title)
	require.NotEmpty(t, st.Content)
	assert.NoError(t, svc.validateStory(&st))
}

func TestDemotionMetricsLabeled(t *testing.T) {
	remote := &stubRemote{question: func(context.Context, GameParameters, int) (*Question, error) {
		return nil, ErrSafety
	}}
	lib := &stubLibrary{specificQ: func(GameParameters, int) (*Question, bool) {
		return makeQuestion(9), true
	}}
	svc := newTestService(t, remote, nil, lib)

	svc.GenerateQuestion(context.Background(), svcParams, 0)
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.metrics.demoted.WithLabelValues(SourceRemote, "safety")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.metrics.safety))
}
