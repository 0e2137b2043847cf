package gemini

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/game"
	"github.com/aventura-edu/backend/internal/game/safety"
)

type questionPayload struct {
	Content string   `json:"content"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer"`
	Word    string   `json:"word"`
}

type batchPayload struct {
	Questions []questionPayload `json:"questions"`
	Story     *storyPayload     `json:"story"`
}

type storyPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StripCodeFences removes markdown fencing that models wrap around JSON.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseQuestion turns a raw model response into a validated Question. Every
// failure maps onto one of the demotion sentinels so the orchestrator can
// treat parse problems exactly like transport problems: demote, never retry.
func ParseQuestion(raw string, params game.GameParameters, synth *distractor.Synthesizer) (*game.Question, error) {
	var payload questionPayload
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrSchema, err)
	}
	return buildQuestion(payload, params, synth)
}

// ParseBatch decodes a combined response: exactly 4 questions plus an
// optional story. Any malformed member invalidates the whole batch.
func ParseBatch(raw string, params game.GameParameters, synth *distractor.Synthesizer) (*game.BatchResult, error) {
	var payload batchPayload
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrSchema, err)
	}
	if len(payload.Questions) != 4 {
		return nil, fmt.Errorf("%w: batch has %d questions, want 4", game.ErrSchema, len(payload.Questions))
	}
	result := &game.BatchResult{}
	for _, qp := range payload.Questions {
		q, err := buildQuestion(qp, params, synth)
		if err != nil {
			return nil, err
		}
		result.Questions = append(result.Questions, *q)
	}
	if payload.Story != nil {
		if st, err := buildStory(*payload.Story); err == nil {
			result.Story = st
		}
		// A bad bundled story does not sink the questions.
	}
	return result, nil
}

// ParseStory decodes and validates a standalone story response.
func ParseStory(raw string) (*game.StoryData, error) {
	var payload storyPayload
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrSchema, err)
	}
	return buildStory(payload)
}

func buildQuestion(payload questionPayload, params game.GameParameters, synth *distractor.Synthesizer) (*game.Question, error) {
	content := strings.TrimSpace(payload.Content)
	answer := strings.TrimSpace(payload.Answer)
	word := strings.TrimSpace(payload.Word)
	if content == "" || answer == "" {
		return nil, fmt.Errorf("%w: missing content or answer", game.ErrSchema)
	}
	if !lettersOnly(word) {
		return nil, fmt.Errorf("%w: secret word %q is not letters-only", game.ErrSchema, word)
	}

	fields := append([]string{content, answer, word}, payload.Choices...)
	if term, bad := safety.Check(fields...); bad {
		return nil, fmt.Errorf("%w: matched %q", game.ErrSafety, term)
	}

	choices := normalizeChoices(payload.Choices, answer, params.Subject, synth)
	rand.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	q := &game.Question{
		ID:      uuid.NewString(),
		Content: content,
		Choices: choices,
		Answer:  answer,
		Word:    word,
		Source:  game.SourceRemote,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// normalizeChoices repairs option lists the way curated imports do: the
// answer is guaranteed present, duplicates are dropped, and missing slots are
// filled with synthesized same-category distractors.
func normalizeChoices(raw []string, answer, subject string, synth *distractor.Synthesizer) []string {
	out := make([]string, 0, 4)
	seen := map[string]bool{}
	add := func(opt string) {
		opt = strings.TrimSpace(opt)
		if opt == "" || len(out) >= 4 {
			return
		}
		key := strings.ToLower(opt)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, opt)
	}
	add(answer)
	for _, opt := range raw {
		add(opt)
	}
	if len(out) < 4 {
		for _, opt := range synth.Synthesize(answer, subject) {
			add(opt)
		}
	}
	return out
}

func buildStory(payload storyPayload) (*game.StoryData, error) {
	title := strings.TrimSpace(payload.Title)
	content := strings.TrimSpace(payload.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: empty story", game.ErrSchema)
	}
	if term, bad := safety.Check(title, content); bad {
		return nil, fmt.Errorf("%w: matched %q", game.ErrSafety, term)
	}
	if safety.LooksLikeOnboarding(content) || !safety.IsNarrative(content) {
		return nil, fmt.Errorf("%w: story is not narrative prose", game.ErrSchema)
	}
	return &game.StoryData{Title: title, Content: content}, nil
}

// lettersOnly accepts the pre-suffix secret word form: Unicode letters, at
// least one, nothing else.
func lettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
