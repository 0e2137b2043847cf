package game

import (
	"errors"

	"github.com/aventura-edu/backend/internal/textnorm"
)

// Source labels which fallback tier produced a piece of content.
const (
	SourceRemote         = "gemini"
	SourceCache          = "cache"
	SourceStaticSpecific = "fallback-specific"
	SourceStaticGeneric  = "fallback-generic"
	SourceEmergency      = "emergency"
)

// Angle names for the 4 question slots of a game. The remote prompt and the
// static tables both follow this order.
var Angles = [4]string{"definition", "who", "when", "result"}

// GameParameters is the immutable per-game tuple handed in by the UI layer.
type GameParameters struct {
	Subject      string `json:"subject"`
	Theme        string `json:"theme"`
	SchoolGrade  string `json:"schoolGrade"`
	ThemeDetails string `json:"themeDetails,omitempty"`
}

// Question is the normalized payload delivered to clients. Choices always has
// exactly 4 entries and contains Answer exactly once; Word is the secret word
// unlocked by answering correctly.
type Question struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer,omitempty"` // server-side only
	Word    string   `json:"word"`
	Source  string   `json:"source"`
}

// StoryData is the unlockable narrative tied to a finished game.
type StoryData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Demotion sentinels. Every tier failure maps onto one of these so the
// orchestrator can log the reason while treating them all the same way:
// discard the candidate and move to the next tier.
var (
	ErrUnavailable = errors.New("content source unavailable")
	ErrSchema      = errors.New("response failed schema validation")
	ErrSafety      = errors.New("response rejected by content safety rules")
	ErrDuplicate   = errors.New("candidate duplicates session content")
)

// Validate checks the structural invariants of a question. Candidates failing
// this never reach the uniqueness tracker.
func (q *Question) Validate() error {
	if q == nil || q.Content == "" || q.Answer == "" || q.Word == "" {
		return ErrSchema
	}
	if len(q.Choices) != 4 {
		return ErrSchema
	}
	answerCount := 0
	seen := map[string]bool{}
	for _, c := range q.Choices {
		if c == "" {
			return ErrSchema
		}
		key := textnorm.ContentHash(c)
		if seen[key] {
			return ErrSchema
		}
		seen[key] = true
		if c == q.Answer {
			answerCount++
		}
	}
	if answerCount != 1 {
		return ErrSchema
	}
	if textnorm.NormalizeWord(q.Word) == "" {
		return ErrSchema
	}
	return nil
}

// Hashes returns the normalized comparison keys used by the session tracker.
func (q *Question) Hashes() (content, word string) {
	return textnorm.ContentHash(q.Content), textnorm.NormalizeWord(q.Word)
}
