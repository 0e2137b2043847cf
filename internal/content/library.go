// Package content holds the static fallback banks: curated questions and
// stories keyed by (subject, grade band, theme). Coverage is sparse by
// nature, so lookup degrades gracefully — exact matches win, then normalized
// and substring matches, then grade-band bucketing, then whatever exists —
// because a plausible generic hit beats returning nothing.
package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aventura-edu/backend/internal/game"
	"github.com/aventura-edu/backend/internal/textnorm"
)

// Grade bands bucket school grades when no exact entry exists.
const (
	BandEarly  = "1-3"
	BandMiddle = "4-6"
	BandLate   = "7-9"
)

// genericSubject is the terminal bucket consulted when a subject has no
// entries at all.
const genericSubject = "Conhecimentos Gerais"

// Entry is one static bank: exactly 4 question seeds (one per angle) plus the
// story for the same theme. Entries are package data, never mutated.
type Entry struct {
	Subject   string
	GradeBand string
	Theme     string
	Questions [4]Seed
	Story     game.StoryData
}

// Seed is a Question without the per-request fields (ID, Source).
type Seed struct {
	Content string
	Choices [4]string
	Answer  string
	Word    string
}

// Library answers fallback lookups over the static entries.
type Library struct {
	entries []Entry
}

// NewLibrary loads the built-in banks. Kept as a constructor so tests can
// build small libraries via NewLibraryWith.
func NewLibrary() *Library {
	return NewLibraryWith(builtinEntries)
}

func NewLibraryWith(entries []Entry) *Library {
	return &Library{entries: entries}
}

var _ game.FallbackLibrary = (*Library)(nil)

// SpecificQuestion requires subject and theme to match (exactly or by
// normalized substring); the grade may degrade to its band.
func (l *Library) SpecificQuestion(params game.GameParameters, index int) (*game.Question, bool) {
	e := l.find(params, true)
	if e == nil {
		return nil, false
	}
	return e.question(index), true
}

// GenericQuestion accepts any degraded match and always succeeds as long as
// the library has at least one entry.
func (l *Library) GenericQuestion(params game.GameParameters, index int) (*game.Question, bool) {
	e := l.find(params, false)
	if e == nil {
		return nil, false
	}
	return e.question(index), true
}

func (l *Library) SpecificStory(params game.GameParameters) (*game.StoryData, bool) {
	e := l.find(params, true)
	if e == nil {
		return nil, false
	}
	st := e.Story
	return &st, true
}

func (l *Library) GenericStory(params game.GameParameters) (*game.StoryData, bool) {
	e := l.find(params, false)
	if e == nil {
		return nil, false
	}
	st := e.Story
	return &st, true
}

func (e *Entry) question(index int) *game.Question {
	if index < 0 || index >= len(e.Questions) {
		index = 0
	}
	seed := e.Questions[index]
	return &game.Question{
		ID:      uuid.NewString(),
		Content: seed.Content,
		Choices: append([]string(nil), seed.Choices[:]...),
		Answer:  seed.Answer,
		Word:    seed.Word,
	}
}

// find resolves an entry. Specific lookups require subject + theme matches;
// generic lookups degrade through: same subject any theme (band preferred),
// the generic subject bucket, then the first entry of the library.
func (l *Library) find(params game.GameParameters, specific bool) *Entry {
	if len(l.entries) == 0 {
		return nil
	}
	subject := normKey(params.Subject)
	theme := normKey(params.Theme)
	band := GradeBand(params.SchoolGrade)

	var (
		exact        *Entry // subject + band + theme
		themeOnly    *Entry // subject + theme, other band
		bandOnly     *Entry // subject + band, other theme
		subjectOnly  *Entry // subject, anything else
		genericMatch *Entry
	)
	for i := range l.entries {
		e := &l.entries[i]
		eSubject := normKey(e.Subject)
		if eSubject == normKey(genericSubject) && genericMatch == nil {
			genericMatch = e
		}
		if eSubject != subject {
			continue
		}
		themeHit := themeMatches(normKey(e.Theme), theme)
		bandHit := e.GradeBand == band
		switch {
		case themeHit && bandHit:
			if exact == nil {
				exact = e
			}
		case themeHit:
			if themeOnly == nil {
				themeOnly = e
			}
		case bandHit:
			if bandOnly == nil {
				bandOnly = e
			}
		default:
			if subjectOnly == nil {
				subjectOnly = e
			}
		}
	}

	if specific {
		if exact != nil {
			return exact
		}
		return themeOnly
	}
	for _, e := range []*Entry{exact, themeOnly, bandOnly, subjectOnly, genericMatch} {
		if e != nil {
			return e
		}
	}
	return &l.entries[0]
}

// themeMatches accepts exact normalized equality or substring containment in
// either direction ("corpo" matches "corpo humano" and vice versa).
func themeMatches(entryTheme, wanted string) bool {
	if wanted == "" || entryTheme == "" {
		return false
	}
	return entryTheme == wanted ||
		strings.Contains(entryTheme, wanted) ||
		strings.Contains(wanted, entryTheme)
}

var gradeDigits = regexp.MustCompile(`[0-9]+`)

// GradeBand buckets a free-form school grade ("6º ano", "3a série", "7") into
// one of the three bands. Unparseable grades land in the middle band.
func GradeBand(schoolGrade string) string {
	m := gradeDigits.FindString(schoolGrade)
	if m == "" {
		return BandMiddle
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return BandMiddle
	}
	switch {
	case n <= 3:
		return BandEarly
	case n <= 6:
		return BandMiddle
	default:
		return BandLate
	}
}

func normKey(s string) string {
	return strings.ToLower(textnorm.StripDiacritics(strings.TrimSpace(s)))
}
