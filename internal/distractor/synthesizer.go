package distractor

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aventura-edu/backend/internal/textnorm"
)

// Synthesizer builds plausible same-category wrong answers for a multiple
// choice question. Classification is a data-driven ordered rule table; the
// first matching rule wins. Output is random but always exactly three options,
// pairwise distinct and distinct from the correct answer.
type Synthesizer struct {
	rng   *rand.Rand
	rules []rule
}

type rule struct {
	category string
	matches  func(answer string) bool
	generate func(s *Synthesizer, answer, subject string) []string
}

var (
	yearPattern       = regexp.MustCompile(`^[0-9]{4}$`)
	quantityPattern   = regexp.MustCompile(`^(?i)(um|uma|dois|duas|três|tres|quatro|cinco)\s+(.+)$`)
	numberUnitPattern = regexp.MustCompile(`^([0-9]+)\s+(.+)$`)
	integerPattern    = regexp.MustCompile(`^[0-9]+$`)
	twoTokenName      = regexp.MustCompile(`^[A-ZÁÂÃÉÊÍÓÔÕÚÇ][^\s]*\s+[A-ZÁÂÃÉÊÍÓÔÕÚÇ][^\s]*$`)
)

var titleMarkers = []string{"Dom ", "Presidente ", "Princesa ", "Marechal ", "Duque "}

const (
	yearMin = 1400
	yearMax = 2100
)

func New() *Synthesizer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded pins the random source, used by tests.
func NewSeeded(seed int64) *Synthesizer {
	s := &Synthesizer{rng: rand.New(rand.NewSource(seed))}
	s.rules = []rule{
		{"year", matchYear, (*Synthesizer).yearDistractors},
		{"body-quantity", matchQuantity, (*Synthesizer).quantityDistractors},
		{"number-unit", matchNumberUnit, (*Synthesizer).numberUnitDistractors},
		{"number", matchInteger, (*Synthesizer).integerDistractors},
		{"person", matchPerson, (*Synthesizer).personDistractors},
		{"place", matchPlace, (*Synthesizer).placeDistractors},
		{"organ", matchOrgan, (*Synthesizer).organDistractors},
		{"concept", func(string) bool { return true }, (*Synthesizer).conceptDistractors},
	}
	return s
}

// Synthesize returns exactly 3 wrong options for the given correct answer.
func (s *Synthesizer) Synthesize(correct, subject string) []string {
	correct = strings.TrimSpace(correct)
	var raw []string
	for _, r := range s.rules {
		if r.matches(correct) {
			raw = r.generate(s, correct, subject)
			break
		}
	}
	return s.finalize(correct, subject, raw)
}

// Category reports which rule classifies the answer. Exposed for prompt
// construction and tests.
func (s *Synthesizer) Category(answer string) string {
	for _, r := range s.rules {
		if r.matches(strings.TrimSpace(answer)) {
			return r.category
		}
	}
	return "concept"
}

// finalize deduplicates, drops anything colliding with the correct answer and
// pads from the generic bucket so the contract of exactly 3 options holds.
func (s *Synthesizer) finalize(correct, subject string, raw []string) []string {
	out := make([]string, 0, 3)
	seen := map[string]bool{foldKey(correct): true}
	add := func(opt string) {
		opt = strings.TrimSpace(opt)
		if opt == "" || len(out) >= 3 {
			return
		}
		k := foldKey(opt)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, opt)
	}
	for _, opt := range raw {
		add(opt)
	}
	if len(out) < 3 {
		for _, opt := range s.shuffled(conceptRoster(subject)) {
			add(opt)
		}
	}
	if len(out) < 3 {
		for _, opt := range s.shuffled(genericBucket) {
			add(opt)
		}
	}
	// Last resort for pathological inputs that collide with every roster word.
	for i := 1; len(out) < 3; i++ {
		add(fmt.Sprintf("Alternativa %c", 'A'+i))
	}
	return out
}

func foldKey(s string) string {
	return strings.ToLower(textnorm.StripDiacritics(strings.TrimSpace(s)))
}

// ---- classification predicates ----

func matchYear(answer string) bool { return yearPattern.MatchString(answer) }

func matchQuantity(answer string) bool {
	m := quantityPattern.FindStringSubmatch(answer)
	if m == nil {
		return false
	}
	_, ok := organNouns[foldKeyCompact(m[2])]
	return ok
}

func matchNumberUnit(answer string) bool {
	m := numberUnitPattern.FindStringSubmatch(answer)
	return m != nil && !integerPattern.MatchString(answer)
}

func matchInteger(answer string) bool { return integerPattern.MatchString(answer) }

func matchPerson(answer string) bool {
	for _, marker := range titleMarkers {
		if strings.Contains(answer, marker) {
			return true
		}
	}
	return twoTokenName.MatchString(answer)
}

func matchPlace(answer string) bool {
	key := foldKey(answer)
	for _, list := range placesBySubject {
		for _, p := range list {
			if foldKey(p) == key {
				return true
			}
		}
	}
	for _, p := range genericPlaces {
		if foldKey(p) == key {
			return true
		}
	}
	for _, marker := range placeMarkers {
		if strings.HasPrefix(key, marker) {
			return true
		}
	}
	return false
}

func matchOrgan(answer string) bool {
	key := foldKey(answer)
	for _, o := range organs {
		if foldKey(o) == key {
			return true
		}
	}
	return false
}

func foldKeyCompact(s string) string {
	return strings.ReplaceAll(foldKey(s), " ", "")
}

// ---- generators ----

func (s *Synthesizer) yearDistractors(answer, _ string) []string {
	year, err := strconv.Atoi(answer)
	if err != nil {
		return nil
	}
	offsets := []int{-5, 5, -10, 10, -25, 25, -50, 50, 100}
	s.rng.Shuffle(len(offsets), func(i, j int) { offsets[i], offsets[j] = offsets[j], offsets[i] })
	var out []string
	for _, off := range offsets {
		candidate := year + off
		if candidate == year || candidate < yearMin || candidate > yearMax {
			continue
		}
		out = append(out, strconv.Itoa(candidate))
	}
	return out
}

func (s *Synthesizer) quantityDistractors(answer, _ string) []string {
	m := quantityPattern.FindStringSubmatch(answer)
	if m == nil {
		return nil
	}
	noun, ok := organNouns[foldKeyCompact(m[2])]
	if !ok {
		return nil
	}
	var out []string
	for n := 1; n <= 4; n++ {
		phrase := quantityPhrase(n, noun)
		if foldKey(phrase) == foldKey(answer) {
			continue
		}
		out = append(out, phrase)
	}
	return out
}

func quantityPhrase(n int, noun organNoun) string {
	masculine := []string{"", "Um", "Dois", "Três", "Quatro"}
	feminine := []string{"", "Uma", "Duas", "Três", "Quatro"}
	word := masculine[n]
	if noun.feminine {
		word = feminine[n]
	}
	if n == 1 {
		return word + " " + noun.singular
	}
	return word + " " + noun.plural
}

func (s *Synthesizer) numberUnitDistractors(answer, _ string) []string {
	m := numberUnitPattern.FindStringSubmatch(answer)
	if m == nil {
		return nil
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	unit := m[2]
	var out []string
	for _, candidate := range varyValue(value, []int{-50, -10, 10, 50}, true) {
		out = append(out, fmt.Sprintf("%d %s", candidate, unit))
	}
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *Synthesizer) integerDistractors(answer, _ string) []string {
	value, err := strconv.Atoi(answer)
	if err != nil {
		return nil
	}
	candidates := varyValue(value, []int{-2, -1, 1, 2}, true)
	var out []string
	for _, c := range candidates {
		out = append(out, strconv.Itoa(c))
	}
	// Small values exhaust the fixed deltas quickly, keep stepping up.
	for step := 3; len(out) < 3; step++ {
		out = append(out, strconv.Itoa(value+step))
	}
	return out
}

// varyValue applies additive deltas plus double/half, keeping positives only.
func varyValue(value int, deltas []int, includeScale bool) []int {
	seen := map[int]bool{value: true}
	var out []int
	push := func(c int) {
		if c <= 0 || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, d := range deltas {
		push(value + d)
	}
	if includeScale {
		push(value * 2)
		push(value / 2)
	}
	return out
}

func (s *Synthesizer) personDistractors(answer, subject string) []string {
	roster := peopleBySubject[subjectKey(subject)]
	if len(roster) == 0 {
		roster = genericPeople
	}
	return s.sample(roster, answer)
}

func (s *Synthesizer) placeDistractors(answer, subject string) []string {
	roster := placesBySubject[subjectKey(subject)]
	if len(roster) == 0 {
		roster = genericPlaces
	}
	return s.sample(roster, answer)
}

func (s *Synthesizer) organDistractors(answer, _ string) []string {
	return s.sample(organs, answer)
}

func (s *Synthesizer) conceptDistractors(answer, subject string) []string {
	return s.sample(conceptRoster(subject), answer)
}

func conceptRoster(subject string) []string {
	if roster, ok := conceptsBySubject[subjectKey(subject)]; ok {
		return roster
	}
	return genericBucket
}

func subjectKey(subject string) string {
	return foldKeyCompact(subject)
}

// sample draws without replacement, excluding the correct answer.
func (s *Synthesizer) sample(pool []string, exclude string) []string {
	var out []string
	for _, opt := range s.shuffled(pool) {
		if foldKey(opt) == foldKey(exclude) {
			continue
		}
		out = append(out, opt)
	}
	return out
}

func (s *Synthesizer) shuffled(pool []string) []string {
	out := make([]string, len(pool))
	copy(out, pool)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
