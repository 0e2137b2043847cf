package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/textnorm"
	"github.com/google/uuid"
)

// emergencyGenerator is the terminal tier. It never fails: content comes from
// a deterministic subject/grade template per question angle, the secret word
// from a bank of per-subject words skipping anything the session already used,
// and a fresh disambiguator is appended to the word only, never to the visible
// question content.
type emergencyGenerator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	synth *distractor.Synthesizer
}

func newEmergencyGenerator(synth *distractor.Synthesizer) *emergencyGenerator {
	return &emergencyGenerator{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		synth: synth,
	}
}

// One template per question angle so the four slots of a batch hash apart.
var emergencyTemplates = [4]string{
	"O que melhor descreve o tema %q na disciplina de %s?",
	"Quem ou o que está mais ligado ao tema %q em %s?",
	"Em qual momento o tema %q é estudado em %s?",
	"Qual é um resultado importante do estudo de %q em %s?",
}

type emergencyItem struct {
	answer string
	word   string
}

var emergencyBank = map[string][]emergencyItem{
	"ciencias": {
		{"Energia", "energia"},
		{"Célula", "celula"},
		{"Ecossistema", "natureza"},
		{"Fotossíntese", "clorofila"},
	},
	"historia": {
		{"Independência", "liberdade"},
		{"República", "cidadania"},
		{"Império", "coroa"},
		{"Abolição", "igualdade"},
	},
	"geografia": {
		{"Território", "paisagem"},
		{"Clima", "horizonte"},
		{"Relevo", "montanha"},
		{"Hidrografia", "nascente"},
	},
	"matematica": {
		{"Fração", "metade"},
		{"Geometria", "figura"},
		{"Simetria", "espelho"},
		{"Porcentagem", "inteiro"},
	},
	"portugues": {
		{"Substantivo", "palavra"},
		{"Verbo", "leitura"},
		{"Sílaba", "escrita"},
		{"Pronome", "idioma"},
	},
}

var emergencyGenericBank = []emergencyItem{
	{"Descoberta", "descoberta"},
	{"Conhecimento", "sabedoria"},
	{"Aprendizado", "estudo"},
	{"Curiosidade", "pergunta"},
}

// question builds a guaranteed-fresh candidate. used reports whether a
// (content hash, word hash) pair collides with the session; the generator
// walks its bank and, if every banked word is taken, synthesizes a brand-new
// word so termination is guaranteed.
func (g *emergencyGenerator) question(params GameParameters, index int, used func(contentHash, wordHash string) bool) Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(emergencyTemplates) {
		index = 0
	}
	content := fmt.Sprintf(emergencyTemplates[index], themeLabel(params), subjectLabel(params))

	items := append([]emergencyItem{}, emergencyBank[subjectBankKey(params.Subject)]...)
	items = append(items, emergencyGenericBank...)

	for attempt := 0; ; attempt++ {
		item := g.pickItem(items, attempt)
		// Disambiguator goes on the word only; it is stripped by
		// normalization so display stays clean.
		decorated := fmt.Sprintf("%s_t%d", item.word, g.rng.Intn(1000))

		candidateContent := content
		if attempt >= len(items) {
			// Same angle requested again within one session; a neutral
			// round marker keeps the hash fresh without changing meaning.
			candidateContent = fmt.Sprintf("%s (rodada %d)", content, attempt-len(items)+2)
		}
		if used != nil && used(textnorm.ContentHash(candidateContent), textnorm.NormalizeWord(decorated)) {
			continue
		}
		choices := append([]string{item.answer}, g.synth.Synthesize(item.answer, params.Subject)...)
		g.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
		return Question{
			ID:      uuid.NewString(),
			Content: candidateContent,
			Choices: choices,
			Answer:  item.answer,
			Word:    decorated,
			Source:  SourceEmergency,
		}
	}
}

// pickItem cycles the bank, then invents new words once it wraps around.
func (g *emergencyGenerator) pickItem(items []emergencyItem, attempt int) emergencyItem {
	if attempt < len(items) {
		return items[attempt]
	}
	suffix := make([]byte, 0, 4)
	for n := attempt; n >= 0; n = n/26 - 1 {
		suffix = append(suffix, byte('a'+n%26))
	}
	base := items[attempt%len(items)]
	return emergencyItem{answer: base.answer, word: base.word + string(suffix)}
}

func (g *emergencyGenerator) story(params GameParameters) StoryData {
	theme := themeLabel(params)
	return StoryData{
		Title: fmt.Sprintf("A Jornada de %s", theme),
		Content: fmt.Sprintf(
			"Naquela manhã, você acordou com uma carta misteriosa debaixo da porta. "+
				"Era um convite para explorar o mundo de %s, e eu fui escolhido para ser seu guia. "+
				"Juntos atravessamos trilhas cobertas de névoa, decifrando pistas que falavam sobre %s. "+
				"A cada palavra secreta que você recordava, uma ponte de luz aparecia sobre o rio, "+
				"e nós avançávamos um pouco mais. No fim da trilha havia uma árvore antiga, com um baú "+
				"entre as raízes. Dentro dele, um espelho: nele você viu tudo o que aprendeu sobre %s, "+
				"brilhando como estrelas pequenas. Eu guardei o mapa da nossa aventura, porque toda "+
				"jornada de descoberta merece ser lembrada. E quando você fechou o baú, o vento trouxe "+
				"um sussurro: o conhecimento que você carrega agora é a chave para a próxima aventura.",
			theme, strings.ToLower(subjectLabel(params)), theme),
	}
}

func themeLabel(params GameParameters) string {
	if strings.TrimSpace(params.Theme) != "" {
		return params.Theme
	}
	return subjectLabel(params)
}

func subjectLabel(params GameParameters) string {
	if strings.TrimSpace(params.Subject) != "" {
		return params.Subject
	}
	return "Conhecimentos Gerais"
}

func subjectBankKey(subject string) string {
	return strings.ReplaceAll(strings.ToLower(textnorm.StripDiacritics(subject)), " ", "")
}
