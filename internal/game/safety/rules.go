// Package safety holds the data-driven content gates applied to generated
// text before it can enter the pipeline. The rules are plain pattern tables
// so they can be extended and tested without touching orchestration code.
package safety

import (
	"strings"

	"github.com/aventura-edu/backend/internal/textnorm"
)

// denylist marks content unsuitable for an educational app aimed at children.
// Matching is diacritic- and case-insensitive substring matching.
var denylist = []string{
	"violencia", "matar", "assassin", "arma de fogo",
	"suicidio", "droga", "estupro", "tortura", "terroris",
	"pornografia", "aposta", "cassino",
}

// lowQualityTemplates are boilerplate fragments that models emit instead of
// actual content. Any match rejects the response outright.
var lowQualityTemplates = []string{
	"como um modelo de linguagem",
	"como uma ia",
	"nao posso ajudar",
	"aqui esta o json",
	"insira a pergunta aqui",
	"pergunta de exemplo",
	"lorem ipsum",
	"sua pergunta sobre",
	"[tema]",
	"[assunto]",
}

// onboardingPhrases detect "get ready" style messages that models sometimes
// return in place of a narrative story.
var onboardingPhrases = []string{
	"prepare-se para",
	"prepare se para",
	"voce esta pronto",
	"vamos comecar",
	"clique em",
	"responda as perguntas",
	"responda às perguntas",
	"boa sorte",
	"bem-vindo ao jogo",
	"bem vindo ao jogo",
	"aperte o botao",
}

// narrativeMarkers are first/second-person fragments that a real story in
// this app always carries.
var narrativeMarkers = []string{
	"voce ", "eu ", "nos ", "minha ", "meu ", "sua jornada", "seu caminho",
}

func normalize(s string) string {
	return strings.ToLower(textnorm.StripDiacritics(s))
}

// Violation returns the matched denylisted or template pattern, if any.
func Violation(text string) (string, bool) {
	n := normalize(text)
	for _, term := range denylist {
		if strings.Contains(n, term) {
			return term, true
		}
	}
	for _, tpl := range lowQualityTemplates {
		if strings.Contains(n, normalize(tpl)) {
			return tpl, true
		}
	}
	return "", false
}

// Check is the error-style wrapper around Violation used at parse boundaries.
func Check(texts ...string) (string, bool) {
	for _, t := range texts {
		if term, bad := Violation(t); bad {
			return term, true
		}
	}
	return "", false
}

// LooksLikeOnboarding reports whether a story candidate reads as an
// instructional "get ready" message rather than narrative prose.
func LooksLikeOnboarding(text string) bool {
	n := normalize(text)
	for _, phrase := range onboardingPhrases {
		if strings.Contains(n, normalize(phrase)) {
			return true
		}
	}
	return false
}

// IsNarrative requires at least one first/second-person narrative marker.
func IsNarrative(text string) bool {
	n := " " + normalize(text)
	for _, marker := range narrativeMarkers {
		if strings.Contains(n, normalize(marker)) {
			return true
		}
	}
	return false
}
