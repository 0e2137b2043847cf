package gemini

import (
	"fmt"
	"strings"

	"github.com/aventura-edu/backend/internal/game"
)

// Angle instructions, indexed like game.Angles. Each game slot asks the model
// for a different take on the theme so the four questions cannot collapse
// into rephrasings of each other.
var angleInstructions = [4]string{
	"uma pergunta de DEFINIÇÃO: o que é, ou o que caracteriza, um elemento central do tema",
	"uma pergunta de PERSONAGEM: quem (pessoa, órgão, ser ou elemento) é responsável por algo no tema",
	"uma pergunta de TEMPO: quando, ou em que etapa/momento, algo do tema acontece",
	"uma pergunta de CONSEQUÊNCIA: qual é o resultado ou efeito de algo do tema",
}

const questionSystem = `Você cria perguntas de múltipla escolha para um jogo educativo infantil brasileiro.
Responda SOMENTE com um objeto JSON, sem comentários e sem texto fora do JSON, no formato:
{"content": "pergunta", "choices": ["a", "b", "c", "d"], "answer": "alternativa correta", "word": "palavrasecreta"}
Regras:
- exatamente 4 alternativas, todas distintas, e "answer" deve ser idêntica a uma delas;
- "word" é uma única palavra em português, apenas letras, ligada ao tema da pergunta;
- linguagem adequada para a idade, nada de violência ou temas adultos;
- nunca escreva frases como "insira a pergunta aqui" ou explicações sobre você mesmo.`

const batchSystem = `Você cria o conteúdo completo de uma partida de um jogo educativo infantil brasileiro.
Responda SOMENTE com um objeto JSON, sem texto fora do JSON, no formato:
{"questions": [{"content": "...", "choices": ["a","b","c","d"], "answer": "...", "word": "..."}, ...],
 "story": {"title": "...", "content": "..."}}
Regras:
- exatamente 4 perguntas, cada uma com 4 alternativas distintas e "answer" presente entre elas;
- as 4 perguntas devem abordar aspectos diferentes do tema (definição, personagem, tempo, consequência);
- as 4 palavras secretas ("word") devem ser palavras diferentes, apenas letras;
- "story" é uma história narrativa em primeira ou segunda pessoa com 150 a 300 palavras,
  que usa o tema como cenário de aventura; nunca uma mensagem de instruções ao jogador.`

const storySystem = `Você escreve a história de recompensa de um jogo educativo infantil brasileiro.
Responda SOMENTE com um objeto JSON: {"title": "...", "content": "..."}.
A história deve ser narrativa, em primeira ou segunda pessoa, com 150 a 300 palavras,
ambientada no tema indicado. Não escreva instruções, boas-vindas nem mensagens de "prepare-se".`

func describeParams(params game.GameParameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Disciplina: %s\nTema: %s\nAno escolar: %s\n", params.Subject, params.Theme, params.SchoolGrade)
	if strings.TrimSpace(params.ThemeDetails) != "" {
		fmt.Fprintf(&b, "Detalhes escolhidos pelo jogador: %s\n", params.ThemeDetails)
	}
	return b.String()
}

func questionPrompt(params game.GameParameters, index int) string {
	if index < 0 || index >= len(angleInstructions) {
		index = 0
	}
	return fmt.Sprintf("%s\nCrie %s.\nResponda com o JSON pedido.",
		describeParams(params), angleInstructions[index])
}

func batchPrompt(params game.GameParameters) string {
	return describeParams(params) +
		"Crie as 4 perguntas da partida e a história de recompensa.\nResponda com o JSON pedido."
}

func storyPrompt(params game.GameParameters) string {
	return describeParams(params) + "Escreva a história de recompensa.\nResponda com o JSON pedido."
}
