package distractor

// Rosters are keyed by the normalized subject name ("ciencias", "historia",
// ...). Unknown subjects fall back to the generic bucket.

var peopleBySubject = map[string][]string{
	"historia": {
		"Dom Pedro I", "Dom Pedro II", "Princesa Isabel", "Tiradentes",
		"Marechal Deodoro", "Getúlio Vargas", "Dom João VI", "Zumbi dos Palmares",
		"Pedro Álvares Cabral", "Duque de Caxias",
	},
	"ciencias": {
		"Albert Einstein", "Isaac Newton", "Marie Curie", "Charles Darwin",
		"Santos Dumont", "Carlos Chagas", "Oswaldo Cruz", "Galileu Galilei",
	},
	"portugues": {
		"Machado de Assis", "Monteiro Lobato", "Cecília Meireles",
		"Carlos Drummond", "Clarice Lispector", "Vinicius de Moraes",
	},
}

var genericPeople = []string{
	"Dom Pedro II", "Santos Dumont", "Princesa Isabel", "Machado de Assis",
	"Marie Curie", "Tiradentes",
}

var placesBySubject = map[string][]string{
	"geografia": {
		"Brasília", "São Paulo", "Rio de Janeiro", "Salvador", "Manaus",
		"Recife", "Porto Alegre", "Belo Horizonte", "Fortaleza", "Curitiba",
	},
	"historia": {
		"Ouro Preto", "Salvador", "Rio de Janeiro", "São Vicente",
		"Porto Seguro", "Petrópolis", "Paraty",
	},
}

var genericPlaces = []string{
	"Brasília", "Salvador", "Rio de Janeiro", "São Paulo", "Recife", "Manaus",
}

// placeMarkers flag answers that name a place even when the place is not in
// any roster ("São Luís", "Rio Grande").
var placeMarkers = []string{"sao ", "rio ", "porto ", "belo ", "nova ", "santa "}

var organs = []string{
	"Coração", "Pulmões", "Fígado", "Rins", "Estômago", "Cérebro",
	"Intestino", "Pâncreas", "Baço",
}

// organNouns drive singular/plural and gender agreement for quantity phrases
// ("dois pulmões", "um coração").
type organNoun struct {
	singular string
	plural   string
	feminine bool
}

var organNouns = map[string]organNoun{
	"coracao":    {"coração", "corações", false},
	"coracoes":   {"coração", "corações", false},
	"pulmao":     {"pulmão", "pulmões", false},
	"pulmoes":    {"pulmão", "pulmões", false},
	"rim":        {"rim", "rins", false},
	"rins":       {"rim", "rins", false},
	"ventriculo": {"ventrículo", "ventrículos", false},
	"ventriculos": {"ventrículo", "ventrículos", false},
	"atrio":      {"átrio", "átrios", false},
	"atrios":     {"átrio", "átrios", false},
	"camara":     {"câmara", "câmaras", true},
	"camaras":    {"câmara", "câmaras", true},
	"osso":       {"osso", "ossos", false},
	"ossos":      {"osso", "ossos", false},
	"dente":      {"dente", "dentes", false},
	"dentes":     {"dente", "dentes", false},
	"olho":       {"olho", "olhos", false},
	"olhos":      {"olho", "olhos", false},
	"braco":      {"braço", "braços", false},
	"bracos":     {"braço", "braços", false},
}

var conceptsBySubject = map[string][]string{
	"ciencias": {
		"Fotossíntese", "Respiração", "Digestão", "Circulação", "Evaporação",
		"Gravidade", "Energia", "Célula", "Ecossistema",
	},
	"historia": {
		"Independência", "Colonização", "República", "Império", "Abolição",
		"Revolução", "Monarquia", "Escravidão",
	},
	"geografia": {
		"Planalto", "Planície", "Clima", "Relevo", "Vegetação", "Hidrografia",
		"Latitude", "Território",
	},
	"matematica": {
		"Fração", "Multiplicação", "Divisão", "Geometria", "Porcentagem",
		"Equação", "Perímetro", "Simetria",
	},
	"portugues": {
		"Substantivo", "Verbo", "Adjetivo", "Sujeito", "Predicado", "Sílaba",
		"Pronome", "Acentuação",
	},
}

// genericBucket pads any category that runs out of same-kind candidates.
var genericBucket = []string{
	"Natureza", "Cultura", "Ciência", "Arte", "Música", "Esporte",
	"Leitura", "Amizade", "Planeta", "Descoberta",
}
