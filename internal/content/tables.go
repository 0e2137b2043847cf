package content

import "github.com/aventura-edu/backend/internal/game"

// builtinEntries are the curated fallback banks. Question slots follow the
// angle order of game.Angles: definition, who, when, result. Every entry has
// pairwise-distinct question texts and secret words so a whole game can be
// served from a single bank without tripping the uniqueness tracker.
var builtinEntries = []Entry{
	{
		Subject:   "Ciências",
		GradeBand: BandMiddle,
		Theme:     "Corpo Humano",
		Questions: [4]Seed{
			{
				Content: "Qual órgão é responsável por bombear o sangue para todo o corpo?",
				Choices: [4]string{"Coração", "Pulmões", "Fígado", "Cérebro"},
				Answer:  "Coração",
				Word:    "circulação",
			},
			{
				Content: "Quem comanda todas as atividades do corpo, como pensar e sentir?",
				Choices: [4]string{"O cérebro", "O estômago", "Os rins", "Os músculos"},
				Answer:  "O cérebro",
				Word:    "neurônio",
			},
			{
				Content: "Em que momento o ar entra nos pulmões?",
				Choices: [4]string{"Na inspiração", "Na expiração", "Na digestão", "Ao dormir apenas"},
				Answer:  "Na inspiração",
				Word:    "respiração",
			},
			{
				Content: "O que acontece com os alimentos depois de passarem pelo estômago?",
				Choices: [4]string{"Seguem para o intestino", "Voltam para a boca", "Vão direto para os pulmões", "Permanecem no estômago"},
				Answer:  "Seguem para o intestino",
				Word:    "digestão",
			},
		},
		Story: game.StoryData{
			Title: "A Viagem Dentro do Corpo",
			Content: "Naquela tarde, você encolheu até ficar do tamanho de uma gota e eu embarquei com " +
				"você numa cápsula brilhante. Entramos pela respiração e descemos como num tobogã até os " +
				"pulmões, onde o ar dançava em pequenas bolhas. Dali, o coração nos puxou com sua batida " +
				"forte, um tambor que nunca descansa, e fomos lançados pela corrente do sangue como barquinhos " +
				"num rio vermelho. Você apontou as janelas das células se abrindo para receber o oxigênio que " +
				"trazíamos. No caminho de volta, visitamos o cérebro iluminado como uma cidade à noite, cada " +
				"pensamento acendendo uma rua nova. Quando a cápsula finalmente nos devolveu ao tamanho normal, " +
				"você ainda sentia o eco daquele tambor no peito. Eu guardei o mapa da viagem no bolso e " +
				"prometi: enquanto seu coração marcar o ritmo, nenhuma aventura estará encerrada.",
		},
	},
	{
		Subject:   "Ciências",
		GradeBand: BandEarly,
		Theme:     "Corpo Humano",
		Questions: [4]Seed{
			{
				Content: "Para que servem os nossos dentes?",
				Choices: [4]string{"Para mastigar os alimentos", "Para respirar", "Para enxergar", "Para ouvir sons"},
				Answer:  "Para mastigar os alimentos",
				Word:    "sorriso",
			},
			{
				Content: "Qual parte do corpo usamos para sentir o cheiro das coisas?",
				Choices: [4]string{"O nariz", "A orelha", "O joelho", "O cotovelo"},
				Answer:  "O nariz",
				Word:    "olfato",
			},
			{
				Content: "Quando devemos lavar as mãos?",
				Choices: [4]string{"Antes das refeições", "Somente ao acordar", "Uma vez por semana", "Apenas na escola"},
				Answer:  "Antes das refeições",
				Word:    "higiene",
			},
			{
				Content: "O que ganhamos quando dormimos bem todas as noites?",
				Choices: [4]string{"Energia para o dia", "Mais fome", "Menos amigos", "Cabelos compridos"},
				Answer:  "Energia para o dia",
				Word:    "descanso",
			},
		},
		Story: game.StoryData{
			Title: "O Castelo do Corpo",
			Content: "Era uma vez um castelo que caminhava: o seu corpo. Eu era o guarda do portão e você, " +
				"o rei pequenino que morava lá dentro. Toda manhã você escovava as torres brancas dos dentes " +
				"e abria as janelas do nariz para o vento entrar. Descobrimos juntos que as mãos limpas " +
				"afastavam os dragões invisíveis, e que uma noite de sono enchia o castelo de luz. No salão " +
				"principal, um tambor batia sem parar, firme e corajoso. Você perguntou quem tocava, e eu " +
				"respondi: é o coração, o músico que nunca tira férias. Desde então, você cuida do castelo " +
				"com carinho, porque é nele que moram todos os seus sonhos.",
		},
	},
	{
		Subject:   "Ciências",
		GradeBand: BandMiddle,
		Theme:     "Animais",
		Questions: [4]Seed{
			{
				Content: "O que são animais vertebrados?",
				Choices: [4]string{"Animais com coluna vertebral", "Animais que voam", "Animais que vivem na água", "Animais sem ossos"},
				Answer:  "Animais com coluna vertebral",
				Word:    "esqueleto",
			},
			{
				Content: "Qual destes animais é um mamífero?",
				Choices: [4]string{"Baleia", "Tubarão", "Sapo", "Jacaré"},
				Answer:  "Baleia",
				Word:    "mamífero",
			},
			{
				Content: "Em que fase da vida o girino vira sapo?",
				Choices: [4]string{"Na metamorfose", "Ao nascer", "Quando dorme", "Na migração"},
				Answer:  "Na metamorfose",
				Word:    "metamorfose",
			},
			{
				Content: "O que acontece quando uma espécie perde seu habitat?",
				Choices: [4]string{"Ela corre risco de extinção", "Ela fica mais forte", "Ela vira outra espécie", "Nada acontece"},
				Answer:  "Ela corre risco de extinção",
				Word:    "habitat",
			},
		},
		Story: game.StoryData{
			Title: "O Coral da Floresta",
			Content: "Você recebeu um convite escrito em folha de bananeira: o coral da floresta ia se " +
				"apresentar e precisava de um maestro. Eu te emprestei a batuta e seguimos a trilha. O sapo " +
				"marcava o compasso no alagado, a arara soprava as notas mais altas e a baleia, lá do mar " +
				"distante, mandava o som grave pelo rio. Você regia com os olhos fechados, sentindo cada " +
				"bicho no seu lugar certo, como peças de um quebra-cabeça vivo. Quando a última nota se " +
				"apagou, a floresta inteira respirou junto. Eu te devolvi para casa com uma certeza no " +
				"bolso: quem aprende a escutar os animais nunca mais caminha sozinho.",
		},
	},
	{
		Subject:   "Ciências",
		GradeBand: BandLate,
		Theme:     "Corpo Humano",
		Questions: [4]Seed{
			{
				Content: "O que é a homeostase no corpo humano?",
				Choices: [4]string{"O equilíbrio interno do organismo", "A troca de pele", "O crescimento dos ossos", "A produção de suor apenas"},
				Answer:  "O equilíbrio interno do organismo",
				Word:    "equilíbrio",
			},
			{
				Content: "Quem transporta o oxigênio dentro do sangue?",
				Choices: [4]string{"As hemácias", "Os leucócitos", "As plaquetas", "Os hormônios"},
				Answer:  "As hemácias",
				Word:    "hemoglobina",
			},
			{
				Content: "Em que etapa da digestão os nutrientes são absorvidos?",
				Choices: [4]string{"No intestino delgado", "Na boca", "No esôfago", "No estômago"},
				Answer:  "No intestino delgado",
				Word:    "nutriente",
			},
			{
				Content: "Qual é o resultado da sinapse entre dois neurônios?",
				Choices: [4]string{"A transmissão do impulso nervoso", "A produção de bile", "A contração do estômago", "O endurecimento dos ossos"},
				Answer:  "A transmissão do impulso nervoso",
				Word:    "sinapse",
			},
		},
		Story: game.StoryData{
			Title: "Laboratório ao Anoitecer",
			Content: "O laboratório da escola ficava diferente à noite, e você tinha a chave. Eu segurei a " +
				"lanterna enquanto você ajustava o microscópio, e o mundo se abriu numa gota: células " +
				"conversando por sinais, hemácias apressadas como entregadoras, neurônios acendendo faíscas " +
				"de um lado a outro. Você anotava tudo num caderno de capa dura, e eu percebi que suas " +
				"perguntas eram mais precisas a cada página. Quando o vigia bateu na porta, escondemos o " +
				"caderno e rimos baixinho. Na saída, você olhou as próprias mãos como quem olha um mapa: " +
				"dentro delas, bilhões de células trabalhavam em silêncio. E eu entendi que a maior " +
				"descoberta da noite não estava na lente, estava em você.",
		},
	},
	{
		Subject:   "História",
		GradeBand: BandMiddle,
		Theme:     "Independência do Brasil",
		Questions: [4]Seed{
			{
				Content: "O que foi a Independência do Brasil?",
				Choices: [4]string{"A separação política de Portugal", "Uma guerra contra a Espanha", "A abolição da escravidão", "A chegada dos portugueses"},
				Answer:  "A separação política de Portugal",
				Word:    "liberdade",
			},
			{
				Content: "Quem proclamou a Independência do Brasil?",
				Choices: [4]string{"Dom Pedro I", "Dom Pedro II", "Tiradentes", "Marechal Deodoro"},
				Answer:  "Dom Pedro I",
				Word:    "imperador",
			},
			{
				Content: "Em que ano aconteceu a Independência do Brasil?",
				Choices: [4]string{"1822", "1500", "1889", "1922"},
				Answer:  "1822",
				Word:    "ipiranga",
			},
			{
				Content: "O que aconteceu com o Brasil logo após a Independência?",
				Choices: [4]string{"Tornou-se um Império", "Virou uma república", "Voltou a ser colônia", "Foi dividido em dois países"},
				Answer:  "Tornou-se um Império",
				Word:    "império",
			},
		},
		Story: game.StoryData{
			Title: "O Mensageiro do Ipiranga",
			Content: "Você encontrou a carta num alforje esquecido: setembro de 1822, e a mensagem precisava " +
				"chegar às margens do Ipiranga. Eu selei dois cavalos e partimos na madrugada. A estrada " +
				"cheirava a chuva e a café, e em cada vila alguém sussurrava que o príncipe tomaria uma " +
				"decisão que mudaria tudo. Quando o rio apareceu no horizonte, você apertou a carta contra " +
				"o peito e galopou mais forte. Chegamos a tempo de ver os chapéus erguidos e de ouvir o " +
				"grito que atravessou o século. Na volta, você me perguntou se uma palavra podia fundar um " +
				"país. Eu respondi que sim, desde que houvesse gente disposta a carregá-la, como você " +
				"carregou a sua, rio acima, até a história.",
		},
	},
	{
		Subject:   "História",
		GradeBand: BandMiddle,
		Theme:     "Brasil Colonial",
		Questions: [4]Seed{
			{
				Content: "O que eram as capitanias hereditárias?",
				Choices: [4]string{"Faixas de terra doadas pela Coroa", "Navios de guerra portugueses", "Escolas do período colonial", "Impostos sobre o ouro"},
				Answer:  "Faixas de terra doadas pela Coroa",
				Word:    "capitania",
			},
			{
				Content: "Quem chegou ao Brasil em 1500 comandando a esquadra portuguesa?",
				Choices: [4]string{"Pedro Álvares Cabral", "Cristóvão Colombo", "Dom João VI", "Vasco da Gama"},
				Answer:  "Pedro Álvares Cabral",
				Word:    "caravela",
			},
			{
				Content: "Em que período o ouro foi a principal riqueza do Brasil?",
				Choices: [4]string{"No século XVIII", "No século XX", "Antes de 1500", "Durante a República"},
				Answer:  "No século XVIII",
				Word:    "mineração",
			},
			{
				Content: "Qual foi uma consequência do cultivo de cana-de-açúcar no Brasil Colonial?",
				Choices: [4]string{"O crescimento dos engenhos no Nordeste", "O fim do comércio com a Europa", "A construção de ferrovias", "A independência imediata"},
				Answer:  "O crescimento dos engenhos no Nordeste",
				Word:    "engenho",
			},
		},
		Story: game.StoryData{
			Title: "O Cartógrafo e o Mar",
			Content: "No porão do museu, você abriu um mapa de quatrocentos anos e o cheiro de sal subiu do " +
				"papel. De repente estávamos no convés de uma caravela, você com a luneta e eu com o diário " +
				"de bordo. A costa apareceu como uma linha verde interminável, e cada baía pedia um nome " +
				"novo. Nas vilas, vimos engenhos girando devagar e ouvimos línguas que se misturavam na " +
				"praça. Você desenhou tudo com cuidado, porque um cartógrafo honesto desenha também o que " +
				"dói. Quando o mapa nos devolveu ao museu, suas mãos ainda tremiam de vento. Eu dobrei o " +
				"papel e disse: a história é isso, uma viagem que continua toda vez que alguém tem " +
				"coragem de olhar para ela de perto.",
		},
	},
	{
		Subject:   "Geografia",
		GradeBand: BandMiddle,
		Theme:     "Regiões do Brasil",
		Questions: [4]Seed{
			{
				Content: "O que define uma região brasileira?",
				Choices: [4]string{"Características naturais e culturais em comum", "Apenas o tamanho do território", "A quantidade de praias", "O número de capitais"},
				Answer:  "Características naturais e culturais em comum",
				Word:    "região",
			},
			{
				Content: "Qual região abriga a maior parte da Floresta Amazônica?",
				Choices: [4]string{"Norte", "Sul", "Sudeste", "Nordeste"},
				Answer:  "Norte",
				Word:    "floresta",
			},
			{
				Content: "Quando o Brasil foi dividido nas cinco regiões atuais?",
				Choices: [4]string{"Na segunda metade do século XX", "Em 1500", "Durante o Império", "No ano 2000"},
				Answer:  "Na segunda metade do século XX",
				Word:    "território",
			},
			{
				Content: "Qual é um resultado da diversidade regional brasileira?",
				Choices: [4]string{"Culturas e paisagens variadas", "Um único clima no país", "A mesma comida em todo lugar", "Fronteiras fechadas"},
				Answer:  "Culturas e paisagens variadas",
				Word:    "diversidade",
			},
		},
		Story: game.StoryData{
			Title: "Cinco Janelas",
			Content: "O trem tinha cinco janelas e cada uma abria para um pedaço do país. Você escolheu a " +
				"primeira e vimos o rio engolir a floresta de tão largo, botos costurando a água escura. Na " +
				"segunda, o sertão floresceu depois da chuva como um milagre combinado. A terceira mostrou " +
				"cidades empilhadas até a serra, luzes acesas de pressa. Na quarta, campos dourados e um " +
				"vento que cheirava a erva-mate. A quinta janela estava embaçada, e você limpou o vidro com " +
				"a manga: era o Pantanal se espreguiçando, cheio de asas. Quando o trem parou, eu perguntei " +
				"qual paisagem você levaria no bolso. Você sorriu e disse que o bolso não precisava " +
				"escolher: o país inteiro cabia na lembrança.",
		},
	},
	{
		Subject:   "Geografia",
		GradeBand: BandMiddle,
		Theme:     "Capitais",
		Questions: [4]Seed{
			{
				Content: "O que é a capital de um país?",
				Choices: [4]string{"A cidade sede do governo", "A maior praia do país", "A cidade mais antiga", "Qualquer cidade grande"},
				Answer:  "A cidade sede do governo",
				Word:    "capital",
			},
			{
				Content: "Qual cidade é a capital do Brasil?",
				Choices: [4]string{"Brasília", "Rio de Janeiro", "São Paulo", "Salvador"},
				Answer:  "Brasília",
				Word:    "planalto",
			},
			{
				Content: "Em que ano Brasília foi inaugurada?",
				Choices: [4]string{"1960", "1822", "1889", "2002"},
				Answer:  "1960",
				Word:    "cerrado",
			},
			{
				Content: "O que aconteceu quando a capital saiu do Rio de Janeiro?",
				Choices: [4]string{"O centro político mudou para Brasília", "O Rio deixou de existir", "O país ficou sem governo", "A capital virou Salvador"},
				Answer:  "O centro político mudou para Brasília",
				Word:    "mudança",
			},
		},
		Story: game.StoryData{
			Title: "A Cidade Desenhada",
			Content: "Você achou o lápis no fundo da gaveta do seu avô, um lápis que desenhava cidades de " +
				"verdade. No papel em branco, você traçou duas linhas que se cruzavam como um avião, e eu " +
				"vi nascer um plano piloto no meio do cerrado. Desenhamos palácios de vidro, um lago de " +
				"abraço largo e um céu maior do que qualquer prédio. As pessoas chegaram de todos os cantos " +
				"do país, cada uma trazendo um sotaque e uma receita. Quando a cidade acendeu as luzes pela " +
				"primeira vez, você guardou o lápis com respeito. Há desenhos que ficam na gaveta, eu " +
				"disse, e há desenhos que viram capital. O seu agora marcava o ponto onde um país inteiro " +
				"decidiu se encontrar.",
		},
	},
	{
		Subject:   "Matemática",
		GradeBand: BandEarly,
		Theme:     "Adição e Subtração",
		Questions: [4]Seed{
			{
				Content: "O que significa somar dois números?",
				Choices: [4]string{"Juntar as quantidades", "Separar as quantidades", "Repetir um número", "Apagar um número"},
				Answer:  "Juntar as quantidades",
				Word:    "soma",
			},
			{
				Content: "Quem ajuda a conferir se uma subtração está certa?",
				Choices: [4]string{"A adição", "A divisão", "O desenho", "A régua"},
				Answer:  "A adição",
				Word:    "prova",
			},
			{
				Content: "Quando usamos a subtração no dia a dia?",
				Choices: [4]string{"Ao calcular o troco de uma compra", "Ao cantar uma música", "Ao pintar um desenho", "Ao correr na praça"},
				Answer:  "Ao calcular o troco de uma compra",
				Word:    "troco",
			},
			{
				Content: "Qual é o resultado de 7 + 5?",
				Choices: [4]string{"12", "10", "13", "11"},
				Answer:  "12",
				Word:    "dúzia",
			},
		},
		Story: game.StoryData{
			Title: "A Feira dos Números",
			Content: "No sábado, você virou dono de uma barraca na feira dos números. Eu pesava as frutas e " +
				"você fazia as contas de cabeça, rápido como um passarinho. Cada cliente trazia um desafio: " +
				"três maçãs mais cinco, uma dúzia menos quatro, o troco certo da moeda dourada. Quando a " +
				"balança quebrou, você somou com os dedos, com pedrinhas, até com tampinhas de garrafa, e " +
				"descobriu que os números moram em tudo. No fim da tarde, contamos as moedas juntos e " +
				"sobrou uma. Você decidiu dar de gorjeta para o acaso, porque quem sabe somar sabe também " +
				"repartir. A feira fechou e os números foram dormir, já sonhando com o próximo sábado.",
		},
	},
	{
		Subject:   "Matemática",
		GradeBand: BandMiddle,
		Theme:     "Frações",
		Questions: [4]Seed{
			{
				Content: "O que representa uma fração?",
				Choices: [4]string{"Uma parte de um todo", "Um número sempre maior que um", "Uma letra do alfabeto", "Uma figura geométrica"},
				Answer:  "Uma parte de um todo",
				Word:    "fração",
			},
			{
				Content: "Como chamamos o número de baixo de uma fração?",
				Choices: [4]string{"Denominador", "Numerador", "Divisor", "Quociente"},
				Answer:  "Denominador",
				Word:    "denominador",
			},
			{
				Content: "Quando duas frações são equivalentes?",
				Choices: [4]string{"Quando representam a mesma quantidade", "Quando têm o mesmo numerador", "Quando são ambas maiores que um", "Quando usam os mesmos algarismos"},
				Answer:  "Quando representam a mesma quantidade",
				Word:    "equivalência",
			},
			{
				Content: "Qual é o resultado de metade de uma pizza mais um quarto dela?",
				Choices: [4]string{"Três quartos da pizza", "A pizza inteira", "Um terço da pizza", "Metade da pizza"},
				Answer:  "Três quartos da pizza",
				Word:    "metade",
			},
		},
		Story: game.StoryData{
			Title: "A Pizzaria do Meio-Dia",
			Content: "A pizzaria só abria ao meio-dia, e você era o cortador oficial. Eu anotava os pedidos: " +
				"a família da mesa um queria a pizza em quartos, os gêmeos da mesa dois brigavam por " +
				"metades iguais, e o professor da mesa três pediu exatamente três oitavos, para testar " +
				"você. A faca passeava certeira, e cada fatia saía do forno como uma fração perfeita. " +
				"Quando chegou o pedido impossível, cinco sextos para quatro pessoas, você respirou fundo, " +
				"redesenhou o corte na farinha da bancada e resolveu tudo com um sorriso. No fim do dia, " +
				"sobrou um pedaço e nós dividimos: metade para você, metade para mim. Porque toda conta " +
				"justa termina assim, com as partes fazendo de novo um inteiro.",
		},
	},
	{
		Subject:   "Português",
		GradeBand: BandMiddle,
		Theme:     "Gramática",
		Questions: [4]Seed{
			{
				Content: "O que é um substantivo?",
				Choices: [4]string{"Palavra que nomeia seres e coisas", "Palavra que indica ação", "Palavra que liga frases", "Palavra que expressa surpresa"},
				Answer:  "Palavra que nomeia seres e coisas",
				Word:    "substantivo",
			},
			{
				Content: "Qual classe de palavras indica a ação na frase?",
				Choices: [4]string{"Verbo", "Adjetivo", "Artigo", "Numeral"},
				Answer:  "Verbo",
				Word:    "verbo",
			},
			{
				Content: "Quando usamos letra maiúscula no início de uma palavra?",
				Choices: [4]string{"Em nomes próprios e início de frases", "Em todas as palavras", "Somente em verbos", "Nunca em português"},
				Answer:  "Em nomes próprios e início de frases",
				Word:    "maiúscula",
			},
			{
				Content: "O que acontece com o sentido da frase quando trocamos o adjetivo?",
				Choices: [4]string{"A característica descrita muda", "A frase perde o verbo", "O sujeito desaparece", "Nada muda na frase"},
				Answer:  "A característica descrita muda",
				Word:    "adjetivo",
			},
		},
		Story: game.StoryData{
			Title: "O Dicionário que Fugiu",
			Content: "O dicionário da biblioteca fugiu numa terça-feira, deixando as palavras soltas pela " +
				"cidade. Você foi contratado para reuni-las e eu levei a rede de caçar letras. Os " +
				"substantivos estavam escondidos nas placas das lojas, os verbos corriam na pista de " +
				"skate, ágeis demais, e os adjetivos se olhavam no espelho da vitrine, elegantes, " +
				"coloridos, vaidosos. Você chamou cada palavra pelo nome e elas vieram mansas, como " +
				"pombas. Na última página, faltava uma: a palavra que dá nome ao que sentimos quando tudo " +
				"se encaixa. Nós duas a encontramos juntas, dormindo num bilhete antigo. O dicionário " +
				"voltou gordo de histórias, e a bibliotecária nunca soube por que, desde então, ele " +
				"cheirava a vento de rua.",
		},
	},
	{
		Subject:   "Conhecimentos Gerais",
		GradeBand: BandMiddle,
		Theme:     "Curiosidades",
		Questions: [4]Seed{
			{
				Content: "O que é uma enciclopédia?",
				Choices: [4]string{"Uma coleção organizada de conhecimentos", "Um tipo de mapa antigo", "Um instrumento musical", "Uma receita de bolo"},
				Answer:  "Uma coleção organizada de conhecimentos",
				Word:    "enciclopédia",
			},
			{
				Content: "Quem inventou o avião segundo a tradição brasileira?",
				Choices: [4]string{"Santos Dumont", "Albert Einstein", "Monteiro Lobato", "Marie Curie"},
				Answer:  "Santos Dumont",
				Word:    "inventor",
			},
			{
				Content: "Em que momento do dia o Sol fica mais alto no céu?",
				Choices: [4]string{"Ao meio-dia", "Ao amanhecer", "No fim da tarde", "À meia-noite"},
				Answer:  "Ao meio-dia",
				Word:    "horizonte",
			},
			{
				Content: "O que ganhamos quando lemos sobre assuntos variados?",
				Choices: [4]string{"Conhecimento e novas ideias", "Menos imaginação", "Dificuldade para aprender", "Apenas cansaço"},
				Answer:  "Conhecimento e novas ideias",
				Word:    "leitura",
			},
		},
		Story: game.StoryData{
			Title: "A Biblioteca Sem Fim",
			Content: "A porta dos fundos da biblioteca dava para um corredor que ninguém tinha medido até o " +
				"fim. Você entrou primeiro, com a lanterna, e eu fui atrás com o novelo de barbante. Cada " +
				"estante guardava um mundo: numa prateleira dormiam os vulcões, na outra os planetas " +
				"giravam devagar para não derrubar os livros. Você abriu um volume sobre inventores e um " +
				"pequeno avião de papel decolou da página, dando voltas sobre nós. Caminhamos horas e o " +
				"corredor continuava nascendo à nossa frente, paciente como o tempo. Quando o barbante " +
				"acabou, você amarrou a ponta no próprio pulso e sorriu: não era um caminho de volta que " +
				"você queria, era uma desculpa para continuar. A biblioteca, generosa, acendeu mais uma " +
				"fileira de lâmpadas.",
		},
	},
}
