package feedback

// Dimension is a sub-score key emitted by the scorer.
type Dimension string

const (
	Skills     Dimension = "skills"
	Experience Dimension = "experience"
	DocQuality Dimension = "doc_quality"
	Contact    Dimension = "contact"
	Certs      Dimension = "certs"
	Projects   Dimension = "projects"
	Impact     Dimension = "impact"

	// Semantic and Context come from job matching and never count as weaknesses.
	Semantic Dimension = "semantic"
	Context  Dimension = "context"
)

// CoreDimensions lists the seven quality dimensions in the scorer's canonical order.
var CoreDimensions = []Dimension{Skills, Experience, DocQuality, Contact, Certs, Projects, Impact}

// Analyzed reports whether d takes part in weakness analysis.
func (d Dimension) Analyzed() bool {
	return d != Semantic && d != Context
}

// Name returns the display name, or the raw key for unknown dimensions.
func (d Dimension) Name() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return string(d)
}

// Tip returns the one-line improvement tip shown in the weaknesses section.
func (d Dimension) Tip() string {
	if tip, ok := improvementTips[d]; ok {
		return tip
	}
	return fallbackTip
}

// DetailedTip describes a weak dimension in the revision track.
type DetailedTip struct {
	Title  string
	Impact string
	Action string
}

// Detail returns the detailed revision tip for d.
func (d Dimension) Detail() (DetailedTip, bool) {
	tip, ok := detailedTips[d]
	return tip, ok
}

const fallbackTip = "Revisar este item"

var dimensionNames = map[Dimension]string{
	Skills:     "Habilidades",
	Experience: "Experiência",
	DocQuality: "Qualidade do Documento",
	Contact:    "Informações de Contato",
	Certs:      "Certificações",
	Projects:   "Projetos",
	Impact:     "Impacto/Métricas",
}

var improvementTips = map[Dimension]string{
	Skills:     "Adicione mais habilidades técnicas relevantes para sua área",
	Experience: "Detalhe melhor sua experiência: responsabilidades, conquistas, período exato",
	Projects:   "Mencione projetos desenvolvidos (acadêmicos, pessoais ou profissionais)",
	Impact:     "Quantifique seus resultados: números, percentuais, métricas de impacto",
	DocQuality: "Melhore a estrutura: adicione mais seções (Formação, Projetos, Idiomas, etc.)",
	Certs:      "Adicione certificações, cursos ou qualificações relevantes",
	Contact:    "Inclua informações completas de contato: telefone, email, LinkedIn, localização",
}

var detailedTips = map[Dimension]DetailedTip{
	Skills: {
		Title:  "Habilidades Técnicas Insuficientes",
		Impact: "ATS (sistemas de triagem) e recrutadores filtram por palavras-chave",
		Action: "Liste no mínimo 12-15 habilidades relevantes da sua área, incluindo ferramentas, tecnologias e metodologias",
	},
	Experience: {
		Title:  "Experiência Mal Descrita",
		Impact: "Impossível avaliar suas reais competências e nível profissional",
		Action: "Detalhe cada experiência com cargo, empresa, período, responsabilidades (3-5 bullets) e conquistas específicas",
	},
	Projects: {
		Title:  "Falta de Projetos",
		Impact: "Sem projetos, não há como comprovar aplicação prática de conhecimento",
		Action: "Adicione 2-3 projetos relevantes (acadêmicos, pessoais ou profissionais) com descrição e tecnologias usadas",
	},
	Impact: {
		Title:  "Ausência de Métricas e Resultados",
		Impact: "Currículos sem números não comprovam contribuições reais",
		Action: "Adicione dados quantificáveis em cada experiência: percentuais, valores, quantidades, melhorias alcançadas",
	},
	DocQuality: {
		Title:  "Qualidade Documental Baixa",
		Impact: "Documento mal estruturado é descartado antes mesmo de ser lido",
		Action: "Reorganize com seções claras, formatação consistente, ortografia correta e layout profissional",
	},
	Certs: {
		Title:  "Falta de Certificações",
		Impact: "Certificações validam conhecimento e mostram proatividade",
		Action: "Busque cursos online (Coursera, Udemy, LinkedIn Learning) e adicione pelo menos 2 certificações relevantes",
	},
	Contact: {
		Title:  "Informações de Contato Incompletas",
		Impact: "Recrutadores não conseguirão te contatar",
		Action: "Inclua obrigatoriamente: email profissional, telefone com DDD, cidade/estado, LinkedIn (opcional)",
	},
}
