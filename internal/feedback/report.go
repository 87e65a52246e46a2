// Package feedback turns a scorer's evaluation of a CV into a structured,
// human-readable report: verdict, strengths, weaknesses and tiered
// recommendations. Synthesis is pure and deterministic; the same input always
// yields the same report and no state is kept between calls.
package feedback

import "fmt"

// Features are optional document statistics reported by the scorer.
type Features struct {
	Skills      []string `json:"skills,omitempty"`
	YearsTotal  float64  `json:"years_total"`
	ProjectHits int      `json:"project_hits"`
	CertPoints  float64  `json:"cert_points"`
	MetricsHits int      `json:"metrics_hits"`
}

// certPointsPerCert approximates how many cert points one certification is worth.
const certPointsPerCert = 0.2

// EstimatedCerts converts cert points into an approximate certification count.
func (f Features) EstimatedCerts() int {
	if f.CertPoints <= 0 {
		return 0
	}
	return int(f.CertPoints / certPointsPerCert)
}

// EvaluationInput is what the scorer produced for one document.
// Score is expected in [0,100] and every subscore in [0,1]; values outside
// those ranges are not checked here.
type EvaluationInput struct {
	Score                float64   `json:"score"`
	Label                string    `json:"label"`
	IsExperiencedProfile bool      `json:"isExperiencedProfile"`
	Subscores            Subscores `json:"subscores"`
	Features             *Features `json:"features,omitempty"`
}

// Report is the synthesized assessment. Verdict and Approval are independent
// determinations and are both kept.
type Report struct {
	Score      float64     `json:"score"`
	Verdict    Verdict     `json:"verdict"`
	Approval   Approval    `json:"approval"`
	Track      Track       `json:"track"`
	Tier       Tier        `json:"tier"`
	Strengths  []Dimension `json:"strengths"`
	Weaknesses []Weakness  `json:"weaknesses"`
	Fragments  []Fragment  `json:"fragments"`
}

// Synthesize builds the full report for in.
func Synthesize(in EvaluationInput) Report {
	verdict := ClassifyVerdict(in.Score, in.Label)
	approval := ApprovalFor(in.Score, in.IsExperiencedProfile)
	strengths := Strengths(in.Subscores)
	weaknesses := Weaknesses(in.Subscores)
	rec := Recommend(in.Score, in.Subscores, approval)

	var f fragments
	f.header(in, verdict)
	if in.Features != nil {
		f.details(*in.Features)
	}
	f.strengthsAndWeaknesses(strengths, weaknesses)

	f.separator()
	f.add(StyleBold, recommendHeading)
	f = append(f, rec.Fragments...)
	f.separator()

	return Report{
		Score:      in.Score,
		Verdict:    verdict,
		Approval:   approval,
		Track:      rec.Track,
		Tier:       rec.Tier,
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Fragments:  f,
	}
}

func (f *fragments) header(in EvaluationInput, verdict Verdict) {
	f.add(StyleTitle, "RESULTADO DA AVALIAÇÃO")
	f.separator()
	f.add(StyleBold, fmt.Sprintf("Score Final: %.1f/100", in.Score))
	f.add(StyleBold, "Perfil: "+profileName(in.IsExperiencedProfile))

	word, message, messageStyle := verdict.display()
	f.add(StyleBold, "Avaliação:")
	f.add(verdict.Tone(), word)
	f.add(messageStyle, message)
}

func (f *fragments) details(feat Features) {
	f.add(StyleBold, "Detalhes:")
	f.add(StylePlain,
		fmt.Sprintf("  • Skills identificadas: %d", len(feat.Skills)),
		fmt.Sprintf("  • Anos de experiência: %.1f", feat.YearsTotal),
		fmt.Sprintf("  • Projetos mencionados: %d", feat.ProjectHits),
		fmt.Sprintf("  • Certificações: %d", feat.EstimatedCerts()),
		fmt.Sprintf("  • Métricas quantificáveis: %d", feat.MetricsHits),
	)
}

// FailureReport is shown instead of a report when a document could not be
// scored, e.g. the scorer was unreachable or answered with something other than JSON.
func FailureReport(message string) []Fragment {
	if message == "" {
		message = "Erro desconhecido"
	}
	var f fragments
	f.add(StyleError, "ERRO NA ANÁLISE")
	f.add(StyleError, message)
	f.add(StyleInfo, "Dicas:")
	f.add(StylePlain,
		"  • Verifique se o serviço de pontuação está disponível",
		"  • Consulte os logs do servidor para mensagens de erro detalhadas",
		"  • Certifique-se que o arquivo é PDF ou TXT",
		"  • Tamanho máximo: 16MB",
	)
	return f
}
