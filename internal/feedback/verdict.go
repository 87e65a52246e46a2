package feedback

// LabelGood is the scorer's pass label. Any other label means the document failed.
const LabelGood = "Bom"

const (
	excellentScore = 80.0
	goodScore      = 65.0

	experiencedCutoff = 50.0
	juniorCutoff      = 40.0
)

// Verdict is the coarse quality tier shown at the top of a report.
type Verdict string

const (
	VerdictExcellent      Verdict = "EXCELLENT"
	VerdictGood           Verdict = "GOOD"
	VerdictGoodBorderline Verdict = "GOOD_BORDERLINE"
	VerdictNeedsRevision  Verdict = "NEEDS_REVISION"
)

// Tone is the style used when the verdict is displayed.
func (v Verdict) Tone() Style {
	if v == VerdictNeedsRevision {
		return StyleError
	}
	return StyleSuccess
}

// ClassifyVerdict derives the verdict from the scorer label first and the score second.
func ClassifyVerdict(score float64, label string) Verdict {
	switch {
	case label != LabelGood:
		return VerdictNeedsRevision
	case score >= excellentScore:
		return VerdictExcellent
	case score >= goodScore:
		return VerdictGood
	default:
		return VerdictGoodBorderline
	}
}

// Approval is the cutoff-based pass decision. It ignores the label and may
// disagree with the verdict.
type Approval struct {
	Cutoff   float64 `json:"cutoff"`
	Approved bool    `json:"approved"`
}

// CutoffFor returns the profile-dependent approval threshold.
func CutoffFor(experienced bool) float64 {
	if experienced {
		return experiencedCutoff
	}
	return juniorCutoff
}

// ApprovalFor applies the cutoff to score. A score equal to the cutoff passes.
func ApprovalFor(score float64, experienced bool) Approval {
	cutoff := CutoffFor(experienced)
	return Approval{Cutoff: cutoff, Approved: score >= cutoff}
}

func profileName(experienced bool) string {
	if experienced {
		return "EXPERIENTE"
	}
	return "ESTAGIÁRIO/JÚNIOR"
}

func (v Verdict) display() (word string, message string, messageStyle Style) {
	switch v {
	case VerdictExcellent:
		return "EXCELENTE", "Currículo de alta qualidade.", StyleSuccess
	case VerdictGood:
		return "BOM", "Currículo sólido, com espaço para otimizações.", StyleInfo
	case VerdictGoodBorderline:
		return "BOM", "Aprovado, mas pode ser melhorado.", StyleInfo
	default:
		return "RUIM", "Currículo precisa de melhorias significativas.", StyleError
	}
}
