package feedback

import "slices"

const (
	strengthThreshold = 0.9
	maxStrengths      = 3

	// summaryWeakThreshold selects weaknesses for the summary list.
	summaryWeakThreshold = 0.8
	maxWeaknesses        = 5
)

// Weakness is an analyzed dimension below a threshold, with its fixed tip.
type Weakness struct {
	Dimension Dimension `json:"dimension"`
	Value     float64   `json:"value"`
	Tip       string    `json:"tip"`
}

// Strengths returns up to three dimensions scoring at least 0.9, in scorer order.
// Semantic and context may appear here.
func Strengths(s Subscores) []Dimension {
	var out []Dimension
	for _, sc := range s {
		if sc.Value < strengthThreshold {
			continue
		}
		out = append(out, sc.Dimension)
		if len(out) == maxStrengths {
			break
		}
	}
	return out
}

// Weaknesses returns up to five analyzed dimensions below 0.8, weakest first.
func Weaknesses(s Subscores) []Weakness {
	weak := weakAreas(s, summaryWeakThreshold)
	if len(weak) > maxWeaknesses {
		weak = weak[:maxWeaknesses]
	}
	out := make([]Weakness, 0, len(weak))
	for _, sc := range weak {
		out = append(out, Weakness{Dimension: sc.Dimension, Value: sc.Value, Tip: sc.Dimension.Tip()})
	}
	return out
}

// weakAreas lists analyzed dimensions strictly below threshold, sorted
// ascending by value. Equal values keep scorer order.
func weakAreas(s Subscores, threshold float64) Subscores {
	var out Subscores
	for _, sc := range s {
		if sc.Dimension.Analyzed() && sc.Value < threshold {
			out = append(out, sc)
		}
	}
	slices.SortStableFunc(out, func(a, b Subscore) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return out
}

func (s Subscores) has(d Dimension) bool {
	_, ok := s.Get(d)
	return ok
}

func (f *fragments) strengthsAndWeaknesses(strengths []Dimension, weaknesses []Weakness) {
	if len(strengths) > 0 {
		f.add(StyleSuccess, "Pontos Fortes:")
		lines := make([]string, 0, len(strengths))
		for _, d := range strengths {
			lines = append(lines, "  - "+d.Name())
		}
		f.add(StyleSuccess, lines...)
	}

	if len(weaknesses) == 0 {
		f.add(StyleSuccess, "Todos os critérios estão em níveis excelentes (>80%).")
		return
	}
	f.add(StyleWarning, "Oportunidades de Melhoria:")
	lines := make([]string, 0, len(weaknesses))
	for _, w := range weaknesses {
		lines = append(lines, "  - "+w.Tip)
	}
	f.add(StyleWarning, lines...)
}
