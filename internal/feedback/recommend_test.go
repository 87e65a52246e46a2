package feedback

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_RefinementTriggers(t *testing.T) {
	cases := []struct {
		name      string
		subscores Subscores
		want      []Dimension
	}{
		{
			name:      "all clear",
			subscores: SubscoresOf(sc(Impact, 0.7), sc(Projects, 0.7), sc(Certs, 0.7), sc(Skills, 0.9)),
			want:      nil,
		},
		{
			name:      "all triggered keep fixed order",
			subscores: SubscoresOf(sc(Skills, 0.1), sc(Certs, 0.2), sc(Projects, 0.3), sc(Impact, 0.69)),
			want:      []Dimension{Impact, Projects, Certs, Skills},
		},
		{
			name:      "skills uses the stricter threshold",
			subscores: SubscoresOf(sc(Skills, 0.85), sc(Impact, 0.8)),
			want:      []Dimension{Skills},
		},
		{
			name:      "missing keys pass",
			subscores: nil,
			want:      nil,
		},
		{
			name:      "present zero is a real score",
			subscores: SubscoresOf(sc(Certs, 0)),
			want:      []Dimension{Certs},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TriggeredRefinements(tc.subscores))
		})
	}
}

func TestRecommend_RefinementBody(t *testing.T) {
	subs := SubscoresOf(sc(Skills, 0.85), sc(Impact, 0.6), sc(Projects, 0.8))

	rec := Recommend(70, subs, ApprovalFor(70, true))

	assert.Equal(t, TrackApproved, rec.Track)
	assert.Equal(t, TierRefinement, rec.Tier)

	headings := boldHeadings(rec.Fragments)
	assert.Equal(t, []string{
		"Avaliação Geral:",
		"O que está funcionando bem:",
		"Oportunidades de Melhoria Identificadas:",
		"1. Impacto e Resultados Quantificáveis:",
		"4. Habilidades Técnicas:",
		"Próximos Passos Recomendados:",
	}, headings)
	assert.Equal(t, Fragment{Style: StyleSuccess, Text: approvedBanner}, rec.Fragments[0])
}

func TestRecommend_ExcellenceIgnoresSubscores(t *testing.T) {
	weak := Recommend(92, SubscoresOf(sc(Impact, 0.1), sc(Skills, 0.1)), ApprovalFor(92, false))
	strong := Recommend(92, SubscoresOf(sc(Impact, 1), sc(Skills, 1)), ApprovalFor(92, false))

	assert.Equal(t, TierExcellence, weak.Tier)
	assert.Equal(t, strong.Fragments, weak.Fragments)
}

func TestRecommend_TierBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		tier  Tier
	}{
		{80, TierExcellence},
		{79.9, TierRefinement},
		{65, TierRefinement},
		{64.9, TierDevelopment},
		{50, TierDevelopment},
	}
	for _, tc := range cases {
		rec := Recommend(tc.score, nil, ApprovalFor(tc.score, true))
		assert.Equal(t, tc.tier, rec.Tier, "score %.1f", tc.score)
	}
}

func TestRecommend_WeakAreaThresholdsDifferPerTier(t *testing.T) {
	subs := SubscoresOf(sc(Skills, 0.75), sc(Experience, 0.75), sc(Projects, 0.75))

	assert.Equal(t, []Dimension{Skills, Experience, Projects}, DevelopmentAreas(subs))
	assert.Empty(t, RevisionWeakAreas(subs))

	rec := Recommend(30, subs, ApprovalFor(30, false))
	assert.Equal(t, TierTargeted, rec.Tier)
}

func TestRecommend_CriticalIgnoresWhichDimensionsAreWeak(t *testing.T) {
	a := Recommend(10, SubscoresOf(sc(Contact, 0.1), sc(Certs, 0.1), sc(Impact, 0.1)), ApprovalFor(10, false))
	b := Recommend(10, SubscoresOf(sc(Skills, 0.2), sc(Experience, 0.3), sc(DocQuality, 0.4), sc(Projects, 0.5)), ApprovalFor(10, false))

	assert.Equal(t, TierCritical, a.Tier)
	assert.Equal(t, TierCritical, b.Tier)
	assert.Equal(t, a.Fragments, b.Fragments)
}

func TestDetailedTipsCoverCoreDimensions(t *testing.T) {
	for _, d := range CoreDimensions {
		tip, ok := d.Detail()
		if assert.True(t, ok, "missing detailed tip for %s", d) {
			assert.NotEmpty(t, tip.Title)
			assert.NotEmpty(t, tip.Impact)
			assert.NotEmpty(t, tip.Action)
		}
		assert.NotEqual(t, fallbackTip, d.Tip())
		assert.NotEqual(t, string(d), d.Name())
	}
}

func TestRecommend_BodiesMatchSelectedAreas(t *testing.T) {
	cases := []Subscores{
		nil,
		SubscoresOf(sc(Skills, 0.85), sc(Impact, 0.6), sc(Projects, 0.8)),
		SubscoresOf(sc(Skills, 0.1), sc(Certs, 0.2), sc(Projects, 0.3), sc(Impact, 0.69), sc(Experience, 0.4), sc(DocQuality, 0.79)),
		SubscoresOf(sc(Contact, 0.1), sc(Certs, 0), sc(Semantic, 0.2)),
	}
	for i, subs := range cases {
		refinement := boldHeadings(Recommend(70, subs, ApprovalFor(70, true)).Fragments)
		triggered := TriggeredRefinements(subs)
		for _, tr := range refinementTriggers {
			assert.Equal(t, slices.Contains(triggered, tr.Dimension), slices.Contains(refinement, tr.Block.Heading),
				"case %d refinement block %s", i, tr.Dimension)
		}

		development := boldHeadings(Recommend(55, subs, ApprovalFor(55, true)).Fragments)
		selected := DevelopmentAreas(subs)
		for _, area := range developmentAreas {
			assert.Equal(t, slices.Contains(selected, area.Dimension), slices.Contains(development, area.Block.Heading),
				"case %d development block %s", i, area.Dimension)
		}
	}
}

func TestRecommend_TargetedNumberingSkipsKeysWithoutTip(t *testing.T) {
	subs := SubscoresOf(sc("languages", 0.1), sc(Impact, 0.3))

	rec := Recommend(20, subs, ApprovalFor(20, false))

	assert.Equal(t, TierTargeted, rec.Tier)
	tip, ok := Impact.Detail()
	assert.True(t, ok)
	headings := boldHeadings(rec.Fragments)
	assert.Contains(t, headings, fmt.Sprintf("1. %s:", strings.ToUpper(tip.Title)))
	assert.NotContains(t, headings, fmt.Sprintf("2. %s:", strings.ToUpper(tip.Title)))
	for _, h := range headings {
		assert.False(t, strings.HasPrefix(h, "2. "), "unexpected second tip %q", h)
	}
}
