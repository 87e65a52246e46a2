package feedback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrengths_KeepsScorerOrderAndLimit(t *testing.T) {
	subs := SubscoresOf(sc(Semantic, 0.99), sc(Impact, 0.9), sc(Skills, 0.5), sc(Contact, 1), sc(Certs, 0.95))

	assert.Equal(t, []Dimension{Semantic, Impact, Contact}, Strengths(subs))
	assert.Empty(t, Strengths(SubscoresOf(sc(Skills, 0.89))))
}

func TestWeaknesses_SortsStablyAndExcludesJobMatching(t *testing.T) {
	subs := SubscoresOf(
		sc(Context, 0.0), sc(Experience, 0.5), sc(Skills, 0.5), sc(Semantic, 0.1),
		sc(Impact, 0.79), sc(Certs, 0.8), sc(Projects, 0.2), sc(DocQuality, 0.6), sc(Contact, 0.3),
	)

	got := Weaknesses(subs)

	require.Len(t, got, 5)
	var dims []Dimension
	for _, w := range got {
		dims = append(dims, w.Dimension)
	}
	assert.Equal(t, []Dimension{Projects, Contact, Experience, Skills, DocQuality}, dims)
	assert.Equal(t, improvementTips[Projects], got[0].Tip)
}

func TestWeaknesses_TiesFollowInputOrder(t *testing.T) {
	forward := Weaknesses(SubscoresOf(sc(Skills, 0.4), sc(Impact, 0.4)))
	backward := Weaknesses(SubscoresOf(sc(Impact, 0.4), sc(Skills, 0.4)))

	assert.Equal(t, Skills, forward[0].Dimension)
	assert.Equal(t, Impact, backward[0].Dimension)
}

func TestWeaknesses_UnknownDimensionGetsFallbackTip(t *testing.T) {
	got := Weaknesses(SubscoresOf(sc("languages", 0.2)))

	require.Len(t, got, 1)
	assert.Equal(t, "Revisar este item", got[0].Tip)
	assert.Equal(t, "languages", Dimension("languages").Name())
}

func TestParseSubscores_PreservesDocumentOrder(t *testing.T) {
	subs, err := ParseSubscores(`{"impact": 0.2, "skills": 0.95, "semantic": 1, "contact": 0.6}`)
	require.NoError(t, err)

	assert.Equal(t, SubscoresOf(sc(Impact, 0.2), sc(Skills, 0.95), sc(Semantic, 1), sc(Contact, 0.6)), subs)

	v, ok := subs.Get(Skills)
	assert.True(t, ok)
	assert.Equal(t, 0.95, v)
	assert.Equal(t, 1.0, subs.ValueOr(Certs, 1.0))
}

func TestParseSubscores_Errors(t *testing.T) {
	_, err := ParseSubscores(`[0.1, 0.2]`)
	assert.Error(t, err)

	_, err = ParseSubscores(`{"skills": "high"}`)
	assert.ErrorContains(t, err, `"skills"`)
}

func TestSubscores_JSONRoundTripKeepsOrder(t *testing.T) {
	var in EvaluationInput
	err := json.Unmarshal([]byte(`{"score": 61.5, "label": "Bom", "isExperiencedProfile": true,
		"subscores": {"projects": 0.3, "doc_quality": 0.75, "skills": 0.9}}`), &in)
	require.NoError(t, err)

	assert.Equal(t, 61.5, in.Score)
	assert.True(t, in.IsExperiencedProfile)
	assert.Equal(t, []Dimension{Projects, DocQuality, Skills}, []Dimension{
		in.Subscores[0].Dimension, in.Subscores[1].Dimension, in.Subscores[2].Dimension,
	})

	out, err := json.Marshal(in.Subscores)
	require.NoError(t, err)
	assert.Equal(t, `{"projects":0.3,"doc_quality":0.75,"skills":0.9}`, string(out))
}

func TestClassifyVerdict(t *testing.T) {
	cases := []struct {
		score float64
		label string
		want  Verdict
	}{
		{95, "Ruim", VerdictNeedsRevision},
		{95, "", VerdictNeedsRevision},
		{80, LabelGood, VerdictExcellent},
		{79.99, LabelGood, VerdictGood},
		{65, LabelGood, VerdictGood},
		{64.9, LabelGood, VerdictGoodBorderline},
		{10, LabelGood, VerdictGoodBorderline},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyVerdict(tc.score, tc.label), "score=%v label=%q", tc.score, tc.label)
	}
}

func TestApprovalFor(t *testing.T) {
	assert.Equal(t, Approval{Cutoff: 40, Approved: true}, ApprovalFor(40, false))
	assert.Equal(t, Approval{Cutoff: 50, Approved: false}, ApprovalFor(45, true))
	assert.Equal(t, 50.0, CutoffFor(true))
	assert.Equal(t, 40.0, CutoffFor(false))
}

func TestFailureReport(t *testing.T) {
	frags := FailureReport("scorer unavailable")

	require.NotEmpty(t, frags)
	assert.Equal(t, Fragment{Style: StyleError, Text: "ERRO NA ANÁLISE"}, frags[0])
	assert.Equal(t, "scorer unavailable", frags[1].Text)
	assert.Equal(t, "Erro desconhecido", FailureReport("")[1].Text)
}
