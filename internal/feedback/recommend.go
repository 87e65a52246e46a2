package feedback

import (
	"fmt"
	"strings"
)

// Weak-area thresholds differ per tier and are kept apart on purpose: merging
// them changes which blocks a report contains.
const (
	developmentWeakThreshold = 0.8
	revisionWeakThreshold    = 0.7

	// criticalWeakCount switches the revision track to the fixed critical blocks.
	criticalWeakCount = 3

	// absentSubscore is assumed for refinement triggers when the scorer omitted a key.
	absentSubscore = 1.0
)

// Track is the recommendation track chosen by the cutoff.
type Track string

const (
	TrackApproved Track = "approved"
	TrackRevision Track = "revision"
)

// Tier is the leaf of the recommendation decision tree.
type Tier string

const (
	TierExcellence  Tier = "excellence"  // approved, score >= 80
	TierRefinement  Tier = "refinement"  // approved, 65 <= score < 80
	TierDevelopment Tier = "development" // approved, cutoff <= score < 65
	TierCritical    Tier = "critical"    // revision, three or more weak areas
	TierTargeted    Tier = "targeted"    // revision, fewer than three weak areas
)

// TrackFor picks the track from the approval alone.
func TrackFor(approval Approval) Track {
	if approval.Approved {
		return TrackApproved
	}
	return TrackRevision
}

// Recommendation is the detailed body of a report.
type Recommendation struct {
	Track     Track
	Tier      Tier
	Fragments []Fragment
}

// Recommend builds the recommendation body. The track follows the approval
// cutoff, never the label, so a "Ruim" document above the cutoff still gets the
// approved track while its verdict says NEEDS_REVISION.
func Recommend(score float64, subscores Subscores, approval Approval) Recommendation {
	var f fragments
	rec := Recommendation{Track: TrackFor(approval)}

	if rec.Track == TrackApproved {
		f.add(StyleSuccess, approvedBanner)
		switch {
		case score >= excellentScore:
			rec.Tier = TierExcellence
			f.excellence()
		case score >= goodScore:
			rec.Tier = TierRefinement
			f.refinement(subscores)
		default:
			rec.Tier = TierDevelopment
			f.development(subscores)
		}
	} else {
		f.add(StyleWarning, revisionBanner)
		rec.Tier = f.revision(subscores)
	}

	rec.Fragments = f
	return rec
}

func (f *fragments) excellence() {
	for _, b := range excellenceBlocks {
		f.block(b)
	}
}

// TriggeredRefinements returns the refinement-tier dimensions whose block fires.
func TriggeredRefinements(subscores Subscores) []Dimension {
	var out []Dimension
	for _, t := range triggeredRefinements(subscores) {
		out = append(out, t.Dimension)
	}
	return out
}

func triggeredRefinements(subscores Subscores) []refinementTrigger {
	var out []refinementTrigger
	for _, t := range refinementTriggers {
		if subscores.ValueOr(t.Dimension, absentSubscore) < t.Below {
			out = append(out, t)
		}
	}
	return out
}

func (f *fragments) refinement(subscores Subscores) {
	for _, b := range refinementIntro {
		f.block(b)
	}
	for _, t := range triggeredRefinements(subscores) {
		f.block(t.Block)
	}
	f.block(refinementNextSteps)
}

// DevelopmentAreas returns the checklist dimensions that get a block, in checklist order.
func DevelopmentAreas(subscores Subscores) []Dimension {
	var out []Dimension
	for _, area := range selectedDevelopmentAreas(subscores) {
		out = append(out, area.Dimension)
	}
	return out
}

func selectedDevelopmentAreas(subscores Subscores) []developmentArea {
	weak := weakAreas(subscores, developmentWeakThreshold)
	var out []developmentArea
	for _, area := range developmentAreas {
		if weak.has(area.Dimension) {
			out = append(out, area)
		}
	}
	return out
}

func (f *fragments) development(subscores Subscores) {
	for _, b := range developmentIntro {
		f.block(b)
	}
	for _, area := range selectedDevelopmentAreas(subscores) {
		f.block(area.Block)
	}
	for _, b := range developmentClosing {
		f.block(b)
	}
}

// RevisionWeakAreas returns the dimensions below 0.7 considered by the revision track, weakest first.
func RevisionWeakAreas(subscores Subscores) []Dimension {
	weak := weakAreas(subscores, revisionWeakThreshold)
	out := make([]Dimension, 0, len(weak))
	for _, sc := range weak {
		out = append(out, sc.Dimension)
	}
	return out
}

func (f *fragments) revision(subscores Subscores) Tier {
	for _, b := range revisionIntro {
		f.block(b)
	}

	tier := TierTargeted
	weak := weakAreas(subscores, revisionWeakThreshold)
	if len(weak) >= criticalWeakCount {
		tier = TierCritical
		for _, b := range criticalBlocks {
			f.block(b)
		}
		for _, week := range reconstructionPlan {
			f.add(StylePlain, week...)
		}
	} else {
		f.add(StyleBold, targetedHeading)
		n := 0
		for _, sc := range weak {
			tip, ok := sc.Dimension.Detail()
			if !ok {
				continue
			}
			n++
			f.block(block{
				Heading: fmt.Sprintf("%d. %s:", n, strings.ToUpper(tip.Title)),
				Lines: []string{
					"  • Por que é crítico: " + tip.Impact,
					"  • O que fazer: " + tip.Action,
				},
			})
		}
		f.block(targetedNextSteps)
	}

	f.block(supportResources)
	f.add(StyleWarning, revisionWarning)
	return tier
}
