package outfit

import (
	"strings"

	"github.com/yanqian/outfitcast/internal/domain/weather"
)

const (
	baseConfidence     = 40
	confidencePerMatch = 12
	extremeBonus       = 8
	maxConfidence      = 100

	noteSeparator = "→"
	reasoningTail = " — choose accordingly."
	altMarker     = " (alt)"
)

// Recommend runs the band table, then every modifier, and scores the matched weight.
func Recommend(r weather.Reading) Recommendation {
	band := selectBand(r)
	outfits := band.triad(r)
	primary := outfits.primary

	notes := []string{band.note(r)}
	weight := band.weight

	for _, mod := range modifierRules {
		if !mod.matches(r) {
			continue
		}
		mod.apply(&primary)
		notes = append(notes, mod.note(r))
		weight += mod.weight
	}

	return Recommendation{
		Primary: primary,
		Alternates: []Set{
			ensureVariation(primary, outfits.alt1),
			ensureVariation(primary, outfits.alt2),
		},
		Band:          band.band,
		ConfidencePct: confidence(weight, r.TemperatureC),
		Reasoning:     summarize(notes),
		Notes:         notes,
	}
}

func confidence(weight, temperatureC int) int {
	score := min(maxConfidence, baseConfidence+confidencePerMatch*weight)
	if temperatureC >= 30 || temperatureC < 18 {
		score = min(maxConfidence, score+extremeBonus)
	}
	return max(0, score)
}

// summarize joins the lead clause of the first two notes.
func summarize(notes []string) string {
	if len(notes) > 2 {
		notes = notes[:2]
	}
	clauses := make([]string, 0, len(notes))
	for _, note := range notes {
		clause, _, _ := strings.Cut(note, noteSeparator)
		clauses = append(clauses, strings.TrimSpace(clause))
	}
	return strings.Join(clauses, " and ") + reasoningTail
}

// ensureVariation keeps an alternate distinguishable from the primary on footwear or accessories.
func ensureVariation(primary, alt Set) Set {
	if alt.Footwear == primary.Footwear && alt.Accessories == primary.Accessories {
		alt.Footwear += altMarker
	}
	return alt
}
