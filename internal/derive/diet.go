package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveDiet scores the four WCRF compliance components (0 / 0.5 / 1 each),
// sums them to a 0-4 score, and bands the total.
func deriveDiet(diet standardize.Diet, cfg ruleset.DietConfig) *DietFacts {
	if diet.Vegetables == "" && diet.FastFood == "" && diet.RedMeat == "" && diet.SugaryDrinks == "" {
		return nil
	}

	components := map[string]float64{
		"plant_foods":    scorePlant(diet, cfg),
		"fast_food":      scoreFastFood(diet, cfg),
		"animal_protein": scoreAnimalProtein(diet, cfg),
		"sugary_drinks":  scoreSugaryDrinks(diet, cfg),
	}
	score := 0.0
	for _, v := range components {
		score += v
	}

	band := "Low"
	switch {
	case score >= cfg.BandHighMin:
		band = "High"
	case score >= cfg.BandModerateMin:
		band = "Moderate"
	}
	return &DietFacts{Score: &score, Band: band, Components: components}
}

func scorePlant(diet standardize.Diet, cfg ruleset.DietConfig) float64 {
	veg, vegOK := cfg.FrequencyRank[diet.Vegetables]
	grains := cfg.FrequencyRank[diet.WholeGrains]
	legumes := cfg.FrequencyRank[diet.Legumes]
	if !vegOK {
		return 0
	}
	if veg >= cfg.PlantFullVeg && (grains >= cfg.PlantFullGrains || legumes >= cfg.PlantHalfVeg) {
		return 1.0
	}
	if veg >= cfg.PlantHalfVeg || grains >= cfg.PlantHalfVeg {
		return 0.5
	}
	return 0
}

// scoreFastFood keeps the original overlapping disjunction in the zero branch
// verbatim; see the characterization test before simplifying.
func scoreFastFood(diet standardize.Diet, cfg ruleset.DietConfig) float64 {
	fastFood, ok := cfg.FrequencyRank[diet.FastFood]
	if !ok {
		return 0
	}
	upfHigh := false
	for _, share := range cfg.UPFHighShares {
		if diet.UPFShare == share {
			upfHigh = true
			break
		}
	}
	if fastFood >= cfg.FastFoodHighMin || (upfHigh || fastFood >= cfg.FastFoodHighMin) {
		return 0
	}
	if fastFood <= cfg.FastFoodLowMax {
		return 1.0
	}
	return 0.5
}

func scoreAnimalProtein(diet standardize.Diet, cfg ruleset.DietConfig) float64 {
	red, redOK := cfg.FrequencyRank[diet.RedMeat]
	processed, procOK := cfg.FrequencyRank[diet.ProcessedMeat]
	if !redOK && !procOK {
		return 0
	}
	if procOK && processed <= cfg.ProcessedFullMax && (!redOK || red <= cfg.RedMeatFullMax) {
		return 1.0
	}
	if (procOK && processed <= cfg.ProcessedHalfMax) || (redOK && red <= cfg.RedMeatFullMax) {
		return 0.5
	}
	return 0
}

func scoreSugaryDrinks(diet standardize.Diet, cfg ruleset.DietConfig) float64 {
	ssb, ok := cfg.FrequencyRank[diet.SugaryDrinks]
	if !ok {
		return 0
	}
	score := 0.0
	switch {
	case ssb <= cfg.SSBFullMax:
		score = 1.0
	case ssb <= cfg.SSBHalfMax:
		score = 0.5
	}
	// A habitual large container downgrades a full score to a half.
	if score == 1.0 && diet.SSBContainer == "large" {
		score = 0.5
	}
	return score
}
