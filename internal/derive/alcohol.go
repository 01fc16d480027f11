package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveAlcohol computes the AUDIT-C total, its risk band, and the estimated
// grams of alcohol per week. Grams come from direct drink counts when
// reported, otherwise from the frequency x quantity lookup tables.
func deriveAlcohol(audit *standardize.AuditAnswers, drinksPerWeek *float64, sexAtBirth string, cfg ruleset.AlcoholConfig) *AlcoholFacts {
	if audit == nil && drinksPerWeek == nil {
		return nil
	}
	facts := &AlcoholFacts{}

	if audit != nil && audit.Q1 != nil && audit.Q2 != nil && audit.Q3 != nil {
		score := *audit.Q1 + *audit.Q2 + *audit.Q3
		facts.Score = &score
		facts.Band = alcoholRiskBand(score, sexAtBirth, cfg)
	}

	if drinksPerWeek != nil {
		grams := round2(*drinksPerWeek * cfg.GramsPerDrink)
		facts.GramsPerWeek = &grams
	} else if audit != nil && audit.Q1 != nil && audit.Q2 != nil {
		q1, q2 := *audit.Q1, *audit.Q2
		if q1 >= 0 && q1 < len(cfg.FreqPerWeek) && q2 >= 0 && q2 < len(cfg.DrinksPerOccasion) {
			grams := round2(cfg.FreqPerWeek[q1] * cfg.DrinksPerOccasion[q2] * cfg.GramsPerDrink)
			facts.GramsPerWeek = &grams
		}
	}

	if facts.Score == nil && facts.GramsPerWeek == nil {
		return nil
	}
	return facts
}

// alcoholRiskBand preserves the original band ladder literally: the absolute
// cutoffs are checked before the sex-specific baseline.
func alcoholRiskBand(score int, sexAtBirth string, cfg ruleset.AlcoholConfig) string {
	switch {
	case score >= cfg.DependenceScore:
		return "Possible dependence"
	case score >= cfg.HigherScore:
		return "Higher"
	case score >= cfg.IncreasingScore:
		return "Increasing"
	}
	baseline := cfg.MaleBaseline
	if sexAtBirth == "female" {
		baseline = cfg.FemaleBaseline
	}
	if score > baseline {
		return "Increasing"
	}
	return "Low"
}
