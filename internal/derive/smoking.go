package derive

import (
	"math"
	"time"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveSmoking computes pack-years, the Brinkman index, and quit-years.
// A never-smoker gets pack-years 0; a former/current smoker with missing
// intensity or duration gets no pack-years fact at all.
func deriveSmoking(status string, detail standardize.SmokingDetail, cfg ruleset.SmokingConfig, now time.Time) *SmokingFacts {
	if status == "" && detail.CigsPerDay == nil && !detail.SHS {
		return nil
	}
	facts := &SmokingFacts{Status: status, SHS: detail.SHS}

	switch status {
	case "never":
		zero := 0.0
		facts.PackYears = &zero
		brinkman := 0.0
		facts.BrinkmanIndex = &brinkman
	case "former", "current":
		if detail.CigsPerDay != nil && detail.Years != nil {
			// Intensity reported in packs converts to cigarettes first.
			cigs := *detail.CigsPerDay
			if detail.IntensityUnit == "packs" {
				cigs *= cfg.PackSize
			}
			py := round2(cigs / cfg.PackSize * *detail.Years)
			facts.PackYears = &py
			bi := round2(cigs * *detail.Years)
			facts.BrinkmanIndex = &bi
		}
		if status == "former" && detail.QuitYear != nil {
			quit := now.Year() - *detail.QuitYear
			if quit >= 0 {
				facts.QuitYears = &quit
			}
		}
	}
	return facts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
