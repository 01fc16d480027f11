package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveImmunization computes the vaccination gap flags. Each gap fact is
// present only when its inputs make it evaluable; the aggregate ORs whatever
// was evaluated.
func deriveImmunization(si standardize.ScreeningImmunization, age *int, illnesses []standardize.Illness,
	cfg ruleset.ImmunizationConfig, currentYear int) *ImmunizationFacts {
	if age == nil {
		return nil
	}
	facts := &ImmunizationFacts{}
	comorbid := hasComorbidity(illnesses, cfg.ComorbidityIllnesses)

	// HPV series completion is thresholded by age at first dose.
	if si.HPVDoses != nil && *age <= cfg.HPVMaxAge {
		needed := cfg.HPVDosesOld
		if si.HPVFirstDoseAge != nil && *si.HPVFirstDoseAge <= cfg.HPVYoungFirstDoseMaxAge {
			needed = cfg.HPVDosesYoung
		}
		gap := *si.HPVDoses < needed
		facts.HPVGap = &gap
	}

	if si.CovidDoses != nil {
		gap := *si.CovidDoses == 0 ||
			si.CovidLastYear == nil ||
			currentYear-*si.CovidLastYear >= cfg.CovidBoosterYears+1
		facts.CovidBoosterGap = &gap
	}

	tetanusGap := si.TetanusLastYear == nil || currentYear-*si.TetanusLastYear >= cfg.TetanusYears
	facts.TetanusGap = &tetanusGap

	if *age >= cfg.FluMinAge || comorbid {
		gap := !si.FluLastSeason
		facts.FluGap = &gap
	}
	if *age >= cfg.PneumoMinAge || comorbid {
		gap := !si.PneumoDone
		facts.PneumoGap = &gap
	}
	if *age >= cfg.ZosterMinAge {
		gap := !si.ZosterDone
		facts.ZosterGap = &gap
	}

	for _, gap := range []*bool{facts.HPVGap, facts.CovidBoosterGap, facts.TetanusGap, facts.FluGap, facts.PneumoGap, facts.ZosterGap} {
		if gap != nil && *gap {
			facts.AnyGap = true
			break
		}
	}
	return facts
}

func hasComorbidity(illnesses []standardize.Illness, comorbidityIDs []string) bool {
	set := toSet(comorbidityIDs)
	for _, ill := range illnesses {
		if set[ill.ID] && activeIllness(ill) {
			return true
		}
	}
	return false
}
