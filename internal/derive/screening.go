package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// screeningProgram groups the individual tests that can satisfy one screening
// program; the program is due only when every satisfying test is overdue.
type screeningProgram struct {
	key   string
	tests []string
	// organ gates eligibility on the organ inventory; empty means no gate.
	organ string
	// sex gates eligibility on sex at birth; empty means both.
	sex string
}

var screeningPrograms = []screeningProgram{
	{key: "crc", tests: []string{"colonoscopy", "fit"}},
	{key: "cervical", tests: []string{"pap", "hpv_test"}, organ: "cervix", sex: "female"},
	{key: "breast", tests: []string{"mammogram"}, organ: "breasts", sex: "female"},
	{key: "lung", tests: []string{"low_dose_ct"}},
	{key: "prostate", tests: []string{"psa"}, organ: "prostate", sex: "male"},
	{key: "skin", tests: []string{"skin_check"}},
	{key: "gastric", tests: []string{"upper_endoscopy", "h_pylori"}},
}

// deriveScreening compares years-since-last-screen against the configured
// interval per test. The colonoscopy interval shortens for the IBD/PSC tier.
// A never-screened person counts as due once past the program's start age.
func deriveScreening(si standardize.ScreeningImmunization, age *int, sexAtBirth string, organs *OrganFacts,
	elevatedCRC bool, cfg ruleset.ScreeningConfig, currentYear int) *ScreeningFacts {
	if age == nil {
		return nil
	}
	facts := &ScreeningFacts{Due: map[string]bool{}}

	for _, prog := range screeningPrograms {
		if prog.sex != "" && sexAtBirth != prog.sex {
			continue
		}
		if prog.organ != "" && organs != nil && !hasOrgan(organs, prog.organ) {
			continue
		}
		due, eligible := programDue(prog, si, *age, elevatedCRC, cfg, currentYear)
		if !eligible {
			continue
		}
		facts.Due[prog.key] = due
		if due {
			facts.AnyOverdue = true
		}
	}
	return facts
}

func programDue(prog screeningProgram, si standardize.ScreeningImmunization, age int,
	elevatedCRC bool, cfg ruleset.ScreeningConfig, currentYear int) (due, eligible bool) {
	screened := false
	for _, test := range prog.tests {
		interval, ok := cfg.Intervals[test]
		if !ok {
			continue
		}
		if test == "colonoscopy" && elevatedCRC {
			interval = cfg.ElevatedColonoscopyYears
		}
		eligible = true
		lastYear, have := si.LastScreenYear[test]
		if !have {
			continue
		}
		screened = true
		if currentYear-lastYear <= interval {
			// One in-date test satisfies the program.
			return false, true
		}
	}
	if !eligible {
		return false, false
	}
	if !screened {
		// Never screened: due only once past the earliest start age.
		start, haveStart := minStartAge(prog.tests, cfg.StartAges)
		if !haveStart || age < start {
			return false, false
		}
	}
	return true, true
}

func minStartAge(tests []string, startAges map[string]int) (int, bool) {
	min, found := 0, false
	for _, test := range tests {
		age, ok := startAges[test]
		if !ok {
			continue
		}
		if !found || age < min {
			min, found = age, true
		}
	}
	return min, found
}
