package derive

import (
	"strings"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// derivePersonal computes the personal-cancer-history and survivorship flags,
// including the hereditary-pattern composite.
func derivePersonal(adv standardize.Advanced, geneticFlag bool, cfg ruleset.PersonalConfig) *PersonalFacts {
	history := adv.CancerHistory
	if len(history) == 0 && len(adv.ProphylacticSurgeries) == 0 {
		return nil
	}
	facts := &PersonalFacts{
		AnyHistory:          len(history) > 0,
		MultiplePrimaries:   len(history) > 1,
		ProphylacticSurgery: len(adv.ProphylacticSurgeries) > 0,
	}

	youngOnsetSites := toSet(cfg.YoungOnsetSites)
	for _, dx := range history {
		if strings.EqualFold(dx.StatusCurrent, "in_treatment") || strings.EqualFold(dx.StatusCurrent, "active") {
			facts.CurrentTreatment = true
		}
		if dx.Type == "colorectal" {
			facts.ColorectalHistory = true
		}
		if dx.AgeAtDx != nil {
			if *dx.AgeAtDx < cfg.ChildhoodDxAge {
				facts.ChildhoodSurvivor = true
			}
			if *dx.AgeAtDx <= cfg.YoungOnsetAge && youngOnsetSites[dx.Type] {
				facts.YoungOnsetBreastGyn = true
			}
			if dx.RT == "chest" && *dx.AgeAtDx < cfg.ChestRTMaxAge {
				facts.ChestRTBefore30 = true
			}
		}
		if dx.RT == "pelvic" {
			facts.PelvicRT = true
		}
		if dx.HSCT || hasTreatment(dx.Treatments, "hsct") {
			facts.HSCTSurvivor = true
		}
		if dx.EndoYearsTotal != nil && *dx.EndoYearsTotal >= cfg.EndocrineMinYears {
			facts.EndocrineFiveYears = true
		}
	}

	facts.HereditaryPatternPossible = geneticFlag ||
		facts.MultiplePrimaries ||
		facts.ChildhoodSurvivor ||
		facts.YoungOnsetBreastGyn ||
		facts.ProphylacticSurgery
	return facts
}

// deriveSurveillance computes the chronic-condition surveillance flags. Each
// combines an illness-presence check with a duration threshold where one
// applies.
func deriveSurveillance(illnesses []standardize.Illness, cfg ruleset.SurveillanceConfig, currentYear int) *SurveillanceFacts {
	if len(illnesses) == 0 {
		return nil
	}
	facts := &SurveillanceFacts{}
	hccSet := toSet(cfg.HCCIllnesses)
	ibdSet := toSet(cfg.IBDIllnesses)
	pscSet := toSet(cfg.PSCIllnesses)
	barrettSet := toSet(cfg.BarrettIllnesses)
	immunoSet := toSet(cfg.ImmunosuppIllnesses)

	for _, ill := range illnesses {
		if !activeIllness(ill) {
			continue
		}
		years := -1
		if ill.Year != nil {
			years = currentYear - *ill.Year
		}
		switch {
		case hccSet[ill.ID]:
			facts.HCCCandidate = true
		case pscSet[ill.ID]:
			// PSC qualifies at any duration.
			facts.IBDPSCColorectal = true
		case ibdSet[ill.ID]:
			if years >= cfg.IBDMinYears {
				facts.IBDPSCColorectal = true
			}
		case barrettSet[ill.ID]:
			facts.Barretts = true
		}
		if immunoSet[ill.ID] && years >= cfg.ImmunosuppMinYears {
			facts.LymphomaRisk = true
		}
	}
	return facts
}

func activeIllness(ill standardize.Illness) bool {
	switch strings.ToLower(ill.Status) {
	case "resolved", "inactive", "past":
		return false
	}
	return true
}
