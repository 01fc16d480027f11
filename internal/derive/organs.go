package derive

import (
	"sort"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveOrgans builds the organ inventory: sex-at-birth defaults minus organs
// removed prophylactically (explicit surgery list) or therapeutically
// (inferred per cancer type when that cancer's treatment included surgery).
func deriveOrgans(adv standardize.Advanced, sexAtBirth string, cfg ruleset.OrganConfig) *OrganFacts {
	defaults, ok := cfg.Defaults[sexAtBirth]
	if !ok {
		return nil
	}
	present := map[string]bool{}
	for _, organ := range defaults {
		present[organ] = true
	}

	for _, surgery := range adv.ProphylacticSurgeries {
		for _, organ := range cfg.SurgeryOrgans[surgery] {
			delete(present, organ)
		}
	}

	// Therapeutic removal is inferred per cancer type, never from a single
	// global surgery flag.
	for _, dx := range adv.CancerHistory {
		if !dx.Surgery && !hasTreatment(dx.Treatments, "surgery") {
			continue
		}
		for _, organ := range cfg.CancerOrgans[dx.Type] {
			delete(present, organ)
		}
	}

	inventory := make([]string, 0, len(present))
	for organ := range present {
		inventory = append(inventory, organ)
	}
	sort.Strings(inventory)
	return &OrganFacts{Inventory: inventory}
}

func hasTreatment(treatments []string, modality string) bool {
	for _, t := range treatments {
		if t == modality {
			return true
		}
	}
	return false
}

func hasOrgan(facts *OrganFacts, organ string) bool {
	if facts == nil {
		return false
	}
	for _, o := range facts.Inventory {
		if o == organ {
			return true
		}
	}
	return false
}
