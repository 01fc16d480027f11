package derive

import (
	"strings"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveSexualHealth infers MSM behavior (male sex-at-birth only), the
// anal-cancer high-risk composite, and the HPV exposure band.
func deriveSexualHealth(sh standardize.SexualHealth, sexAtBirth string, age *int, cfg ruleset.SexualHealthConfig) *SexualHealthFacts {
	facts := &SexualHealthFacts{}

	if sexAtBirth == "male" {
		maleSelections := toSet(cfg.MalePartnerSelections)
		for _, g := range sh.PartnerGenders {
			if maleSelections[strings.ToLower(strings.ReplaceAll(strings.TrimSpace(g), " ", "_"))] {
				facts.MSM = true
				break
			}
		}
	}

	// Four independent OR'd conditions.
	msmAndAge := facts.MSM && age != nil && *age >= cfg.MSMMinAge
	hivRoute := sh.HIVPositive && (sh.AnalReceptive || facts.MSM)
	immunoRoute := (sh.Transplant || sh.Immunosuppressed) && sh.AnalReceptive
	facts.AnalCancerHighRisk = msmAndAge || hivRoute || immunoRoute || sh.HPVPrecancerHistory

	facts.HPVExposureBand = hpvExposureBand(sh, cfg)
	return facts
}

func hpvExposureBand(sh standardize.SexualHealth, cfg ruleset.SexualHealthConfig) string {
	higher := toSet(cfg.LifetimePartnersHigher)
	medium := toSet(cfg.LifetimePartnersMedium)
	recentHigher := toSet(cfg.RecentPartnersHigher)

	if higher[sh.LifetimePartners] || sh.SexWork || (sh.AnalReceptive && recentHigher[sh.RecentPartners]) {
		return "Higher"
	}
	if medium[sh.LifetimePartners] || recentHigher[sh.RecentPartners] || sh.AnalReceptive {
		return "Medium"
	}
	return "Low"
}
