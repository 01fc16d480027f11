package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveActivity computes weekly IPAQ MET-minutes, the IPAQ category, and
// WHO-2020 guideline compliance (a minutes-only rule where vigorous minutes
// count double toward the moderate-equivalent total).
func deriveActivity(act standardize.Activity, cfg ruleset.ActivityConfig) *ActivityFacts {
	if act.VigorousDays == nil && act.ModerateDays == nil && act.WalkingDays == nil {
		return nil
	}

	vigDays, vigMin := intOrZero(act.VigorousDays), intOrZero(act.VigorousMin)
	modDays, modMin := intOrZero(act.ModerateDays), intOrZero(act.ModerateMin)
	walkDays, walkMin := intOrZero(act.WalkingDays), intOrZero(act.WalkingMin)

	vigMET := cfg.VigorousMET * float64(vigMin) * float64(vigDays)
	modMET := cfg.ModerateMET * float64(modMin) * float64(modDays)
	walkMET := cfg.WalkingMET * float64(walkMin) * float64(walkDays)
	total := round2(vigMET + modMET + walkMET)

	facts := &ActivityFacts{METMinutes: &total, SittingMin: act.SittingMin}
	facts.Category = ipaqCategory(vigDays, vigMin, modDays, modMin, walkDays, walkMin, vigMET, total, cfg)

	vigWeekly := vigMin * vigDays
	modEquivalent := modMin*modDays + walkMin*walkDays + 2*vigWeekly
	compliant := vigWeekly >= cfg.WHOVigorousMin || modEquivalent >= cfg.WHOModerateMin
	facts.WHO2020Compliant = &compliant
	return facts
}

func ipaqCategory(vigDays, vigMin, modDays, modMin, walkDays, walkMin int, vigMET, totalMET float64, cfg ruleset.ActivityConfig) string {
	anyDays := vigDays + modDays + walkDays

	if (vigDays >= cfg.HighVigorousDays && vigMET >= cfg.HighVigorousMET) ||
		(anyDays >= cfg.HighAnyDays && totalMET >= cfg.HighAnyMET) {
		return "High"
	}
	if (vigDays >= cfg.ModVigorousDays && vigMin >= cfg.ModVigorousMinDay) ||
		(modDays+walkDays >= cfg.ModModerateDays && (modMin >= cfg.ModModerateMinDay || walkMin >= cfg.ModModerateMinDay)) ||
		(anyDays >= cfg.ModAnyDays && totalMET >= cfg.ModAnyMET) {
		return "Moderate"
	}
	return "Low"
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
