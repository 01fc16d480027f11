package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveEnvironment applies the independent residential/behavioral exposure
// threshold rules and counts how many fire. occLungRisk folds the
// occupational lung category into the aggregate count.
func deriveEnvironment(env standardize.Environment, occLungRisk bool, cfg ruleset.EnvironmentConfig) *EnvironmentFacts {
	facts := &EnvironmentFacts{}

	facts.AirPollution = env.AirPollutionYears != nil && *env.AirPollutionYears >= cfg.AirPollutionMinYears
	facts.Asbestos = env.AsbestosDisturbance == "once" || env.AsbestosDisturbance == "multiple"
	facts.WellWater = env.WellWaterNotice == "ongoing"
	facts.Pesticide = env.PesticideFreqPerYear != nil && *env.PesticideFreqPerYear >= cfg.PesticideMinFreq &&
		env.PesticideYears != nil && *env.PesticideYears >= cfg.PesticideMinYears &&
		env.PesticideProtection != "almost_always"
	facts.UV = (env.ChildSunburns != nil && *env.ChildSunburns >= cfg.ChildSunburnMin) ||
		(env.AdultSunburns != nil && *env.AdultSunburns >= cfg.AdultSunburnMin) ||
		env.SunbedUse == "frequent" || env.SunbedUse == "occasional"
	facts.SolidFuel = env.SolidFuelYears != nil && *env.SolidFuelYears >= cfg.SolidFuelMinYears

	for _, fired := range []bool{facts.AirPollution, facts.Asbestos, facts.WellWater, facts.Pesticide, facts.UV, facts.SolidFuel, occLungRisk} {
		if fired {
			facts.ExposureCount++
		}
	}
	return facts
}
