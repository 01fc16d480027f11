package derive

import (
	"math"
	"strconv"
	"time"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveDemographics computes age, age band, the adult gate, and BMI.
func deriveDemographics(core standardize.Core, cfg ruleset.DemographicsConfig, now time.Time) *DemographicsFacts {
	facts := &DemographicsFacts{}

	if age := ageFromDOB(core.DOB, now); age != nil {
		facts.Age = age
		facts.AgeBand = ageBand(*age, cfg.AdultAge)
		adult := *age >= cfg.AdultAge
		facts.AdultGateOK = &adult
	}

	if core.HeightCM != nil && core.WeightKG != nil && *core.HeightCM > 0 {
		heightM := *core.HeightCM / 100
		bmi := math.Round(*core.WeightKG/(heightM*heightM)*100) / 100
		facts.BMI = &bmi
		obese := bmi >= cfg.ObesityBMI
		facts.Obesity = &obese
	}

	if facts.Age == nil && facts.BMI == nil {
		return nil
	}
	return facts
}

// ageFromDOB handles both full ISO dates (calendar subtraction) and bare
// years. Bare years are anchored at July 1 so the result is stable across the
// year boundary.
func ageFromDOB(dob string, now time.Time) *int {
	if dob == "" {
		return nil
	}
	var birth time.Time
	if t, err := time.Parse("2006-01-02", dob); err == nil {
		birth = t
	} else if year, err := strconv.Atoi(dob); err == nil && year >= 1900 && year <= now.Year() {
		birth = time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	} else {
		return nil
	}

	age := now.Year() - birth.Year()
	anniversary := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		age--
	}
	if age < 0 || age > 130 {
		return nil
	}
	return &age
}

func ageBand(age, adultAge int) string {
	switch {
	case age < adultAge:
		return "<18"
	case age < 30:
		return "18-29"
	case age < 40:
		return "30-39"
	case age < 50:
		return "40-49"
	case age < 60:
		return "50-59"
	case age < 70:
		return "60-69"
	case age < 80:
		return "70-79"
	default:
		return "80+"
	}
}
