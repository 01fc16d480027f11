package derive

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// Engine composes the rule groups over a canonical profile. It reads only the
// immutable ruleset and its own input, so one Engine is safe for concurrent
// use across request handlers.
type Engine struct {
	rs  *ruleset.Ruleset
	log zerolog.Logger
	now func() time.Time
}

func NewEngine(rs *ruleset.Ruleset, log zerolog.Logger) *Engine {
	return &Engine{rs: rs, log: log, now: time.Now}
}

// NewEngineAt fixes the engine clock, used by tests pinning age and interval
// arithmetic.
func NewEngineAt(rs *ruleset.Ruleset, log zerolog.Logger, now func() time.Time) *Engine {
	return &Engine{rs: rs, log: log, now: now}
}

// CalculateAll runs every rule group and merges their outputs. A panic inside
// one group is logged with the group name and must not suppress the facts the
// other groups computed; the call never propagates an error to the caller.
func (e *Engine) CalculateAll(p *standardize.Profile) *DerivedFacts {
	facts := &DerivedFacts{Meta: Meta{Version: e.rs.Version}}
	if p == nil {
		return facts
	}
	now := e.now()
	year := now.Year()

	e.runGroup("demographics", func() {
		facts.Demographics = deriveDemographics(p.Core, e.rs.Demographics, now)
	})

	var age *int
	if facts.Demographics != nil {
		age = facts.Demographics.Age
	}

	e.runGroup("smoking", func() {
		facts.Smoking = deriveSmoking(p.Core.SmokingStatus, p.Advanced.SmokingDetail, e.rs.Smoking, now)
	})
	e.runGroup("organs", func() {
		facts.Organs = deriveOrgans(p.Advanced, p.Core.SexAtBirth, e.rs.Organs)
	})
	e.runGroup("family", func() {
		facts.Family = deriveFamily(p.Advanced.Family, e.rs.Family)
	})
	e.runGroup("occupational", func() {
		facts.Occupational = deriveOccupational(p.Advanced.Jobs, e.rs.Occupational)
	})
	e.runGroup("environment", func() {
		occLung := facts.Occupational != nil && facts.Occupational.Flags["lung"]
		facts.Environment = deriveEnvironment(p.Advanced.Environment, occLung, e.rs.Environment)
	})
	e.runGroup("sexual_health", func() {
		facts.SexualHealth = deriveSexualHealth(p.Advanced.SexualHealth, p.Core.SexAtBirth, age, e.rs.SexualHealth)
	})
	e.runGroup("alcohol", func() {
		facts.Alcohol = deriveAlcohol(p.Core.AlcoholAUDIT, p.Core.DrinksPerWeek, p.Core.SexAtBirth, e.rs.Alcohol)
	})
	e.runGroup("activity", func() {
		facts.Activity = deriveActivity(p.Core.Activity, e.rs.Activity)
	})
	e.runGroup("diet", func() {
		facts.Diet = deriveDiet(p.Core.Diet, e.rs.Diet)
	})
	e.runGroup("genetics", func() {
		facts.Genetics = deriveGenetics(p.Advanced.Genetics, e.rs.Genetics)
	})
	e.runGroup("personal", func() {
		geneticFlag := facts.Genetics != nil && (facts.Genetics.HighPenetrance || facts.Genetics.LynchSyndrome || facts.Genetics.Polyposis)
		facts.Personal = derivePersonal(p.Advanced, geneticFlag, e.rs.Personal)
	})
	e.runGroup("surveillance", func() {
		facts.Surveillance = deriveSurveillance(p.Advanced.Illnesses, e.rs.Surveillance, year)
	})
	e.runGroup("screening", func() {
		elevatedCRC := facts.Surveillance != nil && facts.Surveillance.IBDPSCColorectal
		facts.Screening = deriveScreening(p.Advanced.ScreeningImmunization, age, p.Core.SexAtBirth, facts.Organs, elevatedCRC, e.rs.Screening, year)
	})
	e.runGroup("immunization", func() {
		facts.Immunization = deriveImmunization(p.Advanced.ScreeningImmunization, age, p.Advanced.Illnesses, e.rs.Immunization, year)
	})

	return facts
}

func (e *Engine) runGroup(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			var stack [4096]byte
			n := runtime.Stack(stack[:], false)
			e.log.Error().
				Str("rule_group", name).
				Interface("panic", r).
				Str("stack", string(stack[:n])).
				Msg("derive: rule group failed")
		}
	}()
	fn()
}
