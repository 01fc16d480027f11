package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveOccupational evaluates each hazard category against the job history.
// A category fires when a job carries one of its agents (by hazard code or job
// title) and either meets the category's minimum years or, where allowed, is
// the current job. The aggregate flag also fires on cumulative years across
// hazard-bearing jobs.
func deriveOccupational(jobs []standardize.Job, cfg ruleset.OccupationalConfig) *OccupationalFacts {
	if len(jobs) == 0 {
		return nil
	}
	facts := &OccupationalFacts{Flags: map[string]bool{}}

	for _, cat := range cfg.Categories {
		agents := toSet(cat.Agents)
		fired := false
		for _, job := range jobs {
			if !jobCarries(job, agents) {
				continue
			}
			years := 0.0
			if job.Years != nil {
				years = *job.Years
			}
			if years > cat.MinYears || (cat.CurrentJobFires && job.Current) {
				fired = true
				break
			}
		}
		facts.Flags[cat.Key] = fired
		if fired {
			facts.AnyHighRisk = true
		}
	}

	if !facts.AnyHighRisk {
		allAgents := map[string]bool{}
		for _, cat := range cfg.Categories {
			for _, a := range cat.Agents {
				allAgents[a] = true
			}
		}
		cumulative := 0.0
		for _, job := range jobs {
			if job.Years != nil && jobCarries(job, allAgents) {
				cumulative += *job.Years
			}
		}
		if cumulative >= cfg.GenericMinYears {
			facts.AnyHighRisk = true
		}
	}
	return facts
}

func jobCarries(job standardize.Job, agents map[string]bool) bool {
	for _, exp := range job.Exposures {
		if agents[exp] {
			return true
		}
	}
	return agents[job.Title]
}
