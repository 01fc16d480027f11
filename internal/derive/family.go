package derive

import (
	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// relativeDx is one diagnosis in one relative, after multi-primary expansion.
type relativeDx struct {
	relation string
	site     string
	ageDx    *int
	fdr      bool
	maternal bool
	paternal bool
	blood    bool
	male     bool
}

// deriveFamily computes per-site FDR/SDR counts, youngest diagnosis ages, and
// the composite syndrome pattern flags.
func deriveFamily(family []standardize.FamilyMember, cfg ruleset.FamilyConfig) *FamilyFacts {
	facts := &FamilyFacts{Sites: map[string]SiteCounts{}}
	if len(family) == 0 {
		// No family history reported: boolean patterns default false, which
		// is itself meaningful here.
		return facts
	}
	facts.AnyHistory = true

	dxs := expandRelatives(family, cfg)

	siteSet := map[string]bool{}
	for _, site := range cfg.Sites {
		siteSet[site] = true
	}
	childhoodSet := toSet(cfg.ChildhoodSites)
	lynchSet := toSet(cfg.LynchSites)

	for _, dx := range dxs {
		site := dx.site
		if childhoodSet[site] {
			site = "childhood"
		}
		if !siteSet[site] {
			continue
		}
		counts := facts.Sites[site]
		if dx.fdr {
			counts.FDRCount++
		} else {
			counts.SDRCount++
		}
		if dx.ageDx != nil && (counts.YoungestDx == nil || *dx.ageDx < *counts.YoungestDx) {
			age := *dx.ageDx
			counts.YoungestDx = &age
		}
		facts.Sites[site] = counts
	}

	facts.PatternBreastOvarian = breastOvarianCluster(dxs, cfg)
	facts.PatternColorectal = colorectalCluster(dxs, cfg, lynchSet)
	facts.PatternChildhoodRare = childhoodRareCluster(dxs, cfg, childhoodSet)
	facts.LynchPattern = lynchPattern(dxs, cfg, lynchSet)
	return facts
}

// expandRelatives flattens multi-primary relatives into individual diagnoses
// and resolves degree, side, and sex per relation. Nuclear relatives
// (siblings/children) count on both sides because their inheritance path is
// unknown.
func expandRelatives(family []standardize.FamilyMember, cfg ruleset.FamilyConfig) []relativeDx {
	fdrSet := toSet(cfg.FDRRelations)
	nuclearSet := toSet(cfg.NuclearRelations)
	maternalSet := toSet(cfg.MaternalRelations)
	paternalSet := toSet(cfg.PaternalRelations)
	maleSet := toSet(cfg.MaleRelations)

	var dxs []relativeDx
	for _, m := range family {
		base := relativeDx{
			relation: m.Relation,
			fdr:      fdrSet[m.Relation],
			blood:    m.IsBloodRelated == nil || *m.IsBloodRelated,
			male:     maleSet[m.Relation],
		}
		switch m.Side {
		case "maternal":
			base.maternal = true
		case "paternal":
			base.paternal = true
		default:
			base.maternal = maternalSet[m.Relation]
			base.paternal = paternalSet[m.Relation]
		}
		if nuclearSet[m.Relation] {
			base.maternal, base.paternal = true, true
		}

		if m.CancerType != "" {
			dx := base
			dx.site = m.CancerType
			dx.ageDx = m.AgeDx
			dxs = append(dxs, dx)
		}
		for _, extra := range m.Cancers {
			if extra.Type == "" || extra.Type == m.CancerType {
				continue
			}
			dx := base
			dx.site = extra.Type
			dx.ageDx = extra.AgeDx
			dxs = append(dxs, dx)
		}
	}
	return dxs
}

// breastOvarianCluster: >=2 breast diagnoses with one under the early-onset
// age, any ovarian, any male breast cancer, or breast co-occurring with
// pancreatic or prostate.
func breastOvarianCluster(dxs []relativeDx, cfg ruleset.FamilyConfig) bool {
	breastCount, breastEarly, breast := 0, false, false
	ovarian, maleBreast, pancreatic, prostate := false, false, false, false
	for _, dx := range dxs {
		if !dx.blood {
			continue
		}
		switch dx.site {
		case "breast":
			breast = true
			breastCount++
			if dx.ageDx != nil && *dx.ageDx < cfg.BreastEarlyAge {
				breastEarly = true
			}
			if dx.male {
				maleBreast = true
			}
		case "ovarian":
			ovarian = true
		case "pancreatic":
			pancreatic = true
		case "prostate":
			prostate = true
		}
	}
	if breastCount >= cfg.BreastClusterCount && breastEarly {
		return true
	}
	if ovarian || maleBreast {
		return true
	}
	return breast && (pancreatic || prostate)
}

// colorectalCluster: FDR with CRC under the early-onset age, >=2 same-side
// CRC, or the same-side mix rule (CRC plus another Lynch-associated site on
// the same side).
func colorectalCluster(dxs []relativeDx, cfg ruleset.FamilyConfig, lynchSet map[string]bool) bool {
	for _, dx := range dxs {
		if dx.blood && dx.fdr && dx.site == "colorectal" && dx.ageDx != nil && *dx.ageDx < cfg.EarlyOnsetAge {
			return true
		}
	}
	if sideCount(dxs, func(dx relativeDx) bool { return dx.site == "colorectal" }) >= cfg.SameSideCRCCount {
		return true
	}
	return mixRule(dxs, lynchSet)
}

// mixRule: colorectal cancer co-occurring with a different Lynch-associated
// site on the same side of the family.
func mixRule(dxs []relativeDx, lynchSet map[string]bool) bool {
	for _, side := range []string{"maternal", "paternal"} {
		crc, otherLynch := false, false
		for _, dx := range dxs {
			if !dx.blood || !onSide(dx, side) {
				continue
			}
			if dx.site == "colorectal" {
				crc = true
			} else if lynchSet[dx.site] {
				otherLynch = true
			}
		}
		if crc && otherLynch {
			return true
		}
	}
	return false
}

// childhoodRareCluster: >=2 blood relatives with sarcoma/CNS/leukemia/
// childhood cancers AND (any dx under 18 OR >=2 dx under 30).
func childhoodRareCluster(dxs []relativeDx, cfg ruleset.FamilyConfig, childhoodSet map[string]bool) bool {
	count, anyChild, youngAdult := 0, false, 0
	for _, dx := range dxs {
		if !dx.blood || !childhoodSet[dx.site] {
			continue
		}
		count++
		if dx.ageDx != nil {
			if *dx.ageDx < cfg.ChildhoodDxAge {
				anyChild = true
			}
			if *dx.ageDx < cfg.YoungAdultDxAge {
				youngAdult++
			}
		}
	}
	return count >= 2 && (anyChild || youngAdult >= 2)
}

// lynchPattern: Amsterdam proxy (>=3 Lynch-associated cancers same side), the
// mix rule, or an FDR under the early-onset age with a Lynch-associated site.
func lynchPattern(dxs []relativeDx, cfg ruleset.FamilyConfig, lynchSet map[string]bool) bool {
	if sideCount(dxs, func(dx relativeDx) bool { return lynchSet[dx.site] }) >= cfg.AmsterdamCount {
		return true
	}
	if mixRule(dxs, lynchSet) {
		return true
	}
	for _, dx := range dxs {
		if dx.blood && dx.fdr && lynchSet[dx.site] && dx.ageDx != nil && *dx.ageDx < cfg.EarlyOnsetAge {
			return true
		}
	}
	return false
}

// sideCount returns the larger same-side tally of matching diagnoses.
func sideCount(dxs []relativeDx, match func(relativeDx) bool) int {
	maternal, paternal := 0, 0
	for _, dx := range dxs {
		if !dx.blood || !match(dx) {
			continue
		}
		if dx.maternal {
			maternal++
		}
		if dx.paternal {
			paternal++
		}
	}
	if maternal > paternal {
		return maternal
	}
	return paternal
}

func onSide(dx relativeDx, side string) bool {
	if side == "maternal" {
		return dx.maternal
	}
	return dx.paternal
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
