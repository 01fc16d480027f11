// Package derive computes the clinical derived-facts set from a canonical
// profile. Each rule group is a pure function over its slice of the profile
// and the ruleset; the engine composes them and flattens the result into the
// dotted-namespace wire map consumed by downstream collaborators.
package derive

// DerivedFacts is the strongly-typed result, grouped by domain. A nil group
// means the group had nothing to say (preconditions unsatisfiable); within a
// group, nil pointer fields are omitted from the wire map.
type DerivedFacts struct {
	Meta         Meta                `json:"meta"`
	Demographics *DemographicsFacts  `json:"demographics,omitempty"`
	Smoking      *SmokingFacts       `json:"smoking,omitempty"`
	Organs       *OrganFacts         `json:"organs,omitempty"`
	Family       *FamilyFacts        `json:"family,omitempty"`
	Occupational *OccupationalFacts  `json:"occupational,omitempty"`
	Environment  *EnvironmentFacts   `json:"environment,omitempty"`
	SexualHealth *SexualHealthFacts  `json:"sexual_health,omitempty"`
	Alcohol      *AlcoholFacts       `json:"alcohol,omitempty"`
	Activity     *ActivityFacts      `json:"activity,omitempty"`
	Diet         *DietFacts          `json:"diet,omitempty"`
	Genetics     *GeneticsFacts      `json:"genetics,omitempty"`
	Personal     *PersonalFacts      `json:"personal,omitempty"`
	Surveillance *SurveillanceFacts  `json:"surveillance,omitempty"`
	Screening    *ScreeningFacts     `json:"screening,omitempty"`
	Immunization *ImmunizationFacts  `json:"immunization,omitempty"`
}

// Meta stamps every output with the clinical ruleset version it was computed
// under.
type Meta struct {
	Version string `json:"version"`
}

type DemographicsFacts struct {
	Age         *int     `json:"age,omitempty"`
	AgeBand     string   `json:"age_band,omitempty"`
	AdultGateOK *bool    `json:"adult_gate_ok,omitempty"`
	BMI         *float64 `json:"bmi,omitempty"`
	Obesity     *bool    `json:"obesity,omitempty"`
}

type SmokingFacts struct {
	Status        string   `json:"status,omitempty"`
	PackYears     *float64 `json:"pack_years,omitempty"`
	BrinkmanIndex *float64 `json:"brinkman_index,omitempty"`
	QuitYears     *int     `json:"quit_years,omitempty"`
	SHS           bool     `json:"shs"`
}

type OrganFacts struct {
	Inventory []string `json:"inventory"`
}

// SiteCounts aggregates one cancer site across the reported pedigree.
type SiteCounts struct {
	FDRCount  int  `json:"fdr_count"`
	SDRCount  int  `json:"sdr_count"`
	YoungestDx *int `json:"youngest_dx,omitempty"`
}

type FamilyFacts struct {
	AnyHistory           bool                  `json:"any_history"`
	Sites                map[string]SiteCounts `json:"sites,omitempty"`
	PatternBreastOvarian bool                  `json:"pattern_breast_ovarian"`
	PatternColorectal    bool                  `json:"pattern_colorectal_cluster"`
	PatternChildhoodRare bool                  `json:"pattern_childhood_rare"`
	LynchPattern         bool                  `json:"lynch_pattern"`
}

type OccupationalFacts struct {
	Flags       map[string]bool `json:"flags"`
	AnyHighRisk bool            `json:"any_high_risk"`
}

type EnvironmentFacts struct {
	AirPollution  bool `json:"air_pollution"`
	Asbestos      bool `json:"asbestos"`
	WellWater     bool `json:"well_water"`
	Pesticide     bool `json:"pesticide"`
	UV            bool `json:"uv"`
	SolidFuel     bool `json:"solid_fuel"`
	ExposureCount int  `json:"exposure_count"`
}

type SexualHealthFacts struct {
	MSM                bool   `json:"msm"`
	AnalCancerHighRisk bool   `json:"anal_cancer_high_risk"`
	HPVExposureBand    string `json:"hpv_exposure_band,omitempty"`
}

type AlcoholFacts struct {
	Score        *int     `json:"score,omitempty"`
	Band         string   `json:"band,omitempty"`
	GramsPerWeek *float64 `json:"grams_week,omitempty"`
}

type ActivityFacts struct {
	METMinutes       *float64 `json:"met_minutes,omitempty"`
	Category         string   `json:"category,omitempty"`
	WHO2020Compliant *bool    `json:"who_2020_compliant,omitempty"`
	SittingMin       *int     `json:"sitting_min,omitempty"`
}

type DietFacts struct {
	Score      *float64           `json:"score,omitempty"`
	Band       string             `json:"band,omitempty"`
	Components map[string]float64 `json:"components,omitempty"`
}

type GeneticsFacts struct {
	Tested             bool     `json:"tested"`
	HighPenetrance     bool     `json:"high_penetrance"`
	ModeratePenetrance bool     `json:"moderate_penetrance"`
	LynchSyndrome      bool     `json:"lynch_syndrome"`
	Polyposis          bool     `json:"polyposis"`
	PRSElevated        bool     `json:"prs_elevated"`
	MatchedGenes       []string `json:"matched_genes,omitempty"`
}

type PersonalFacts struct {
	AnyHistory                bool `json:"any_history"`
	CurrentTreatment          bool `json:"current_treatment"`
	MultiplePrimaries         bool `json:"multiple_primaries"`
	ColorectalHistory         bool `json:"colorectal_history"`
	ChildhoodSurvivor         bool `json:"childhood_survivor"`
	YoungOnsetBreastGyn       bool `json:"young_onset_breast_gyn"`
	ChestRTBefore30           bool `json:"chest_rt_before_30"`
	PelvicRT                  bool `json:"pelvic_rt"`
	HSCTSurvivor              bool `json:"hsct_survivor"`
	EndocrineFiveYears        bool `json:"endocrine_5y"`
	ProphylacticSurgery       bool `json:"prophylactic_surgery"`
	HereditaryPatternPossible bool `json:"hereditary_pattern_possible"`
}

type SurveillanceFacts struct {
	HCCCandidate     bool `json:"hcc_candidate"`
	IBDPSCColorectal bool `json:"ibd_psc_crc"`
	Barretts         bool `json:"barretts"`
	LymphomaRisk     bool `json:"lymphoma_risk"`
}

type ScreeningFacts struct {
	// Program key -> due flag; only age/sex-eligible programs appear.
	Due        map[string]bool `json:"due"`
	AnyOverdue bool            `json:"any_overdue"`
}

type ImmunizationFacts struct {
	HPVGap          *bool `json:"hpv_gap,omitempty"`
	CovidBoosterGap *bool `json:"covid_booster_gap,omitempty"`
	TetanusGap      *bool `json:"tetanus_gap,omitempty"`
	FluGap          *bool `json:"flu_gap,omitempty"`
	PneumoGap       *bool `json:"pneumo_gap,omitempty"`
	ZosterGap       *bool `json:"zoster_gap,omitempty"`
	AnyGap          bool  `json:"any_gap"`
}

// Flatten produces the dotted-namespace wire map. Absent facts are omitted,
// never emitted as null.
func (d *DerivedFacts) Flatten() map[string]any {
	out := map[string]any{"meta.version": d.Meta.Version}

	if g := d.Demographics; g != nil {
		putInt(out, "demo.age", g.Age)
		putStr(out, "demo.age_band", g.AgeBand)
		putBool(out, "demo.adult_gate_ok", g.AdultGateOK)
		if g.BMI != nil {
			bmi := map[string]any{"value": *g.BMI}
			if g.Obesity != nil {
				bmi["obese"] = *g.Obesity
			}
			out["anthro.bmi"] = bmi
		}
	}
	if g := d.Smoking; g != nil {
		putStr(out, "smoke.status", g.Status)
		putFloat(out, "smoke.pack_years", g.PackYears)
		putFloat(out, "smoke.brinkman_index", g.BrinkmanIndex)
		putInt(out, "smoke.quit_years", g.QuitYears)
		out["smoke.shs"] = g.SHS
	}
	if g := d.Organs; g != nil {
		out["organ.inventory"] = g.Inventory
	}
	if g := d.Family; g != nil {
		out["famhx.any"] = g.AnyHistory
		for site, counts := range g.Sites {
			out["famhx."+site+".fdr_count"] = counts.FDRCount
			out["famhx."+site+".sdr_count"] = counts.SDRCount
			putInt(out, "famhx."+site+".youngest_dx", counts.YoungestDx)
		}
		out["famhx.pattern_breast_ovarian"] = g.PatternBreastOvarian
		out["famhx.pattern_colorectal_cluster"] = g.PatternColorectal
		out["famhx.pattern_childhood_rare"] = g.PatternChildhoodRare
		out["famhx.lynch_pattern"] = g.LynchPattern
	}
	if g := d.Occupational; g != nil {
		for key, fired := range g.Flags {
			out["occ."+key+"_flag"] = fired
		}
		out["occ.any_high_risk"] = g.AnyHighRisk
	}
	if g := d.Environment; g != nil {
		out["env.air_pollution"] = g.AirPollution
		out["env.asbestos"] = g.Asbestos
		out["env.well_water"] = g.WellWater
		out["env.pesticide"] = g.Pesticide
		out["env.uv"] = g.UV
		out["env.solid_fuel"] = g.SolidFuel
		out["env.exposure_count"] = g.ExposureCount
	}
	if g := d.SexualHealth; g != nil {
		out["sexual.msm"] = g.MSM
		out["sexual.anal_cancer_high_risk"] = g.AnalCancerHighRisk
		putStr(out, "sexual.hpv_exposure_band", g.HPVExposureBand)
	}
	if g := d.Alcohol; g != nil {
		if g.Score != nil {
			out["alcohol.audit_c"] = map[string]any{"score": *g.Score, "band": g.Band}
		}
		putFloat(out, "alcohol.grams_week", g.GramsPerWeek)
	}
	if g := d.Activity; g != nil && g.METMinutes != nil {
		ipaq := map[string]any{"met_minutes": *g.METMinutes, "category": g.Category}
		if g.WHO2020Compliant != nil {
			ipaq["who_2020_compliant"] = *g.WHO2020Compliant
		}
		if g.SittingMin != nil {
			ipaq["sitting_min"] = *g.SittingMin
		}
		out["activity.ipaq"] = ipaq
	}
	if g := d.Diet; g != nil && g.Score != nil {
		out["diet.wcrf"] = map[string]any{
			"score":      *g.Score,
			"band":       g.Band,
			"components": g.Components,
		}
	}
	if g := d.Genetics; g != nil {
		out["gen.tested"] = g.Tested
		out["gen.high_penetrance"] = g.HighPenetrance
		out["gen.moderate_penetrance"] = g.ModeratePenetrance
		out["gen.lynch_syndrome"] = g.LynchSyndrome
		out["gen.polyposis"] = g.Polyposis
		out["gen.prs_elevated"] = g.PRSElevated
	}
	if g := d.Personal; g != nil {
		out["pmh.any_history"] = g.AnyHistory
		out["pmh.current_treatment"] = g.CurrentTreatment
		out["pmh.multiple_primaries"] = g.MultiplePrimaries
		out["pmh.crc_history"] = g.ColorectalHistory
		out["pmh.childhood_survivor"] = g.ChildhoodSurvivor
		out["pmh.young_onset_breast_gyn"] = g.YoungOnsetBreastGyn
		out["pmh.chest_rt_before_30"] = g.ChestRTBefore30
		out["pmh.pelvic_rt"] = g.PelvicRT
		out["pmh.hsct_survivor"] = g.HSCTSurvivor
		out["pmh.endocrine_5y"] = g.EndocrineFiveYears
		out["pmh.prophylactic_surgery"] = g.ProphylacticSurgery
		out["pmh.hereditary_pattern_possible"] = g.HereditaryPatternPossible
	}
	if g := d.Surveillance; g != nil {
		out["surv.hcc_candidate"] = g.HCCCandidate
		out["surv.ibd_psc_crc"] = g.IBDPSCColorectal
		out["surv.barretts"] = g.Barretts
		out["surv.lymphoma_risk"] = g.LymphomaRisk
	}
	if g := d.Screening; g != nil {
		for program, due := range g.Due {
			out["screen."+program+"_due"] = due
		}
		out["screen.any_overdue"] = g.AnyOverdue
	}
	if g := d.Immunization; g != nil {
		putBool(out, "imm.hpv_gap", g.HPVGap)
		putBool(out, "imm.covid_booster_gap", g.CovidBoosterGap)
		putBool(out, "imm.tetanus_gap", g.TetanusGap)
		putBool(out, "imm.flu_gap", g.FluGap)
		putBool(out, "imm.pneumo_gap", g.PneumoGap)
		putBool(out, "imm.zoster_gap", g.ZosterGap)
		out["imm.any_gap"] = g.AnyGap
	}
	return out
}

func putInt(m map[string]any, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func putFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

func putBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func putStr(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}
