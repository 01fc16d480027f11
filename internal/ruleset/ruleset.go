// Package ruleset holds the versioned clinical threshold and code-table bundle
// consumed by the derived-variables engine. The bundle is data only: rule logic
// lives in code, every threshold and agent/gene/site list lives here.
package ruleset

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

//go:embed default_ruleset.json
var defaultBundle []byte

// Ruleset is loaded once at process start and treated as read-only afterwards.
type Ruleset struct {
	Version string `mapstructure:"version" json:"version"`

	Demographics DemographicsConfig `mapstructure:"demographics" json:"demographics"`
	Smoking      SmokingConfig      `mapstructure:"smoking" json:"smoking"`
	Organs       OrganConfig        `mapstructure:"organs" json:"organs"`
	Family       FamilyConfig       `mapstructure:"family" json:"family"`
	Occupational OccupationalConfig `mapstructure:"occupational" json:"occupational"`
	Environment  EnvironmentConfig  `mapstructure:"environment" json:"environment"`
	SexualHealth SexualHealthConfig `mapstructure:"sexual_health" json:"sexual_health"`
	Alcohol      AlcoholConfig      `mapstructure:"alcohol" json:"alcohol"`
	Activity     ActivityConfig     `mapstructure:"activity" json:"activity"`
	Diet         DietConfig         `mapstructure:"diet" json:"diet"`
	Genetics     GeneticsConfig     `mapstructure:"genetics" json:"genetics"`
	Personal     PersonalConfig     `mapstructure:"personal" json:"personal"`
	Surveillance SurveillanceConfig `mapstructure:"surveillance" json:"surveillance"`
	Screening    ScreeningConfig    `mapstructure:"screening" json:"screening"`
	Immunization ImmunizationConfig `mapstructure:"immunization" json:"immunization"`
}

type DemographicsConfig struct {
	AdultAge   int     `mapstructure:"adult_age" json:"adult_age"`
	ObesityBMI float64 `mapstructure:"obesity_bmi" json:"obesity_bmi"`
}

type SmokingConfig struct {
	// Cigarettes per pack used to normalize intensity into pack-years.
	PackSize float64 `mapstructure:"pack_size" json:"pack_size"`
}

type OrganConfig struct {
	// Sex-at-birth defaults, keyed by canonical sex code.
	Defaults map[string][]string `mapstructure:"defaults" json:"defaults"`
	// Cancer type code -> organs removed when that cancer was treated surgically.
	CancerOrgans map[string][]string `mapstructure:"cancer_organs" json:"cancer_organs"`
	// Prophylactic surgery code -> organs removed.
	SurgeryOrgans map[string][]string `mapstructure:"surgery_organs" json:"surgery_organs"`
}

type FamilyConfig struct {
	Sites              []string `mapstructure:"sites" json:"sites"`
	LynchSites         []string `mapstructure:"lynch_sites" json:"lynch_sites"`
	ChildhoodSites     []string `mapstructure:"childhood_sites" json:"childhood_sites"`
	FDRRelations       []string `mapstructure:"fdr_relations" json:"fdr_relations"`
	NuclearRelations   []string `mapstructure:"nuclear_relations" json:"nuclear_relations"`
	MaternalRelations  []string `mapstructure:"maternal_relations" json:"maternal_relations"`
	PaternalRelations  []string `mapstructure:"paternal_relations" json:"paternal_relations"`
	MaleRelations      []string `mapstructure:"male_relations" json:"male_relations"`
	EarlyOnsetAge      int      `mapstructure:"early_onset_age" json:"early_onset_age"`
	BreastEarlyAge     int      `mapstructure:"breast_early_age" json:"breast_early_age"`
	ChildhoodDxAge     int      `mapstructure:"childhood_dx_age" json:"childhood_dx_age"`
	YoungAdultDxAge    int      `mapstructure:"young_adult_dx_age" json:"young_adult_dx_age"`
	AmsterdamCount     int      `mapstructure:"amsterdam_count" json:"amsterdam_count"`
	SameSideCRCCount   int      `mapstructure:"same_side_crc_count" json:"same_side_crc_count"`
	BreastClusterCount int      `mapstructure:"breast_cluster_count" json:"breast_cluster_count"`
}

type HazardCategory struct {
	Key             string   `mapstructure:"key" json:"key"`
	Agents          []string `mapstructure:"agents" json:"agents"`
	MinYears        float64  `mapstructure:"min_years" json:"min_years"`
	CurrentJobFires bool     `mapstructure:"current_job_fires" json:"current_job_fires"`
}

type OccupationalConfig struct {
	Categories      []HazardCategory `mapstructure:"categories" json:"categories"`
	GenericMinYears float64          `mapstructure:"generic_min_years" json:"generic_min_years"`
}

type EnvironmentConfig struct {
	AirPollutionMinYears int `mapstructure:"air_pollution_min_years" json:"air_pollution_min_years"`
	PesticideMinFreq     int `mapstructure:"pesticide_min_freq" json:"pesticide_min_freq"`
	PesticideMinYears    int `mapstructure:"pesticide_min_years" json:"pesticide_min_years"`
	ChildSunburnMin      int `mapstructure:"child_sunburn_min" json:"child_sunburn_min"`
	AdultSunburnMin      int `mapstructure:"adult_sunburn_min" json:"adult_sunburn_min"`
	SolidFuelMinYears    int `mapstructure:"solid_fuel_min_years" json:"solid_fuel_min_years"`
}

type SexualHealthConfig struct {
	MSMMinAge               int      `mapstructure:"msm_min_age" json:"msm_min_age"`
	LifetimePartnersHigher  []string `mapstructure:"lifetime_partners_higher" json:"lifetime_partners_higher"`
	LifetimePartnersMedium  []string `mapstructure:"lifetime_partners_medium" json:"lifetime_partners_medium"`
	RecentPartnersHigher    []string `mapstructure:"recent_partners_higher" json:"recent_partners_higher"`
	MalePartnerSelections   []string `mapstructure:"male_partner_selections" json:"male_partner_selections"`
}

type AlcoholConfig struct {
	FemaleBaseline  int       `mapstructure:"female_baseline" json:"female_baseline"`
	MaleBaseline    int       `mapstructure:"male_baseline" json:"male_baseline"`
	IncreasingScore int       `mapstructure:"increasing_score" json:"increasing_score"`
	HigherScore     int       `mapstructure:"higher_score" json:"higher_score"`
	DependenceScore int       `mapstructure:"dependence_score" json:"dependence_score"`
	GramsPerDrink   float64   `mapstructure:"grams_per_drink" json:"grams_per_drink"`
	// Indexed by AUDIT q1 answer (0-4): estimated drinking occasions per week.
	FreqPerWeek []float64 `mapstructure:"freq_per_week" json:"freq_per_week"`
	// Indexed by AUDIT q2 answer (0-4): estimated drinks per occasion.
	DrinksPerOccasion []float64 `mapstructure:"drinks_per_occasion" json:"drinks_per_occasion"`
}

type ActivityConfig struct {
	VigorousMET float64 `mapstructure:"vigorous_met" json:"vigorous_met"`
	ModerateMET float64 `mapstructure:"moderate_met" json:"moderate_met"`
	WalkingMET  float64 `mapstructure:"walking_met" json:"walking_met"`

	HighVigorousDays int     `mapstructure:"high_vigorous_days" json:"high_vigorous_days"`
	HighVigorousMET  float64 `mapstructure:"high_vigorous_met" json:"high_vigorous_met"`
	HighAnyDays      int     `mapstructure:"high_any_days" json:"high_any_days"`
	HighAnyMET       float64 `mapstructure:"high_any_met" json:"high_any_met"`

	ModVigorousDays   int     `mapstructure:"mod_vigorous_days" json:"mod_vigorous_days"`
	ModVigorousMinDay int     `mapstructure:"mod_vigorous_min_day" json:"mod_vigorous_min_day"`
	ModModerateDays   int     `mapstructure:"mod_moderate_days" json:"mod_moderate_days"`
	ModModerateMinDay int     `mapstructure:"mod_moderate_min_day" json:"mod_moderate_min_day"`
	ModAnyDays        int     `mapstructure:"mod_any_days" json:"mod_any_days"`
	ModAnyMET         float64 `mapstructure:"mod_any_met" json:"mod_any_met"`

	WHOVigorousMin int `mapstructure:"who_vigorous_min" json:"who_vigorous_min"`
	WHOModerateMin int `mapstructure:"who_moderate_min" json:"who_moderate_min"`
}

type DietConfig struct {
	// Frequency category -> ordinal rank, shared by every diet question.
	FrequencyRank map[string]int `mapstructure:"frequency_rank" json:"frequency_rank"`

	PlantFullVeg     int `mapstructure:"plant_full_veg" json:"plant_full_veg"`
	PlantFullGrains  int `mapstructure:"plant_full_grains" json:"plant_full_grains"`
	PlantHalfVeg     int `mapstructure:"plant_half_veg" json:"plant_half_veg"`
	FastFoodLowMax   int `mapstructure:"fast_food_low_max" json:"fast_food_low_max"`
	FastFoodHighMin  int `mapstructure:"fast_food_high_min" json:"fast_food_high_min"`
	RedMeatFullMax   int `mapstructure:"red_meat_full_max" json:"red_meat_full_max"`
	ProcessedFullMax int `mapstructure:"processed_full_max" json:"processed_full_max"`
	ProcessedHalfMax int `mapstructure:"processed_half_max" json:"processed_half_max"`
	SSBFullMax       int `mapstructure:"ssb_full_max" json:"ssb_full_max"`
	SSBHalfMax       int `mapstructure:"ssb_half_max" json:"ssb_half_max"`

	// UPF share answers treated as "high share of ultra-processed food".
	UPFHighShares []string `mapstructure:"upf_high_shares" json:"upf_high_shares"`

	BandModerateMin float64 `mapstructure:"band_moderate_min" json:"band_moderate_min"`
	BandHighMin     float64 `mapstructure:"band_high_min" json:"band_high_min"`
}

type GeneticsConfig struct {
	HighPenetrance []string `mapstructure:"high_penetrance" json:"high_penetrance"`
	Moderate       []string `mapstructure:"moderate" json:"moderate"`
	Lynch          []string `mapstructure:"lynch" json:"lynch"`
	Polyposis      []string `mapstructure:"polyposis" json:"polyposis"`
	PRSElevatedBands []string `mapstructure:"prs_elevated_bands" json:"prs_elevated_bands"`
}

type PersonalConfig struct {
	ChildhoodDxAge    int     `mapstructure:"childhood_dx_age" json:"childhood_dx_age"`
	YoungOnsetAge     int     `mapstructure:"young_onset_age" json:"young_onset_age"`
	ChestRTMaxAge     int     `mapstructure:"chest_rt_max_age" json:"chest_rt_max_age"`
	EndocrineMinYears float64 `mapstructure:"endocrine_min_years" json:"endocrine_min_years"`
	YoungOnsetSites   []string `mapstructure:"young_onset_sites" json:"young_onset_sites"`
}

type SurveillanceConfig struct {
	HCCIllnesses           []string `mapstructure:"hcc_illnesses" json:"hcc_illnesses"`
	IBDIllnesses           []string `mapstructure:"ibd_illnesses" json:"ibd_illnesses"`
	PSCIllnesses           []string `mapstructure:"psc_illnesses" json:"psc_illnesses"`
	BarrettIllnesses       []string `mapstructure:"barrett_illnesses" json:"barrett_illnesses"`
	ImmunosuppIllnesses    []string `mapstructure:"immunosupp_illnesses" json:"immunosupp_illnesses"`
	IBDMinYears            int      `mapstructure:"ibd_min_years" json:"ibd_min_years"`
	ImmunosuppMinYears     int      `mapstructure:"immunosupp_min_years" json:"immunosupp_min_years"`
}

type ScreeningConfig struct {
	// Test key -> average-risk repeat interval in years.
	Intervals map[string]int `mapstructure:"intervals" json:"intervals"`
	// Test key -> minimum age at which a never-screened person counts as due.
	StartAges map[string]int `mapstructure:"start_ages" json:"start_ages"`
	// Colonoscopy interval for the IBD/PSC-elevated tier.
	ElevatedColonoscopyYears int `mapstructure:"elevated_colonoscopy_years" json:"elevated_colonoscopy_years"`
}

type ImmunizationConfig struct {
	HPVYoungFirstDoseMaxAge int `mapstructure:"hpv_young_first_dose_max_age" json:"hpv_young_first_dose_max_age"`
	HPVDosesYoung           int `mapstructure:"hpv_doses_young" json:"hpv_doses_young"`
	HPVDosesOld             int `mapstructure:"hpv_doses_old" json:"hpv_doses_old"`
	HPVMaxAge               int `mapstructure:"hpv_max_age" json:"hpv_max_age"`
	CovidBoosterYears       int `mapstructure:"covid_booster_years" json:"covid_booster_years"`
	TetanusYears            int `mapstructure:"tetanus_years" json:"tetanus_years"`
	FluMinAge               int `mapstructure:"flu_min_age" json:"flu_min_age"`
	PneumoMinAge            int `mapstructure:"pneumo_min_age" json:"pneumo_min_age"`
	ZosterMinAge            int `mapstructure:"zoster_min_age" json:"zoster_min_age"`
	// Illness codes that make flu/pneumo candidacy independent of age.
	ComorbidityIllnesses []string `mapstructure:"comorbidity_illnesses" json:"comorbidity_illnesses"`
}

// Default returns the embedded ruleset bundle.
func Default() (*Ruleset, error) {
	return load(defaultBundle)
}

// LoadFile reads a ruleset bundle override from a JSON file.
func LoadFile(path string) (*Ruleset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read ruleset %s: %w", path, err)
	}
	rs := &Ruleset{}
	if err := v.Unmarshal(rs); err != nil {
		return nil, fmt.Errorf("unmarshal ruleset %s: %w", path, err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}

func load(raw []byte) (*Ruleset, error) {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("read ruleset bundle: %w", err)
	}
	rs := &Ruleset{}
	if err := v.Unmarshal(rs); err != nil {
		return nil, fmt.Errorf("unmarshal ruleset bundle: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Validate performs the startup fail-fast checks: a missing table here must
// abort the process rather than surface per-request.
func (r *Ruleset) Validate() error {
	if r.Version == "" {
		return fmt.Errorf("ruleset: version is required")
	}
	if r.Demographics.AdultAge <= 0 {
		return fmt.Errorf("ruleset: demographics.adult_age must be positive")
	}
	if r.Demographics.ObesityBMI <= 0 {
		return fmt.Errorf("ruleset: demographics.obesity_bmi must be positive")
	}
	if r.Smoking.PackSize <= 0 {
		return fmt.Errorf("ruleset: smoking.pack_size must be positive")
	}
	if len(r.Organs.Defaults) == 0 {
		return fmt.Errorf("ruleset: organs.defaults table is empty")
	}
	if len(r.Family.Sites) == 0 {
		return fmt.Errorf("ruleset: family.sites table is empty")
	}
	if len(r.Family.LynchSites) == 0 {
		return fmt.Errorf("ruleset: family.lynch_sites table is empty")
	}
	if len(r.Occupational.Categories) == 0 {
		return fmt.Errorf("ruleset: occupational.categories table is empty")
	}
	for _, cat := range r.Occupational.Categories {
		if cat.Key == "" {
			return fmt.Errorf("ruleset: occupational category with empty key")
		}
		if len(cat.Agents) == 0 {
			return fmt.Errorf("ruleset: occupational category %q has no agents", cat.Key)
		}
	}
	if len(r.Alcohol.FreqPerWeek) != 5 || len(r.Alcohol.DrinksPerOccasion) != 5 {
		return fmt.Errorf("ruleset: alcohol lookup tables must have 5 entries")
	}
	if len(r.Genetics.HighPenetrance) == 0 || len(r.Genetics.Lynch) == 0 {
		return fmt.Errorf("ruleset: genetics gene lists are incomplete")
	}
	if len(r.Screening.Intervals) == 0 {
		return fmt.Errorf("ruleset: screening.intervals table is empty")
	}
	if len(r.Diet.FrequencyRank) == 0 {
		return fmt.Errorf("ruleset: diet.frequency_rank table is empty")
	}
	return nil
}
