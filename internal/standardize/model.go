// Package standardize normalizes raw, loosely-typed questionnaire answer
// records into the canonical profile model consumed by the derived-variables
// engine. Standardization never fails: a field that cannot be parsed is logged
// and omitted.
package standardize

// Profile is the canonical model: everything downstream reads this, never the
// raw answer map.
type Profile struct {
	Core     Core     `json:"core"`
	Advanced Advanced `json:"advanced"`
}

type Core struct {
	DOB           string        `json:"dob,omitempty"`
	SexAtBirth    string        `json:"sex_at_birth,omitempty"`
	HeightCM      *float64      `json:"height_cm,omitempty"`
	WeightKG      *float64      `json:"weight_kg,omitempty"`
	SmokingStatus string        `json:"smoking_status,omitempty"`
	Symptoms      []string      `json:"symptoms,omitempty"`
	AlcoholAUDIT  *AuditAnswers `json:"alcohol_audit,omitempty"`
	DrinksPerWeek *float64      `json:"drinks_per_week,omitempty"`
	Diet          Diet          `json:"diet"`
	Activity      Activity      `json:"physical_activity"`
}

// AuditAnswers holds the three AUDIT-C sub-answers, each 0-4.
type AuditAnswers struct {
	Q1 *int `json:"q1,omitempty"`
	Q2 *int `json:"q2,omitempty"`
	Q3 *int `json:"q3,omitempty"`
}

type Diet struct {
	Vegetables    string `json:"vegetables,omitempty"`
	RedMeat       string `json:"red_meat,omitempty"`
	ProcessedMeat string `json:"processed_meat,omitempty"`
	SugaryDrinks  string `json:"sugary_drinks,omitempty"`
	WholeGrains   string `json:"whole_grains,omitempty"`
	FastFood      string `json:"fast_food,omitempty"`
	Legumes       string `json:"legumes,omitempty"`
	UPFShare      string `json:"upf_share,omitempty"`
	SSBContainer  string `json:"ssb_container,omitempty"`
}

type Activity struct {
	VigorousDays *int `json:"vigorous_days,omitempty"`
	VigorousMin  *int `json:"vigorous_min,omitempty"`
	ModerateDays *int `json:"moderate_days,omitempty"`
	ModerateMin  *int `json:"moderate_min,omitempty"`
	WalkingDays  *int `json:"walking_days,omitempty"`
	WalkingMin   *int `json:"walking_min,omitempty"`
	SittingMin   *int `json:"sitting_min,omitempty"`
}

type Advanced struct {
	Family                []FamilyMember        `json:"family,omitempty"`
	Genetics              Genetics              `json:"genetics"`
	Illnesses             []Illness             `json:"illnesses,omitempty"`
	CancerHistory         []CancerDiagnosis     `json:"personal_cancer_history,omitempty"`
	Jobs                  []Job                 `json:"occupational,omitempty"`
	Environment           Environment           `json:"environment"`
	SexualHealth          SexualHealth          `json:"sexual_health"`
	ScreeningImmunization ScreeningImmunization `json:"screening_immunization"`
	SmokingDetail         SmokingDetail         `json:"smoking_detail"`
	ProphylacticSurgeries []string              `json:"prophylactic_surgeries,omitempty"`
}

// FamilyMember is one relative in the family cancer history repeating group.
// Cancers carries additional primaries for multi-primary relatives; CancerType
// is always the first/primary entry.
type FamilyMember struct {
	Relation       string           `json:"relation,omitempty"`
	CancerType     string           `json:"cancer_type,omitempty"`
	AgeDx          *int             `json:"age_dx,omitempty"`
	Side           string           `json:"side_of_family,omitempty"`
	IsBloodRelated *bool            `json:"is_blood_related,omitempty"`
	Cancers        []RelativeCancer `json:"cancers,omitempty"`
}

type RelativeCancer struct {
	Type  string `json:"type,omitempty"`
	AgeDx *int   `json:"age_dx,omitempty"`
}

type Genetics struct {
	Tested            bool      `json:"tested"`
	Genes             []string  `json:"genes,omitempty"`
	VariantSelfStatus string    `json:"variant_self_status,omitempty"`
	PRS               PRSResult `json:"prs"`
}

type PRSResult struct {
	Band     string `json:"band,omitempty"`
	RedFlags bool   `json:"red_flags"`
}

type Illness struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Year   *int   `json:"year,omitempty"`
}

type CancerDiagnosis struct {
	Type            string   `json:"type,omitempty"`
	AgeAtDx         *int     `json:"age_at_dx,omitempty"`
	Treatments      []string `json:"treatments_modalities,omitempty"`
	RT              string   `json:"rt,omitempty"`
	HSCT            bool     `json:"hsct"`
	Surgery         bool     `json:"surgery"`
	EndoYearsTotal  *float64 `json:"endo_years_total,omitempty"`
	StatusCurrent   string   `json:"status_current,omitempty"`
}

type Job struct {
	Title     string   `json:"job_title,omitempty"`
	Years     *float64 `json:"years,omitempty"`
	Exposures []string `json:"occ_exposures,omitempty"`
	Current   bool     `json:"current"`
}

type Environment struct {
	AirPollutionYears    *int   `json:"air_pollution_years,omitempty"`
	AsbestosDisturbance  string `json:"asbestos_disturbance,omitempty"`
	WellWaterNotice      string `json:"well_water_notice,omitempty"`
	PesticideFreqPerYear *int   `json:"pesticide_freq_per_year,omitempty"`
	PesticideYears       *int   `json:"pesticide_years,omitempty"`
	PesticideProtection  string `json:"pesticide_protection,omitempty"`
	ChildSunburns        *int   `json:"child_sunburns,omitempty"`
	AdultSunburns        *int   `json:"adult_sunburns,omitempty"`
	SunbedUse            string `json:"sunbed_use,omitempty"`
	SolidFuelYears       *int   `json:"solid_fuel_years,omitempty"`
}

type SexualHealth struct {
	PartnerGenders      []string `json:"partner_genders,omitempty"`
	LifetimePartners    string   `json:"lifetime_partners,omitempty"`
	RecentPartners      string   `json:"recent_partners,omitempty"`
	AnalReceptive       bool     `json:"anal_receptive"`
	SexWork             bool     `json:"sex_work"`
	HIVPositive         bool     `json:"hiv_positive"`
	Transplant          bool     `json:"transplant"`
	Immunosuppressed    bool     `json:"immunosuppressed"`
	HPVPrecancerHistory bool     `json:"hpv_precancer_history"`
}

// ScreeningImmunization holds last-screen years per test plus vaccine history.
// A nil year means the test/vaccine was never reported.
type ScreeningImmunization struct {
	LastScreenYear map[string]int `json:"last_screen_year,omitempty"`

	HPVDoses        *int  `json:"hpv_doses,omitempty"`
	HPVFirstDoseAge *int  `json:"hpv_first_dose_age,omitempty"`
	CovidDoses      *int  `json:"covid_doses,omitempty"`
	CovidLastYear   *int  `json:"covid_last_year,omitempty"`
	TetanusLastYear *int  `json:"tetanus_last_year,omitempty"`
	FluLastSeason   bool  `json:"flu_last_season"`
	PneumoDone      bool  `json:"pneumo_done"`
	ZosterDone      bool  `json:"zoster_done"`
}

type SmokingDetail struct {
	CigsPerDay    *float64 `json:"cigs_per_day,omitempty"`
	IntensityUnit string   `json:"intensity_unit,omitempty"`
	Years         *float64 `json:"years,omitempty"`
	QuitYear      *int     `json:"quit_date,omitempty"`
	SHS           bool     `json:"shs"`
}
