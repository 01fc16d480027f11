package standardize

import "sort"

// Historical questionnaire versions shipped the same answer under different
// keys. Every alias is folded into one canonical key before field extraction,
// so the rest of the standardizer (and the engine) only ever reads one name
// per fact.
var keyAliases = map[string]string{
	// demographics
	"date_of_birth": "dob",
	"birth_date":    "dob",
	"sex":           "sex_at_birth",
	"height":        "height_cm",
	"weight":        "weight_kg",

	// smoking
	"smoking":              "smoking_status",
	"smoke.status":         "smoking_status",
	"smoke.cigs_per_day":   "smoking_cigs_per_day",
	"cigarettes_per_day":   "smoking_cigs_per_day",
	"smoke.years":          "smoking_years",
	"smoke.intensity_unit": "smoking_intensity_unit",
	"years_smoked":         "smoking_years",
	"smoke.quit_year":      "smoking_quit_year",
	"quit_year":            "smoking_quit_year",
	"smoke.quit_date":      "smoking_quit_year",
	"secondhand_smoke":     "smoking_shs",
	"smoke.shs":            "smoking_shs",

	// alcohol
	"audit.q1": "audit_q1",
	"audit.q2": "audit_q2",
	"audit.q3": "audit_q3",
	"alcohol_drinks_per_week": "drinks_per_week",

	// repeating groups
	"family_history":        "family_cancer_history",
	"famhx":                 "family_cancer_history",
	"jobs":                  "occupational_jobs",
	"occupation_history":    "occupational_jobs",
	"cancer_history":        "personal_cancer_history",
	"medical_conditions":    "illnesses",
	"conditions":            "illnesses",
	"prophylactic_surgery":  "prophylactic_surgeries",
	"risk_reducing_surgery": "prophylactic_surgeries",

	// screening: <test>.last_year is canonical
	"screen.colon.year":        "screen.colonoscopy.last_year",
	"screen.crc.last_year":     "screen.colonoscopy.last_year",
	"screen.colonoscopy.year":  "screen.colonoscopy.last_year",
	"screen.fit.year":          "screen.fit.last_year",
	"screen.stool_test.year":   "screen.fit.last_year",
	"screen.pap.year":          "screen.pap.last_year",
	"screen.smear.year":        "screen.pap.last_year",
	"screen.cervical.year":     "screen.pap.last_year",
	"screen.hpv.year":          "screen.hpv_test.last_year",
	"screen.hpv_test.year":     "screen.hpv_test.last_year",
	"screen.mammo.year":        "screen.mammogram.last_year",
	"screen.breast.year":       "screen.mammogram.last_year",
	"screen.mammogram.year":    "screen.mammogram.last_year",
	"screen.ldct.year":         "screen.low_dose_ct.last_year",
	"screen.lung_ct.year":      "screen.low_dose_ct.last_year",
	"screen.psa.year":          "screen.psa.last_year",
	"screen.prostate.year":     "screen.psa.last_year",
	"screen.skin.year":         "screen.skin_check.last_year",
	"screen.skin_check.year":   "screen.skin_check.last_year",
	"screen.gastro.year":       "screen.upper_endoscopy.last_year",
	"screen.endoscopy.year":    "screen.upper_endoscopy.last_year",
	"screen.hpylori.year":      "screen.h_pylori.last_year",
	"screen.h_pylori.year":     "screen.h_pylori.last_year",
	"screen.pylori_test.year":  "screen.h_pylori.last_year",

	// immunization
	"vacc.hpv.doses":          "imm.hpv.doses",
	"hpv_vaccine_doses":       "imm.hpv.doses",
	"vacc.hpv.first_dose_age": "imm.hpv.first_dose_age",
	"hpv_first_dose_age":      "imm.hpv.first_dose_age",
	"vacc.covid.doses":        "imm.covid.doses",
	"covid_doses":             "imm.covid.doses",
	"vacc.covid.last_year":    "imm.covid.last_year",
	"covid_last_dose_year":    "imm.covid.last_year",
	"vacc.tetanus.year":       "imm.tetanus.last_year",
	"tetanus_last_year":       "imm.tetanus.last_year",
	"vacc.flu.last_season":    "imm.flu.last_season",
	"flu_shot_last_season":    "imm.flu.last_season",
	"vacc.pneumo.done":        "imm.pneumo.done",
	"pneumococcal_vaccinated": "imm.pneumo.done",
	"vacc.zoster.done":        "imm.zoster.done",
	"shingles_vaccinated":     "imm.zoster.done",

	// environment
	"env.air_pollution_years": "env_air_pollution_years",
	"env.asbestos":            "env_asbestos_disturbance",
	"env.well_water":          "env_well_water_notice",
	"env.pesticide_freq":      "env_pesticide_freq",
	"env.pesticide_years":     "env_pesticide_years",
	"env.pesticide_protection": "env_pesticide_protection",
	"env.child_sunburns":      "env_child_sunburns",
	"env.adult_sunburns":      "env_adult_sunburns",
	"env.sunbed":              "env_sunbed_use",
	"env.solid_fuel_years":    "env_solid_fuel_years",

	// sexual health
	"sex.partner_genders":   "sexual_partner_genders",
	"partner_genders":       "sexual_partner_genders",
	"sex.lifetime_partners": "sexual_lifetime_partners",
	"sex.recent_partners":   "sexual_recent_partners",
	"sex.anal_receptive":    "sexual_anal_receptive",
	"sex.sex_work":          "sexual_sex_work",
	"sex.hiv":               "sexual_hiv_positive",
	"hiv_positive":          "sexual_hiv_positive",
	"sex.transplant":        "sexual_transplant",
	"sex.immunosuppressed":  "sexual_immunosuppressed",
	"sex.hpv_precancer":     "sexual_hpv_precancer",

	// genetics
	"genetics.tested":        "genetics_tested",
	"genetic_testing_done":   "genetics_tested",
	"genetics.genes":         "genetics_genes",
	"genetic_genes":          "genetics_genes",
	"genetics.variant_status": "genetics_variant_status",
	"genetics.prs_band":      "genetics_prs_band",
	"prs_band":               "genetics_prs_band",
	"genetics.prs_red_flags": "genetics_prs_red_flags",
}

// screeningTests are the canonical test keys carried in
// ScreeningImmunization.LastScreenYear.
var screeningTests = []string{
	"colonoscopy", "fit", "pap", "hpv_test", "mammogram",
	"low_dose_ct", "psa", "skin_check", "upper_endoscopy", "h_pylori",
}

// normalizeKeys folds every aliased key into its canonical name. When both an
// alias and the canonical key are present the canonical value wins; when two
// aliases of the same canonical key coexist, aliases resolve in sorted key
// order so the winner is the same on every call.
func normalizeKeys(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	aliased := make([]string, 0, len(raw))
	for k, v := range raw {
		if _, isAlias := keyAliases[k]; isAlias {
			aliased = append(aliased, k)
			continue
		}
		out[k] = v
	}
	sort.Strings(aliased)
	for _, k := range aliased {
		canonical := keyAliases[k]
		if _, exists := out[canonical]; exists {
			continue
		}
		out[canonical] = raw[k]
	}
	return out
}
