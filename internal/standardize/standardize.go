package standardize

import (
	"time"

	"github.com/rs/zerolog"
)

// Standardizer turns a raw answer record into the canonical Profile. It holds
// no per-call state and is safe for concurrent use.
type Standardizer struct {
	log zerolog.Logger
	now func() time.Time
}

func New(log zerolog.Logger) *Standardizer {
	return &Standardizer{log: log, now: time.Now}
}

// NewAt builds a standardizer with a fixed clock, used by tests that pin the
// bounded year parser.
func NewAt(log zerolog.Logger, now func() time.Time) *Standardizer {
	return &Standardizer{log: log, now: now}
}

// Standardize never returns an error: any field-level failure is logged and
// the field omitted.
func (s *Standardizer) Standardize(raw map[string]any) *Profile {
	p := &Profile{}
	if raw == nil {
		return p
	}
	answers := normalizeKeys(raw)
	now := s.now()

	s.extractCore(answers, &p.Core, now)
	s.extractFamily(answers, &p.Advanced)
	s.extractGenetics(answers, &p.Advanced)
	s.extractIllnesses(answers, &p.Advanced, now)
	s.extractCancerHistory(answers, &p.Advanced)
	s.extractJobs(answers, &p.Advanced)
	s.extractEnvironment(answers, &p.Advanced)
	s.extractSexualHealth(answers, &p.Advanced)
	s.extractScreeningImmunization(answers, &p.Advanced, now)
	s.extractSmokingDetail(answers, &p.Advanced, now)

	if surgeries := asStringSlice(answers["prophylactic_surgeries"]); len(surgeries) > 0 {
		for _, raw := range surgeries {
			p.Advanced.ProphylacticSurgeries = append(p.Advanced.ProphylacticSurgeries, mapCode(surgeryCodes, raw))
		}
	}
	return p
}

func (s *Standardizer) dropField(key, reason string) {
	s.log.Warn().Str("field", key).Str("reason", reason).Msg("standardize: field omitted")
}

func (s *Standardizer) extractCore(answers map[string]any, core *Core, now time.Time) {
	if dob := asString(answers["dob"]); dob != "" {
		if validDOB(dob, now) {
			core.DOB = dob
		} else {
			s.dropField("dob", "unparseable or out of range")
		}
	}
	core.SexAtBirth = mapCode(sexCodes, asString(answers["sex_at_birth"]))
	core.SmokingStatus = mapCode(smokingStatusCodes, asString(answers["smoking_status"]))

	if h := asFloat(answers["height_cm"]); h != nil && *h > 0 {
		core.HeightCM = h
	} else if _, present := answers["height_cm"]; present {
		s.dropField("height_cm", "not a positive number")
	}
	if w := asFloat(answers["weight_kg"]); w != nil && *w > 0 {
		core.WeightKG = w
	} else if _, present := answers["weight_kg"]; present {
		s.dropField("weight_kg", "not a positive number")
	}

	core.Symptoms = asStringSlice(answers["symptoms"])

	q1, q2, q3 := auditAnswer(answers["audit_q1"]), auditAnswer(answers["audit_q2"]), auditAnswer(answers["audit_q3"])
	if q1 != nil || q2 != nil || q3 != nil {
		core.AlcoholAUDIT = &AuditAnswers{Q1: q1, Q2: q2, Q3: q3}
	}
	if d := asFloat(answers["drinks_per_week"]); d != nil && *d >= 0 {
		core.DrinksPerWeek = d
	}

	core.Diet = Diet{
		Vegetables:    asString(answers["diet.vegetables"]),
		RedMeat:       asString(answers["diet.red_meat"]),
		ProcessedMeat: asString(answers["diet.processed_meat"]),
		SugaryDrinks:  asString(answers["diet.sugary_drinks"]),
		WholeGrains:   asString(answers["diet.whole_grains"]),
		FastFood:      asString(answers["diet.fast_food"]),
		Legumes:       asString(answers["diet.legumes"]),
		UPFShare:      asString(answers["diet.upf_share"]),
		SSBContainer:  asString(answers["diet.ssb_container"]),
	}

	core.Activity = Activity{
		VigorousDays: nonNegInt(answers["pa.vigorous_days"]),
		VigorousMin:  nonNegInt(answers["pa.vigorous_min"]),
		ModerateDays: nonNegInt(answers["pa.moderate_days"]),
		ModerateMin:  nonNegInt(answers["pa.moderate_min"]),
		WalkingDays:  nonNegInt(answers["pa.walking_days"]),
		WalkingMin:   nonNegInt(answers["pa.walking_min"]),
		SittingMin:   nonNegInt(answers["pa.sitting_min"]),
	}
}

func (s *Standardizer) extractFamily(answers map[string]any, adv *Advanced) {
	records := parseRecordGroup(answers["family_cancer_history"])
	if records == nil {
		if _, present := answers["family_cancer_history"]; present {
			s.dropField("family_cancer_history", "malformed repeating group")
		}
		return
	}
	for _, rec := range records {
		m := FamilyMember{
			Relation:   mapCode(relationCodes, asString(rec["relation"])),
			CancerType: mapCode(cancerTypeCodes, asString(rec["cancer_type"])),
			AgeDx:      asInt(rec["age_dx"]),
			Side:       asString(rec["side_of_family"]),
		}
		if _, present := rec["is_blood_related"]; present {
			blood := asBool(rec["is_blood_related"])
			m.IsBloodRelated = &blood
		}
		for _, extra := range parseRecordGroup(rec["cancers"]) {
			m.Cancers = append(m.Cancers, RelativeCancer{
				Type:  mapCode(cancerTypeCodes, asString(extra["type"])),
				AgeDx: asInt(extra["age_dx"]),
			})
		}
		if m.Relation == "" && m.CancerType == "" {
			continue
		}
		adv.Family = append(adv.Family, m)
	}
}

func (s *Standardizer) extractGenetics(answers map[string]any, adv *Advanced) {
	adv.Genetics = Genetics{
		Tested:            asBool(answers["genetics_tested"]),
		Genes:             asStringSlice(answers["genetics_genes"]),
		VariantSelfStatus: asString(answers["genetics_variant_status"]),
		PRS: PRSResult{
			Band:     asString(answers["genetics_prs_band"]),
			RedFlags: asBool(answers["genetics_prs_red_flags"]),
		},
	}
}

func (s *Standardizer) extractIllnesses(answers map[string]any, adv *Advanced, now time.Time) {
	for _, rec := range parseRecordGroup(answers["illnesses"]) {
		ill := Illness{
			ID:     mapCode(illnessCodes, asString(rec["id"])),
			Status: asString(rec["status"]),
			Year:   parseYear(rec["year"], now),
		}
		if ill.ID == "" {
			continue
		}
		adv.Illnesses = append(adv.Illnesses, ill)
	}
}

func (s *Standardizer) extractCancerHistory(answers map[string]any, adv *Advanced) {
	for _, rec := range parseRecordGroup(answers["personal_cancer_history"]) {
		dx := CancerDiagnosis{
			Type:           mapCode(cancerTypeCodes, asString(rec["type"])),
			AgeAtDx:        asInt(rec["age_at_dx"]),
			Treatments:     asStringSlice(rec["treatments_modalities"]),
			RT:             asString(rec["rt"]),
			HSCT:           asBool(rec["hsct"]),
			Surgery:        asBool(rec["surgery"]),
			EndoYearsTotal: asFloat(rec["endo_years_total"]),
			StatusCurrent:  asString(rec["status_current"]),
		}
		if dx.Type == "" {
			continue
		}
		adv.CancerHistory = append(adv.CancerHistory, dx)
	}
}

func (s *Standardizer) extractJobs(answers map[string]any, adv *Advanced) {
	for _, rec := range parseRecordGroup(answers["occupational_jobs"]) {
		job := Job{
			Title:   mapCode(jobTitleCodes, asString(rec["job_title"])),
			Years:   asFloat(rec["years"]),
			Current: asBool(rec["current"]),
		}
		for _, raw := range asStringSlice(rec["occ_exposures"]) {
			job.Exposures = append(job.Exposures, mapCode(hazardCodes, raw))
		}
		if job.Title == "" && len(job.Exposures) == 0 {
			continue
		}
		adv.Jobs = append(adv.Jobs, job)
	}
}

func (s *Standardizer) extractEnvironment(answers map[string]any, adv *Advanced) {
	adv.Environment = Environment{
		AirPollutionYears:    nonNegInt(answers["env_air_pollution_years"]),
		AsbestosDisturbance:  asString(answers["env_asbestos_disturbance"]),
		WellWaterNotice:      asString(answers["env_well_water_notice"]),
		PesticideFreqPerYear: nonNegInt(answers["env_pesticide_freq"]),
		PesticideYears:       nonNegInt(answers["env_pesticide_years"]),
		PesticideProtection:  asString(answers["env_pesticide_protection"]),
		ChildSunburns:        nonNegInt(answers["env_child_sunburns"]),
		AdultSunburns:        nonNegInt(answers["env_adult_sunburns"]),
		SunbedUse:            asString(answers["env_sunbed_use"]),
		SolidFuelYears:       nonNegInt(answers["env_solid_fuel_years"]),
	}
}

func (s *Standardizer) extractSexualHealth(answers map[string]any, adv *Advanced) {
	adv.SexualHealth = SexualHealth{
		PartnerGenders:      asStringSlice(answers["sexual_partner_genders"]),
		LifetimePartners:    asString(answers["sexual_lifetime_partners"]),
		RecentPartners:      asString(answers["sexual_recent_partners"]),
		AnalReceptive:       asBool(answers["sexual_anal_receptive"]),
		SexWork:             asBool(answers["sexual_sex_work"]),
		HIVPositive:         asBool(answers["sexual_hiv_positive"]),
		Transplant:          asBool(answers["sexual_transplant"]),
		Immunosuppressed:    asBool(answers["sexual_immunosuppressed"]),
		HPVPrecancerHistory: asBool(answers["sexual_hpv_precancer"]),
	}
}

func (s *Standardizer) extractScreeningImmunization(answers map[string]any, adv *Advanced, now time.Time) {
	si := ScreeningImmunization{}
	for _, test := range screeningTests {
		key := "screen." + test + ".last_year"
		v, present := answers[key]
		if !present {
			continue
		}
		year := parseYear(v, now)
		if year == nil {
			s.dropField(key, "year out of range")
			continue
		}
		if si.LastScreenYear == nil {
			si.LastScreenYear = map[string]int{}
		}
		si.LastScreenYear[test] = *year
	}

	si.HPVDoses = nonNegInt(answers["imm.hpv.doses"])
	si.HPVFirstDoseAge = nonNegInt(answers["imm.hpv.first_dose_age"])
	si.CovidDoses = nonNegInt(answers["imm.covid.doses"])
	si.CovidLastYear = parseYear(answers["imm.covid.last_year"], now)
	si.TetanusLastYear = parseYear(answers["imm.tetanus.last_year"], now)
	si.FluLastSeason = asBool(answers["imm.flu.last_season"])
	si.PneumoDone = asBool(answers["imm.pneumo.done"])
	si.ZosterDone = asBool(answers["imm.zoster.done"])
	adv.ScreeningImmunization = si
}

func (s *Standardizer) extractSmokingDetail(answers map[string]any, adv *Advanced, now time.Time) {
	detail := SmokingDetail{
		CigsPerDay:    asFloat(answers["smoking_cigs_per_day"]),
		IntensityUnit: mapCode(intensityUnitCodes, asString(answers["smoking_intensity_unit"])),
		Years:         asFloat(answers["smoking_years"]),
		QuitYear:      parseYear(answers["smoking_quit_year"], now),
		SHS:           asBool(answers["smoking_shs"]),
	}
	adv.SmokingDetail = detail
}

// auditAnswer clamps an AUDIT-C sub-answer into its valid 0-4 range, dropping
// anything else.
func auditAnswer(v any) *int {
	n := asInt(v)
	if n == nil || *n < 0 || *n > 4 {
		return nil
	}
	return n
}

func nonNegInt(v any) *int {
	n := asInt(v)
	if n == nil || *n < 0 {
		return nil
	}
	return n
}

// validDOB accepts an ISO date or a bare in-range year.
func validDOB(dob string, now time.Time) bool {
	if _, err := time.Parse("2006-01-02", dob); err == nil {
		return true
	}
	return parseYear(dob, now) != nil
}
