package derive

import (
	"testing"

	"github.com/riskfacts/riskfacts/internal/standardize"
)

func femaleOrgans(t *testing.T) *OrganFacts {
	t.Helper()
	rs := testRuleset(t)
	return deriveOrgans(standardize.Advanced{}, "female", rs.Organs)
}

func TestScreening_InDateColonoscopySatisfiesProgram(t *testing.T) {
	rs := testRuleset(t)
	si := standardize.ScreeningImmunization{
		LastScreenYear: map[string]int{"colonoscopy": 2018},
	}
	facts := deriveScreening(si, intPtr(55), "female", femaleOrgans(t), false, rs.Screening, 2024)
	if facts.Due["crc"] {
		t.Error("a colonoscopy 6 years ago is within the 10-year interval")
	}
}

func TestScreening_ElevatedTierShortensColonoscopy(t *testing.T) {
	rs := testRuleset(t)
	si := standardize.ScreeningImmunization{
		LastScreenYear: map[string]int{"colonoscopy": 2018},
	}
	facts := deriveScreening(si, intPtr(55), "female", femaleOrgans(t), true, rs.Screening, 2024)
	if !facts.Due["crc"] {
		t.Error("6 years since colonoscopy exceeds the 5-year elevated interval")
	}
}

func TestScreening_OneInDateTestAmongSeveral(t *testing.T) {
	rs := testRuleset(t)
	// Colonoscopy overdue but FIT current.
	si := standardize.ScreeningImmunization{
		LastScreenYear: map[string]int{"colonoscopy": 2010, "fit": 2024},
	}
	facts := deriveScreening(si, intPtr(55), "male", nil, false, rs.Screening, 2024)
	if facts.Due["crc"] {
		t.Error("a current FIT satisfies the colorectal program")
	}
}

func TestScreening_HPyloriSatisfiesGastricProgram(t *testing.T) {
	rs := testRuleset(t)
	// Endoscopy overdue but the H. pylori test is within its 5-year interval.
	si := standardize.ScreeningImmunization{
		LastScreenYear: map[string]int{"upper_endoscopy": 2015, "h_pylori": 2022},
	}
	facts := deriveScreening(si, intPtr(55), "male", nil, false, rs.Screening, 2024)
	if facts.Due["gastric"] {
		t.Error("a current H. pylori test satisfies the gastric program")
	}

	si.LastScreenYear["h_pylori"] = 2016
	facts = deriveScreening(si, intPtr(55), "male", nil, false, rs.Screening, 2024)
	if !facts.Due["gastric"] {
		t.Error("both gastric tests overdue must mark the program due")
	}
}

func TestScreening_NeverScreenedDuePastStartAge(t *testing.T) {
	rs := testRuleset(t)
	si := standardize.ScreeningImmunization{}

	facts := deriveScreening(si, intPtr(46), "male", nil, false, rs.Screening, 2024)
	if !facts.Due["crc"] {
		t.Error("never screened at 46 is past the colorectal start age")
	}
	if !facts.AnyOverdue {
		t.Error("aggregate must reflect the due program")
	}

	facts = deriveScreening(si, intPtr(40), "male", nil, false, rs.Screening, 2024)
	if due, present := facts.Due["crc"]; present && due {
		t.Error("never screened at 40 is before the start age")
	}
}

func TestScreening_SexAndOrganGates(t *testing.T) {
	rs := testRuleset(t)
	si := standardize.ScreeningImmunization{}

	facts := deriveScreening(si, intPtr(55), "male", nil, false, rs.Screening, 2024)
	if _, present := facts.Due["cervical"]; present {
		t.Error("cervical screening never applies to male sex at birth")
	}
	if _, present := facts.Due["prostate"]; !present {
		t.Error("prostate screening applies at 55")
	}

	// Hysterectomy removes the cervix from the inventory.
	organs := deriveOrgans(standardize.Advanced{ProphylacticSurgeries: []string{"hysterectomy"}}, "female", rs.Organs)
	facts = deriveScreening(si, intPtr(55), "female", organs, false, rs.Screening, 2024)
	if _, present := facts.Due["cervical"]; present {
		t.Error("no cervix means no cervical screening program")
	}
	if _, present := facts.Due["breast"]; !present {
		t.Error("breast screening is unaffected by hysterectomy")
	}
}

func TestScreening_OverdueMammogram(t *testing.T) {
	rs := testRuleset(t)
	si := standardize.ScreeningImmunization{
		LastScreenYear: map[string]int{"mammogram": 2020},
	}
	facts := deriveScreening(si, intPtr(52), "female", femaleOrgans(t), false, rs.Screening, 2024)
	if !facts.Due["breast"] {
		t.Error("a mammogram 4 years ago exceeds the 2-year interval")
	}
}

func TestScreening_NoAge(t *testing.T) {
	rs := testRuleset(t)
	if facts := deriveScreening(standardize.ScreeningImmunization{}, nil, "female", nil, false, rs.Screening, 2024); facts != nil {
		t.Errorf("expected nil facts without an age, got %+v", facts)
	}
}
