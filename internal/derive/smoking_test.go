package derive

import (
	"testing"

	"github.com/riskfacts/riskfacts/internal/standardize"
)

func TestSmoking_FormerPackYears(t *testing.T) {
	rs := testRuleset(t)
	detail := standardize.SmokingDetail{CigsPerDay: floatPtr(20), Years: floatPtr(10)}
	facts := deriveSmoking("former", detail, rs.Smoking, testNow)
	if facts == nil || facts.PackYears == nil {
		t.Fatal("expected pack-years")
	}
	if *facts.PackYears != 10.0 {
		t.Errorf("expected pack-years 10.0, got %v", *facts.PackYears)
	}
	if facts.BrinkmanIndex == nil || *facts.BrinkmanIndex != 200 {
		t.Errorf("expected Brinkman 200, got %v", facts.BrinkmanIndex)
	}
}

func TestSmoking_PackUnitIntensity(t *testing.T) {
	rs := testRuleset(t)
	detail := standardize.SmokingDetail{CigsPerDay: floatPtr(1), IntensityUnit: "packs", Years: floatPtr(10)}
	facts := deriveSmoking("current", detail, rs.Smoking, testNow)
	if facts == nil || facts.PackYears == nil {
		t.Fatal("expected pack-years")
	}
	if *facts.PackYears != 10.0 {
		t.Errorf("expected 1 pack a day for 10 years to give pack-years 10.0, got %v", *facts.PackYears)
	}
	if facts.BrinkmanIndex == nil || *facts.BrinkmanIndex != 200 {
		t.Errorf("expected Brinkman 200, got %v", facts.BrinkmanIndex)
	}
}

func TestSmoking_NeverSmokerZero(t *testing.T) {
	rs := testRuleset(t)
	facts := deriveSmoking("never", standardize.SmokingDetail{}, rs.Smoking, testNow)
	if facts == nil || facts.PackYears == nil {
		t.Fatal("expected pack-years 0 for never smoker")
	}
	if *facts.PackYears != 0 {
		t.Errorf("expected 0, got %v", *facts.PackYears)
	}
}

func TestSmoking_FormerMissingDetailNoPackYears(t *testing.T) {
	rs := testRuleset(t)
	facts := deriveSmoking("former", standardize.SmokingDetail{}, rs.Smoking, testNow)
	if facts == nil {
		t.Fatal("expected facts with status")
	}
	if facts.PackYears != nil {
		t.Errorf("expected no pack-years fact, got %v", *facts.PackYears)
	}
}

func TestSmoking_QuitYears(t *testing.T) {
	rs := testRuleset(t)
	detail := standardize.SmokingDetail{CigsPerDay: floatPtr(10), Years: floatPtr(20), QuitYear: intPtr(2015)}
	facts := deriveSmoking("former", detail, rs.Smoking, testNow)
	if facts == nil || facts.QuitYears == nil {
		t.Fatal("expected quit-years")
	}
	if *facts.QuitYears != 9 {
		t.Errorf("expected 9 quit-years from 2015, got %d", *facts.QuitYears)
	}
	if *facts.PackYears != 10.0 {
		t.Errorf("expected pack-years 10.0 from 10/day x 20y, got %v", *facts.PackYears)
	}
}

func TestSmoking_CurrentNoQuitYears(t *testing.T) {
	rs := testRuleset(t)
	detail := standardize.SmokingDetail{CigsPerDay: floatPtr(15), Years: floatPtr(5)}
	facts := deriveSmoking("current", detail, rs.Smoking, testNow)
	if facts == nil {
		t.Fatal("expected facts")
	}
	if facts.QuitYears != nil {
		t.Error("current smoker must not get quit-years")
	}
	if facts.PackYears == nil || *facts.PackYears != 3.75 {
		t.Errorf("expected pack-years 3.75, got %v", facts.PackYears)
	}
}

func TestSmoking_NoStatusNoFacts(t *testing.T) {
	rs := testRuleset(t)
	if facts := deriveSmoking("", standardize.SmokingDetail{}, rs.Smoking, testNow); facts != nil {
		t.Errorf("expected nil facts, got %+v", facts)
	}
}
