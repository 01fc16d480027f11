package derive

import (
	"testing"

	"github.com/riskfacts/riskfacts/internal/standardize"
)

func TestSexualHealth_MSMMaleOnly(t *testing.T) {
	rs := testRuleset(t)
	sh := standardize.SexualHealth{PartnerGenders: []string{"men and women"}}

	if !deriveSexualHealth(sh, "male", intPtr(30), rs.SexualHealth).MSM {
		t.Error("male with male partners must be flagged MSM")
	}
	if deriveSexualHealth(sh, "female", intPtr(30), rs.SexualHealth).MSM {
		t.Error("MSM never applies to female sex at birth")
	}
	if deriveSexualHealth(standardize.SexualHealth{PartnerGenders: []string{"women"}}, "male", intPtr(30), rs.SexualHealth).MSM {
		t.Error("female-only partners must not flag MSM")
	}
}

func TestSexualHealth_AnalCancerRoutes(t *testing.T) {
	rs := testRuleset(t)
	male := []string{"male"}

	cases := []struct {
		name string
		sh   standardize.SexualHealth
		sex  string
		age  *int
		want bool
	}{
		{"MSM at age threshold", standardize.SexualHealth{PartnerGenders: male}, "male", intPtr(35), true},
		{"MSM under age threshold", standardize.SexualHealth{PartnerGenders: male}, "male", intPtr(34), false},
		{"HIV with receptive anal sex", standardize.SexualHealth{HIVPositive: true, AnalReceptive: true}, "female", intPtr(28), true},
		{"HIV alone", standardize.SexualHealth{HIVPositive: true}, "female", intPtr(28), false},
		{"transplant with receptive anal sex", standardize.SexualHealth{Transplant: true, AnalReceptive: true}, "male", intPtr(40), true},
		{"HPV precancer history alone", standardize.SexualHealth{HPVPrecancerHistory: true}, "female", nil, true},
	}
	for _, tc := range cases {
		got := deriveSexualHealth(tc.sh, tc.sex, tc.age, rs.SexualHealth).AnalCancerHighRisk
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSexualHealth_HPVExposureBands(t *testing.T) {
	rs := testRuleset(t)
	cases := []struct {
		name string
		sh   standardize.SexualHealth
		want string
	}{
		{"many lifetime partners", standardize.SexualHealth{LifetimePartners: "10_plus"}, "Higher"},
		{"sex work", standardize.SexualHealth{SexWork: true}, "Higher"},
		{"receptive with recent partners", standardize.SexualHealth{AnalReceptive: true, RecentPartners: "2_plus"}, "Higher"},
		{"moderate lifetime partners", standardize.SexualHealth{LifetimePartners: "5_to_9"}, "Medium"},
		{"recent partners alone", standardize.SexualHealth{RecentPartners: "3_plus"}, "Medium"},
		{"receptive alone", standardize.SexualHealth{AnalReceptive: true}, "Medium"},
		{"no signals", standardize.SexualHealth{LifetimePartners: "0_to_4"}, "Low"},
	}
	for _, tc := range cases {
		got := deriveSexualHealth(tc.sh, "female", intPtr(30), rs.SexualHealth).HPVExposureBand
		if got != tc.want {
			t.Errorf("%s: band %q, want %q", tc.name, got, tc.want)
		}
	}
}
