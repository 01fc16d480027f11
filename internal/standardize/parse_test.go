package standardize

import (
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseYear_FourDigit(t *testing.T) {
	y := parseYear("1987", fixedNow)
	if y == nil || *y != 1987 {
		t.Fatalf("expected 1987, got %v", y)
	}
}

func TestParseYear_ISODate(t *testing.T) {
	y := parseYear("1990-03-12", fixedNow)
	if y == nil || *y != 1990 {
		t.Fatalf("expected 1990, got %v", y)
	}
}

func TestParseYear_Numeric(t *testing.T) {
	y := parseYear(2010.0, fixedNow)
	if y == nil || *y != 2010 {
		t.Fatalf("expected 2010, got %v", y)
	}
}

func TestParseYear_BelowLowerBound(t *testing.T) {
	if y := parseYear("1899", fixedNow); y != nil {
		t.Errorf("expected nil for 1899, got %d", *y)
	}
}

func TestParseYear_AboveUpperBound(t *testing.T) {
	// currentYear+1 is the last acceptable year.
	if y := parseYear("2025", fixedNow); y == nil || *y != 2025 {
		t.Errorf("expected 2025 to be accepted, got %v", y)
	}
	if y := parseYear("2026", fixedNow); y != nil {
		t.Errorf("expected nil for 2026, got %d", *y)
	}
}

func TestParseYear_Garbage(t *testing.T) {
	for _, v := range []any{"not-a-year", "", nil, true, []any{2000}} {
		if y := parseYear(v, fixedNow); y != nil {
			t.Errorf("expected nil for %v, got %d", v, *y)
		}
	}
}

func TestParseRecordGroup_MalformedJSON(t *testing.T) {
	if got := parseRecordGroup("invalid-json"); got != nil {
		t.Errorf("expected nil for malformed JSON, got %v", got)
	}
}

func TestParseRecordGroup_EmptyString(t *testing.T) {
	if got := parseRecordGroup("  "); got != nil {
		t.Errorf("expected nil for blank value, got %v", got)
	}
}

func TestParseRecordGroup_NonString(t *testing.T) {
	if got := parseRecordGroup(42); got != nil {
		t.Errorf("expected nil for non-string scalar, got %v", got)
	}
}

func TestParseRecordGroup_BareObjectWrapped(t *testing.T) {
	got := parseRecordGroup(`{"relation":"mother"}`)
	if len(got) != 1 {
		t.Fatalf("expected one wrapped record, got %d", len(got))
	}
	if got[0]["relation"] != "mother" {
		t.Errorf("expected relation mother, got %v", got[0]["relation"])
	}
}

func TestParseRecordGroup_Array(t *testing.T) {
	got := parseRecordGroup(`[{"relation":"mother"},{"relation":"father"}]`)
	if len(got) != 2 {
		t.Fatalf("expected two records, got %d", len(got))
	}
}

func TestParseRecordGroup_NativeSlice(t *testing.T) {
	got := parseRecordGroup([]any{map[string]any{"relation": "sister"}})
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
}

func TestAsFloat_NumericString(t *testing.T) {
	f := asFloat(" 82.5 ")
	if f == nil || *f != 82.5 {
		t.Fatalf("expected 82.5, got %v", f)
	}
}

func TestAsFloat_Garbage(t *testing.T) {
	if f := asFloat("eighty"); f != nil {
		t.Errorf("expected nil, got %v", *f)
	}
}

func TestAsStringSlice_JSONEncoded(t *testing.T) {
	got := asStringSlice(`["fatigue","weight_loss"]`)
	if len(got) != 2 || got[0] != "fatigue" || got[1] != "weight_loss" {
		t.Fatalf("unexpected slice: %v", got)
	}
}

func TestAsStringSlice_Scalar(t *testing.T) {
	got := asStringSlice("fatigue")
	if len(got) != 1 || got[0] != "fatigue" {
		t.Fatalf("unexpected slice: %v", got)
	}
}

func TestAsBool_Spellings(t *testing.T) {
	for _, v := range []any{true, "yes", "Y", "1", "true", 1} {
		if !asBool(v) {
			t.Errorf("expected %v to be truthy", v)
		}
	}
	for _, v := range []any{false, "no", "", nil, 0} {
		if asBool(v) {
			t.Errorf("expected %v to be falsy", v)
		}
	}
}
