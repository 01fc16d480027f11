package ruleset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_LoadsAndValidates(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Version == "" {
		t.Error("expected a non-empty ruleset version")
	}
	if rs.Demographics.AdultAge != 18 {
		t.Errorf("expected adult_age 18, got %d", rs.Demographics.AdultAge)
	}
	if rs.Smoking.PackSize != 20 {
		t.Errorf("expected pack_size 20, got %v", rs.Smoking.PackSize)
	}
}

func TestDefault_OccupationalCategoriesComplete(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"lung", "mesothelioma", "bladder", "skin_uv", "skin_chemical", "blood", "nasal", "breast_shiftwork"}
	got := map[string]bool{}
	for _, cat := range rs.Occupational.Categories {
		got[cat.Key] = true
	}
	for _, key := range want {
		if !got[key] {
			t.Errorf("missing occupational category %q", key)
		}
	}
}

func TestValidate_MissingVersion(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs.Version = ""
	if err := rs.Validate(); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestValidate_EmptyGeneLists(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs.Genetics.HighPenetrance = nil
	if err := rs.Validate(); err == nil {
		t.Fatal("expected error for empty gene list")
	}
}

func TestValidate_BadAlcoholTables(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rs.Alcohol.FreqPerWeek = []float64{0, 1}
	if err := rs.Validate(); err == nil {
		t.Fatal("expected error for short alcohol lookup table")
	}
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruleset.json")
	if err := os.WriteFile(path, defaultBundle, 0o600); err != nil {
		t.Fatalf("write temp ruleset: %v", err)
	}
	rs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Version == "" {
		t.Error("expected version from file override")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing ruleset file")
	}
}
