package standards

import "testing"

func TestAllDeclaredOrder(t *testing.T) {
	want := []string{"BITV", "RGAA", "EN301549", "DOS"}
	got := Codes()
	if len(got) != len(want) {
		t.Fatalf("expected %d standards, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("codes[%d]=%s want=%s", i, got[i], want[i])
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	s, ok := Lookup("rgaa")
	if !ok {
		t.Fatal("expected lookup to succeed for rgaa")
	}
	if s.Jurisdiction != "France" {
		t.Fatalf("unexpected jurisdiction: %s", s.Jurisdiction)
	}
	if _, ok := Lookup("WCAG22"); ok {
		t.Fatal("expected lookup to fail for unregistered code")
	}
}

func TestThresholdDefaultsStrictForUnknownCode(t *testing.T) {
	if th := Threshold("EN301549"); th != 100 {
		t.Fatalf("EN301549 threshold=%d want=100", th)
	}
	if th := Threshold("SECTION508"); th != DefaultThreshold {
		t.Fatalf("unknown code threshold=%d want=%d", th, DefaultThreshold)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Code = "MUTATED"
	if registry[0].Code != "BITV" {
		t.Fatal("registry must not be mutable through All()")
	}
}

func TestEveryStandardHasDisplayMetadata(t *testing.T) {
	for _, s := range All() {
		if s.Name == "" || s.Jurisdiction == "" || s.Flag == "" || s.Color == "" {
			t.Fatalf("standard %s missing display metadata: %+v", s.Code, s)
		}
		if len(s.Requirements) == 0 {
			t.Fatalf("standard %s has no requirement statements", s.Code)
		}
	}
}
