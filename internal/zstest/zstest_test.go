package zstest

import "testing"

func TestFixturesFormatAsExpected(t *testing.T) {
	fixtures, err := LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("expected at least one fixture under testdata/")
	}

	for _, r := range Run(fixtures) {
		if r.Err != nil {
			t.Errorf("%s", r)
		}
	}
}

func TestFixturesAreIdempotent(t *testing.T) {
	fixtures, err := LoadFixtures("testdata")
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	for _, f := range fixtures {
		ok, err := Idempotent(f.Want)
		if err != nil {
			t.Errorf("%s: Idempotent: %v", f.Name, err)
			continue
		}
		if !ok {
			t.Errorf("%s: re-formatting its own output was not a no-op", f.Name)
		}
	}
}
