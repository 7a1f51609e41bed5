// Package zstest is the golden-test harness for the formatter: it
// loads fixture files (Zeek source plus the expected canonical
// rendering) and runs them through the real Script pipeline, the way
// the teacher's tester package drove grammar test cases through a
// compiled parser. Fixture metadata is YAML (go.uber fixtures in the
// teacher were a bespoke tree-sexpr grammar; here a YAML document is
// enough, since the only "tree" under comparison is formatted text
// and, optionally, a dump-format snapshot).
package zstest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/script"
)

// Fixture is one golden-test case: Zeek source in, canonical output
// expected. Tree, if set, is additionally checked against the
// dump-tree output (spec.md §6) for test cases that exercise the EST
// shape rather than layout.
type Fixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Want   string `yaml:"want"`
	Tree   string `yaml:"tree,omitempty"`

	Path string `yaml:"-"`
}

// LoadFixtures reads every *.yaml file directly under dir (no
// recursion, matching the teacher's one-file-per-case layout under
// tester/...).
func LoadFixtures(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var fixtures []*Fixture
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := loadFixture(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func loadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	f.Path = path
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}
	return &f, nil
}

// Result is the outcome of running one Fixture, mirroring the
// teacher's TestResult shape (a path, an error, and a diff to print).
type Result struct {
	Fixture *Fixture
	Err     error
	Diff    string
}

func (r *Result) String() string {
	if r.Err == nil {
		return fmt.Sprintf("PASS %s", r.Fixture.Name)
	}
	msg := fmt.Sprintf("FAIL %s: %v", r.Fixture.Name, r.Err)
	if r.Diff != "" {
		msg += "\n" + indent(r.Diff, "    ")
	}
	return msg
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// Run formats every fixture's Source and compares it against Want
// (and Tree, if given), using go-cmp for the diff the teacher used
// a bespoke TreeDiff type for.
func Run(fixtures []*Fixture) []*Result {
	results := make([]*Result, 0, len(fixtures))
	for _, f := range fixtures {
		results = append(results, runOne(f))
	}
	return results
}

func runOne(f *Fixture) *Result {
	sc := script.New(script.NewReader(strings.NewReader(f.Source)), ztszeek.Parser{})
	if _, err := sc.Parse(); err != nil {
		return &Result{Fixture: f, Err: err}
	}

	var out bytes.Buffer
	if err := sc.Format(&out, true); err != nil {
		return &Result{Fixture: f, Err: err}
	}
	if got := out.String(); got != f.Want {
		return &Result{
			Fixture: f,
			Err:     fmt.Errorf("formatted output mismatch"),
			Diff:    cmp.Diff(f.Want, got),
		}
	}

	if f.Tree != "" {
		var dump bytes.Buffer
		if err := sc.WriteTree(&dump, false); err != nil {
			return &Result{Fixture: f, Err: err}
		}
		if got := dump.String(); got != f.Tree {
			return &Result{
				Fixture: f,
				Err:     fmt.Errorf("tree dump mismatch"),
				Diff:    cmp.Diff(f.Tree, got),
			}
		}
	}

	return &Result{Fixture: f}
}

// Idempotent reports whether formatting already-formatted output a
// second time is a no-op, the P1 "stable under re-formatting"
// property from spec.md §8.
func Idempotent(formatted string) (bool, error) {
	sc := script.New(script.NewReader(strings.NewReader(formatted)), ztszeek.Parser{})
	if _, err := sc.Parse(); err != nil {
		return false, err
	}
	var out bytes.Buffer
	if err := sc.Format(&out, true); err != nil {
		return false, err
	}
	return out.String() == formatted, nil
}
