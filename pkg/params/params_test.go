package params

import (
	"errors"
	"testing"

	"github.com/aretw0/waybill/pkg/core"
)

func shipmentsSchema() *Schema {
	return NewSchema(
		Field{Name: "limit", Kind: Int, Default: "10"},
		Field{Name: "offset", Kind: Int, Default: "0"},
		Field{Name: "coverage", Kind: Enum, Members: []string{"local", "national", "international"}, Default: "local"},
		Field{Name: "sort", Kind: Enum, Members: []string{"ASC", "DESC"}, Default: "ASC"},
	).WithDeps("limit", "offset", "coverage")
}

func TestParse_DefaultsWhenOmitted(t *testing.T) {
	values, err := shipmentsSchema().Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if values.GetInt("limit") != 10 || values.GetInt("offset") != 0 {
		t.Errorf("pagination defaults wrong: %v", values)
	}
	if values.Get("coverage") != "local" {
		t.Errorf("coverage default = %q", values.Get("coverage"))
	}
}

func TestParse_AcceptsEveryEnumMember(t *testing.T) {
	for _, member := range []string{"local", "national", "international"} {
		values, err := shipmentsSchema().Parse("coverage=" + member)
		if err != nil {
			t.Errorf("member %q rejected: %v", member, err)
			continue
		}
		if values.Get("coverage") != member {
			t.Errorf("got %q, want %q", values.Get("coverage"), member)
		}
	}
}

func TestParse_RejectsOutOfEnumValue(t *testing.T) {
	_, err := shipmentsSchema().Parse("coverage=bogus")

	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != "coverage" {
		t.Errorf("field = %q", vErr.Field)
	}
}

func TestParse_RejectsNonNumericInt(t *testing.T) {
	_, err := shipmentsSchema().Parse("limit=many")
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeps_IgnoresUnrelatedFields(t *testing.T) {
	s := shipmentsSchema()

	a, err := s.Parse("limit=10&sort=ASC")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Parse("limit=10&sort=DESC")
	if err != nil {
		t.Fatal(err)
	}

	// sort is not a declared dep, so these navigations must not re-run
	// the loader.
	if s.Deps(a) != s.Deps(b) {
		t.Errorf("deps changed on an unrelated field: %q vs %q", s.Deps(a), s.Deps(b))
	}

	c, _ := s.Parse("limit=20")
	if s.Deps(a) == s.Deps(c) {
		t.Error("deps did not change when a declared dep changed")
	}
}

func TestDeps_DefaultsToAllFields(t *testing.T) {
	s := NewSchema(
		Field{Name: "status", Kind: String, Default: "any"},
	)
	values, _ := s.Parse("status=active")
	if s.Deps(values) != "status=active" {
		t.Errorf("got %q", s.Deps(values))
	}
}
