package scopt

import (
	"strings"
	"testing"
)

func TestBoundsValidators(t *testing.T) {
	if err := MinInt(3)(2); err == nil || !strings.Contains(err.Error(), "at least 3") {
		t.Fatalf("MinInt: %v", err)
	}
	if err := MinInt(3)(3); err != nil {
		t.Fatalf("MinInt at bound: %v", err)
	}
	if err := MaxInt(3)(4); err == nil || !strings.Contains(err.Error(), "at most 3") {
		t.Fatalf("MaxInt: %v", err)
	}
	if err := NonEmpty()(""); err == nil {
		t.Fatal("NonEmpty should reject empty")
	}
	if err := OneOf("a", "b")("c"); err == nil || !strings.Contains(err.Error(), "must be one of") {
		t.Fatalf("OneOf: %v", err)
	}
	if err := OneOf("a", "b")("b"); err != nil {
		t.Fatalf("OneOf accept: %v", err)
	}
}

func TestMatchesSchema(t *testing.T) {
	positive := MatchesSchema("positive.json", `{"type":"integer","minimum":1}`)
	if err := positive("5"); err != nil {
		t.Fatalf("schema should accept 5: %v", err)
	}
	if err := positive("0"); err == nil {
		t.Fatal("schema should reject 0")
	}
	// Non-JSON input is validated as a plain string.
	if err := positive("banana"); err == nil {
		t.Fatal("schema should reject a string where an integer is required")
	}

	name := MatchesSchema("name.json", `{"type":"string","minLength":2}`)
	if err := name("ok"); err != nil {
		t.Fatalf("schema should accept a two-rune string: %v", err)
	}
}

func TestMatchesSchemaAsOptionValidator(t *testing.T) {
	p := New[string]("t", "")
	p.DisableColor()
	Opt[string](p, "labels").
		Validate(MatchesSchema("labels.json", `{"type":"object","required":["app"]}`)).
		Action(func(v string, _ string) string { return v })

	if _, err := p.Parse([]string{"--labels", `{"app":"web"}`}, ""); err != nil {
		t.Fatalf("valid labels rejected: %v", err)
	}
	_, err := p.Parse([]string{"--labels", `{}`}, "")
	report, ok := err.(*ParseReport)
	if !ok || len(report.Errors) != 1 || report.Errors[0].Kind != ValidationFailure {
		t.Fatalf("expected one validation failure, got %v", err)
	}
}
