package scopt

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func TestParseBoolToken(t *testing.T) {
	truthy := []string{"true", "TRUE", "yes", "on", "1"}
	falsy := []string{"false", "No", "off", "0"}
	for _, raw := range truthy {
		got, err := parseBoolToken(raw)
		if err != nil || !got {
			t.Fatalf("parseBoolToken(%q) = %v, %v, want true", raw, got, err)
		}
	}
	for _, raw := range falsy {
		got, err := parseBoolToken(raw)
		if err != nil || got {
			t.Fatalf("parseBoolToken(%q) = %v, %v, want false", raw, got, err)
		}
	}
	if _, err := parseBoolToken("maybe"); err == nil {
		t.Fatal("parseBoolToken(maybe) should fail")
	}
}

func TestBuiltinCoercers(t *testing.T) {
	intC, ok := coercerFor(typeOf[int]())
	if !ok {
		t.Fatal("no int coercer registered")
	}
	if v, err := intC("42"); err != nil || v.(int) != 42 {
		t.Fatalf("int coercer: got %v, %v", v, err)
	}
	if _, err := intC("nope"); err == nil || !strings.Contains(err.Error(), "'nope' is not a valid integer") {
		t.Fatalf("int coercer error: %v", err)
	}

	durC, _ := coercerFor(typeOf[time.Duration]())
	if v, err := durC("1h30m"); err != nil || v.(time.Duration) != 90*time.Minute {
		t.Fatalf("duration coercer: got %v, %v", v, err)
	}

	fC, _ := coercerFor(typeOf[float64]())
	if v, err := fC("2.5"); err != nil || v.(float64) != 2.5 {
		t.Fatalf("float coercer: got %v, %v", v, err)
	}

	uC, _ := coercerFor(typeOf[uuid.UUID]())
	id := "2b1e9a80-1f25-4873-9c2f-2cb8a6a1f0aa"
	if v, err := uC(id); err != nil || v.(uuid.UUID).String() != id {
		t.Fatalf("uuid coercer: got %v, %v", v, err)
	}
	if _, err := uC("not-a-uuid"); err == nil {
		t.Fatal("uuid coercer should reject garbage")
	}
}

func TestSemverCoercer(t *testing.T) {
	p := New[string]("t", "")
	Opt[*semver.Version](p, "ver").
		Action(func(v *semver.Version, _ string) string { return v.String() })

	got, err := p.Parse([]string{"--ver", "1.2.3"}, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "1.2.3" {
		t.Fatalf("version action saw %q, want 1.2.3", got)
	}

	_, err = p.Parse([]string{"--ver", "banana"}, "")
	report, ok := err.(*ParseReport)
	if !ok || len(report.Errors) != 1 || report.Errors[0].Kind != CoercionError {
		t.Fatalf("expected one coercion error, got %v", err)
	}
}

func TestRegisterCoercerOverride(t *testing.T) {
	type hex int
	RegisterCoercer(func(raw string) (hex, error) {
		var n int
		for _, r := range raw {
			switch {
			case r >= '0' && r <= '9':
				n = n*16 + int(r-'0')
			case r >= 'a' && r <= 'f':
				n = n*16 + int(r-'a') + 10
			default:
				return 0, notValid(raw, "hex number")
			}
		}
		return hex(n), nil
	})
	c, ok := coercerFor(typeOf[hex]())
	if !ok {
		t.Fatal("custom coercer not registered")
	}
	if v, err := c("ff"); err != nil || v.(hex) != 255 {
		t.Fatalf("hex coercer: got %v, %v", v, err)
	}
}
