package scopt

import (
	"errors"
	"strings"
	"testing"
)

func declErrOf(t *testing.T, p *Parser[testCfg]) string {
	t.Helper()
	_, err := p.Parse(nil, testCfg{})
	var decl *DeclarationError
	if !errors.As(err, &decl) {
		t.Fatalf("expected *DeclarationError, got %v", err)
	}
	return decl.Error()
}

func TestDeclaration_DuplicateIdentity(t *testing.T) {
	p := newTestParser(t)
	Flag(p, "verbose").Short('v')
	Opt[int](p, "verbose").Short('v')

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "duplicate option --verbose") || !strings.Contains(msg, "duplicate option -v") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}

func TestDeclaration_DuplicatesScopedPerCommand(t *testing.T) {
	// The same identity in different scopes is legal.
	p := newTestParser(t)
	Flag(p, "force")
	update := Cmd(p, "update")
	Flag(update, "force")

	if _, err := p.Parse(nil, testCfg{}); err != nil {
		t.Fatalf("sibling scopes should not collide: %v", err)
	}
}

func TestDeclaration_InvalidArityBounds(t *testing.T) {
	p := newTestParser(t)
	Opt[int](p, "count").MinOccurs(2)

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "minOccurs 2 exceeds maxOccurs 1") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}

func TestDeclaration_ArgumentOrderingAmbiguity(t *testing.T) {
	p := newTestParser(t)
	Arg[string](p, "extras").Optional().Unbounded()
	Arg[string](p, "target")

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "required argument follows optional or unbounded argument") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}

func TestDeclaration_SingleUnboundedArgumentPerScope(t *testing.T) {
	p := newTestParser(t)
	Arg[string](p, "a").Unbounded()
	Arg[string](p, "b").Unbounded()

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "more than one unbounded argument") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}

func TestDeclaration_MixedActionModes(t *testing.T) {
	p := newTestParser(t)
	Flag(p, "verbose").Action(func(c testCfg) testCfg { return c })
	Flag(p, "quiet").Effect(func() {})

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "cannot mix fold actions and effect callbacks") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}

func TestDeclaration_MissingCoercer(t *testing.T) {
	type exotic struct{ A, B int }
	p := newTestParser(t)
	Opt[exotic](p, "pair")

	msg := declErrOf(t, p)
	if !strings.Contains(msg, "no coercer registered") {
		t.Fatalf("unexpected declaration error: %s", msg)
	}

	// A per-node Coerce supplies what the registry lacks.
	p2 := newTestParser(t)
	Opt[exotic](p2, "pair").Coerce(func(raw string) (exotic, error) {
		return exotic{}, nil
	})
	if _, err := p2.Parse(nil, testCfg{}); err != nil {
		t.Fatalf("custom coercer should satisfy the declaration: %v", err)
	}
}

func TestDeclaration_ChildErrorsNameTheirCommand(t *testing.T) {
	p := newTestParser(t)
	update := Cmd(p, "update")
	Flag(update, "force")
	Flag(update, "force")

	msg := declErrOf(t, p)
	if !strings.Contains(msg, `command "update": duplicate option --force`) {
		t.Fatalf("unexpected declaration error: %s", msg)
	}
}
