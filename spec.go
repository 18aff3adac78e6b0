package scopt

import "math"

type specKind int

const (
	optionSpec specKind = iota
	argumentSpec
	commandSpec
	noteSpec
)

type valueArity int

const (
	arityNone valueArity = iota
	aritySingle
	arityPair
)

// maxUnbounded is the effective infinity for maxOccurs.
const maxUnbounded = math.MaxInt

// spec is one declared node: an option, a positional argument, a command, or
// a free-form usage note. Nodes are built once during declaration and read
// repeatedly during parsing and rendering; per-call occurrence counts live in
// the parse state, never here.
type spec struct {
	kind  specKind
	short rune   // options only, 0 when unset
	long  string // option long name, argument/command display name

	minOccurs int
	maxOccurs int
	arity     valueArity

	typeName   string // value type, for declaration errors
	coerce     func(raw string) (any, error)
	coercePair func(key, val string) (any, error)
	validate   []func(v any) error

	// Exactly one of fold/effect per node, matching the parser's mode.
	fold   func(v any, cfg any) any
	effect func(v any)

	help        string
	valueName   string
	pairKeyName string
	pairValName string
	hidden      bool
	note        string

	children *scope // commands only
}

// ident returns the display identity used in error messages and usage text.
func (s *spec) ident() string {
	switch s.kind {
	case optionSpec:
		if s.long != "" {
			return "--" + s.long
		}
		if s.short != 0 {
			return "-" + string(s.short)
		}
		return "(unnamed option)"
	case argumentSpec:
		return "<" + s.long + ">"
	case commandSpec:
		return s.long
	}
	return s.long
}

// scope is an ordered registry of spec nodes: the top level, or one matched
// command's children.
type scope struct {
	nodes []*spec
}

func (sc *scope) optionByLong(name string) *spec {
	for _, s := range sc.nodes {
		if s.kind == optionSpec && s.long != "" && s.long == name {
			return s
		}
	}
	return nil
}

func (sc *scope) optionByShort(r rune) *spec {
	for _, s := range sc.nodes {
		if s.kind == optionSpec && s.short != 0 && s.short == r {
			return s
		}
	}
	return nil
}

func (sc *scope) commandByName(name string) *spec {
	for _, s := range sc.nodes {
		if s.kind == commandSpec && s.long == name {
			return s
		}
	}
	return nil
}

func (sc *scope) hasCommands() bool {
	for _, s := range sc.nodes {
		if s.kind == commandSpec && !s.hidden {
			return true
		}
	}
	return false
}

func (sc *scope) hasOptions() bool {
	for _, s := range sc.nodes {
		if s.kind == optionSpec && !s.hidden {
			return true
		}
	}
	return false
}

func (sc *scope) arguments() []*spec {
	var out []*spec
	for _, s := range sc.nodes {
		if s.kind == argumentSpec {
			out = append(out, s)
		}
	}
	return out
}
