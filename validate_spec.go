package scopt

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// checkScope walks one registry scope and appends every declaration invariant
// violation it finds. All violations are collected so a single error reports
// the whole picture, then child command scopes are checked recursively.
func checkScope(merr *multierror.Error, sc *scope, where string) *multierror.Error {
	fail := func(format string, args ...any) {
		merr = multierror.Append(merr, fmt.Errorf("%s"+format, append([]any{where}, args...)...))
	}

	longs := map[string]bool{}
	shorts := map[rune]bool{}
	cmds := map[string]bool{}
	sawUnbounded := false
	sawOptionalArg := ""

	for _, s := range sc.nodes {
		if s.kind == noteSpec {
			continue
		}
		if s.minOccurs < 0 {
			fail("%s: negative minOccurs %d", s.ident(), s.minOccurs)
		}
		if s.minOccurs > s.maxOccurs {
			fail("%s: minOccurs %d exceeds maxOccurs %d", s.ident(), s.minOccurs, s.maxOccurs)
		}
		if s.arity == aritySingle && s.coerce == nil {
			fail("%s: no coercer registered for type %s", s.ident(), s.typeName)
		}
		if s.arity == arityPair && s.coercePair == nil {
			fail("%s: no coercer registered for pair type %s", s.ident(), s.typeName)
		}
		if s.fold != nil && s.effect != nil {
			fail("%s: both Action and Effect set", s.ident())
		}

		switch s.kind {
		case optionSpec:
			if s.long == "" && s.short == 0 {
				fail("option declared with neither a long name nor a short character")
			}
			if s.long != "" {
				if longs[s.long] {
					fail("duplicate option --%s", s.long)
				}
				longs[s.long] = true
			}
			if s.short != 0 {
				if shorts[s.short] {
					fail("duplicate option -%s", string(s.short))
				}
				shorts[s.short] = true
			}
		case argumentSpec:
			if s.long == "" {
				fail("argument declared with an empty name")
			}
			if s.maxOccurs == maxUnbounded {
				if sawUnbounded {
					fail("%s: more than one unbounded argument in one scope", s.ident())
				}
				sawUnbounded = true
			}
			if s.minOccurs >= 1 && sawOptionalArg != "" {
				fail("%s: required argument follows optional or unbounded argument %s", s.ident(), sawOptionalArg)
			}
			if s.minOccurs == 0 || s.maxOccurs == maxUnbounded {
				sawOptionalArg = s.ident()
			}
		case commandSpec:
			if s.long == "" {
				fail("command declared with an empty name")
			}
			if cmds[s.long] {
				fail("duplicate command %q", s.long)
			}
			cmds[s.long] = true
			merr = checkScope(merr, s.children, fmt.Sprintf("%scommand %q: ", where, s.long))
		}
	}
	return merr
}
