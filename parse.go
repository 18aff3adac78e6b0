package scopt

import (
	"fmt"
	"strings"
)

// runState is the per-invocation state of one parse: the accumulating fold
// result, every error found so far, and the usage text of the deepest scope
// reached. It is never shared between calls.
type runState struct {
	result        any
	errs          []ParseError
	usage         string
	helpRequested bool
}

// consume drives the token stream against the registry. Commands are matched
// only while their scope is still at first position; everything else resolves
// to options or positional arguments of the active scope. Errors accumulate,
// the scan never aborts early except for a help token.
func (p *Parser[C]) consume(args []string, init any) *runState {
	toks := tokenize(args)
	st := &runState{result: init}
	counts := map[*spec]int{}
	reached := []*scope{p.root}
	active := p.root
	var path []string
	atScopeStart := true

	i := 0
	for i < len(toks) {
		tok := toks[i]
		i++
		switch tok.kind {
		case tokPlain:
			if atScopeStart && !tok.literal {
				if cmd := active.commandByName(tok.text); cmd != nil {
					counts[cmd]++
					applyNode(st, cmd, Unit{})
					reached = append(reached, cmd.children)
					active = cmd.children
					path = append(path, cmd.long)
					// The new scope is at its own first position, so a
					// nested command may match immediately.
					continue
				}
			}
			atScopeStart = false
			p.bindPositional(st, active, counts, tok)
		case tokLong:
			s := active.optionByLong(tok.text)
			if s == nil {
				if !p.helpDisabled && tok.text == "help" {
					st.helpRequested = true
					st.usage = p.renderScope(active, path)
					return st
				}
				atScopeStart = false
				st.errs = append(st.errs, ParseError{Kind: UnknownOption, Msg: fmt.Sprintf("unknown option: %s", tok.raw)})
				continue
			}
			atScopeStart = false
			i = p.bindOption(st, counts, s, "--"+tok.text, tok, toks, i)
		case tokShort:
			r := []rune(tok.text)[0]
			s := active.optionByShort(r)
			if s == nil {
				if !p.helpDisabled && r == 'h' {
					st.helpRequested = true
					st.usage = p.renderScope(active, path)
					return st
				}
				atScopeStart = false
				st.errs = append(st.errs, ParseError{Kind: UnknownOption, Msg: fmt.Sprintf("unknown option: -%s", tok.text)})
				continue
			}
			atScopeStart = false
			i = p.bindOption(st, counts, s, "-"+tok.text, tok, toks, i)
		case tokCluster:
			atScopeStart = false
			i = p.bindCluster(st, active, counts, tok, toks, i)
		}
	}

	// Occurrence bounds are checked across every scope that became reachable:
	// the top level always, a command's children only once it matched.
	for _, sc := range reached {
		p.checkOccurrences(st, sc, counts)
	}
	st.usage = p.renderScope(active, path)
	return st
}

// bindOption resolves the option's value (inline, or the next plain token
// when its arity demands one), coerces it, runs every validator, and applies
// the node's action when the occurrence is clean. Returns the token index
// after any consumed value.
func (p *Parser[C]) bindOption(st *runState, counts map[*spec]int, s *spec, ident string, tok token, toks []token, i int) int {
	counts[s]++
	if s.arity == arityNone {
		if tok.hasVal {
			st.errs = append(st.errs, ParseError{
				Kind: CoercionError,
				Spec: ident,
				Msg:  fmt.Sprintf("option %s takes no value", ident),
			})
			return i
		}
		applyNode(st, s, Unit{})
		return i
	}

	raw, ok := tok.val, tok.hasVal
	if !ok && i < len(toks) && toks[i].kind == tokPlain {
		raw = toks[i].text
		ok = true
		i++
	}
	if !ok {
		st.errs = append(st.errs, ParseError{
			Kind: MissingValue,
			Spec: ident,
			Msg:  fmt.Sprintf("option %s requires a value", ident),
		})
		return i
	}

	var v any
	var err error
	if s.arity == arityPair {
		eq := strings.Index(raw, "=")
		if eq < 0 {
			st.errs = append(st.errs, ParseError{
				Kind: CoercionError,
				Spec: ident,
				Msg:  fmt.Sprintf("option %s: expected <%s>=<%s>, got '%s'", ident, s.pairKeyName, s.pairValName, raw),
			})
			return i
		}
		v, err = s.coercePair(raw[:eq], raw[eq+1:])
	} else {
		v, err = s.coerce(raw)
	}
	if err != nil {
		st.errs = append(st.errs, ParseError{
			Kind: CoercionError,
			Spec: ident,
			Msg:  fmt.Sprintf("option %s: %v", ident, err),
		})
		return i
	}

	failed := false
	for _, fn := range s.validate {
		if verr := fn(v); verr != nil {
			failed = true
			st.errs = append(st.errs, ParseError{
				Kind: ValidationFailure,
				Spec: ident,
				Msg:  fmt.Sprintf("option %s: %v", ident, verr),
			})
		}
	}
	if !failed {
		applyNode(st, s, v)
	}
	return i
}

// bindPositional binds a plain token to the first declared argument whose
// maxOccurs is not yet reached. A token no argument can accept is recorded
// and scanning continues.
func (p *Parser[C]) bindPositional(st *runState, active *scope, counts map[*spec]int, tok token) {
	var target *spec
	for _, s := range active.nodes {
		if s.kind == argumentSpec && counts[s] < s.maxOccurs {
			target = s
			break
		}
	}
	if target == nil {
		st.errs = append(st.errs, ParseError{Kind: UnknownArgument, Msg: fmt.Sprintf("unknown argument: '%s'", tok.text)})
		return
	}
	counts[target]++
	v, err := target.coerce(tok.text)
	if err != nil {
		st.errs = append(st.errs, ParseError{
			Kind: CoercionError,
			Spec: target.ident(),
			Msg:  fmt.Sprintf("argument %s: %v", target.ident(), err),
		})
		return
	}
	failed := false
	for _, fn := range target.validate {
		if verr := fn(v); verr != nil {
			failed = true
			st.errs = append(st.errs, ParseError{
				Kind: ValidationFailure,
				Spec: target.ident(),
				Msg:  fmt.Sprintf("argument %s: %v", target.ident(), verr),
			})
		}
	}
	if !failed {
		applyNode(st, target, v)
	}
}

// bindCluster expands a multi-character short token into individual flags
// only when every character names a valueless option in the active scope.
// Otherwise the first character is the option and the remaining characters
// are its inline value.
func (p *Parser[C]) bindCluster(st *runState, active *scope, counts map[*spec]int, tok token, toks []token, i int) int {
	chars := []rune(tok.text)
	allFlags := true
	for _, r := range chars {
		o := active.optionByShort(r)
		if o == nil || o.arity != arityNone {
			allFlags = false
			break
		}
	}
	if allFlags {
		for _, r := range chars {
			s := active.optionByShort(r)
			counts[s]++
			applyNode(st, s, Unit{})
		}
		return i
	}
	first := chars[0]
	s := active.optionByShort(first)
	if s == nil {
		st.errs = append(st.errs, ParseError{Kind: UnknownOption, Msg: fmt.Sprintf("unknown option: -%s", string(first))})
		return i
	}
	synth := token{kind: tokShort, text: string(first), val: string(chars[1:]), hasVal: true, raw: tok.raw}
	return p.bindOption(st, counts, s, "-"+string(first), synth, toks, i)
}

func (p *Parser[C]) checkOccurrences(st *runState, sc *scope, counts map[*spec]int) {
	for _, s := range sc.nodes {
		if s.kind == noteSpec {
			continue
		}
		kindWord := "option"
		switch s.kind {
		case argumentSpec:
			kindWord = "argument"
		case commandSpec:
			kindWord = "command"
		}
		c := counts[s]
		switch {
		case c < s.minOccurs:
			msg := fmt.Sprintf("missing required %s %s", kindWord, s.ident())
			if s.minOccurs > 1 || c > 0 {
				msg = fmt.Sprintf("%s %s must be given at least %d times, given %d", kindWord, s.ident(), s.minOccurs, c)
			}
			st.errs = append(st.errs, ParseError{Kind: OccurrenceViolation, Spec: s.ident(), Msg: msg})
		case c > s.maxOccurs:
			st.errs = append(st.errs, ParseError{
				Kind: OccurrenceViolation,
				Spec: s.ident(),
				Msg:  fmt.Sprintf("%s %s given %d times, at most %d allowed", kindWord, s.ident(), c, s.maxOccurs),
			})
		}
	}
}

func applyNode(st *runState, s *spec, v any) {
	if s.fold != nil {
		st.result = s.fold(v, st.result)
	}
	if s.effect != nil {
		s.effect(v)
	}
}
