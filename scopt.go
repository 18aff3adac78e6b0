package scopt

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type actionMode int

const (
	modeUnset actionMode = iota
	modeFold
	modeEffect
)

// Unit is the configuration type of mutable-mode parsers, which thread no
// fold state; configuration lives in caller-captured closures instead.
type Unit struct{}

// Parser holds one spec registry plus the program identity used for usage
// rendering. The registry is read-only during parsing, so a Parser in fold
// mode may be reused across sequential Parse calls.
type Parser[C any] struct {
	prog    string
	version string
	root    *scope
	mode    actionMode

	decl *multierror.Error // builder-time declaration errors

	out          io.Writer
	width        int
	colorize     bool
	helpDisabled bool
}

// New returns a parser in fold mode: every matched node's Action is applied
// as result = action(value, result), starting from the initial value handed
// to Parse.
func New[C any](prog, version string) *Parser[C] {
	p := &Parser[C]{
		prog:    prog,
		version: version,
		root:    &scope{},
		out:     os.Stderr,
		width:   80,
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			p.width = w
		}
		p.colorize = true
	}
	return p
}

// NewMutable returns a parser in effect mode: matched nodes invoke their
// Effect callbacks in place and Run reports a boolean outcome. The target
// configuration is whatever the callbacks close over, so a mutable parser
// must not be driven from multiple goroutines at once.
func NewMutable(prog, version string) *Parser[Unit] {
	p := New[Unit](prog, version)
	p.mode = modeEffect
	return p
}

// SetOutput redirects the error and usage output of Run. Default os.Stderr.
func (p *Parser[C]) SetOutput(w io.Writer) { p.out = w }

// SetWidth fixes the column width used to wrap help text, overriding the
// terminal-derived default.
func (p *Parser[C]) SetWidth(w int) {
	if w > 0 {
		p.width = w
	}
}

// DisableHelp stops the parser from recognizing --help/-h in scopes where no
// user-declared option claims those identities.
func (p *Parser[C]) DisableHelp() { p.helpDisabled = true }

// DisableColor forces plain usage output even on a terminal.
func (p *Parser[C]) DisableColor() { p.colorize = false }

func (p *Parser[C]) addNode(s *spec)      { p.root.nodes = append(p.root.nodes, s) }
func (p *Parser[C]) parserOf() *Parser[C] { return p }

func (p *Parser[C]) declErrf(format string, args ...any) {
	p.decl = multierror.Append(p.decl, fmt.Errorf(format, args...))
}

func (p *Parser[C]) setMode(m actionMode, ident string) {
	if p.mode == modeUnset {
		p.mode = m
		return
	}
	if p.mode != m {
		p.declErrf("%s: cannot mix fold actions and effect callbacks in one parser", ident)
	}
}

// declarationErr combines builder-time errors with the structural invariants
// checked over the whole registry tree. Nil means the declaration is sound.
func (p *Parser[C]) declarationErr() error {
	var merr *multierror.Error
	if p.decl != nil {
		merr = multierror.Append(merr, p.decl.Errors...)
	}
	merr = checkScope(merr, p.root, "")
	if err := merr.ErrorOrNil(); err != nil {
		return &DeclarationError{err: err}
	}
	return nil
}

// Parse consumes args against the registry in fold mode. On success it
// returns the folded configuration. On failure the error is a *ParseReport
// with every accumulated problem and the usage text of the deepest scope
// reached; a help token yields a report matching ErrHelp. Malformed
// declarations surface as *DeclarationError instead.
func (p *Parser[C]) Parse(args []string, init C) (C, error) {
	var zero C
	if err := p.declarationErr(); err != nil {
		return zero, err
	}
	if p.mode == modeEffect {
		return zero, &DeclarationError{err: fmt.Errorf("Parse called on an effect-mode parser; use Run")}
	}
	st := p.consume(args, init)
	if st.helpRequested {
		return zero, &ParseReport{Help: true, Usage: st.usage}
	}
	if len(st.errs) > 0 {
		return zero, &ParseReport{Errors: st.errs, Usage: st.usage}
	}
	return st.result.(C), nil
}

// Run consumes args in effect mode, invoking Effect callbacks as tokens
// match. It returns false after writing the error list and usage text to the
// configured output; a help token prints usage and returns true.
func (p *Parser[C]) Run(args []string) bool {
	if err := p.declarationErr(); err != nil {
		fmt.Fprintln(p.out, err)
		return false
	}
	if p.mode == modeFold {
		fmt.Fprintln(p.out, &DeclarationError{err: fmt.Errorf("Run called on a fold-mode parser; use Parse")})
		return false
	}
	var zero C
	st := p.consume(args, zero)
	if st.helpRequested {
		fmt.Fprint(p.out, st.usage)
		return true
	}
	if len(st.errs) > 0 {
		for _, e := range st.errs {
			fmt.Fprintf(p.out, "error: %s\n", e.Msg)
		}
		fmt.Fprint(p.out, st.usage)
		return false
	}
	return true
}

// Usage renders help text for the top-level registry. Rendering is a pure
// function of the registry and never fails.
func (p *Parser[C]) Usage() string { return p.renderScope(p.root, nil) }
