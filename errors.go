package scopt

import (
	"errors"
	"strings"
)

// ErrorKind classifies a problem found while consuming input tokens.
type ErrorKind int

const (
	UnknownOption ErrorKind = iota
	UnknownArgument
	MissingValue
	CoercionError
	ValidationFailure
	OccurrenceViolation
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case UnknownArgument:
		return "unknown argument"
	case MissingValue:
		return "missing value"
	case CoercionError:
		return "coercion error"
	case ValidationFailure:
		return "validation failure"
	case OccurrenceViolation:
		return "occurrence violation"
	}
	return "parse error"
}

// ParseError is one user-facing problem found during a Parse or Run call.
// Spec names the identity of the spec node involved, when one resolved.
type ParseError struct {
	Kind ErrorKind
	Spec string
	Msg  string
}

func (e ParseError) Error() string { return e.Msg }

// ErrHelp reports that a help token short-circuited parsing. A *ParseReport
// returned from Parse matches it via errors.Is when Help is set.
var ErrHelp = errors.New("help requested")

// ParseReport is the error value carrying everything that went wrong in one
// invocation: the accumulated error list plus rendered usage text for the
// deepest scope reached.
type ParseReport struct {
	Errors []ParseError
	Usage  string
	Help   bool
}

func (r *ParseReport) Error() string {
	if r.Help {
		return ErrHelp.Error()
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Msg
	}
	return strings.Join(msgs, "; ")
}

func (r *ParseReport) Is(target error) bool { return r.Help && target == ErrHelp }

// DeclarationError reports a malformed spec registry: duplicate identities,
// invalid arity bounds, ambiguous argument ordering, missing coercers, or
// mixed action modes. It is a programmer error, fatal to the whole parser.
type DeclarationError struct {
	err error
}

func (e *DeclarationError) Error() string { return "scopt: invalid declaration: " + e.err.Error() }

func (e *DeclarationError) Unwrap() error { return e.err }
