package scopt

import "strings"

type tokenKind int

const (
	tokPlain tokenKind = iota
	tokLong
	tokShort
	tokCluster
)

// token is one canonical lexical unit. For tokLong, text is the long name and
// val holds an inline value split off at the first '=' or ':'. For tokShort,
// text is the single option character. For tokCluster, text is the run of
// characters after the '-' whose interpretation is decided by the matcher.
type token struct {
	kind    tokenKind
	text    string
	val     string
	hasVal  bool
	raw     string
	literal bool // appeared after a bare "--" terminator
}

// tokenize is purely lexical: it never consults the spec registry. Whether a
// cluster expands into flags, or a plain token binds to a command, argument
// or option value, is decided later by the matcher.
func tokenize(args []string) []token {
	var toks []token
	terminated := false
	for _, a := range args {
		if terminated {
			toks = append(toks, token{kind: tokPlain, text: a, raw: a, literal: true})
			continue
		}
		switch {
		case a == "--":
			terminated = true
		case strings.HasPrefix(a, "--"):
			name := a[2:]
			if i := strings.IndexAny(name, "=:"); i >= 0 {
				toks = append(toks, token{kind: tokLong, text: name[:i], val: name[i+1:], hasVal: true, raw: a})
			} else {
				toks = append(toks, token{kind: tokLong, text: name, raw: a})
			}
		case strings.HasPrefix(a, "-") && len(a) > 1:
			body := []rune(a[1:])
			switch {
			case len(body) == 1:
				toks = append(toks, token{kind: tokShort, text: string(body), raw: a})
			case body[1] == '=' || body[1] == ':':
				toks = append(toks, token{kind: tokShort, text: string(body[0]), val: string(body[2:]), hasVal: true, raw: a})
			default:
				toks = append(toks, token{kind: tokCluster, text: string(body), raw: a})
			}
		default:
			toks = append(toks, token{kind: tokPlain, text: a, raw: a})
		}
	}
	return toks
}
