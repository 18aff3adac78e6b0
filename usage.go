package scopt

import (
	"strings"

	"github.com/fatih/color"
)

// usageEntry is one rendered block line: an option or argument with its help
// text, or an embedded free-form note.
type usageEntry struct {
	left string
	help string
	note string
}

// renderScope produces the usage text for one registry scope: header and
// synopsis, one block per visible option and argument in declaration order
// with notes interleaved where declared, then one "Command:" block per
// declared command. Rendering reads only the registry, never parse state.
func (p *Parser[C]) renderScope(sc *scope, path []string) string {
	var b strings.Builder
	header := p.prog
	if p.version != "" {
		header += " " + p.version
	}
	b.WriteString(p.bold(header) + "\n")
	b.WriteString(p.bold("Usage:") + " " + p.synopsis(sc, path) + "\n")
	entries := p.entriesOf(sc)
	if len(entries) > 0 {
		b.WriteString("\n")
		p.writeEntries(&b, entries, 2)
	}
	p.writeCommands(&b, sc, path)
	return b.String()
}

func (p *Parser[C]) synopsis(sc *scope, path []string) string {
	parts := append([]string{p.prog}, path...)
	if sc.hasCommands() {
		parts = append(parts, "[command]")
	}
	if sc.hasOptions() {
		parts = append(parts, "[options]")
	}
	for _, a := range sc.arguments() {
		if a.hidden {
			continue
		}
		tok := "<" + a.long + ">"
		if a.maxOccurs == maxUnbounded {
			tok += "..."
		}
		if a.minOccurs == 0 {
			tok = "[" + tok + "]"
		}
		parts = append(parts, tok)
	}
	return strings.Join(parts, " ")
}

func (p *Parser[C]) entriesOf(sc *scope) []usageEntry {
	var out []usageEntry
	for _, s := range sc.nodes {
		switch s.kind {
		case noteSpec:
			out = append(out, usageEntry{note: s.note})
		case optionSpec:
			if !s.hidden {
				out = append(out, usageEntry{left: optionLabel(s), help: s.help})
			}
		case argumentSpec:
			if !s.hidden {
				out = append(out, usageEntry{left: "<" + s.long + ">", help: s.help})
			}
		}
	}
	return out
}

func optionLabel(s *spec) string {
	var id string
	switch {
	case s.short != 0 && s.long != "":
		id = "-" + string(s.short) + ", --" + s.long
	case s.long != "":
		id = "    --" + s.long
	default:
		id = "-" + string(s.short)
	}
	switch s.arity {
	case aritySingle:
		id += " <" + s.valueName + ">"
	case arityPair:
		id += ":<" + s.pairKeyName + ">=<" + s.pairValName + ">"
	}
	return id
}

func (p *Parser[C]) writeEntries(b *strings.Builder, entries []usageEntry, indent int) {
	width := 0
	for _, e := range entries {
		if e.note == "" && len(e.left) > width {
			width = len(e.left)
		}
	}
	if width > 26 {
		width = 26
	}
	pad := strings.Repeat(" ", indent)
	cont := pad + strings.Repeat(" ", width+2)
	for _, e := range entries {
		if e.note != "" {
			b.WriteString("\n")
			for _, ln := range wrap(e.note, p.width-indent) {
				b.WriteString(pad + ln + "\n")
			}
			continue
		}
		if e.help == "" {
			b.WriteString(pad + e.left + "\n")
			continue
		}
		lines := wrap(e.help, p.width-indent-width-2)
		if len(e.left) > width {
			b.WriteString(pad + e.left + "\n")
			for _, ln := range lines {
				b.WriteString(cont + ln + "\n")
			}
			continue
		}
		b.WriteString(pad + e.left + strings.Repeat(" ", width-len(e.left)+2) + lines[0] + "\n")
		for _, ln := range lines[1:] {
			b.WriteString(cont + ln + "\n")
		}
	}
}

func (p *Parser[C]) writeCommands(b *strings.Builder, sc *scope, path []string) {
	for _, s := range sc.nodes {
		if s.kind != commandSpec || s.hidden {
			continue
		}
		full := append(append([]string{}, path...), s.long)
		b.WriteString("\n" + p.bold("Command:") + " " + strings.Join(full, " ") + "\n")
		if s.help != "" {
			for _, ln := range wrap(s.help, p.width-2) {
				b.WriteString("  " + ln + "\n")
			}
		}
		p.writeEntries(b, p.entriesOf(s.children), 2)
		p.writeCommands(b, s.children, full)
	}
}

func (p *Parser[C]) bold(s string) string {
	if !p.colorize {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func wrap(s string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
		} else {
			cur += " " + w
		}
	}
	return append(lines, cur)
}
