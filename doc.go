// Package scopt is a declarative command-line argument parser. Applications
// describe their options, positional arguments and subcommands once, as a
// registry of typed spec nodes with occurrence bounds and validators, and get
// both the parser and the usage text from that single declaration.
//
// A parser runs in one of two modes. In fold mode every matched node applies
// a pure action over an immutable configuration value:
//
//	type config struct {
//		Verbose bool
//		Count   int
//		Files   []string
//	}
//
//	p := scopt.New[config]("grep2", "1.0.0")
//	scopt.Flag(p, "verbose").Short('v').
//		Text("enable chatty output").
//		Action(func(c config) config { c.Verbose = true; return c })
//	scopt.Opt[int](p, "count").Short('c').
//		Validate(scopt.MinInt(0)).
//		Action(func(n int, c config) config { c.Count = n; return c })
//	scopt.Arg[string](p, "file").Unbounded().
//		Action(func(f string, c config) config { c.Files = append(c.Files, f); return c })
//
//	cfg, err := p.Parse(os.Args[1:], config{Count: 10})
//
// In effect mode, built with NewMutable, nodes carry side-effecting Effect
// callbacks instead and Run reports a boolean outcome.
//
// Accepted token shapes: --name value, --name=value, --name:value, -n value,
// -n=value, and clustered short flags such as -abc. A multi-character short
// token expands into individual flags only when every character names a
// valueless option in the active scope; otherwise the first character is the
// option and the rest of the token is its inline value. A bare -- ends option
// processing; later tokens are always positional.
//
// Commands open a nested scope and are matched only at the first position of
// their scope. All input problems accumulate: one Parse call reports every
// unknown option, coercion failure, validation failure and occurrence
// violation it finds, together with usage text for the deepest scope reached.
// Only malformed declarations are fatal.
package scopt
