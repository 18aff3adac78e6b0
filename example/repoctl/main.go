package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/iMadeThem/scopt"
)

type config struct {
	Verbose bool
	Jobs    int
	Pins    map[string]*semver.Version
	Repos   []string
	Update  bool
	Force   bool
}

func main() {
	p := scopt.New[config]("repoctl", "0.3.0")
	scopt.Note(p, "Track and update a set of source repositories.")
	scopt.Flag(p, "verbose").Short('v').
		Text("enable chatty output").
		Action(func(c config) config { c.Verbose = true; return c })
	scopt.Opt[int](p, "jobs").Short('j').ValueName("n").
		Text("parallel worker count").
		Validate(scopt.MinInt(1)).
		Action(func(n int, c config) config { c.Jobs = n; return c })
	scopt.KVOpt[string, *semver.Version](p, "pin").Keys("repo", "version").
		Text("pin a repository to a version").
		Unbounded().
		Action(func(kv scopt.KV[string, *semver.Version], c config) config {
			if c.Pins == nil {
				c.Pins = map[string]*semver.Version{}
			}
			c.Pins[kv.Key] = kv.Value
			return c
		})
	scopt.Arg[string](p, "repo").Optional().Unbounded().
		Text("repositories to operate on").
		Action(func(r string, c config) config { c.Repos = append(c.Repos, r); return c })

	update := scopt.Cmd(p, "update").
		Text("fetch and apply pending changes").
		Action(func(c config) config { c.Update = true; return c })
	scopt.Flag(update, "force").
		Text("apply even when the working tree is dirty").
		Action(func(c config) config { c.Force = true; return c })

	cfg, err := p.Parse(os.Args[1:], config{Jobs: 4})
	if err != nil {
		var report *scopt.ParseReport
		if errors.As(err, &report) {
			if errors.Is(err, scopt.ErrHelp) {
				fmt.Print(report.Usage)
				return
			}
			for _, e := range report.Errors {
				fmt.Fprintf(os.Stderr, "error: %s\n", e.Msg)
			}
			fmt.Fprint(os.Stderr, report.Usage)
			os.Exit(2)
		}
		log.Fatal(err)
	}

	if cfg.Verbose {
		fmt.Printf("jobs=%d repos=%v pins=%v\n", cfg.Jobs, cfg.Repos, cfg.Pins)
	}
	if cfg.Update {
		fmt.Printf("updating %d repositories (force=%v)\n", len(cfg.Repos), cfg.Force)
	}
}
