package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taistep/cmds"
	"github.com/reusee/taistep/consoles"
	"github.com/reusee/taistep/modes"
	"github.com/reusee/taistep/steps"
)

var (
	interactive bool
	target      string
	repl        bool
	filenames   []string
)

func init() {
	cmds.Define("-i", cmds.Func(func() {
		interactive = true
	}).Desc("step interactively, blocking for input between snippets"))
	cmds.Define("-ff", cmds.Func(func(v string) {
		target = v
	}).Desc("fast-forward to a snippet ordinal or a documentation substring, requires -i"))
	cmds.Define("-repl", cmds.Func(func() {
		repl = true
	}).Desc("open a read-eval-print loop on the final namespace after the walkthrough"))
	cmds.Fallback(func(arg string) error {
		filenames = append(filenames, arg)
		return nil
	})
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	ce(validateArgs())

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
		dscope.Provide(steps.Interactive(interactive)),
		dscope.Provide(steps.Target(target)),
	)

	scope.Call(func(
		run steps.Run,
		loadPaths consoles.LoadPaths,
	) {
		ce(validateLoadPaths(loadPaths))

		console, err := run(ctx, filenames[0])
		ce(err)

		if repl {
			console.REPL()
		}
	})
}

func validateArgs() error {
	if len(filenames) != 1 {
		return fmt.Errorf("expecting exactly one file argument, got %d", len(filenames))
	}
	if target != "" && !interactive {
		return fmt.Errorf("-ff requires -i")
	}
	file, err := os.Open(filenames[0])
	if err != nil {
		return err
	}
	file.Close()
	return nil
}

func validateLoadPaths(paths consoles.LoadPaths) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("load path %s: %w", path, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("load path %s is not a directory", path)
		}
	}
	return nil
}

func ce(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
