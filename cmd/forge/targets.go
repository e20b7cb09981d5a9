package main

import (
	"fmt"
	"log/slog"

	"github.com/banksean/forge/internal/build"
	"github.com/banksean/forge/internal/pathmap"
)

// registerDemoTargets mirrors the original source's own smoke test: a
// "debug" config that sets a compiler flag env var, and a "link"/"build"
// pair where build depends on link — the same scenario spec section 8's
// first concrete test case exercises.
func registerDemoTargets(e *build.Engine) error {
	if err := e.RegisterConfig("debug", func(rc *build.RunContext) error {
		if tag, ok := runTagFromContext(rc.Context()); ok {
			slog.InfoContext(rc.Context(), "forge: config debug", "run", tag.Name)
		}
		return rc.SetEnv("FLAGS", "-g")
	}); err != nil {
		return err
	}

	if err := e.RegisterTarget("link", func(rc *build.RunContext) error {
		fmt.Println("Linking...")
		return nil
	}); err != nil {
		return err
	}

	if err := e.RegisterTarget("build", func(rc *build.RunContext) error {
		sources, err := rc.Glob("*.c")
		if err != nil {
			return err
		}
		objects, err := rc.MapNames(sources, pathmap.Extension("o"))
		if err != nil {
			return err
		}
		joined, err := rc.Join(objects, " ")
		if err != nil {
			return err
		}
		flags := rc.GetEnv("FLAGS")
		fmt.Printf("Building... (objects=%q flags=%q)\n", joined, flags)
		return nil
	}, build.Dependency("link"), build.ConfigSet("debug")); err != nil {
		return err
	}

	return nil
}
