// patternbook prints annotated demonstrations of three classic design
// patterns — Adapter, Template Method, and Factory Method — built around a
// small immutable book model.
//
// Usage:
//
//	patternbook                   # run all demos
//	patternbook -demo factory     # run one demo
//	patternbook -theme orca       # pick a terminal theme
//	patternbook -format plain     # force unstyled output
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	plain     — bare demonstration lines (default when piped)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/patternbook/internal/config"
	"github.com/dkoosis/patternbook/internal/demo"
	"github.com/dkoosis/patternbook/internal/version"
	"github.com/dkoosis/patternbook/pkg/pattern"
	"github.com/dkoosis/patternbook/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patternbook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	demoFlag := fs.String("demo", "", "Demo to run: adapter, template, factory (default all)")
	formatFlag := fs.String("format", "auto", "Output format: auto, terminal, plain")
	themeFlag := fs.String("theme", "", "Theme: default, orca, mono")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, "patternbook "+version.String())
		return 0
	}

	cfg := config.Load()
	themeName := cfg.Theme
	if *themeFlag != "" {
		themeName = *themeFlag
	}

	patterns, code := selectDemos(*demoFlag, cfg.Demos, stderr)
	if code >= 0 {
		return code
	}

	mode := resolveFormat(*formatFlag, stdout)
	switch mode {
	case "terminal", "plain":
	default:
		fmt.Fprintf(stderr, "patternbook: unknown format %q (expected auto, terminal, plain)\n", *formatFlag)
		return 2
	}

	out := selectRenderer(mode, themeName, cfg.NoColor, stdout).Render(patterns)
	fmt.Fprint(stdout, out)
	return 0
}

// selectDemos resolves the -demo flag and config demo list into patterns.
// Returns (patterns, -1) on success; (nil, exitCode) on error.
func selectDemos(demoFlag string, cfgDemos []string, stderr io.Writer) ([]pattern.Pattern, int) {
	names := cfgDemos
	if demoFlag != "" {
		names = []string{demoFlag}
	}
	if len(names) == 0 {
		return demo.All(), -1
	}

	var patterns []pattern.Pattern
	for _, name := range names {
		t := demo.ByName(name)
		if t == nil {
			fmt.Fprintf(stderr, "patternbook: unknown demo %q (expected adapter, template, factory)\n", name)
			return nil, 2
		}
		patterns = append(patterns, t)
	}
	return patterns, -1
}

func selectRenderer(mode, themeName string, noColor bool, w io.Writer) render.Renderer {
	if mode == "plain" {
		return render.NewPlain()
	}
	theme := render.ThemeByName(themeName)
	// Honor NO_COLOR
	if noColor || os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return render.NewTerminal(theme, width)
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return "terminal"
		}
	}
	return "plain"
}
