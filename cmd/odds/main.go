// Command odds is the Odds analyzer CLI: "odds check", "odds print", and
// "odds fmt" run the pkg/odds pipeline against a .odds source file. Overall
// shape (subcommands, isatty-gated color, a per-run uuid, a sqlite result
// cache, and .odds.yaml config discovery) is grounded on the teacher's own
// cmd/funxy/main.go entry point and internal/evaluator/builtins_term.go's
// color-level detection, scaled to the much smaller Odds CLI surface.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/alexandramedway/odds/internal/cache"
	"github.com/alexandramedway/odds/internal/config"
	"github.com/alexandramedway/odds/pkg/odds"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	subcommand := os.Args[1]
	fs := flag.NewFlagSet(subcommand, flag.ExitOnError)
	configPath := fs.String("config", "", "path to an .odds.yaml config file")
	noCache := fs.Bool("no-cache", false, "skip the sqlite result cache")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	args := fs.Args()
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	path := args[0]

	cfg := loadConfig(*configPath, path)
	runID := uuid.NewString()

	switch subcommand {
	case "check":
		os.Exit(runCheck(path, cfg, runID, *noCache))
	case "print", "fmt":
		os.Exit(runPrint(path, cfg))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: odds <check|print|fmt> [-config path] [-no-cache] <file.odds>")
}

func loadConfig(explicit, sourcePath string) config.CLIConfig {
	dir := filepath.Dir(sourcePath)
	found := config.Find(dir, explicit)
	if found == "" {
		return config.DefaultCLIConfig()
	}
	cfg, err := config.Load(found)
	if err != nil {
		fmt.Fprintf(os.Stderr, "odds: failed to load %s: %v\n", found, err)
		return config.DefaultCLIConfig()
	}
	return cfg
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// runCheck analyzes path, consulting and updating the sqlite cache keyed by
// source content hash, and reports ok/fail the way a linter would: a
// diagnostic on stderr and a non-zero exit code on failure.
func runCheck(path string, cfg config.CLIConfig, runID string, noCache bool) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "odds: %v\n", err)
		return 1
	}

	contentHash := cache.HashSource(source)
	var c *cache.Cache
	if !noCache {
		c = openCache(cfg)
	}
	if c != nil {
		defer c.Close()
		if entry, found, err := c.Lookup(contentHash); err == nil && found {
			if entry.OK {
				fmt.Fprintf(os.Stdout, "%s: ok (cached)\n", path)
				return 0
			}
			fmt.Fprintf(os.Stderr, "%s: %s (cached)\n", path, colorize(cfg, entry.DiagnosticCode, true))
			return 1
		}
	}

	_, err = odds.Analyze(source, odds.Options{ExtraPrelude: cfg.Prelude})
	entry := cache.Entry{OK: err == nil, RunID: runID, AnalyzedAt: time.Now().UTC()}
	if err != nil {
		if diag, ok := odds.AsDiagnostic(err); ok {
			entry.DiagnosticCode = diag.Code.String()
		}
	}
	if c != nil {
		_ = c.Put(contentHash, entry)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, colorize(cfg, err.Error(), true))
		return 1
	}
	fmt.Fprintf(os.Stdout, "%s: ok\n", path)
	return 0
}

// runPrint analyzes path and writes its canonical pretty-printed form to
// stdout ("print" and "fmt" are the same operation under two names, the way
// gofmt and go fmt are).
func runPrint(path string, cfg config.CLIConfig) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "odds: %v\n", err)
		return 1
	}
	result, err := odds.Analyze(source, odds.Options{ExtraPrelude: cfg.Prelude})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, colorize(cfg, err.Error(), true))
		return 1
	}
	fmt.Println(odds.Format(result))
	return 0
}

func openCache(cfg config.CLIConfig) *cache.Cache {
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = ".odds-cache"
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil
	}
	c, err := cache.Open(filepath.Join(cacheDir, "odds-cache.sqlite"))
	if err != nil {
		return nil
	}
	return c
}

// colorWanted reports whether diagnostics should be ANSI-colored: an
// explicit config override wins, otherwise it follows NO_COLOR
// (https://no-color.org/) and isatty autodetection on stderr, where
// diagnostics are written.
func colorWanted(cfg config.CLIConfig) bool {
	if cfg.Color != nil {
		return *cfg.Color
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(cfg config.CLIConfig, s string, isError bool) string {
	if !colorWanted(cfg) {
		return s
	}
	if isError {
		return "\033[31m" + s + "\033[39m"
	}
	return s
}
