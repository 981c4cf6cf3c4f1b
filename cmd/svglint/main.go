package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/luciansmith/svglint/internal/config"
	"github.com/luciansmith/svglint/internal/engine"
	"github.com/luciansmith/svglint/internal/log"
	"github.com/luciansmith/svglint/internal/output"
	"github.com/luciansmith/svglint/internal/rule"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/luciansmith/svglint/internal/rules/attr"
	_ "github.com/luciansmith/svglint/internal/rules/elm"
	_ "github.com/luciansmith/svglint/internal/rules/title"
	_ "github.com/luciansmith/svglint/internal/rules/valid"
)

// Exit codes. Exactly one is chosen per invocation, after all started
// lintings have settled.
const (
	exitPassing     = 0
	exitError       = 1
	exitInternal    = 2
	exitInterrupted = 3
	exitConfig      = 4
)

func main() {
	// Operator abort is a best-effort immediate exit; in-flight
	// lintings are not settled gracefully.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Fprintln(os.Stderr, "svglint: interrupted")
		os.Exit(exitInterrupted)
	}()

	os.Exit(run())
}

const usageText = `Usage: svglint <command> [flags] [files...]

Commands:
  check     Lint SVG files (reads stdin when piped and no files given)
  init      Generate a default .svglintrc.yml config file
  rules     List available rules
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'svglint <command> --help' for more information on a command.
`

func run() (code int) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(os.Stderr, "svglint: internal error: %v\n", p)
			code = exitInternal
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return exitPassing
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return exitPassing
	case "check":
		return runCheck(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "rules":
		return runRules(os.Args[2:])
	case "version":
		printVersion()
		return exitPassing
	default:
		fmt.Fprintf(os.Stderr, "svglint: unknown command %q\n\n%s", os.Args[1], usageText)
		return exitInternal
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("svglint %s\n", version)
}

// runCheck implements the "check" subcommand: lint files or stdin.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		quiet      bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVar(&verbose, "verbose", false, "Log per-file progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svglint check [flags] [files...]\n\n"+
			"Lint SVG files against the configured rules.\n\n"+
			"Files can be paths, directories (walked recursively for *.svg), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitInternal
	}

	logger := &log.Logger{Verbose: verbose, W: os.Stderr}

	cfg, code := loadConfig(configPath)
	if code != exitPassing {
		return code
	}

	normalized := engine.Normalize(cfg, logger)
	runner := &engine.Runner{Normalized: normalized, Logger: logger}

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return exitPassing
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "svglint: reading stdin: %v\n", err)
			return exitInternal
		}
		return report(runner.RunSource("<stdin>", source), format, noColor, quiet)
	}

	files, err := engine.ResolveFiles(fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svglint: %v\n", err)
		return exitInternal
	}
	if len(files) == 0 {
		return exitPassing
	}

	return report(runner.Run(files), format, noColor, quiet)
}

// report renders a settled result and maps it to an exit code.
func report(res *engine.Result, format string, noColor, quiet bool) int {
	if !quiet {
		var formatter output.Formatter
		switch format {
		case "json":
			formatter = &output.JSONFormatter{}
		default:
			formatter = &output.TextFormatter{Color: useColor(noColor)}
		}

		if err := formatter.Format(os.Stdout, res); err != nil {
			fmt.Fprintf(os.Stderr, "svglint: error writing output: %v\n", err)
			return exitInternal
		}
	}

	if res.Failed {
		return exitError
	}
	return exitPassing
}

// runInit implements the "init" subcommand: generate .svglintrc.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svglint init\n\n"+
			"Generate a default .svglintrc.yml config file in the current directory.\n")
	}
	if err := fs.Parse(args); err != nil {
		return exitInternal
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "svglint: init takes no arguments\n")
		return exitInternal
	}

	const configFile = ".svglintrc.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "svglint: %s already exists\n", configFile)
		return exitInternal
	}

	const starter = `# svglint configuration
rules:
  valid: true
  title: true
  # attr:
  #   selector: //circle
  #   r: true
ignore: []
`

	if err := os.WriteFile(configFile, []byte(starter), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "svglint: writing %s: %v\n", configFile, err)
		return exitInternal
	}

	fmt.Fprintf(os.Stderr, "svglint: created %s\n", configFile)
	return exitPassing
}

// runRules implements the "rules" subcommand: list registered rules.
func runRules(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "svglint: rules takes no arguments\n")
		return exitInternal
	}
	for _, r := range rule.All() {
		fmt.Println(r.Name())
	}
	return exitPassing
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. A failure to
// load an explicitly requested or discovered config file is a
// configuration error; no lintings run.
func loadConfig(configPath string) (*config.Config, int) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "svglint: %v\n", err)
			return nil, exitConfig
		}
		return config.Merge(defaults, loaded), exitPassing
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), exitPassing
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), exitPassing
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svglint: %v\n", err)
		return nil, exitConfig
	}
	return config.Merge(defaults, loaded), exitPassing
}

// useColor returns whether text output should use ANSI colors.
func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
