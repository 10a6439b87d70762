package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	buildgeninternal "github.com/sublee/buildgen/internal/buildgen"
)

var Version = "dev"

var (
	tFlag     = flag.String("t", "", "comma-separated extra build tags")
	testsFlag = flag.Bool("tests", false, "include test files")
	oFlag     = flag.String("o", "buildgen_gen.go", "output file name")
	cFlag     = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag     = flag.Bool("v", false, "verbose output")
)

func init() {
	buildgeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags not given on the command line take their defaults from an
	// optional .buildgen.yaml in the working directory.
	fileCfg, err := loadFileConfig(wd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })
	fileCfg.merge(func(name string) bool { return given[name] })

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.WarnLevel)
	if *vFlag {
		logger.SetLevel(log.DebugLevel)
	}
	ctx := log.WithContext(context.Background(), logger)

	outs, err := buildgeninternal.Main(ctx, wd, os.Environ(), *tFlag, *testsFlag, *oFlag, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Debug("output written", "file", out, "bytes", len(code))

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// reTab matches continuation lines of a diagnostic, such as the "previous
// option at" note under a duplicate option error.
var reTab = regexp.MustCompile(`(?m)^\t.+`)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
