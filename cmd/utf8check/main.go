// Command utf8check reports whether its inputs are well-formed UTF-8.
//
// Usage:
//
//	utf8check [OPTIONS] [FILE ...]
//
// With no FILE arguments it reads a single buffer from stdin. Exit status
// is 0 if every input is valid, 1 if any input is malformed, and 2 on a
// usage or I/O error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/basisbyte/utf8valid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("utf8check", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	offsetOnly := flags.BoolP("offset-only", "o", false, "print only the numeric offset on failure")
	quiet := flags.BoolP("quiet", "q", false, "suppress the per-file summary")
	verbose := flags.BoolP("verbose", "v", false, "raise logging to debug level")
	help := flags.Bool("help", false, "display this help text")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "utf8check - validate UTF-8 encoded files\n\n")
		fmt.Fprintf(stderr, "Usage: utf8check [OPTIONS] [FILE ...]\n\n")
		fmt.Fprintf(stderr, "With no FILE arguments, reads a single buffer from stdin.\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *help {
		flags.Usage()
		return 0
	}

	logger := log.New(stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	paths := flags.Args()

	type input struct {
		name string
		data []byte
	}

	var inputs []input
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			logger.Error("failed reading stdin", "err", err)
			return 2
		}
		inputs = append(inputs, input{name: "<stdin>", data: data})
	} else {
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				logger.Error("failed reading file", "path", p, "err", err)
				return 2
			}
			inputs = append(inputs, input{name: p, data: data})
		}
	}

	buffers := make([][]byte, len(inputs))
	for i, in := range inputs {
		buffers[i] = in.data
	}
	report := utf8valid.BatchValidate(buffers)

	anyFailed := false
	for i, in := range inputs {
		offset, failed, _ := report.Get(i)
		if failed {
			anyFailed = true
			logger.Warn("invalid UTF-8", "path", in.name, "offset", offset)
			switch {
			case *offsetOnly:
				fmt.Fprintf(stdout, "%d\n", offset)
			case !*quiet:
				fmt.Fprintf(stdout, "%s: invalid UTF-8 at byte %d\n", in.name, offset)
			}
			continue
		}
		if !*quiet && !*offsetOnly {
			fmt.Fprintf(stdout, "%s: ok\n", in.name)
		}
	}

	logger.Info("validation complete", "files", len(inputs), "failed", report.FailureCount())

	if anyFailed {
		return 1
	}
	return 0
}
