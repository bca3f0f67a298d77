// Command hexagn compiles a Hexagn source file to URCL text. Entry point
// and flag wiring, grounded on the teacher's main.go (run() returning a
// process exit code) and flags.go (CompilerOptions), rebuilt on
// github.com/spf13/cobra in place of the teacher's flag.FlagSet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexagn-lang/hexagn/internal/compiler"
)

// version is stamped at release time; the teacher carries the same
// placeholder-constant pattern in constants.go.
const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	opts := compiler.Options{Output: "out.urcl"}
	var showVersion bool

	root := &cobra.Command{
		Use:           "hexagn <input.hxgn>",
		Short:         "Compile Hexagn source to URCL assembly",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("hexagn version %s\n", version)
				return nil
			}
			if len(args) < 1 {
				return fmt.Errorf("no input file specified")
			}
			opts.Input = args[0]

			log := zap.NewNop().Sugar()
			if opts.Verbose {
				zl, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer zl.Sync()
				log = zl.Sugar()
			}

			c := compiler.New(opts, log)
			return c.CompileFile()
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.Output, "out", "o", "out.urcl", "write output URCL to `file`")
	flags.BoolVarP(&opts.Debug, "debug", "g", false, "emit source-line comments before each statement")
	flags.StringArrayVarP(&opts.SearchPaths, "lib", "L", nil, "append a library search path (repeatable)")
	flags.BoolVar(&opts.NoMain, "no-main", false, "suppress program header and entry call (library compilation)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose trace logging")
	flags.BoolVar(&opts.ShowStats, "stat", false, "print a compilation statistics report")
	flags.BoolVar(&opts.ShowTiming, "timing", false, "print a one-line compile-time summary")
	flags.BoolVar(&showVersion, "version", false, "print compiler version and exit")

	root.SetArgs(normalizeNoMainSpelling(os.Args[1:]))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// normalizeNoMainSpelling rewrites the single-dash `-no-main` spelling
// (§6's documented alternative to `--no-main`) into the double-dash form
// pflag understands: pflag has no notion of a single-dash multi-character
// long flag, so `-no-main` would otherwise parse as a shorthand cluster
// and fail.
func normalizeNoMainSpelling(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "-no-main" {
			a = "--no-main"
		}
		out[i] = a
	}
	return out
}
