// Package cli wires Culebra's pipeline stages (lexer, parser, checker,
// evaluator, IR emitter) onto a cobra command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Flag values shared across the single root command - Culebra's CLI has
// no subcommands, only mode flags.
var (
	flagLexer       bool
	flagParser      bool
	flagInterpreter bool
	flagCompile     bool
	flagEmitLLVM    bool
	flagOutput      string
	flagKeepIR      bool
	flagNoOptimize  bool
)

var logger *slog.Logger

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "culebra [file]",
		Short: "Culebra language lexer, parser, interpreter and compiler",
		Long: "culebra runs one stage of the Culebra pipeline against a source file\n" +
			"(or, with no file, starts a REPL for the selected mode): tokenize,\n" +
			"parse, interpret, or compile to LLVM IR / a linked executable.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}

	root.PersistentFlags().BoolVar(&flagLexer, "lexer", false, "print the token stream and exit")
	root.PersistentFlags().BoolVar(&flagParser, "parser", false, "print the parsed AST and exit")
	root.PersistentFlags().BoolVar(&flagInterpreter, "interpreter", false, "run the tree-walking evaluator (default)")
	root.PersistentFlags().BoolVar(&flagCompile, "compile", false, "compile to a native executable via clang")
	root.PersistentFlags().BoolVar(&flagEmitLLVM, "emit-llvm", false, "emit textual LLVM IR")
	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output path (default: content-addressed name from pkg/artifact)")
	root.PersistentFlags().BoolVar(&flagKeepIR, "keep-ir", false, "keep the intermediate .ll file when --compile is used")
	root.PersistentFlags().BoolVar(&flagNoOptimize, "no-optimize", false, "skip clang's optimization passes")

	return root
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	return newRootCmd().Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	mode, err := selectMode()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runREPL(mode)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	return runSource(mode, args[0], string(source))
}
