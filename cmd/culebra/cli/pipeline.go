package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cnexans/culebra/internal/types"
	"github.com/cnexans/culebra/pkg/artifact"
	"github.com/cnexans/culebra/pkg/checker"
	"github.com/cnexans/culebra/pkg/eval"
	"github.com/cnexans/culebra/pkg/ir"
	"github.com/cnexans/culebra/pkg/lexer"
	"github.com/cnexans/culebra/pkg/parser"
)

// runSource drives source through the pipeline stage selected by mode.
// name is the originating file path, used only for diagnostics. Any
// pipeline error is given a source excerpt and caret before it reaches
// main's top-level print.
func runSource(m mode, name, source string) error {
	return diagnose(source, runSourceStage(m, name, source))
}

func runSourceStage(m mode, name, source string) error {
	switch m {
	case modeLexer:
		return runLexer(source)
	case modeParser:
		prog, err := parseProgram(source)
		if err != nil {
			return err
		}
		fmt.Println(prog.String())

		return nil
	case modeInterpreter:
		prog, err := parseProgram(source)
		if err != nil {
			return err
		}
		_, err = eval.New().Eval(prog)

		return err
	case modeEmitLLVM:
		return runEmitLLVM(name, source)
	case modeCompile:
		return runCompile(name, source)
	default:
		return fmt.Errorf("cli: unhandled mode %d", m)
	}
}

func runLexer(source string) error {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Println(tok.String())
		if tok.Type == lexer.TOKEN_EOF {
			return nil
		}
	}
}

// parseProgram runs the lex+parse+check stages shared by every mode past
// --lexer, returning the first error encountered (ParseError or
// checker.TypeError, both already carry the offending token).
func parseProgram(source string) (*types.Program, error) {
	p := parser.New(lexer.New(source))
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if err := checker.New().Check(prog); err != nil {
		return nil, err
	}

	return prog, nil
}

func runEmitLLVM(name, source string) error {
	prog, err := parseProgram(source)
	if err != nil {
		return err
	}

	llvmIR := ir.Generate(prog)

	out := flagOutput
	if out == "" {
		out = artifact.NameFor(source, "ll")
	}

	logger.Info("writing LLVM IR", "path", out, "source", name)

	return os.WriteFile(out, []byte(llvmIR), 0o644)
}

// runCompile emits LLVM IR and shells out to clang to link a native
// executable: compile to LLVM IR, then to a binary. clang is assumed to
// be on PATH; --no-optimize is threaded
// through as -O0 vs clang's default -O2, and --keep-ir preserves the
// intermediate .ll file that would otherwise live in a temp directory.
func runCompile(name, source string) error {
	prog, err := parseProgram(source)
	if err != nil {
		return err
	}

	llvmIR := ir.Generate(prog)

	exePath := flagOutput
	if exePath == "" {
		exePath = artifact.NameFor(source, "exe")
	}

	var irPath string
	if flagKeepIR {
		irPath = artifact.NameFor(source, "ll")
	} else {
		tmp, err := os.MkdirTemp("", "culebra-ir-*")
		if err != nil {
			return fmt.Errorf("cli: creating temp dir for IR: %w", err)
		}
		defer os.RemoveAll(tmp)
		irPath = filepath.Join(tmp, "out.ll")
	}

	if err := os.WriteFile(irPath, []byte(llvmIR), 0o644); err != nil {
		return fmt.Errorf("cli: writing IR: %w", err)
	}

	optFlag := "-O2"
	if flagNoOptimize {
		optFlag = "-O0"
	}

	logger.Info("invoking clang", "ir", irPath, "output", exePath, "opt", optFlag, "source", name)

	cmd := exec.Command("clang", optFlag, irPath, "-o", exePath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cli: clang failed: %w", err)
	}

	return nil
}

// runREPL reads one line at a time and feeds it through mode's pipeline,
// persisting a single evaluator instance across lines for the whole
// session so the interpreter's environment survives between inputs.
// Non-interpreter modes re-run the selected stage fresh on each line,
// since lexing/parsing/compiling have no cross-line state to preserve.
func runREPL(m mode) error {
	fmt.Println("culebra REPL - :quit or :q to exit, :help for help")

	ev := eval.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			return nil
		}
		line := scanner.Text()

		if strings.HasPrefix(line, ":") {
			if handleReplCommand(line) {
				return nil
			}

			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := runREPLLine(m, ev, line); err != nil {
			fmt.Fprintln(os.Stderr, diagnose(line, err))
		}
	}
}

func runREPLLine(m mode, ev *eval.Evaluator, line string) error {
	switch m {
	case modeLexer:
		return runLexer(line)
	case modeParser:
		prog, err := parseProgram(line)
		if err != nil {
			return err
		}
		fmt.Println(prog.String())

		return nil
	case modeEmitLLVM:
		prog, err := parseProgram(line)
		if err != nil {
			return err
		}
		fmt.Println(ir.Generate(prog))

		return nil
	case modeCompile:
		return fmt.Errorf("cli: --compile is not supported in REPL mode, pass a source file")
	default:
		prog, err := parseProgram(line)
		if err != nil {
			return err
		}
		_, err = ev.Eval(prog)

		return err
	}
}

// handleReplCommand handles a ":"-prefixed REPL command, returning true
// if the REPL should exit.
func handleReplCommand(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Println("commands: :quit / :q to exit, :help / :h for this message")

		return false
	default:
		fmt.Printf("unknown command %q (try :help)\n", cmd)

		return false
	}
}
