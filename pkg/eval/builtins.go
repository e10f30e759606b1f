package eval

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cnexans/culebra/internal/value"
)

// registerBuiltins binds the full builtin surface into root: print,
// input, len, chr, ord, int, float, str, abs, read_file, read_lines.
// All of them share the same variadic, arity-unchecked calling
// convention as ordinary scripting-language builtins.
func registerBuiltins(root value.Environment) {
	root.AssignCurrent("print", value.NewBuiltin("print", builtinPrint))
	root.AssignCurrent("input", value.NewBuiltin("input", builtinInput))
	root.AssignCurrent("len", value.NewBuiltin("len", builtinLen))
	root.AssignCurrent("chr", value.NewBuiltin("chr", builtinChr))
	root.AssignCurrent("ord", value.NewBuiltin("ord", builtinOrd))
	root.AssignCurrent("int", value.NewBuiltin("int", builtinInt))
	root.AssignCurrent("float", value.NewBuiltin("float", builtinFloat))
	root.AssignCurrent("str", value.NewBuiltin("str", builtinStr))
	root.AssignCurrent("abs", value.NewBuiltin("abs", builtinAbs))
	root.AssignCurrent("read_file", value.NewBuiltin("read_file", builtinReadFile))
	root.AssignCurrent("read_lines", value.NewBuiltin("read_lines", builtinReadLines))
}

// builtinPrint renders every argument with Value.String(), space
// separated, always followed by a trailing newline - even with zero
// arguments, per the open-question decision that print() still emits a
// blank line.
func builtinPrint(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Println(strings.Join(parts, " "))

	return value.MakeNull(), nil
}

var stdin = bufio.NewReader(os.Stdin)

func builtinInput(args []value.Value) (value.Value, error) {
	if len(args) > 0 {
		fmt.Print(args[0].String())
	}
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return value.MakeString(""), nil
	}

	return value.MakeString(strings.TrimRight(line, "\r\n")), nil
}

func builtinLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("len expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *value.Array:
		return value.MakeInt(int64(v.Len())), nil
	case value.String:
		return value.MakeInt(int64(len(string(v)))), nil
	default:
		return nil, fmt.Errorf("len not supported for %s", v.Type())
	}
}

func builtinChr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("chr expects exactly 1 argument, got %d", len(args))
	}
	i, ok := args[0].(value.Int)
	if !ok {
		return nil, fmt.Errorf("chr expects an INT, got %s", args[0].Type())
	}

	return value.MakeString(string(rune(i))), nil
}

func builtinOrd(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("ord expects exactly 1 argument, got %d", len(args))
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, fmt.Errorf("ord expects a STRING, got %s", args[0].Type())
	}
	runes := []rune(string(s))
	if len(runes) != 1 {
		return nil, fmt.Errorf("ord expects a single-character STRING, got length %d", len(runes))
	}

	return value.MakeInt(int64(runes[0])), nil
}

func builtinInt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("int expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case value.Int:
		return v, nil
	case value.Float:
		return value.MakeInt(int64(v)), nil
	case value.Bool:
		if v {
			return value.MakeInt(1), nil
		}

		return value.MakeInt(0), nil
	case value.String:
		n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to INT", string(v))
		}

		return value.MakeInt(n), nil
	default:
		return nil, fmt.Errorf("int not supported for %s", v.Type())
	}
}

func builtinFloat(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("float expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case value.Float:
		return v, nil
	case value.Int:
		return value.MakeFloat(float64(v)), nil
	case value.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to FLOAT", string(v))
		}

		return value.MakeFloat(f), nil
	default:
		return nil, fmt.Errorf("float not supported for %s", v.Type())
	}
}

func builtinStr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("str expects exactly 1 argument, got %d", len(args))
	}

	return value.MakeString(args[0].String()), nil
}

func builtinAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case value.Int:
		if v < 0 {
			return value.MakeInt(int64(-v)), nil
		}

		return v, nil
	case value.Float:
		if v < 0 {
			return value.MakeFloat(float64(-v)), nil
		}

		return v, nil
	default:
		return nil, fmt.Errorf("abs not supported for %s", v.Type())
	}
}

func builtinReadFile(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("read_file expects exactly 1 argument, got %d", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, fmt.Errorf("read_file expects a STRING path, got %s", args[0].Type())
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read_file: %w", err)
	}

	return value.MakeString(string(data)), nil
}

func builtinReadLines(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("read_lines expects exactly 1 argument, got %d", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, fmt.Errorf("read_lines expects a STRING path, got %s", args[0].Type())
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read_lines: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	elems := make([]value.Value, len(lines))
	for i, l := range lines {
		elems[i] = value.MakeString(strings.TrimRight(l, "\r"))
	}

	return value.NewArray(elems...), nil
}
