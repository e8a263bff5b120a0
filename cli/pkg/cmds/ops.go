package cmds

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/acorn-io/tagval/pkg/eval"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// negative numbers are swapped for this marker while flags are parsed so
// pflag does not read "-1" as a shorthand flag
const numberMarker = "\x00number:"

type Op struct {
	root  *TagVal
	op    string
	nargs int
}

func newOp(root *TagVal, op string, nargs int, cmd *cobra.Command) *cobra.Command {
	o := &Op{root: root, op: op, nargs: nargs}
	cmd.RunE = o.Run
	cmd.Args = cobra.ArbitraryArgs
	cmd.DisableFlagParsing = true
	return cmd
}

func NewSqrt(root *TagVal) *cobra.Command {
	return newOp(root, "sqrt", 1, &cobra.Command{
		Use:   "sqrt VALUE",
		Short: "Integer square root of a non-negative number",
	})
}

func NewAdd(root *TagVal) *cobra.Command {
	return newOp(root, "add", 2, &cobra.Command{
		Use:   "add LEFT RIGHT",
		Short: "Add two numbers or concatenate two strings",
	})
}

func NewIsNumber(root *TagVal) *cobra.Command {
	return newOp(root, "is_number", 1, &cobra.Command{
		Use:   "is-number VALUE",
		Short: "Print whether the argument is a number",
	})
}

func NewCapital(root *TagVal) *cobra.Command {
	return newOp(root, "capital", 1, &cobra.Command{
		Use:   "capital STATE",
		Short: "Look up the capital of a state",
	})
}

func (o *Op) Run(cmd *cobra.Command, args []string) error {
	args, err := o.parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	} else if err != nil {
		return err
	}
	if err := o.root.initLogger(); err != nil {
		return err
	}
	if err := cobra.ExactArgs(o.nargs)(cmd, args); err != nil {
		return err
	}

	step := eval.Step{Op: o.op}
	for _, arg := range args {
		step.Args = append(step.Args, parseArg(arg))
	}

	o.root.Logger().Debug("evaluating", zap.String("op", o.op), zap.Strings("args", args))
	result, err := eval.Eval(cmd.Context(), step, eval.Option{SourceName: "<args>"})
	if err != nil {
		return err
	}
	return o.root.Print(result.NativeValue())
}

// parseFlags handles the global flags itself because flag parsing is disabled
// on op commands. Integer arguments, negative ones included, stay positional.
func (o *Op) parseFlags(args []string) ([]string, error) {
	fs := pflag.NewFlagSet(o.op, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&o.root.Output, "output", "o", o.root.Output, "Output format (json, yaml)")
	fs.BoolVar(&o.root.Debug, "debug", o.root.Debug, "Enable debug logging")

	var numbers []string
	masked := make([]string, 0, len(args))
	for _, arg := range args {
		if _, err := strconv.ParseInt(arg, 10, 64); err == nil && strings.HasPrefix(arg, "-") {
			masked = append(masked, fmt.Sprintf("%s%d", numberMarker, len(numbers)))
			numbers = append(numbers, arg)
			continue
		}
		masked = append(masked, arg)
	}

	if err := fs.Parse(masked); err != nil {
		return nil, err
	}

	positional := fs.Args()
	for i, arg := range positional {
		if idx, ok := strings.CutPrefix(arg, numberMarker); ok {
			n, err := strconv.Atoi(idx)
			if err != nil {
				return nil, err
			}
			positional[i] = numbers[n]
		}
	}
	return positional, nil
}

// parseArg reads an argument as a number when it parses as one and as text
// otherwise. A leading "$" is escaped so it is never taken as a reference.
func parseArg(arg string) any {
	if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return n
	}
	if strings.HasPrefix(arg, "$") {
		return "$" + arg
	}
	return arg
}
