package cmds

import (
	"os"

	"github.com/acorn-io/tagval/pkg/eval"
	"github.com/acorn-io/tagval/pkg/lookup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type Eval struct {
	root *TagVal

	Continue  bool
	TableFile string
}

func NewEval(root *TagVal) *cobra.Command {
	e := &Eval{root: root}
	cmd := &cobra.Command{
		Use:   "eval [flags] FILE",
		Short: "Evaluate a program file and output the result of each step",
		Args:  cobra.ExactArgs(1),
		RunE:  e.Run,
	}
	e.flags(cmd.Flags())
	return cmd
}

func (e *Eval) flags(fs *pflag.FlagSet) {
	fs.BoolVar(&e.Continue, "continue", false, "Record failing steps and keep going instead of stopping")
	fs.StringVar(&e.TableFile, "table", "", "YAML file of capitals to use instead of the built-in table")
}

func (e *Eval) Run(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log := e.root.Logger().With(zap.String("file", filename))

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	prog, err := eval.Decode(f)
	if err != nil {
		return err
	}

	opt := eval.Option{
		Policy:     eval.Propagate,
		SourceName: filename,
	}
	if e.Continue {
		opt.Policy = eval.Continue
	}
	if e.TableFile != "" {
		table, err := readTable(e.TableFile)
		if err != nil {
			return err
		}
		opt.Table = &table
	}

	log.Debug("running program", zap.Int("steps", len(prog.Steps)), zap.String("policy", string(opt.Policy)))
	results, err := eval.Run(cmd.Context(), prog, opt)
	if err != nil {
		log.Debug("program failed", zap.Int("completed", len(results)), zap.Error(err))
		return err
	}

	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			log.Warn("step failed", zap.Int("step", r.Step), zap.Error(r.Err))
		}
		out = append(out, r.ToNative())
	}
	return e.root.Print(out)
}

func readTable(name string) (lookup.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return lookup.Table{}, err
	}
	defer f.Close()
	return lookup.Load(f)
}
