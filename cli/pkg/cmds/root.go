package cmds

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type TagVal struct {
	Output string
	Debug  bool

	logger *zap.Logger
	out    io.Writer
}

func NewRoot(t *TagVal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagval",
		Short: "Evaluate operations on tagged number and text values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		PersistentPreRunE: t.setup,
		SilenceUsage:      true,
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&t.Output, "output", "o", "json", "Output format (json, yaml)")
	cmd.PersistentFlags().BoolVar(&t.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		NewEval(t),
		NewFmt(t),
		NewSqrt(t),
		NewAdd(t),
		NewIsNumber(t),
		NewCapital(t),
	)
	return cmd
}

// Execute runs cmd and flushes the logger whether or not the command failed.
func (t *TagVal) Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	t.Sync()
	return err
}

func (t *TagVal) setup(cmd *cobra.Command, _ []string) error {
	t.out = cmd.OutOrStdout()
	if cmd.DisableFlagParsing {
		// the command parses its own flags and initializes the logger after
		return nil
	}
	return t.initLogger()
}

func (t *TagVal) initLogger() error {
	if t.logger != nil {
		return nil
	}

	config := zap.NewProductionConfig()
	if t.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	t.logger = logger
	return nil
}

func (t *TagVal) Sync() {
	if t.logger != nil {
		_ = t.logger.Sync()
	}
}

func (t *TagVal) Logger() *zap.Logger {
	if t.logger == nil {
		return zap.NewNop()
	}
	return t.logger
}

func (t *TagVal) Print(obj any) error {
	switch t.Output {
	case "yaml":
		enc := yaml.NewEncoder(t.out)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(t.out, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q", t.Output)
	}
}
