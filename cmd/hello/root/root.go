package root

import (
	"io"
	"os"

	"github.com/flarebyte/hello/internal/greeting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootCmd creates the root command for hello. Write failures go to log.
func NewRootCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "CLI: print a friendly greeting",
		// Arguments are never inspected, flag-looking ones included.
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := greeting.Write(cmd.OutOrStdout()); err != nil {
				log.Warn("greeting not written", zap.Error(err))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}

// Execute runs the root command. args are accepted and discarded.
func Execute(args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()
	return run(args, os.Stdout, log)
}

func run(_ []string, out io.Writer, log *zap.Logger) error {
	cmd := NewRootCmd(log)
	cmd.SetOut(out)
	// Non-nil and empty so cobra neither falls back to os.Args nor routes
	// help, version or completion requests.
	cmd.SetArgs([]string{})
	return cmd.Execute()
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	log, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
