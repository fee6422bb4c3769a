package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/browserquiz/internal/config"
	"github.com/abhisek/browserquiz/internal/logger"
)

var (
	settings = config.NewViper()
	log      = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "browserquiz",
	Short: "Browsers self-assessment quiz",
	Long:  "browserquiz: a five-question self-assessment on browser engines and progressive web apps, graded locally.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(settings)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-file", "", "Log file path; logging is off when empty (overrides BROWSERQUIZ_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides BROWSERQUIZ_LOG_LEVEL)")
	_ = settings.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger resolves configuration and opens the log sink.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	l, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return l, nil
}
