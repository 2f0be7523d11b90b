package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alselawi/castcad/internal/app"
	"github.com/alselawi/castcad/internal/config"
	"github.com/alselawi/castcad/internal/logger"
	"github.com/alselawi/castcad/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "castcad <file>",
	Short: "Interactive STL model editor with brush selection and cutting",
	Long: `castcad is an STL viewer and editor. It opens ASCII and binary STL
files, lets you paint a face selection with a screen-space brush and cut
the selected faces out of the model.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Run(cfg, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "castcad.yaml", "path to the config file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	return cfg, nil
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
