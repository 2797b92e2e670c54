package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"seedheader/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log = commonlog.GetLogger("headerc.cli")
)

var rootCmd = &cobra.Command{
	Use:   "headerc",
	Short: "Checks and inspects randomizer header files",
	Long: `headerc parses randomizer header files and reports every problem it
finds, with the source line, a marker and the values that would fit.

Configuration is read from --config, $HEADERC_CONFIG, the nearest
.headerc.toml or the user config directory, in that order.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .headerc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and applies its color and log settings.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		var dir string
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, err = config.Discover(dir)
	}
	if err != nil {
		return err
	}

	switch cfg.Diagnostics.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	verbosity := cfg.Log.Verbosity
	if verbose {
		verbosity = max(verbosity, 2)
	}
	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(verbosity, path)

	log.Debugf("config: %+v", *cfg)
	return nil
}
