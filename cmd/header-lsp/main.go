package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"seedheader/internal/config"
	"seedheader/internal/lsp"
)

const lsName = "header-lsp"

var log = commonlog.GetLogger("headerc.lsp.main")

var configPath string

var rootCmd = &cobra.Command{
	Use:          lsName,
	Short:        "Language server for randomizer header files",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         serve,
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default: .headerc.toml)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(max(cfg.Log.Verbosity, 1), logFile)

	headerHandler := lsp.NewHeaderHandler()

	handler := protocol.Handler{
		Initialize:                     headerHandler.Initialize,
		Initialized:                    headerHandler.Initialized,
		Shutdown:                       headerHandler.Shutdown,
		SetTrace:                       headerHandler.SetTrace,
		TextDocumentDidOpen:            headerHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           headerHandler.TextDocumentDidClose,
		TextDocumentDidChange:          headerHandler.TextDocumentDidChange,
		TextDocumentCompletion:         headerHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: headerHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting header language server")

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		return fmt.Errorf("language server stopped: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(dir)
}
