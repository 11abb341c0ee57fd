// Scenetree opens the interactive scene tree editor: a pannable, zoomable
// canvas of rotating shapes laid out as a tree, with a settings window for
// the selected node.
//
// Controls:
//   - Left click a node to select it; click empty space to deselect.
//   - Right drag pans, the mouse wheel zooms.
//   - Esc deselects, F focuses the selection, Home focuses the whole tree,
//     Delete removes the selected node.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/scenetree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath    string
	debugMode     bool
	scriptPath    string
	screenshotDir string
)

var rootCmd = &cobra.Command{
	Use:   "scenetree",
	Short: "Interactive scene tree editor",
	Long: `scenetree shows a forest of scene nodes as a left-to-right tree.

Select a node to rename it, change its shape, rotation speed and color,
add children or delete it. An optional JSON script drives the editor
without a user, taking screenshots along the way.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "log frame timings and edits")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "JSON input script to replay")
	rootCmd.Flags().StringVar(&screenshotDir, "screenshot-dir", "", "directory for script screenshots")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scenetree:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := scenetree.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = scenetree.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
	if screenshotDir != "" {
		cfg.ScreenshotDir = screenshotDir
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	editor, err := scenetree.NewEditor(cfg)
	if err != nil {
		return err
	}
	editor.SetLogger(logger)

	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := scenetree.LoadScript(data)
		if err != nil {
			return err
		}
		editor.SetScriptRunner(runner)
		logger.Info("script loaded", zap.String("path", scriptPath))
	}

	return scenetree.Run(editor)
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
