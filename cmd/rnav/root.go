package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rnav/internal/app"
	"github.com/kk-code-lab/rnav/internal/config"
	"github.com/kk-code-lab/rnav/internal/logging"
	"github.com/kk-code-lab/rnav/internal/shellsetup"
	"github.com/spf13/cobra"
)

// autoShell is the --setup value used when no shell name follows the flag.
const autoShell = "auto"

var parentShellDetector = shellsetup.DetectParentShellName

type rootOptions struct {
	configPath string
	showHidden bool
	print      bool
	resultFile string
	logFile    string
	debug      bool
	setup      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rnav [directory]",
		Short: "Fuzzy terminal file navigator",
		Long: `rnav lists a directory and narrows it as you type. Enter opens the
selected file or enters the selected directory, Backspace on an empty query
goes up, Right goes back down where you came from.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("setup") {
				shell := opts.setup
				if shell == autoShell {
					shell = ""
				}
				return shellsetup.PrintSetup(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
			}

			start := ""
			if len(args) > 0 {
				start = args[0]
			}
			return run(cmd, opts, start)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/rnav/config.yaml)")
	flags.BoolVarP(&opts.showHidden, "show-hidden", "a", false, "list dotfiles")
	flags.BoolVarP(&opts.print, "print", "p", false, "print the picked path instead of opening it")
	flags.StringVar(&opts.resultFile, "result-file", "", "write the picked path to this file")
	flags.StringVar(&opts.logFile, "log-file", "", "append diagnostics to this file")
	flags.BoolVar(&opts.debug, "debug", false, "log every transition")
	flags.StringVarP(&opts.setup, "setup", "s", "", "print shell integration for SHELL (detected when omitted)")
	flags.Lookup("setup").NoOptDefVal = autoShell

	return cmd
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadConfigFile(opts.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if opts.showHidden {
		cfg.ShowHidden = true
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions, start string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
		Debug: opts.debug,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	// UTF-8 fallback keeps non-ASCII names readable on terminals with odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		StartDir: start,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Error("startup failed")
		return fmt.Errorf("cannot start: %w", err)
	}
	app.Run()

	res := app.Result()
	logger.WithField("target", res.Target).WithField("cancelled", res.Cancelled).Info("session finished")
	return apppkg.Deliver(res, apppkg.Output{
		Print:      opts.print,
		ResultFile: opts.resultFile,
		Editor:     cfg.Editor,
		Stdout:     cmd.OutOrStdout(),
	}, logger)
}
