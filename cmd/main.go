// inputhook - global keyboard and mouse listener
// Prints every keyboard and mouse event observed anywhere on the host.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"inputhook/internal/config"
	"inputhook/internal/hotkey"
	"inputhook/internal/input"
	"inputhook/internal/logging"
	"inputhook/internal/osutils"
	"inputhook/internal/render"
)

var version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "inputhook",
		Short:        "Observe global keyboard and mouse input",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is the per-user config.yaml)")

	root.AddCommand(
		newListenCmd(&configFile),
		newKeysCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

func newListenCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print input events until interrupted",
		Long: `Install global keyboard and mouse hooks and print every event.

The session ends on Ctrl+C, on the stop chord, or after --max-events events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runListen(cmd.Context(), cmd, cfg)
		},
	}

	d := config.DefaultConfig()
	f := cmd.Flags()
	f.Bool("keyboard-only", d.KeyboardOnly, "do not hook the mouse")
	f.String("format", d.Format, "output format: text, json or yaml")
	f.String("stop-chord", d.StopChord, "key chord that ends the session (empty disables)")
	f.Int("max-events", d.MaxEvents, "stop after this many events (0 = unlimited)")
	f.String("log-level", d.Log.Level, "log level")
	f.String("log-format", d.Log.Format, "log format: console or json")
	f.String("log-output", d.Log.Output, "log destination: stderr, stdout or a file")
	return cmd
}

func runListen(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger, closer, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cfg.Log.Output,
		NoColor: os.Getenv("NO_COLOR") != "",
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	out, err := render.NewWriter(cmd.OutOrStdout(), cfg.Format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chords := hotkey.NewManager(logger)
	defer chords.Clear()
	if cfg.StopChord != "" {
		if _, err := chords.Register(cfg.StopChord, cancel); err != nil {
			return fmt.Errorf("stop chord: %w", err)
		}
	}

	if osutils.HooksNeedElevation() {
		logger.Warn().Msg("Not running elevated: input aimed at elevated windows will not be observed")
	}
	logger.Info().
		Bool("keyboard_only", cfg.KeyboardOnly).
		Str("stop_chord", cfg.StopChord).
		Msg("Listening for input")

	count := 0
	err = input.ListenContext(ctx, input.Options{
		KeyboardOnly: cfg.KeyboardOnly,
		Logger:       &logger,
	}, func(ev input.Event) {
		if ctx.Err() != nil {
			return
		}
		if err := out.Write(ev); err != nil {
			logger.Error().Err(err).Msg("Failed to write event")
		}
		chords.Handle(ev)
		count++
		if cfg.MaxEvents > 0 && count >= cfg.MaxEvents {
			cancel()
		}
	})
	if err != nil {
		return err
	}

	logger.Info().Int("events", count).Msg("Listener stopped")
	return nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key and button names usable in stop chords",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, k := range input.Keys() {
				fmt.Fprintln(w, k)
			}
			for _, b := range []string{"Mouse1 (left)", "Mouse2 (middle)", "Mouse3 (right)", "Mouse4 (x1)", "Mouse5 (x2)"} {
				fmt.Fprintln(w, b)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inputhook version %s\n", version)
		},
	}
}
