package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/backend"
)

// cli holds state shared by all subcommands of one root command.
type cli struct {
	cfg        *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: newConfig()}

	root := &cobra.Command{
		Use:           "gpuresctl",
		Short:         "Inspect and exercise GPU resource contexts",
		Version:       gpures.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(c.cfg, c.configFile); err != nil {
				return err
			}
			l, err := newLogger(cmd.ErrOrStderr(), c.cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return err
			}
			gpures.SetLogger(l)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "YAML config file")
	flags.String("backend", "", "backend name (default: best available)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	bindFlag(c.cfg, cfgKeyBackend, root, "backend")
	bindFlag(c.cfg, cfgKeyLogLevel, root, "log-level")

	root.AddCommand(c.newBackendsCmd())
	root.AddCommand(c.newStressCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// bindFlag binds a Viper key to a flag defined on cmd. A missing flag is a
// programming error.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(name)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("gpuresctl: bind %s: %v", name, err))
	}
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// openBackend opens the configured backend, falling back to the best
// registered one when none is named.
func (c *cli) openBackend() (string, gpures.ResourceContext, error) {
	name := c.cfg.GetString(cfgKeyBackend)
	if name == "" {
		name = backend.DefaultName()
	}
	ctx, err := backend.Open(name)
	if err != nil {
		return name, nil, err
	}
	return name, ctx, nil
}
