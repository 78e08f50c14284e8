// Package main implements the mini-cache command line tool, an
// interactive shell over a fixed-capacity in-memory LRU cache.
// Commands are read from stdin (or a script file) and evaluated
// against a single cache instance.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mini-cache/cache"
	"mini-cache/internal/shell"
)

type options struct {
	capacity int
	script   string
	logLevel string
}

func newShellCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "mini-cache",
		Short: "Interactive shell over an in-memory LRU cache",
		Long: `mini-cache keeps up to --capacity entries in memory and discards the
least recently used entry when a new key would exceed that limit. Both
reads and writes count as a use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.IntVarP(&opts.capacity, "capacity", "c", 128, "maximum number of entries the cache holds")
	flags.StringVarP(&opts.script, "script", "f", "", "run commands from a file instead of stdin")
	flags.StringVar(&opts.logLevel, "log-level", "info", `logging level ("debug"|"info"|"warn"|"error")`)
}

func runShell(opts *options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logrus.SetLevel(level)

	// Validate here so a bad flag surfaces as a normal CLI error. The
	// constructor treats a non-positive capacity as a programming
	// mistake and panics.
	if opts.capacity < 1 {
		return errors.Errorf("capacity must be at least 1, got %d", opts.capacity)
	}

	c := cache.NewLRUWithEvict(opts.capacity, func(key, value string) {
		logrus.WithField("key", key).Debug("evicted")
	})
	sh, err := shell.New(c, os.Stdout)
	if err != nil {
		return err
	}

	logrus.WithField("capacity", opts.capacity).Debug("cache ready")

	if opts.script != "" {
		return sh.RunScript(opts.script)
	}
	fmt.Println(`mini-cache: type "help" for commands`)
	return sh.Run(os.Stdin)
}

func main() {
	if err := newShellCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
