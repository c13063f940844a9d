// FILE: lixenwraith/settings/cmd/settingsctl/root.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/settings"
)

// Version information set at build time
var Version = "0.1.0"

// cli holds the global flags and the filesystem the commands operate on.
type cli struct {
	appName    string
	file       string
	profileDir string
	format     string
	logLevel   string

	fs afero.Fs
}

func newRootCmd() *cobra.Command {
	return newRootCmdFs(afero.NewOsFs())
}

func newRootCmdFs(fs afero.Fs) *cobra.Command {
	c := &cli{fs: fs}

	root := &cobra.Command{
		Use:   "settingsctl",
		Short: "Inspect and edit a settings store",
		Long: `settingsctl reads and writes the persistent settings of an application
and manages its named profiles.

The store defaults to $XDG_CONFIG_HOME/<app>/settings.json; use --file to
point at another file. The file extension selects the format unless
--format is given.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.appName, "app", "settingsctl", "Application name used to locate the default store")
	flags.StringVarP(&c.file, "file", "f", "", "Store file (overrides --app)")
	flags.StringVar(&c.profileDir, "profile-dir", "", "Profile directory (default: profiles/ beside the store)")
	flags.StringVar(&c.format, "format", "", "Store format: json, yaml or toml (default: from extension)")
	flags.StringVar(&c.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")

	root.SetVersionTemplate(fmt.Sprintf("settingsctl %s\n", Version))

	root.AddCommand(
		c.getCmd(),
		c.setCmd(),
		c.typeCmd(),
		c.keysCmd(),
		c.dumpCmd(),
		c.profileCmd(),
		c.watchCmd(),
	)
	return root
}

func (c *cli) logger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.logLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// open builds the store from the global flags.
func (c *cli) open() (*settings.Store, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}

	b := settings.NewBuilder().WithFs(c.fs).WithLogger(logger)
	if c.file != "" {
		b = b.WithFile(c.file)
	} else {
		b = b.WithAppName(c.appName)
	}
	if c.profileDir != "" {
		b = b.WithProfileDir(c.profileDir)
	}
	if c.format != "" {
		b = b.WithFormat(c.format)
	}
	return b.Build()
}
