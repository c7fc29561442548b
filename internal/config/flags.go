package config

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"
)

// EnvPath is the environment override for the starting directory.
const EnvPath = "BURROW_PATH"

// FromArgs resolves the effective startup configuration from flags, the
// environment, and the stored config file. Start-path precedence:
// positional argument, then BURROW_PATH, then the config file, then the
// user's home directory.
func FromArgs(args []string) Config {
	base := Default()
	if loaded, err := Load(); err == nil {
		base = loaded
	}

	flags := pflag.NewFlagSet("burrow", pflag.ExitOnError)
	showHidden := flags.Bool("show-hidden", base.ShowHidden, "Include dot files and directories")
	workers := flags.Int("workers", base.Workers, "Concurrent child sizing limit")
	flags.Usage = func() {
		fmt.Println(heredoc.Doc(`
			burrow explores disk usage interactively.

			Usage:

			    burrow [flags] [path]

			Positional Arguments:
			  path                   Directory to start in. Falls back to $BURROW_PATH,
			                         then the saved config, then the home directory.

			Flags:
		`))
		flags.PrintDefaults()
	}
	_ = flags.Parse(args)

	base.ShowHidden = *showHidden
	base.Workers = *workers

	if env := os.Getenv(EnvPath); env != "" {
		base.Path = env
	}
	if flags.NArg() > 0 {
		base.Path = flags.Arg(0)
	}
	return base
}
