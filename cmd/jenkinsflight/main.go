package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/concourse/jenkinsflight/commands"
	"github.com/concourse/jenkinsflight/ui"
	flags "github.com/jessevdk/go-flags"
	"github.com/vito/twentythousandtonnesofcrudeoil"
)

// overridden via linker flags
var Version = "0.0.0-dev"

func main() {
	commands.Jenkinsflight.Version = func() {
		fmt.Println(Version)
		os.Exit(0)
	}

	parser := flags.NewParser(&commands.Jenkinsflight, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	twentythousandtonnesofcrudeoil.TheEnvironmentIsPerfectlySafe(parser, "JENKINSFLIGHT_")

	_, err := parser.Parse()
	if err != nil {
		if err == commands.ErrShowHelpMessage {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}

		var exitErr commands.ExitStatusError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Status)
		}

		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, ui.ErroredColor.Sprintf("error: %s", err))
		os.Exit(1)
	}
}
