package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/concourse/flag/v2"
	"github.com/concourse/jenkinsflight/scenario"
	"github.com/concourse/jenkinsflight/ui"
)

type VerifyCommand struct {
	Scenarios []flag.File `short:"c" long:"scenario" required:"true" description:"Scenario file to run (can be specified multiple times)"`

	InstallPlugins bool `long:"install-plugins" description:"Install plugins the scenarios need if they are missing"`
	ShowConsole    bool `long:"show-console"    description:"Print the console of every build, not just failed ones"`
}

func (command *VerifyCommand) Execute([]string) error {
	var scenarios []scenario.Scenario
	for _, file := range command.Scenarios {
		path := file.Path()

		loaded, err := scenario.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		scenarios = append(scenarios, loaded)
	}

	target, err := Jenkinsflight.target()
	if err != nil {
		return err
	}

	runner := scenario.Runner{
		Logger:         target.logger,
		Jenkins:        target.jenkins,
		InstallPlugins: command.InstallPlugins || target.config.InstallPlugins,
	}

	stdout := Jenkinsflight.stdout()

	failed := 0
	for i, loaded := range scenarios {
		report, err := runner.Run(context.Background(), loaded)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: %s\n", command.Scenarios[i].Path(), ui.ErroredColor.Sprint("errored"))
			fmt.Fprintf(stdout, "  %s\n", err)
			continue
		}

		if report.Passed() {
			fmt.Fprintf(stdout, "%s: %s #%d %s in %s\n", command.Scenarios[i].Path(), report.Job, report.Number, ui.SucceededColor.Sprint("passed"), report.Duration.Round(time.Millisecond))
		} else {
			failed++
			fmt.Fprintf(stdout, "%s: %s #%d %s in %s\n", command.Scenarios[i].Path(), report.Job, report.Number, ui.FailedColor.Sprint("failed"), report.Duration.Round(time.Millisecond))

			for _, failure := range report.Failures {
				fmt.Fprintf(stdout, "  %s\n", failure)
			}
		}

		if command.ShowConsole || !report.Passed() {
			fmt.Fprint(stdout, report.Console)
		}
	}

	if failed > 0 {
		return ExitStatusError{Status: 1}
	}

	return nil
}
