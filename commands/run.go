package commands

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/scenario"
	"github.com/concourse/jenkinsflight/ui"
	"github.com/google/uuid"
	"github.com/vito/go-interact/interact"
)

const throwawayJobPrefix = "jenkinsflight-"

type RunCommand struct {
	Job string `short:"j" long:"job" description:"Job to build the script in (default: a throwaway job that is deleted afterwards)"`

	Script string `short:"s" long:"script" description:"Inline Groovy script"`
	File   string `short:"f" long:"file"   description:"Groovy script file, relative to the job workspace"`

	System  bool   `long:"system"  description:"Run as a system Groovy script inside the controller"`
	Sandbox bool   `long:"sandbox" description:"Run the system script in the script-security sandbox"`
	Groovy  string `short:"g" long:"groovy" description:"Groovy installation to run a plain script with"`

	Shell []string `long:"shell" description:"Shell step to run before the script (can be specified multiple times)"`

	InstallPlugins bool `long:"install-plugins" description:"Install the groovy plugin if it is missing"`
	Keep           bool `long:"keep"            description:"Keep the throwaway job after the build"`

	SkipInteractive bool `short:"n" long:"non-interactive" description:"Replace an existing job without asking"`
}

func (command *RunCommand) Execute([]string) error {
	run := scenario.Scenario{
		Job:     command.Job,
		Plugins: []string{"groovy"},
		Expect:  scenario.Expectation{Result: jenkins.ResultSuccess},
	}

	throwaway := run.Job == ""
	if throwaway {
		run.Job = throwawayJobPrefix + uuid.NewString()
	}

	for _, shell := range command.Shell {
		run.Steps = append(run.Steps, scenario.Step{Shell: shell})
	}

	step := &scenario.GroovyStep{
		Script:  command.Script,
		File:    command.File,
		Version: command.Groovy,
		Sandbox: command.Sandbox,
	}

	if command.System {
		run.Steps = append(run.Steps, scenario.Step{SystemGroovy: step})
	} else {
		run.Steps = append(run.Steps, scenario.Step{Groovy: step})
	}

	err := run.Validate()
	if err != nil {
		return err
	}

	target, err := Jenkinsflight.target()
	if err != nil {
		return err
	}

	if !throwaway && !command.SkipInteractive {
		_, exists, err := target.jenkins.Jobs.Get(run.Job)
		if err != nil {
			return err
		}

		if exists {
			var confirm bool
			err = interact.NewInteraction(fmt.Sprintf("job `%s` exists and will be replaced. continue?", run.Job)).Resolve(&confirm)
			if err != nil {
				return err
			}

			if !confirm {
				return errors.New("bailing out")
			}
		}
	}

	if throwaway && !command.Keep {
		defer func() {
			_, err := target.jenkins.Jobs.Delete(run.Job)
			if err != nil {
				target.logger.Error("failed-to-delete-throwaway-job", err, lager.Data{"job": run.Job})
			}
		}()
	}

	runner := scenario.Runner{
		Logger:         target.logger,
		Jenkins:        target.jenkins,
		InstallPlugins: command.InstallPlugins || target.config.InstallPlugins,
	}

	stdout := Jenkinsflight.stdout()

	report, err := runner.Run(context.Background(), run)
	if err != nil {
		if report.Number == 0 {
			return err
		}

		fmt.Fprintln(stdout, ui.ErroredColor.Sprint(err.Error()))
		return ExitStatusError{Status: 2}
	}

	fmt.Fprint(stdout, report.Console)
	fmt.Fprintf(stdout, "%s #%d %s\n", report.Job, report.Number, ui.ResultColor(report.Result).Sprint(report.Result))

	if status := ui.ExitStatus(report.Result); status != 0 {
		return ExitStatusError{Status: status}
	}

	return nil
}
