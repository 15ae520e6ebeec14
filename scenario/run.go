package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/po"
	"github.com/concourse/jenkinsflight/po/groovy"
)

// Report is what a run saw. Failures lists unmet expectations; errors
// that stop the run are returned separately by Run.
type Report struct {
	Job      string
	Number   int
	Result   jenkins.BuildResult
	Console  string
	Duration time.Duration
	Failures []string
}

func (report Report) Passed() bool {
	return len(report.Failures) == 0
}

type Runner struct {
	Logger  lager.Logger
	Jenkins *po.Jenkins
	Clock   clock.Clock

	// InstallPlugins lets the run install plugins it needs.
	InstallPlugins bool
}

func (runner Runner) Run(ctx context.Context, scenario Scenario) (Report, error) {
	logger := runner.Logger.Session("run-scenario", lager.Data{"job": scenario.Job})

	report := Report{Job: scenario.Job}

	clk := runner.Clock
	if clk == nil {
		clk = clock.NewClock()
	}

	if len(scenario.Plugins) > 0 {
		err := runner.Jenkins.WithPlugins(ctx, runner.InstallPlugins, scenario.Plugins...)
		if err != nil {
			logger.Error("failed-to-gate-plugins", err)
			return report, err
		}
	}

	if len(scenario.Tools) > 0 {
		page := runner.Jenkins.Configure()
		for _, tool := range scenario.Tools {
			page.AddTool(groovy.NewInstallation().Named(tool.Name).InstallVersion(tool.Version))
		}

		err := runner.Jenkins.Save()
		if err != nil {
			logger.Error("failed-to-install-tools", err)
			return report, err
		}
	}

	_, err := runner.Jenkins.Jobs.Delete(scenario.Job)
	if err != nil {
		return report, err
	}

	job, err := runner.Jenkins.Jobs.Create(scenario.Job)
	if err != nil {
		return report, err
	}

	err = job.Configure()
	if err != nil {
		return report, err
	}

	for _, step := range scenario.Steps {
		err = job.AddBuildStep(step.buildStep())
		if err != nil {
			return report, err
		}
	}

	err = job.Save()
	if err != nil {
		return report, err
	}

	build, err := job.QueueBuild()
	if err != nil {
		return report, err
	}

	queuedAt := clk.Now()

	result, err := build.Wait(ctx)
	report.Number = build.Number()
	report.Duration = clk.Since(queuedAt)
	if err != nil {
		logger.Error("failed-to-wait", err)
		return report, err
	}

	report.Result = result

	report.Console, err = build.ConsoleOutput()
	if err != nil {
		return report, err
	}

	if result != scenario.Expect.Result {
		report.Failures = append(report.Failures, fmt.Sprintf("expected %s, got %s", scenario.Expect.Result, result))
	}

	for _, output := range scenario.Expect.Output {
		err := build.ShouldContainConsoleOutput(output)

		var missing po.MissingOutputError
		if errors.As(err, &missing) {
			report.Failures = append(report.Failures, fmt.Sprintf("console output does not contain %q", missing.Expected))
		} else if err != nil {
			return report, err
		}
	}

	logger.Info("finished", lager.Data{"result": result, "duration": report.Duration.String(), "failures": len(report.Failures)})

	return report, nil
}

func (step Step) buildStep() po.BuildStep {
	switch {
	case step.Groovy != nil:
		groovyStep := groovy.NewStep().WithVersion(step.Groovy.Version)
		if step.Groovy.File != "" {
			return groovyStep.File(step.Groovy.File)
		}

		return groovyStep.Script(step.Groovy.Script)

	case step.SystemGroovy != nil:
		systemStep := groovy.NewSystemStep()
		if step.SystemGroovy.File != "" {
			systemStep.File(step.SystemGroovy.File)
		} else {
			systemStep.Script(step.SystemGroovy.Script)
		}

		if step.SystemGroovy.Sandbox {
			systemStep.Sandboxed()
		}

		return systemStep

	default:
		return po.NewShellStep(step.Shell)
	}
}
