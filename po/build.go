package po

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v5"
	"github.com/concourse/jenkinsflight/jenkins"
)

const consoleTailLines = 30

var (
	errStillQueued   = errors.New("still queued")
	errStillBuilding = errors.New("still building")
)

// Build is a queued build of a job. It starts out as a queue item and
// becomes a numbered build once an executor picks it up.
type Build struct {
	Job     string
	QueueID int

	jenkins *Jenkins
	logger  lager.Logger

	lock   sync.Mutex
	number int
	build  jenkins.Build
}

func (build *Build) Number() int {
	build.lock.Lock()
	defer build.lock.Unlock()

	return build.number
}

// Result is empty until Wait has seen the build finish.
func (build *Build) Result() jenkins.BuildResult {
	build.lock.Lock()
	defer build.lock.Unlock()

	return build.build.Result
}

// Wait blocks until the build has a result, bounded by the build timeout.
// It may be called again once finished and returns straight away.
func (build *Build) Wait(ctx context.Context) (jenkins.BuildResult, error) {
	if result := build.Result(); result.Completed() {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, build.jenkins.timeouts.Build)
	defer cancel()

	number, err := build.waitForExecutable(ctx)
	if err != nil {
		return "", err
	}

	finished, err := build.waitForResult(ctx, number)
	if err != nil {
		return "", err
	}

	build.lock.Lock()
	build.build = finished
	build.lock.Unlock()

	build.logger.Info("finished", lager.Data{"number": number, "result": finished.Result})

	return finished.Result, nil
}

func (build *Build) waitForExecutable(ctx context.Context) (int, error) {
	if number := build.Number(); number != 0 {
		return number, nil
	}

	if build.QueueID == 0 {
		return 0, ErrNotQueued
	}

	number, err := backoff.Retry(ctx, func() (int, error) {
		item, found, err := build.jenkins.client.QueueItem(build.QueueID)
		if err != nil {
			return 0, backoff.Permanent(err)
		}

		if !found {
			return 0, backoff.Permanent(fmt.Errorf("queue item %d is gone", build.QueueID))
		}

		if item.Cancelled {
			return 0, backoff.Permanent(ErrBuildCancelled)
		}

		if item.Executable == nil {
			build.logger.Debug("waiting-in-queue", lager.Data{"why": item.Why})
			return 0, errStillQueued
		}

		return item.Executable.Number, nil
	}, build.retryOptions()...)
	if err != nil {
		return 0, build.pollError("waiting for an executor", err)
	}

	build.lock.Lock()
	build.number = number
	build.lock.Unlock()

	build.logger.Debug("started", lager.Data{"number": number})

	return number, nil
}

func (build *Build) waitForResult(ctx context.Context, number int) (jenkins.Build, error) {
	finished, err := backoff.Retry(ctx, func() (jenkins.Build, error) {
		current, found, err := build.jenkins.client.Build(build.Job, number)
		if err != nil {
			return jenkins.Build{}, backoff.Permanent(err)
		}

		if !found || current.Building || !current.Result.Completed() {
			return jenkins.Build{}, errStillBuilding
		}

		return current, nil
	}, build.retryOptions()...)
	if err != nil {
		return jenkins.Build{}, build.pollError("waiting for the build to finish", err)
	}

	return finished, nil
}

func (build *Build) retryOptions() []backoff.RetryOption {
	return []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(build.jenkins.timeouts.Poll)),
		backoff.WithMaxElapsedTime(build.jenkins.timeouts.Build),
	}
}

func (build *Build) pollError(waitingFor string, err error) error {
	if errors.Is(err, errStillQueued) || errors.Is(err, errStillBuilding) || errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %s %s", ErrTimedOut, build.jenkins.timeouts.Build, waitingFor)
	}

	build.logger.Error("failed-waiting", err)

	return err
}

func (build *Build) ShouldSucceed(ctx context.Context) error {
	return build.ShouldHaveResult(ctx, jenkins.ResultSuccess)
}

func (build *Build) ShouldHaveResult(ctx context.Context, expected jenkins.BuildResult) error {
	result, err := build.Wait(ctx)
	if err != nil {
		return err
	}

	if result == expected {
		return nil
	}

	tail := ""
	if console, err := build.ConsoleOutput(); err == nil {
		tail = lastLines(console, consoleTailLines)
	}

	return UnexpectedResultError{
		Job:         build.Job,
		Number:      build.Number(),
		Expected:    expected,
		Actual:      result,
		ConsoleTail: tail,
	}
}

func (build *Build) ConsoleOutput() (string, error) {
	number := build.Number()
	if number == 0 {
		return "", ErrNotQueued
	}

	text, found, err := build.jenkins.client.ConsoleText(build.Job, number)
	if err != nil {
		return "", err
	}

	if !found {
		return "", fmt.Errorf("console of %s #%d not found", build.Job, number)
	}

	return text, nil
}

func (build *Build) ShouldContainConsoleOutput(substring string) error {
	console, err := build.ConsoleOutput()
	if err != nil {
		return err
	}

	if strings.Contains(console, substring) {
		return nil
	}

	return MissingOutputError{
		Job:      build.Job,
		Number:   build.Number(),
		Expected: substring,
		Console:  console,
	}
}

func lastLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.Join(lines, "\n")
}
