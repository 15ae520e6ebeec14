package po

import (
	"errors"
	"fmt"
	"strings"

	"github.com/concourse/jenkinsflight/jenkins"
)

var (
	ErrTimedOut       = errors.New("timed out")
	ErrBuildCancelled = errors.New("build was cancelled while queued")
	ErrNotConfiguring = errors.New("job is not being configured; call Configure first")
	ErrJobNotFound    = errors.New("job not found")
	ErrNotQueued      = errors.New("build was never queued")
)

type MissingPluginsError struct {
	Plugins []string
}

func (err MissingPluginsError) Error() string {
	return fmt.Sprintf("missing plugins: %s", strings.Join(err.Plugins, ", "))
}

type UnexpectedResultError struct {
	Job      string
	Number   int
	Expected jenkins.BuildResult
	Actual   jenkins.BuildResult

	// ConsoleTail is the last lines of the log, for the failure message.
	ConsoleTail string
}

func (err UnexpectedResultError) Error() string {
	return fmt.Sprintf(
		"%s #%d: expected %s, got %s\n%s",
		err.Job, err.Number, err.Expected, err.Actual, err.ConsoleTail,
	)
}

type MissingOutputError struct {
	Job      string
	Number   int
	Expected string
	Console  string
}

func (err MissingOutputError) Error() string {
	return fmt.Sprintf("%s #%d: console output does not contain %q\n%s", err.Job, err.Number, err.Expected, err.Console)
}
