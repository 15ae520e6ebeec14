package matchers

import (
	"context"
	"errors"
	"fmt"

	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/po"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

var errNotABuild = errors.New("expecting a *po.Build")

func HaveSucceeded() types.GomegaMatcher {
	return HaveResult(jenkins.ResultSuccess)
}

// HaveResult waits for the build to finish and compares its result. The
// failure message carries the end of the console so the cause is visible.
func HaveResult(expected jenkins.BuildResult) types.GomegaMatcher {
	return &haveResultMatcher{expected: expected}
}

type haveResultMatcher struct {
	expected jenkins.BuildResult

	actual  jenkins.BuildResult
	console string
}

func (m *haveResultMatcher) Match(actual interface{}) (bool, error) {
	build, ok := actual.(*po.Build)
	if !ok {
		return false, errNotABuild
	}

	err := build.ShouldHaveResult(context.Background(), m.expected)
	if err == nil {
		m.actual = m.expected
		return true, nil
	}

	var resultErr po.UnexpectedResultError
	if errors.As(err, &resultErr) {
		m.actual = resultErr.Actual
		m.console = resultErr.ConsoleTail
		return false, nil
	}

	return false, err
}

func (m *haveResultMatcher) FailureMessage(actual interface{}) string {
	return format.Message(describe(actual), fmt.Sprintf("to have result %s, got %s\n%s", m.expected, m.actual, m.console))
}

func (m *haveResultMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(describe(actual), "not to have result", m.expected.String())
}

// HaveConsoleOutput matches the console of a finished build. A string is
// treated as a substring, anything else must be a matcher.
func HaveConsoleOutput(expected interface{}) types.GomegaMatcher {
	matcher, ok := expected.(types.GomegaMatcher)
	if !ok {
		matcher = gomega.ContainSubstring(fmt.Sprint(expected))
	}

	return &haveConsoleOutputMatcher{matcher: matcher}
}

type haveConsoleOutputMatcher struct {
	matcher types.GomegaMatcher

	console string
}

func (m *haveConsoleOutputMatcher) Match(actual interface{}) (bool, error) {
	build, ok := actual.(*po.Build)
	if !ok {
		return false, errNotABuild
	}

	_, err := build.Wait(context.Background())
	if err != nil {
		return false, err
	}

	m.console, err = build.ConsoleOutput()
	if err != nil {
		return false, err
	}

	return m.matcher.Match(m.console)
}

func (m *haveConsoleOutputMatcher) FailureMessage(interface{}) string {
	return m.matcher.FailureMessage(m.console)
}

func (m *haveConsoleOutputMatcher) NegatedFailureMessage(interface{}) string {
	return m.matcher.NegatedFailureMessage(m.console)
}

func describe(actual interface{}) interface{} {
	build, ok := actual.(*po.Build)
	if !ok {
		return actual
	}

	return fmt.Sprintf("%s #%d", build.Job, build.Number())
}
