package ui

import (
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/fatih/color"
)

var PendingColor = color.New(color.FgWhite)
var StartedColor = color.New(color.FgYellow)
var SucceededColor = color.New(color.FgGreen)
var FailedColor = color.New(color.FgRed)
var UnstableColor = color.New(color.FgYellow)
var ErroredColor = color.New(color.FgWhite, color.BgRed, color.Bold)
var AbortedColor = color.New(color.FgHiBlack)

func ResultColor(result jenkins.BuildResult) *color.Color {
	switch result {
	case jenkins.ResultSuccess:
		return SucceededColor
	case jenkins.ResultFailure:
		return FailedColor
	case jenkins.ResultUnstable:
		return UnstableColor
	case jenkins.ResultAborted, jenkins.ResultNotBuilt:
		return AbortedColor
	default:
		return PendingColor
	}
}

// ExitStatus maps a build result onto the exit codes fly uses for
// succeeded, failed, errored and aborted builds.
func ExitStatus(result jenkins.BuildResult) int {
	switch result {
	case jenkins.ResultSuccess:
		return 0
	case jenkins.ResultFailure, jenkins.ResultUnstable:
		return 1
	case jenkins.ResultAborted, jenkins.ResultNotBuilt:
		return 3
	default:
		return 2
	}
}
