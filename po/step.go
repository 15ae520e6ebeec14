package po

import "github.com/concourse/jenkinsflight/jenkins"

// BuildStep is anything that can be added under "Build Steps" on a job's
// configuration page.
type BuildStep interface {
	Builder() jenkins.Builder
}

type ShellStep struct {
	Command string
}

func NewShellStep(command string) *ShellStep {
	return &ShellStep{Command: command}
}

func (step *ShellStep) Builder() jenkins.Builder {
	return jenkins.ShellBuilder{Command: step.Command}
}
