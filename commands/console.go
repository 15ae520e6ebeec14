package commands

import (
	"errors"
	"fmt"
)

type ConsoleCommand struct {
	Job   string `short:"j" long:"job"   required:"true" description:"Name of the job"`
	Build int    `short:"b" long:"build" required:"true" description:"Build number"`
}

func (command *ConsoleCommand) Execute([]string) error {
	target, err := Jenkinsflight.target()
	if err != nil {
		return err
	}

	text, found, err := target.jenkins.Client().ConsoleText(command.Job, command.Build)
	if err != nil {
		return err
	}

	if !found {
		return errors.New("build not found")
	}

	fmt.Fprint(Jenkinsflight.stdout(), text)

	return nil
}
