package commands

import (
	"context"
	"fmt"

	"github.com/concourse/jenkinsflight/po/groovy"
)

type InstallGroovyCommand struct {
	Name    string `short:"n" long:"name"           required:"true" description:"Name of the installation, as selected on Groovy steps"`
	Version string `long:"groovy-version" required:"true" description:"Groovy release to install, e.g. 2.2.1"`

	InstallPlugins bool `long:"install-plugins" description:"Install the groovy plugin if it is missing"`
}

func (command *InstallGroovyCommand) Execute([]string) error {
	target, err := Jenkinsflight.target()
	if err != nil {
		return err
	}

	err = target.jenkins.WithPlugins(context.Background(), command.InstallPlugins || target.config.InstallPlugins, "groovy")
	if err != nil {
		return err
	}

	installation := groovy.NewInstallation().Named(command.Name).InstallVersion(command.Version)
	target.jenkins.Configure().AddTool(installation)

	err = target.jenkins.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(Jenkinsflight.stdout(), "installed groovy %s (%s)\n", installation.Name, installation.Version)

	return nil
}
