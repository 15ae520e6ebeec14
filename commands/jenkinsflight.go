package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/caarlos0/env/v11"
	"github.com/concourse/flag/v2"
	"github.com/concourse/jenkinsflight/config"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi"
	"github.com/concourse/jenkinsflight/po"
)

var ErrShowHelpMessage = errors.New("help command invoked")

type HelpCommand struct{}

func (command *HelpCommand) Execute([]string) error {
	return ErrShowHelpMessage
}

// ExitStatusError ends the process with Status once the command has
// printed its own output.
type ExitStatusError struct {
	Status int
}

func (err ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", err.Status)
}

type JenkinsflightCommand struct {
	Help HelpCommand `command:"help" description:"Print this help message"`

	Version func() `short:"v" long:"version" description:"Print the version of jenkinsflight and exit"`

	URL      flag.URL `short:"u" long:"url"      description:"Jenkins controller URL (default: $JENKINS_URL)"`
	Username string   `long:"username"           description:"User to authenticate as (default: $JENKINS_USERNAME)"`
	Token    string   `long:"token"              description:"API token of the user (default: $JENKINS_API_TOKEN)"`
	Insecure bool     `short:"k" long:"insecure" description:"Skip verification of the controller's certificate"`
	Verbose  bool     `long:"verbose"            description:"Print API requests and responses"`

	PrintTableHeaders bool `long:"print-table-headers" description:"Print table headers even for redirected output"`

	Run           RunCommand           `command:"run"            alias:"r"  description:"Run a Groovy script in a job and print its console"`
	InstallGroovy InstallGroovyCommand `command:"install-groovy" alias:"ig" description:"Register a Groovy installation under the global tools"`
	Plugins       PluginsCommand       `command:"plugins"        alias:"ps" description:"List plugins, or check that the given ones are active"`
	Verify        VerifyCommand        `command:"verify"         alias:"vf" description:"Run a scenario file and report on it"`
	Console       ConsoleCommand       `command:"console"        alias:"c"  description:"Print the console of a build"`

	Stdout io.Writer `no-flag:"true"`
	Stderr io.Writer `no-flag:"true"`
}

var Jenkinsflight JenkinsflightCommand

type target struct {
	logger  lager.Logger
	config  config.Config
	jenkins *po.Jenkins
}

// target loads the config from the environment with the global flags
// taking precedence.
func (command *JenkinsflightCommand) target() (target, error) {
	environment := env.ToMap(os.Environ())

	var targetURL string
	if command.URL.URL != nil {
		targetURL = command.URL.String()
	}

	for name, value := range map[string]string{
		"JENKINS_URL":       targetURL,
		"JENKINS_USERNAME":  command.Username,
		"JENKINS_API_TOKEN": command.Token,
	} {
		if value != "" {
			environment[name] = value
		}
	}

	if command.Insecure {
		environment["JENKINS_INSECURE"] = "true"
	}

	if command.Verbose {
		environment["JENKINS_TRACE"] = "true"
	}

	cfg, err := config.LoadWith(env.Options{Environment: environment})
	if err != nil {
		return target{}, err
	}

	httpClient, err := cfg.HTTPClient()
	if err != nil {
		return target{}, err
	}

	level := lager.ERROR
	if command.Verbose {
		level = lager.DEBUG
	}

	logger := lager.NewLogger("jenkinsflight")
	logger.RegisterSink(lager.NewPrettySink(command.stderr(), level))

	client := jenkinsapi.NewClient(
		logger,
		cfg.URL,
		httpClient,
		jenkinsapi.Credentials{Username: cfg.Username, Token: cfg.APIToken},
		cfg.Trace,
	)

	return target{
		logger:  logger,
		config:  cfg,
		jenkins: po.NewJenkins(logger, client, cfg.Timeouts()),
	}, nil
}

func (command *JenkinsflightCommand) stdout() io.Writer {
	if command.Stdout == nil {
		return os.Stdout
	}

	return command.Stdout
}

func (command *JenkinsflightCommand) stderr() io.Writer {
	if command.Stderr == nil {
		return os.Stderr
	}

	return command.Stderr
}
