package po

import (
	"context"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v5"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi"
)

type Timeouts struct {
	Build        time.Duration
	Poll         time.Duration
	PluginUpdate time.Duration
}

var DefaultTimeouts = Timeouts{
	Build:        5 * time.Minute,
	Poll:         time.Second,
	PluginUpdate: 5 * time.Minute,
}

// Jenkins is the entry point for driving a controller. It mirrors what the
// web UI offers: the job list, the global configuration page and the plugin
// manager.
type Jenkins struct {
	Jobs *Jobs

	logger   lager.Logger
	client   jenkinsapi.Client
	timeouts Timeouts

	configPage *ConfigPage
}

func NewJenkins(logger lager.Logger, client jenkinsapi.Client, timeouts Timeouts) *Jenkins {
	if timeouts.Build == 0 {
		timeouts.Build = DefaultTimeouts.Build
	}

	if timeouts.Poll == 0 {
		timeouts.Poll = DefaultTimeouts.Poll
	}

	if timeouts.PluginUpdate == 0 {
		timeouts.PluginUpdate = DefaultTimeouts.PluginUpdate
	}

	jenkins := &Jenkins{
		logger:   logger.Session("jenkins"),
		client:   client,
		timeouts: timeouts,
	}

	jenkins.Jobs = &Jobs{jenkins: jenkins}

	return jenkins
}

func (jenkins *Jenkins) Client() jenkinsapi.Client {
	return jenkins.client
}

func (jenkins *Jenkins) Timeouts() Timeouts {
	return jenkins.timeouts
}

func (jenkins *Jenkins) Version() (string, error) {
	info, err := jenkins.client.GetInfo()
	if err != nil {
		return "", err
	}

	return info.Version, nil
}

// Configure opens the global configuration. Anything added to the page is
// applied by Save.
func (jenkins *Jenkins) Configure() *ConfigPage {
	jenkins.configPage = &ConfigPage{}
	return jenkins.configPage
}

func (jenkins *Jenkins) ConfigPage() *ConfigPage {
	if jenkins.configPage == nil {
		return jenkins.Configure()
	}

	return jenkins.configPage
}

func (jenkins *Jenkins) Save() error {
	page := jenkins.configPage
	if page == nil {
		return nil
	}

	logger := jenkins.logger.Session("save-config")

	for _, tool := range page.tools {
		tLog := logger.Session("install-tool", lager.Data{"tool": tool.ToolName()})

		script, marker, err := tool.InstallScript()
		if err != nil {
			tLog.Error("failed-to-render", err)
			return err
		}

		output, err := jenkins.client.RunScript(script)
		if err != nil {
			tLog.Error("failed-to-run-script", err)
			return err
		}

		if !strings.Contains(output, marker) {
			err = jenkinsapi.ScriptError{Output: output}
			tLog.Error("script-did-not-complete", err)
			return err
		}

		tLog.Info("installed")
	}

	jenkins.configPage = nil

	return nil
}

func (jenkins *Jenkins) MissingPlugins(shortNames ...string) ([]string, error) {
	plugins, err := jenkins.client.ListPlugins()
	if err != nil {
		return nil, err
	}

	return plugins.Missing(shortNames...), nil
}

// WithPlugins makes sure the plugins are active. Missing ones are installed
// when install is set, otherwise MissingPluginsError is returned.
func (jenkins *Jenkins) WithPlugins(ctx context.Context, install bool, shortNames ...string) error {
	logger := jenkins.logger.Session("with-plugins", lager.Data{"plugins": shortNames})

	missing, err := jenkins.MissingPlugins(shortNames...)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		return nil
	}

	if !install {
		return MissingPluginsError{Plugins: missing}
	}

	logger.Info("installing", lager.Data{"missing": missing})

	err = jenkins.client.InstallPlugins(missing...)
	if err != nil {
		logger.Error("failed-to-install", err)
		return err
	}

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		stillMissing, err := jenkins.MissingPlugins(missing...)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}

		if len(stillMissing) > 0 {
			return struct{}{}, MissingPluginsError{Plugins: stillMissing}
		}

		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(jenkins.timeouts.Poll)),
		backoff.WithMaxElapsedTime(jenkins.timeouts.PluginUpdate),
	)
	if err != nil {
		logger.Error("failed-to-activate", err)
		return err
	}

	logger.Info("installed")

	return nil
}

// ToolInstallation is something listed under Manage Jenkins > Tools.
type ToolInstallation interface {
	ToolName() string

	// InstallScript renders a system Groovy script that registers the tool,
	// and the marker the script prints once it has.
	InstallScript() (script string, marker string, err error)
}

type ConfigPage struct {
	tools []ToolInstallation
}

func (page *ConfigPage) AddTool(tool ToolInstallation) ToolInstallation {
	page.tools = append(page.tools, tool)
	return tool
}

func (page *ConfigPage) Tools() []ToolInstallation {
	return page.tools
}
