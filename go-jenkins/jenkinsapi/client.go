package jenkinsapi

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
)

//go:generate go tool counterfeiter . Client

type Client interface {
	URL() string
	HTTPClient() *http.Client

	GetInfo() (jenkins.Info, error)

	CreateJob(jobName string, config []byte) error
	Job(jobName string) (jenkins.Job, bool, error)
	JobConfig(jobName string) ([]byte, bool, error)
	SaveJobConfig(jobName string, config []byte) (bool, error)
	DeleteJob(jobName string) (bool, error)

	TriggerBuild(jobName string) (int, error)
	QueueItem(queueID int) (jenkins.QueueItem, bool, error)
	Build(jobName string, buildNumber int) (jenkins.Build, bool, error)
	ConsoleText(jobName string, buildNumber int) (string, bool, error)

	ListPlugins() (jenkins.Plugins, error)
	InstallPlugins(shortNames ...string) error

	RunScript(script string) (string, error)
}

type Credentials struct {
	Username string
	Token    string
}

type client struct {
	connection internal.Connection
}

func NewClient(logger lager.Logger, apiURL string, httpClient *http.Client, credentials Credentials, tracing bool) Client {
	return &client{
		connection: internal.NewConnection(
			logger.Session("jenkinsapi"),
			apiURL,
			httpClient,
			internal.BasicAuth{Username: credentials.Username, Token: credentials.Token},
			tracing,
		),
	}
}

func (client *client) URL() string {
	return client.connection.URL()
}

func (client *client) HTTPClient() *http.Client {
	return client.connection.HTTPClient()
}
