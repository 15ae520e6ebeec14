package jenkinsapi

import (
	"net/http"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
)

func (client *client) GetInfo() (jenkins.Info, error) {
	var info jenkins.Info
	headers := http.Header{}

	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetInfo,
	}, &internal.Response{
		Result:  &info,
		Headers: &headers,
	})
	if err != nil {
		return jenkins.Info{}, err
	}

	info.Version = headers.Get(jenkins.VersionHeader)

	return info, nil
}
