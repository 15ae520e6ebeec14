package jenkinsapi

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"net/url"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
)

func (client *client) ListPlugins() (jenkins.Plugins, error) {
	var result struct {
		Plugins jenkins.Plugins `json:"plugins"`
	}

	err := client.connection.Send(internal.Request{
		RequestName: jenkins.ListPlugins,
		Query:       url.Values{"depth": {"1"}},
	}, &internal.Response{
		Result: &result,
	})
	if err != nil {
		return nil, err
	}

	return result.Plugins, nil
}

type installRequest struct {
	XMLName xml.Name        `xml:"jenkins"`
	Install []installPlugin `xml:"install"`
}

type installPlugin struct {
	Plugin string `xml:"plugin,attr"`
}

func (client *client) InstallPlugins(shortNames ...string) error {
	if len(shortNames) == 0 {
		return nil
	}

	var req installRequest
	for _, name := range shortNames {
		req.Install = append(req.Install, installPlugin{Plugin: name + "@latest"})
	}

	body := new(bytes.Buffer)
	err := xml.NewEncoder(body).Encode(req)
	if err != nil {
		return err
	}

	return client.connection.Send(internal.Request{
		RequestName: jenkins.InstallPlugins,
		Header:      http.Header{"Content-Type": {"text/xml"}},
		Body:        body.Bytes(),
	}, nil)
}
