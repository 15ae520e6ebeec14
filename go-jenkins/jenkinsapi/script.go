package jenkinsapi

import (
	"net/http"
	"net/url"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
)

// RunScript evaluates a system Groovy script on the controller and returns
// whatever it printed. Jenkins answers 200 even when the script throws, in
// which case the stack trace is the output.
func (client *client) RunScript(script string) (string, error) {
	var output string
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.RunScript,
		Header:      http.Header{"Content-Type": {"application/x-www-form-urlencoded"}},
		Body:        []byte(url.Values{"script": {script}}.Encode()),
	}, &internal.Response{
		Result: &output,
	})
	if err != nil {
		return "", err
	}

	return output, nil
}
