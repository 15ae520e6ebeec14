package jenkinsapi

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/tedsuo/rata"
)

func (client *client) TriggerBuild(jobName string) (int, error) {
	if jobName == "" {
		return 0, NameRequiredError("job")
	}

	headers := http.Header{}
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.TriggerBuild,
		Params:      rata.Params{"job_name": jobName},
	}, &internal.Response{
		Headers: &headers,
	})
	if err != nil {
		return 0, err
	}

	location := headers.Get("Location")

	queueID, ok := parseQueueLocation(location)
	if !ok {
		return 0, internal.UnexpectedResponseError{
			StatusCode: http.StatusCreated,
			Status:     "queue location missing",
			Body:       "Location: " + location,
		}
	}

	return queueID, nil
}

// parseQueueLocation extracts the ID from .../queue/item/<id>/
func parseQueueLocation(location string) (int, bool) {
	trimmed := strings.TrimRight(location, "/")
	if path.Base(path.Dir(trimmed)) != "item" {
		return 0, false
	}

	id, err := strconv.Atoi(path.Base(trimmed))
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func (client *client) QueueItem(queueID int) (jenkins.QueueItem, bool, error) {
	var item jenkins.QueueItem
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetQueueItem,
		Params:      rata.Params{"queue_id": strconv.Itoa(queueID)},
	}, &internal.Response{
		Result: &item,
	})
	switch err.(type) {
	case nil:
		return item, true, nil
	case internal.ResourceNotFoundError:
		return jenkins.QueueItem{}, false, nil
	default:
		return jenkins.QueueItem{}, false, err
	}
}

func (client *client) Build(jobName string, buildNumber int) (jenkins.Build, bool, error) {
	if jobName == "" {
		return jenkins.Build{}, false, NameRequiredError("job")
	}

	var build jenkins.Build
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetBuild,
		Params: rata.Params{
			"job_name":     jobName,
			"build_number": strconv.Itoa(buildNumber),
		},
	}, &internal.Response{
		Result: &build,
	})
	switch err.(type) {
	case nil:
		return build, true, nil
	case internal.ResourceNotFoundError:
		return jenkins.Build{}, false, nil
	default:
		return jenkins.Build{}, false, err
	}
}

func (client *client) ConsoleText(jobName string, buildNumber int) (string, bool, error) {
	if jobName == "" {
		return "", false, NameRequiredError("job")
	}

	var text string
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetConsoleText,
		Params: rata.Params{
			"job_name":     jobName,
			"build_number": strconv.Itoa(buildNumber),
		},
	}, &internal.Response{
		Result: &text,
	})
	switch err.(type) {
	case nil:
		return text, true, nil
	case internal.ResourceNotFoundError:
		return "", false, nil
	default:
		return "", false, err
	}
}
