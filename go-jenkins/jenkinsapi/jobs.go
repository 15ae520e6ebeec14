package jenkinsapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/tedsuo/rata"
)

var xmlHeader = http.Header{"Content-Type": {"application/xml"}}

func (client *client) CreateJob(jobName string, config []byte) error {
	if jobName == "" {
		return NameRequiredError("job")
	}

	err := client.connection.Send(internal.Request{
		RequestName: jenkins.CreateJob,
		Query:       url.Values{"name": {jobName}},
		Header:      xmlHeader,
		Body:        config,
	}, nil)

	var unexpected internal.UnexpectedResponseError
	if errors.As(err, &unexpected) && unexpected.StatusCode == http.StatusBadRequest {
		_, found, lookupErr := client.Job(jobName)
		if lookupErr == nil && found {
			return ErrJobExists
		}
	}

	return err
}

func (client *client) Job(jobName string) (jenkins.Job, bool, error) {
	if jobName == "" {
		return jenkins.Job{}, false, NameRequiredError("job")
	}

	var job jenkins.Job
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetJob,
		Params:      rata.Params{"job_name": jobName},
	}, &internal.Response{
		Result: &job,
	})
	switch err.(type) {
	case nil:
		return job, true, nil
	case internal.ResourceNotFoundError:
		return jenkins.Job{}, false, nil
	default:
		return jenkins.Job{}, false, err
	}
}

func (client *client) JobConfig(jobName string) ([]byte, bool, error) {
	if jobName == "" {
		return nil, false, NameRequiredError("job")
	}

	var config []byte
	err := client.connection.Send(internal.Request{
		RequestName: jenkins.GetJobConfig,
		Params:      rata.Params{"job_name": jobName},
	}, &internal.Response{
		Result: &config,
	})
	switch err.(type) {
	case nil:
		return config, true, nil
	case internal.ResourceNotFoundError:
		return nil, false, nil
	default:
		return nil, false, err
	}
}

func (client *client) SaveJobConfig(jobName string, config []byte) (bool, error) {
	if jobName == "" {
		return false, NameRequiredError("job")
	}

	err := client.connection.Send(internal.Request{
		RequestName: jenkins.SaveJobConfig,
		Params:      rata.Params{"job_name": jobName},
		Header:      xmlHeader,
		Body:        config,
	}, nil)
	switch err.(type) {
	case nil:
		return true, nil
	case internal.ResourceNotFoundError:
		return false, nil
	default:
		return false, err
	}
}

func (client *client) DeleteJob(jobName string) (bool, error) {
	if jobName == "" {
		return false, NameRequiredError("job")
	}

	err := client.connection.Send(internal.Request{
		RequestName: jenkins.DeleteJob,
		Params:      rata.Params{"job_name": jobName},
	}, nil)
	switch err.(type) {
	case nil:
		return true, nil
	case internal.ResourceNotFoundError:
		return false, nil
	default:
		return false, err
	}
}
