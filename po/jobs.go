package po

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/jenkins"
)

type Jobs struct {
	jenkins *Jenkins
}

// Create makes an empty free-style job. It fails with
// jenkinsapi.ErrJobExists rather than overwriting.
func (jobs *Jobs) Create(name string) (*FreeStyleJob, error) {
	logger := jobs.jenkins.logger.Session("create-job", lager.Data{"job": name})

	config, err := jenkins.NewFreeStyleProject().MarshalConfig()
	if err != nil {
		return nil, err
	}

	err = jobs.jenkins.client.CreateJob(name, config)
	if err != nil {
		logger.Error("failed-to-create", err)
		return nil, err
	}

	logger.Info("created")

	return jobs.job(name), nil
}

func (jobs *Jobs) Get(name string) (*FreeStyleJob, bool, error) {
	_, found, err := jobs.jenkins.client.Job(name)
	if err != nil || !found {
		return nil, found, err
	}

	return jobs.job(name), true, nil
}

func (jobs *Jobs) Delete(name string) (bool, error) {
	found, err := jobs.jenkins.client.DeleteJob(name)
	if err != nil {
		jobs.jenkins.logger.Error("failed-to-delete-job", err, lager.Data{"job": name})
		return false, err
	}

	return found, nil
}

func (jobs *Jobs) job(name string) *FreeStyleJob {
	return &FreeStyleJob{
		Name:    name,
		jenkins: jobs.jenkins,
		logger:  jobs.jenkins.logger.Session("job", lager.Data{"job": name}),
	}
}
