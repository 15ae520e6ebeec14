package po

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/jenkins"
)

type FreeStyleJob struct {
	Name string

	jenkins *Jenkins
	logger  lager.Logger

	project     *jenkins.FreeStyleProject
	configuring bool
}

// Configure opens the job for editing, starting from its current config.xml.
// The other settings on the job are kept; steps added afterwards replace
// the job's build steps when Save is called.
func (job *FreeStyleJob) Configure() error {
	config, found, err := job.jenkins.client.JobConfig(job.Name)
	if err != nil {
		return err
	}

	if !found {
		return ErrJobNotFound
	}

	project, err := jenkins.ParseFreeStyleProject(config)
	if err != nil {
		job.logger.Error("failed-to-parse-config", err)
		return err
	}

	job.project = &project
	job.configuring = true

	return nil
}

func (job *FreeStyleJob) Configuring() bool {
	return job.configuring
}

func (job *FreeStyleJob) AddBuildStep(step BuildStep) error {
	if !job.configuring {
		return ErrNotConfiguring
	}

	job.project.AddBuilder(step.Builder())

	return nil
}

func (job *FreeStyleJob) AddShellStep(command string) error {
	return job.AddBuildStep(NewShellStep(command))
}

func (job *FreeStyleJob) Save() error {
	if !job.configuring {
		return ErrNotConfiguring
	}

	config, err := job.project.MarshalConfig()
	if err != nil {
		return err
	}

	found, err := job.jenkins.client.SaveJobConfig(job.Name, config)
	if err != nil {
		job.logger.Error("failed-to-save", err)
		return err
	}

	if !found {
		return ErrJobNotFound
	}

	job.logger.Debug("saved", lager.Data{"steps": len(job.project.Builders.Steps)})

	job.configuring = false

	return nil
}

func (job *FreeStyleJob) QueueBuild() (*Build, error) {
	queueID, err := job.jenkins.client.TriggerBuild(job.Name)
	if err != nil {
		job.logger.Error("failed-to-trigger", err)
		return nil, err
	}

	job.logger.Info("queued", lager.Data{"queue-id": queueID})

	return &Build{
		Job:     job.Name,
		QueueID: queueID,

		jenkins: job.jenkins,
		logger:  job.logger.Session("build", lager.Data{"queue-id": queueID}),
	}, nil
}
