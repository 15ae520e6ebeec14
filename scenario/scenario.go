package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/concourse/jenkinsflight/jenkins"
	multierror "github.com/hashicorp/go-multierror"
	"go.yaml.in/yaml/v3"
)

// Scenario describes one job to build and what its build must show.
type Scenario struct {
	Job     string      `yaml:"job"`
	Plugins []string    `yaml:"plugins,omitempty"`
	Tools   []Tool      `yaml:"tools,omitempty"`
	Steps   []Step      `yaml:"steps"`
	Expect  Expectation `yaml:"expect,omitempty"`
}

// Tool is a Groovy installation registered before the job is built.
type Tool struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Step sets exactly one of its fields.
type Step struct {
	Shell        string      `yaml:"shell,omitempty"`
	Groovy       *GroovyStep `yaml:"groovy,omitempty"`
	SystemGroovy *GroovyStep `yaml:"system_groovy,omitempty"`
}

type GroovyStep struct {
	Script string `yaml:"script,omitempty"`
	File   string `yaml:"file,omitempty"`

	// Version names a tool installation. Only plain Groovy steps use it.
	Version string `yaml:"version,omitempty"`

	// Sandbox only applies to system Groovy.
	Sandbox bool `yaml:"sandbox,omitempty"`
}

type Expectation struct {
	Result jenkins.BuildResult `yaml:"result,omitempty"`
	Output []string            `yaml:"output,omitempty"`
}

func Load(path string) (Scenario, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}

	return Parse(payload)
}

func Parse(payload []byte) (Scenario, error) {
	var scenario Scenario

	decoder := yaml.NewDecoder(bytes.NewReader(payload))
	decoder.KnownFields(true)

	err := decoder.Decode(&scenario)
	if err != nil {
		return Scenario{}, fmt.Errorf("malformed scenario: %w", err)
	}

	if scenario.Expect.Result == "" {
		scenario.Expect.Result = jenkins.ResultSuccess
	}

	err = scenario.Validate()
	if err != nil {
		return Scenario{}, err
	}

	return scenario, nil
}

func (scenario Scenario) Validate() error {
	var errs *multierror.Error

	if scenario.Job == "" {
		errs = multierror.Append(errs, errors.New("job name is required"))
	}

	for i, tool := range scenario.Tools {
		if tool.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("tools[%d]: name is required", i))
		}

		if tool.Version == "" {
			errs = multierror.Append(errs, fmt.Errorf("tools[%d]: version is required", i))
		}
	}

	if len(scenario.Steps) == 0 {
		errs = multierror.Append(errs, errors.New("at least one step is required"))
	}

	for i, step := range scenario.Steps {
		errs = multierror.Append(errs, step.validate(i)...)
	}

	switch scenario.Expect.Result {
	case jenkins.ResultSuccess, jenkins.ResultUnstable, jenkins.ResultFailure, jenkins.ResultNotBuilt, jenkins.ResultAborted:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown expected result %q", scenario.Expect.Result))
	}

	return errs.ErrorOrNil()
}

func (step Step) validate(i int) []error {
	set := 0
	if step.Shell != "" {
		set++
	}

	if step.Groovy != nil {
		set++
	}

	if step.SystemGroovy != nil {
		set++
	}

	if set != 1 {
		return []error{fmt.Errorf("steps[%d]: exactly one of shell, groovy or system_groovy must be set", i)}
	}

	var errs []error

	if step.Groovy != nil {
		errs = append(errs, step.Groovy.validate(fmt.Sprintf("steps[%d].groovy", i))...)

		if step.Groovy.Sandbox {
			errs = append(errs, fmt.Errorf("steps[%d].groovy: sandbox only applies to system_groovy", i))
		}
	}

	if step.SystemGroovy != nil {
		errs = append(errs, step.SystemGroovy.validate(fmt.Sprintf("steps[%d].system_groovy", i))...)

		if step.SystemGroovy.Version != "" {
			errs = append(errs, fmt.Errorf("steps[%d].system_groovy: version only applies to groovy", i))
		}

		if step.SystemGroovy.Sandbox && step.SystemGroovy.File != "" {
			errs = append(errs, fmt.Errorf("steps[%d].system_groovy: sandbox only applies to inline scripts", i))
		}
	}

	return errs
}

func (step GroovyStep) validate(at string) []error {
	if (step.Script == "") == (step.File == "") {
		return []error{fmt.Errorf("%s: exactly one of script or file must be set", at)}
	}

	return nil
}
