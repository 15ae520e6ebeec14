package groovy

import (
	"encoding/xml"

	"github.com/concourse/jenkinsflight/jenkins"
)

const (
	GroovyBuilderClass = "hudson.plugins.groovy.Groovy"

	// DefaultVersion selects whatever groovy is on the agent's PATH.
	DefaultVersion = "(Default)"
)

type GroovyBuilder struct {
	XMLName xml.Name `xml:"hudson.plugins.groovy.Groovy"`

	ScriptSource     ScriptSource `xml:"scriptSource"`
	GroovyName       string       `xml:"groovyName"`
	Parameters       string       `xml:"parameters"`
	ScriptParameters string       `xml:"scriptParameters"`
	Properties       string       `xml:"properties"`
	JavaOpts         string       `xml:"javaOpts"`
	ClassPath        string       `xml:"classPath"`
}

func (GroovyBuilder) BuilderClass() string {
	return GroovyBuilderClass
}

// Step is "Execute Groovy script": the script runs in a forked groovy
// process on the agent.
type Step struct {
	source  ScriptSource
	version string

	parameters       string
	scriptParameters string
	properties       string
	javaOpts         string
	classPath        string
}

func NewStep() *Step {
	return &Step{
		source:  ScriptSource{Class: stringScriptSource},
		version: DefaultVersion,
	}
}

func (step *Step) Script(body string) *Step {
	step.source = ScriptSource{Class: stringScriptSource, Command: body}
	return step
}

// File runs a script from the workspace, relative to its root.
func (step *Step) File(path string) *Step {
	step.source = ScriptSource{Class: fileScriptSource, ScriptFile: path}
	return step
}

// WithVersion selects a Groovy installation by name.
func (step *Step) WithVersion(installation string) *Step {
	if installation == "" {
		installation = DefaultVersion
	}

	step.version = installation
	return step
}

func (step *Step) WithParameters(parameters string) *Step {
	step.parameters = parameters
	return step
}

func (step *Step) WithScriptParameters(parameters string) *Step {
	step.scriptParameters = parameters
	return step
}

func (step *Step) WithProperties(properties string) *Step {
	step.properties = properties
	return step
}

func (step *Step) WithJavaOpts(opts string) *Step {
	step.javaOpts = opts
	return step
}

func (step *Step) WithClassPath(classPath string) *Step {
	step.classPath = classPath
	return step
}

func (step *Step) Builder() jenkins.Builder {
	return GroovyBuilder{
		ScriptSource:     step.source,
		GroovyName:       step.version,
		Parameters:       step.parameters,
		ScriptParameters: step.scriptParameters,
		Properties:       step.properties,
		JavaOpts:         step.javaOpts,
		ClassPath:        step.classPath,
	}
}
