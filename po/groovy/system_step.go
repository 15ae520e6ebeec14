package groovy

import (
	"encoding/xml"

	"github.com/concourse/jenkinsflight/jenkins"
)

const SystemGroovyBuilderClass = "hudson.plugins.groovy.SystemGroovy"

type SystemGroovyBuilder struct {
	XMLName xml.Name `xml:"hudson.plugins.groovy.SystemGroovy"`

	Source   SystemScriptSource `xml:"source"`
	Bindings string             `xml:"bindings,omitempty"`
}

func (SystemGroovyBuilder) BuilderClass() string {
	return SystemGroovyBuilderClass
}

// SystemStep is "Execute system Groovy script". It runs inside the
// controller JVM with access to the Jenkins object model.
type SystemStep struct {
	script   string
	file     string
	sandbox  bool
	bindings string
}

func NewSystemStep() *SystemStep {
	return &SystemStep{}
}

func (step *SystemStep) Script(body string) *SystemStep {
	step.script = body
	step.file = ""
	return step
}

func (step *SystemStep) File(path string) *SystemStep {
	step.file = path
	step.script = ""
	return step
}

// Sandboxed runs an inline script under the script-security sandbox
// instead of with full privileges.
func (step *SystemStep) Sandboxed() *SystemStep {
	step.sandbox = true
	return step
}

func (step *SystemStep) WithBindings(bindings string) *SystemStep {
	step.bindings = bindings
	return step
}

func (step *SystemStep) Builder() jenkins.Builder {
	var source SystemScriptSource
	if step.file != "" {
		source = SystemScriptSource{
			Class:      fileSystemScriptSource,
			ScriptFile: step.file,
		}
	} else {
		source = SystemScriptSource{
			Class: stringSystemScriptSource,
			Script: &SecureGroovyScript{
				Plugin:  "script-security",
				Script:  step.script,
				Sandbox: step.sandbox,
			},
		}
	}

	return SystemGroovyBuilder{
		Source:   source,
		Bindings: step.bindings,
	}
}
