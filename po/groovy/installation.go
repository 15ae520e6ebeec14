package groovy

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	semisemanticversion "github.com/cppforlife/go-semi-semantic/version"
)

const versionLabelPrefix = "Groovy "

var installScript = template.Must(template.New("install-groovy").Funcs(template.FuncMap{
	"quote": quote,
}).Parse(`import hudson.plugins.groovy.GroovyInstallation
import hudson.plugins.groovy.GroovyInstaller
import hudson.tools.InstallSourceProperty

def descriptor = jenkins.model.Jenkins.instance.getDescriptorByType(GroovyInstallation.DescriptorImpl)
def installer = new GroovyInstaller({{quote .Version}})
def installation = new GroovyInstallation({{quote .Name}}, "", [new InstallSourceProperty([installer])])

def others = descriptor.installations.findAll { it.name != {{quote .Name}} }
descriptor.setInstallations((others + installation) as GroovyInstallation[])
descriptor.save()

println {{quote .Marker}}
`))

// Installation is a Groovy entry under Manage Jenkins > Tools, installed
// automatically from groovy.apache.org on first use.
type Installation struct {
	Name    string
	Version string
}

func NewInstallation() *Installation {
	return &Installation{}
}

func (installation *Installation) Named(name string) *Installation {
	installation.Name = name
	return installation
}

// InstallVersion takes either the label shown in the installer drop-down
// ("Groovy 2.2.1") or the bare version.
func (installation *Installation) InstallVersion(version string) *Installation {
	installation.Version = strings.TrimPrefix(strings.TrimSpace(version), versionLabelPrefix)
	return installation
}

func (installation *Installation) ToolName() string {
	return installation.Name
}

func (installation *Installation) InstallScript() (string, string, error) {
	if installation.Name == "" {
		return "", "", errors.New("groovy installation name required")
	}

	if installation.Version == "" {
		return "", "", errors.New("groovy installation version required")
	}

	_, err := semisemanticversion.NewVersionFromString(installation.Version)
	if err != nil {
		return "", "", fmt.Errorf("invalid groovy version %q: %w", installation.Version, err)
	}

	marker := "installed groovy " + installation.Name

	buf := new(bytes.Buffer)
	err = installScript.Execute(buf, struct {
		Name    string
		Version string
		Marker  string
	}{installation.Name, installation.Version, marker})
	if err != nil {
		return "", "", err
	}

	return buf.String(), marker, nil
}

// quote renders s as a single-quoted Groovy string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
