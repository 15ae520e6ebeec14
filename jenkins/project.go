package jenkins

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Builder is a single entry under <builders>. Implementations carry their
// own XMLName so the element is named after the Jenkins class.
type Builder interface {
	BuilderClass() string
}

// Raw keeps the content of an element it does not model, so settings made
// elsewhere survive a load and save.
type Raw struct {
	Inner string `xml:",innerxml"`
}

type SCM struct {
	Class string     `xml:"class,attr"`
	Attrs []xml.Attr `xml:",any,attr"`
	Inner string     `xml:",innerxml"`
}

// Element is an unknown child of <project>, written back as it was read.
type Element struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

type FreeStyleProject struct {
	XMLName xml.Name `xml:"project"`

	Description      string `xml:"description"`
	KeepDependencies bool   `xml:"keepDependencies"`
	Properties       Raw    `xml:"properties"`
	SCM              SCM    `xml:"scm"`
	CanRoam          bool   `xml:"canRoam"`
	Disabled         bool   `xml:"disabled"`

	BlockBuildWhenDownstreamBuilding bool `xml:"blockBuildWhenDownstreamBuilding"`
	BlockBuildWhenUpstreamBuilding   bool `xml:"blockBuildWhenUpstreamBuilding"`

	Triggers        Raw  `xml:"triggers"`
	ConcurrentBuild bool `xml:"concurrentBuild"`

	Builders      Builders `xml:"builders"`
	Publishers    Raw      `xml:"publishers"`
	BuildWrappers Raw      `xml:"buildWrappers"`

	Extra []Element `xml:",any"`
}

type Builders struct {
	Steps []Builder
}

func (builders Builders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}

	for _, step := range builders.Steps {
		err = e.Encode(step)
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML drops the existing steps; a loaded project is only ever
// given a fresh set of builders.
func (builders *Builders) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	builders.Steps = nil
	return d.Skip()
}

func NewFreeStyleProject() FreeStyleProject {
	return FreeStyleProject{
		SCM:     SCM{Class: "hudson.scm.NullSCM"},
		CanRoam: true,
	}
}

// ParseFreeStyleProject reads a job's config.xml. Build steps are not
// kept.
func ParseFreeStyleProject(config []byte) (FreeStyleProject, error) {
	var project FreeStyleProject

	// Jenkins declares XML 1.1, which encoding/xml refuses.
	config = bytes.TrimSpace(config)
	if bytes.HasPrefix(config, []byte("<?xml")) {
		_, rest, found := bytes.Cut(config, []byte("?>"))
		if found {
			config = rest
		}
	}

	err := xml.Unmarshal(config, &project)
	if err != nil {
		return FreeStyleProject{}, fmt.Errorf("not a free-style project: %w", err)
	}

	return project, nil
}

func (project *FreeStyleProject) AddBuilder(builder Builder) {
	project.Builders.Steps = append(project.Builders.Steps, builder)
}

func (project FreeStyleProject) MarshalConfig() ([]byte, error) {
	buf := bytes.NewBufferString(xml.Header)

	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")

	err := enc.Encode(project)
	if err != nil {
		return nil, err
	}

	err = enc.Flush()
	if err != nil {
		return nil, err
	}

	buf.WriteString("\n")

	return buf.Bytes(), nil
}

type ShellBuilder struct {
	XMLName xml.Name `xml:"hudson.tasks.Shell"`
	Command string   `xml:"command"`
}

func (ShellBuilder) BuilderClass() string {
	return "hudson.tasks.Shell"
}
