package jenkins_test

import (
	"encoding/xml"
	"strings"

	"github.com/concourse/jenkinsflight/jenkins"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type parsedProject struct {
	XMLName  xml.Name `xml:"project"`
	CanRoam  bool     `xml:"canRoam"`
	Disabled bool     `xml:"disabled"`
	SCM      struct {
		Class string `xml:"class,attr"`
	} `xml:"scm"`
	Builders struct {
		Shells []struct {
			Command string `xml:"command"`
		} `xml:"hudson.tasks.Shell"`
	} `xml:"builders"`
}

var _ = Describe("FreeStyleProject", func() {
	var project jenkins.FreeStyleProject

	BeforeEach(func() {
		project = jenkins.NewFreeStyleProject()
	})

	Describe("MarshalConfig", func() {
		It("renders an empty free-style project", func() {
			config, err := project.MarshalConfig()
			Expect(err).ToNot(HaveOccurred())

			Expect(strings.HasPrefix(string(config), xml.Header)).To(BeTrue())
			Expect(string(config)).To(ContainSubstring("<builders></builders>"))
			Expect(string(config)).To(ContainSubstring("<publishers></publishers>"))

			var parsed parsedProject
			Expect(xml.Unmarshal(config, &parsed)).To(Succeed())
			Expect(parsed.CanRoam).To(BeTrue())
			Expect(parsed.Disabled).To(BeFalse())
			Expect(parsed.SCM.Class).To(Equal("hudson.scm.NullSCM"))
			Expect(parsed.Builders.Shells).To(BeEmpty())
		})

		Context("with shell builders", func() {
			BeforeEach(func() {
				project.AddBuilder(jenkins.ShellBuilder{Command: "echo first"})
				project.AddBuilder(jenkins.ShellBuilder{Command: `echo println \'quoted\' > script.groovy`})
			})

			It("renders them in order with escaped commands", func() {
				config, err := project.MarshalConfig()
				Expect(err).ToNot(HaveOccurred())

				Expect(string(config)).To(ContainSubstring("&gt; script.groovy"))

				var parsed parsedProject
				Expect(xml.Unmarshal(config, &parsed)).To(Succeed())
				Expect(parsed.Builders.Shells).To(HaveLen(2))
				Expect(parsed.Builders.Shells[0].Command).To(Equal("echo first"))
				Expect(parsed.Builders.Shells[1].Command).To(Equal(`echo println \'quoted\' > script.groovy`))
			})
		})
	})

	Describe("ParseFreeStyleProject", func() {
		config := `<?xml version='1.1' encoding='UTF-8'?>
<project>
  <actions/>
  <description>nightly</description>
  <properties>
    <hudson.model.ParametersDefinitionProperty/>
  </properties>
  <scm class="hudson.plugins.git.GitSCM" plugin="git@5.2.1">
    <configVersion>2</configVersion>
  </scm>
  <disabled>true</disabled>
  <builders>
    <hudson.tasks.Shell>
      <command>echo old</command>
    </hudson.tasks.Shell>
  </builders>
</project>
`

		It("keeps everything but the build steps", func() {
			parsed, err := jenkins.ParseFreeStyleProject([]byte(config))
			Expect(err).ToNot(HaveOccurred())

			Expect(parsed.Description).To(Equal("nightly"))
			Expect(parsed.Disabled).To(BeTrue())
			Expect(parsed.SCM.Class).To(Equal("hudson.plugins.git.GitSCM"))
			Expect(parsed.Builders.Steps).To(BeEmpty())

			parsed.AddBuilder(jenkins.ShellBuilder{Command: "echo new"})

			saved, err := parsed.MarshalConfig()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(saved)).To(ContainSubstring("<actions></actions>"))
			Expect(string(saved)).To(ContainSubstring("<hudson.model.ParametersDefinitionProperty/>"))
			Expect(string(saved)).To(ContainSubstring(`plugin="git@5.2.1"`))
			Expect(string(saved)).To(ContainSubstring("<configVersion>2</configVersion>"))
			Expect(string(saved)).To(ContainSubstring("echo new"))
			Expect(string(saved)).ToNot(ContainSubstring("echo old"))
		})

		It("rejects other job types", func() {
			_, err := jenkins.ParseFreeStyleProject([]byte(`<flow-definition plugin="workflow-job"/>`))
			Expect(err).To(MatchError(ContainSubstring("not a free-style project")))
		})
	})
})

var _ = Describe("Plugins", func() {
	plugins := jenkins.Plugins{
		{ShortName: "groovy", Active: true, Enabled: true},
		{ShortName: "git", Active: false, Enabled: true},
		{ShortName: "ant", Active: true, Enabled: false},
	}

	It("looks plugins up by short name", func() {
		p, found := plugins.Lookup("groovy")
		Expect(found).To(BeTrue())
		Expect(p.ShortName).To(Equal("groovy"))

		_, found = plugins.Lookup("nope")
		Expect(found).To(BeFalse())
	})

	It("treats inactive, disabled and absent plugins as missing", func() {
		Expect(plugins.Missing("groovy", "git", "ant", "nope")).To(Equal([]string{"git", "ant", "nope"}))
		Expect(plugins.Missing("groovy")).To(BeEmpty())
	})
})

var _ = Describe("BuildResult", func() {
	It("is completed once Jenkins reports a result", func() {
		Expect(jenkins.BuildResult("").Completed()).To(BeFalse())
		Expect(jenkins.BuildResult("").String()).To(Equal("PENDING"))
		Expect(jenkins.ResultFailure.Completed()).To(BeTrue())
		Expect(jenkins.ResultSuccess.String()).To(Equal("SUCCESS"))
	})
})
