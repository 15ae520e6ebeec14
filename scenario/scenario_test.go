package scenario_test

import (
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/scenario"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	It("loads a scenario file", func() {
		loaded, err := scenario.Load("testdata/use_custom_groovy_version.yml")
		Expect(err).ToNot(HaveOccurred())

		Expect(loaded).To(Equal(scenario.Scenario{
			Job:     "my_job",
			Plugins: []string{"groovy"},
			Tools:   []scenario.Tool{{Name: "groovy-2.2.1", Version: "Groovy 2.2.1"}},
			Steps: []scenario.Step{
				{Groovy: &scenario.GroovyStep{
					Version: "groovy-2.2.1",
					Script:  `println "version: " + GroovySystem.getVersion()`,
				}},
			},
			Expect: scenario.Expectation{
				Result: jenkins.ResultSuccess,
				Output: []string{"version: 2.2.1"},
			},
		}))
	})

	It("fails on missing files", func() {
		_, err := scenario.Load("testdata/nope.yml")
		Expect(err).To(HaveOccurred())
	})

	It("expects success by default", func() {
		loaded, err := scenario.Parse([]byte("job: my_job\nsteps:\n- shell: echo hi\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(loaded.Expect.Result).To(Equal(jenkins.ResultSuccess))
	})

	It("rejects unknown fields", func() {
		_, err := scenario.Parse([]byte("job: my_job\nstages: []\n"))
		Expect(err).To(MatchError(ContainSubstring("malformed scenario")))
	})

	It("reports every problem at once", func() {
		_, err := scenario.Parse([]byte(`
tools:
- name: groovy-2.2.1
steps:
- shell: echo hi
  groovy: {script: "println 1"}
- groovy: {script: "println 1", file: script.groovy, sandbox: true}
- system_groovy: {version: groovy-2.2.1}
expect:
  result: GREEN
`))
		Expect(err).To(HaveOccurred())

		message := err.Error()
		Expect(message).To(ContainSubstring("job name is required"))
		Expect(message).To(ContainSubstring("tools[0]: version is required"))
		Expect(message).To(ContainSubstring("steps[0]: exactly one of shell, groovy or system_groovy must be set"))
		Expect(message).To(ContainSubstring("steps[1].groovy: exactly one of script or file must be set"))
		Expect(message).To(ContainSubstring("steps[1].groovy: sandbox only applies to system_groovy"))
		Expect(message).To(ContainSubstring("steps[2].system_groovy: exactly one of script or file must be set"))
		Expect(message).To(ContainSubstring("steps[2].system_groovy: version only applies to groovy"))
		Expect(message).To(ContainSubstring(`unknown expected result "GREEN"`))
	})

	It("rejects the sandbox for system scripts read from a file", func() {
		_, err := scenario.Parse([]byte(`
job: my_job
steps:
- system_groovy: {file: script.groovy, sandbox: true}
`))
		Expect(err).To(MatchError(ContainSubstring("steps[0].system_groovy: sandbox only applies to inline scripts")))
	})

	It("requires steps", func() {
		_, err := scenario.Parse([]byte("job: my_job\n"))
		Expect(err).To(MatchError(ContainSubstring("at least one step is required")))
	})
})
