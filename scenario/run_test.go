package scenario_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/jenkinsapifakes"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/po"
	"github.com/concourse/jenkinsflight/scenario"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		fakeClient *jenkinsapifakes.FakeClient
		fakeClock  *fakeclock.FakeClock
		runner     scenario.Runner
	)

	BeforeEach(func() {
		fakeClient = new(jenkinsapifakes.FakeClient)
		logger := lagertest.NewTestLogger("test")
		fakeClock = fakeclock.NewFakeClock(time.Unix(123, 0))

		runner = scenario.Runner{
			Logger: logger,
			Clock:  fakeClock,
			Jenkins: po.NewJenkins(logger, fakeClient, po.Timeouts{
				Build:        100 * time.Millisecond,
				Poll:         time.Millisecond,
				PluginUpdate: 100 * time.Millisecond,
			}),
		}

		fakeClient.ListPluginsReturns(jenkins.Plugins{{ShortName: "groovy", Active: true, Enabled: true}}, nil)
		fakeClient.JobReturns(jenkins.Job{Name: "my_job"}, true, nil)
		fakeClient.JobConfigReturns([]byte("<project></project>"), true, nil)
		fakeClient.SaveJobConfigReturns(true, nil)
		fakeClient.TriggerBuildReturns(9, nil)
		fakeClient.QueueItemReturns(jenkins.QueueItem{ID: 9, Executable: &jenkins.BuildRef{Number: 1}}, true, nil)
		fakeClient.BuildReturns(jenkins.Build{Number: 1, Result: jenkins.ResultSuccess}, true, nil)
		fakeClient.RunScriptReturns("installed groovy groovy-2.2.1\n", nil)
	})

	Context("with the custom version scenario", func() {
		var loaded scenario.Scenario

		BeforeEach(func() {
			var err error
			loaded, err = scenario.Load("testdata/use_custom_groovy_version.yml")
			Expect(err).ToNot(HaveOccurred())
		})

		It("installs the tool and builds the job", func() {
			fakeClient.ConsoleTextReturns("version: 2.2.1\nFinished: SUCCESS\n", true, nil)

			fakeClient.BuildStub = func(string, int) (jenkins.Build, bool, error) {
				fakeClock.Increment(42 * time.Second)
				return jenkins.Build{Number: 1, Result: jenkins.ResultSuccess}, true, nil
			}

			report, err := runner.Run(context.Background(), loaded)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Passed()).To(BeTrue())
			Expect(report.Number).To(Equal(1))
			Expect(report.Duration).To(Equal(42 * time.Second))
			Expect(report.Result).To(Equal(jenkins.ResultSuccess))
			Expect(report.Console).To(ContainSubstring("version: 2.2.1"))

			By("installing the tool")
			Expect(fakeClient.RunScriptCallCount()).To(Equal(1))
			Expect(fakeClient.RunScriptArgsForCall(0)).To(ContainSubstring("'2.2.1'"))

			By("recreating the job")
			Expect(fakeClient.DeleteJobCallCount()).To(Equal(1))
			Expect(fakeClient.CreateJobCallCount()).To(Equal(1))

			By("saving the groovy step")
			_, config := fakeClient.SaveJobConfigArgsForCall(0)
			Expect(string(config)).To(ContainSubstring("<groovyName>groovy-2.2.1</groovyName>"))
		})

		It("collects unmet expectations", func() {
			fakeClient.BuildReturns(jenkins.Build{Number: 1, Result: jenkins.ResultFailure}, true, nil)
			fakeClient.ConsoleTextReturns("version: 1.8.9\n", true, nil)

			report, err := runner.Run(context.Background(), loaded)
			Expect(err).ToNot(HaveOccurred())
			Expect(report.Passed()).To(BeFalse())
			Expect(report.Failures).To(Equal([]string{
				"expected SUCCESS, got FAILURE",
				`console output does not contain "version: 2.2.1"`,
			}))
		})

		It("stops when the tool does not install", func() {
			fakeClient.RunScriptReturns("boom", nil)

			_, err := runner.Run(context.Background(), loaded)
			Expect(err).To(BeAssignableToTypeOf(jenkinsapi.ScriptError{}))
			Expect(fakeClient.CreateJobCallCount()).To(BeZero())
		})
	})

	It("stops when plugins are missing", func() {
		fakeClient.ListPluginsReturns(jenkins.Plugins{}, nil)

		loaded, err := scenario.Load("testdata/run_system_groovy.yml")
		Expect(err).ToNot(HaveOccurred())

		_, err = runner.Run(context.Background(), loaded)
		Expect(err).To(Equal(po.MissingPluginsError{Plugins: []string{"groovy"}}))
		Expect(fakeClient.InstallPluginsCallCount()).To(BeZero())
	})

	It("builds shell and system groovy steps in order", func() {
		fakeClient.ConsoleTextReturns("running groovy file\n", true, nil)

		loaded, err := scenario.Parse([]byte(`
job: my_job
steps:
- shell: echo println \'running groovy file\' > script.groovy
- system_groovy: {file: script.groovy}
expect:
  output: [running groovy file]
`))
		Expect(err).ToNot(HaveOccurred())

		report, err := runner.Run(context.Background(), loaded)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Passed()).To(BeTrue())

		Expect(fakeClient.ListPluginsCallCount()).To(BeZero())
		Expect(fakeClient.RunScriptCallCount()).To(BeZero())

		_, config := fakeClient.SaveJobConfigArgsForCall(0)
		Expect(string(config)).To(MatchRegexp(`(?s)hudson.tasks.Shell.*hudson.plugins.groovy.SystemGroovy.*<scriptFile>script.groovy</scriptFile>`))
	})

	It("reports the build number when waiting fails", func() {
		fakeClient.BuildReturns(jenkins.Build{Number: 1, Building: true}, true, nil)

		loaded, err := scenario.Parse([]byte("job: my_job\nsteps:\n- shell: sleep 600\n"))
		Expect(err).ToNot(HaveOccurred())

		report, err := runner.Run(context.Background(), loaded)
		Expect(err).To(MatchError(po.ErrTimedOut))
		Expect(report.Number).To(Equal(1))
	})
})
