package po_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi"
	"github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/jenkinsapifakes"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/po"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeTool struct {
	name   string
	script string
	marker string
	err    error
}

func (tool fakeTool) ToolName() string { return tool.name }

func (tool fakeTool) InstallScript() (string, string, error) {
	return tool.script, tool.marker, tool.err
}

var _ = Describe("Jenkins", func() {
	var (
		fakeClient *jenkinsapifakes.FakeClient
		logger     *lagertest.TestLogger

		j *po.Jenkins
	)

	BeforeEach(func() {
		fakeClient = new(jenkinsapifakes.FakeClient)
		logger = lagertest.NewTestLogger("test")

		j = po.NewJenkins(logger, fakeClient, po.Timeouts{
			Build:        time.Second,
			Poll:         time.Millisecond,
			PluginUpdate: 100 * time.Millisecond,
		})
	})

	It("fills in default timeouts", func() {
		defaulted := po.NewJenkins(logger, fakeClient, po.Timeouts{})
		Expect(defaulted.Timeouts()).To(Equal(po.DefaultTimeouts))
		Expect(defaulted.Client()).To(Equal(fakeClient))
	})

	It("reports the version", func() {
		fakeClient.GetInfoReturns(jenkins.Info{Version: "2.452.1"}, nil)

		version, err := j.Version()
		Expect(err).ToNot(HaveOccurred())
		Expect(version).To(Equal("2.452.1"))
	})

	Describe("the config page", func() {
		It("does nothing when nothing is being configured", func() {
			Expect(j.Save()).To(Succeed())
			Expect(fakeClient.RunScriptCallCount()).To(BeZero())
		})

		It("opens a page on demand", func() {
			page := j.ConfigPage()
			Expect(page).ToNot(BeNil())
			Expect(j.ConfigPage()).To(BeIdenticalTo(page))
		})

		Context("with tools added", func() {
			BeforeEach(func() {
				page := j.Configure()
				page.AddTool(fakeTool{name: "one", script: "install one", marker: "one done"})
				page.AddTool(fakeTool{name: "two", script: "install two", marker: "two done"})
			})

			It("runs each install script on save", func() {
				fakeClient.RunScriptReturnsOnCall(0, "one done\n", nil)
				fakeClient.RunScriptReturnsOnCall(1, "two done\n", nil)

				Expect(j.Save()).To(Succeed())

				Expect(fakeClient.RunScriptCallCount()).To(Equal(2))
				Expect(fakeClient.RunScriptArgsForCall(0)).To(Equal("install one"))
				Expect(fakeClient.RunScriptArgsForCall(1)).To(Equal("install two"))

				By("closing the page")
				Expect(j.Save()).To(Succeed())
				Expect(fakeClient.RunScriptCallCount()).To(Equal(2))
			})

			It("fails when a script does not print its marker", func() {
				fakeClient.RunScriptReturns("groovy.lang.MissingPropertyException: No such property", nil)

				err := j.Save()
				Expect(err).To(BeAssignableToTypeOf(jenkinsapi.ScriptError{}))
				Expect(err.Error()).To(ContainSubstring("MissingPropertyException"))
				Expect(fakeClient.RunScriptCallCount()).To(Equal(1))
			})

			It("fails when the script console errors", func() {
				fakeClient.RunScriptReturns("", jenkinsapi.ErrForbidden)
				Expect(j.Save()).To(Equal(jenkinsapi.ErrForbidden))
			})
		})

		It("fails when a tool cannot render its script", func() {
			j.Configure().AddTool(fakeTool{name: "broken", err: errors.New("nope")})
			Expect(j.Save()).To(MatchError("nope"))
			Expect(fakeClient.RunScriptCallCount()).To(BeZero())
		})
	})

	Describe("WithPlugins", func() {
		Context("when the plugins are active", func() {
			BeforeEach(func() {
				fakeClient.ListPluginsReturns(jenkins.Plugins{{ShortName: "groovy", Active: true, Enabled: true}}, nil)
			})

			It("does not install anything", func() {
				Expect(j.WithPlugins(context.Background(), true, "groovy")).To(Succeed())
				Expect(fakeClient.InstallPluginsCallCount()).To(BeZero())
			})
		})

		Context("when a plugin is missing", func() {
			BeforeEach(func() {
				fakeClient.ListPluginsReturns(jenkins.Plugins{}, nil)
			})

			It("reports it when not installing", func() {
				err := j.WithPlugins(context.Background(), false, "groovy")
				Expect(err).To(Equal(po.MissingPluginsError{Plugins: []string{"groovy"}}))
				Expect(err.Error()).To(Equal("missing plugins: groovy"))
			})

			It("installs it and waits for it to activate", func() {
				fakeClient.ListPluginsReturnsOnCall(0, jenkins.Plugins{}, nil)
				fakeClient.ListPluginsReturnsOnCall(1, jenkins.Plugins{{ShortName: "groovy", Active: false, Enabled: true}}, nil)
				fakeClient.ListPluginsReturnsOnCall(2, jenkins.Plugins{{ShortName: "groovy", Active: true, Enabled: true}}, nil)

				Expect(j.WithPlugins(context.Background(), true, "groovy")).To(Succeed())
				Expect(fakeClient.InstallPluginsCallCount()).To(Equal(1))
				Expect(fakeClient.InstallPluginsArgsForCall(0)).To(Equal([]string{"groovy"}))
				Expect(fakeClient.ListPluginsCallCount()).To(Equal(3))
			})

			It("gives up when it never activates", func() {
				err := j.WithPlugins(context.Background(), true, "groovy")
				Expect(err).To(Equal(po.MissingPluginsError{Plugins: []string{"groovy"}}))
			})

			It("fails when the install request fails", func() {
				fakeClient.InstallPluginsReturns(jenkinsapi.ErrUnauthorized)
				Expect(j.WithPlugins(context.Background(), true, "groovy")).To(Equal(jenkinsapi.ErrUnauthorized))
			})
		})
	})
})
