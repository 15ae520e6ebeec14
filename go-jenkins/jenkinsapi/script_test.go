package jenkinsapi_test

import (
	"net/http"

	"github.com/concourse/jenkinsflight/jenkins"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Scripts and info", func() {
	Describe("RunScript", func() {
		BeforeEach(func() {
			jenkinsServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/scriptText"),
					ghttp.VerifyContentType("application/x-www-form-urlencoded"),
					ghttp.VerifyFormKV("script", "println 'hello'"),
					ghttp.RespondWith(http.StatusOK, "hello\n"),
				),
			)
		})

		It("returns the script output", func() {
			out, err := client.RunScript("println 'hello'")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("hello\n"))
		})
	})

	Describe("GetInfo", func() {
		BeforeEach(func() {
			jenkinsServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/api/json"),
					ghttp.RespondWith(http.StatusOK, `{"mode": "NORMAL", "nodeName": "", "useCrumbs": true}`, http.Header{"X-Jenkins": {"2.452.1"}}),
				),
			)
		})

		It("includes the version header", func() {
			info, err := client.GetInfo()
			Expect(err).ToNot(HaveOccurred())
			Expect(info).To(Equal(jenkins.Info{
				Mode:      "NORMAL",
				UseCrumbs: true,
				Version:   "2.452.1",
			}))
		})
	})
})
