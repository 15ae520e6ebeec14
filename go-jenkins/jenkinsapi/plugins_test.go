package jenkinsapi_test

import (
	"net/http"

	"github.com/concourse/jenkinsflight/jenkins"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Plugins", func() {
	Describe("ListPlugins", func() {
		BeforeEach(func() {
			jenkinsServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/pluginManager/api/json", "depth=1"),
					ghttp.RespondWith(http.StatusOK, `{"plugins": [
						{"shortName": "groovy", "longName": "Groovy", "version": "457.v99900cb_85593", "active": true, "enabled": true},
						{"shortName": "script-security", "version": "1321.va_73c0795b_923", "active": true, "enabled": true}
					]}`),
				),
			)
		})

		It("returns the installed plugins", func() {
			plugins, err := client.ListPlugins()
			Expect(err).ToNot(HaveOccurred())
			Expect(plugins).To(HaveLen(2))

			groovy, found := plugins.Lookup("groovy")
			Expect(found).To(BeTrue())
			Expect(groovy).To(Equal(jenkins.Plugin{
				ShortName: "groovy",
				LongName:  "Groovy",
				Version:   "457.v99900cb_85593",
				Active:    true,
				Enabled:   true,
			}))
		})
	})

	Describe("InstallPlugins", func() {
		BeforeEach(func() {
			jenkinsServer.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/pluginManager/installNecessaryPlugins"),
					ghttp.VerifyContentType("text/xml"),
					ghttp.VerifyBody([]byte(`<jenkins><install plugin="groovy@latest"></install><install plugin="script-security@latest"></install></jenkins>`)),
					ghttp.RespondWith(http.StatusOK, ""),
				),
			)
		})

		It("asks for the latest versions", func() {
			Expect(client.InstallPlugins("groovy", "script-security")).To(Succeed())
		})

		It("does nothing when no plugins are named", func() {
			Expect(client.InstallPlugins()).To(Succeed())
			Expect(jenkinsServer.ReceivedRequests()).To(BeEmpty())
		})
	})
})
