package internal_test

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/concourse/jenkinsflight/jenkins"
	. "github.com/concourse/jenkinsflight/go-jenkins/jenkinsapi/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/tedsuo/rata"
)

var _ = Describe("Connection", func() {
	var (
		jenkinsServer *ghttp.Server
		logger        *lagertest.TestLogger

		auth       BasicAuth
		connection Connection
	)

	BeforeEach(func() {
		jenkinsServer = ghttp.NewServer()
		logger = lagertest.NewTestLogger("test")
		auth = BasicAuth{}
	})

	JustBeforeEach(func() {
		connection = NewConnection(logger, jenkinsServer.URL()+"/", nil, auth, true)
	})

	AfterEach(func() {
		jenkinsServer.Close()
	})

	It("trims the trailing slash from the URL", func() {
		Expect(connection.URL()).To(Equal(jenkinsServer.URL()))
		Expect(connection.HTTPClient()).To(Equal(http.DefaultClient))
	})

	Describe("GET requests", func() {
		Context("when credentials are configured", func() {
			BeforeEach(func() {
				auth = BasicAuth{Username: "admin", Token: "some-token"}

				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/job/my_job/api/json", "tree=name"),
						ghttp.VerifyBasicAuth("admin", "some-token"),
						ghttp.RespondWithJSONEncoded(http.StatusOK, jenkins.Job{Name: "my_job"}, http.Header{"X-Jenkins": {"2.440"}}),
					),
				)
			})

			It("sends basic auth and decodes JSON", func() {
				var job jenkins.Job
				headers := http.Header{}

				err := connection.Send(Request{
					RequestName: jenkins.GetJob,
					Params:      rata.Params{"job_name": "my_job"},
					Query:       map[string][]string{"tree": {"name"}},
				}, &Response{
					Result:  &job,
					Headers: &headers,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(job.Name).To(Equal("my_job"))
				Expect(headers.Get("X-Jenkins")).To(Equal("2.440"))
			})

			It("does not fetch a crumb", func() {
				Expect(connection.Send(Request{
					RequestName: jenkins.GetJob,
					Params:      rata.Params{"job_name": "my_job"},
					Query:       map[string][]string{"tree": {"name"}},
				}, nil)).To(Succeed())

				Expect(jenkinsServer.ReceivedRequests()).To(HaveLen(1))
			})
		})

		Context("when the result is a string", func() {
			BeforeEach(func() {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/job/my_job/1/consoleText"),
						ghttp.RespondWith(http.StatusOK, "Started by user admin\nFinished: SUCCESS\n"),
					),
				)
			})

			It("returns the raw body", func() {
				var text string
				err := connection.Send(Request{
					RequestName: jenkins.GetConsoleText,
					Params:      rata.Params{"job_name": "my_job", "build_number": "1"},
				}, &Response{Result: &text})
				Expect(err).ToNot(HaveOccurred())
				Expect(text).To(Equal("Started by user admin\nFinished: SUCCESS\n"))
			})
		})

		DescribeTable("status codes",
			func(status int, check func(error)) {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/api/json"),
						ghttp.RespondWith(status, "problem"),
					),
				)

				check(connection.Send(Request{RequestName: jenkins.GetInfo}, nil))
			},
			Entry("401", http.StatusUnauthorized, func(err error) {
				Expect(err).To(Equal(ErrUnauthorized))
			}),
			Entry("403", http.StatusForbidden, func(err error) {
				Expect(err).To(Equal(ErrForbidden))
			}),
			Entry("404", http.StatusNotFound, func(err error) {
				Expect(err).To(BeAssignableToTypeOf(ResourceNotFoundError{}))
			}),
			Entry("500", http.StatusInternalServerError, func(err error) {
				Expect(err).To(BeAssignableToTypeOf(UnexpectedResponseError{}))
				unexpected := err.(UnexpectedResponseError)
				Expect(unexpected.StatusCode).To(Equal(http.StatusInternalServerError))
				Expect(unexpected.Body).To(Equal("problem"))
				Expect(err.Error()).To(ContainSubstring("unexpected response code: 500"))
			}),
		)
	})

	Describe("POST requests", func() {
		Context("when the crumb issuer is enabled", func() {
			BeforeEach(func() {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/crumbIssuer/api/json"),
						ghttp.RespondWithJSONEncoded(http.StatusOK, jenkins.Crumb{
							Crumb:             "some-crumb",
							CrumbRequestField: "Jenkins-Crumb",
						}),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/createItem", "name=my_job"),
						ghttp.VerifyHeaderKV("Jenkins-Crumb", "some-crumb"),
						ghttp.VerifyContentType("application/xml"),
						ghttp.VerifyBody([]byte("<project/>")),
						ghttp.RespondWith(http.StatusOK, ""),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/job/my_job/build"),
						ghttp.VerifyHeaderKV("Jenkins-Crumb", "some-crumb"),
						ghttp.RespondWith(http.StatusCreated, ""),
					),
				)
			})

			It("sends the crumb and reuses it", func() {
				err := connection.Send(Request{
					RequestName: jenkins.CreateJob,
					Query:       map[string][]string{"name": {"my_job"}},
					Header:      http.Header{"Content-Type": {"application/xml"}},
					Body:        []byte("<project/>"),
				}, nil)
				Expect(err).ToNot(HaveOccurred())

				err = connection.Send(Request{
					RequestName: jenkins.TriggerBuild,
					Params:      rata.Params{"job_name": "my_job"},
				}, nil)
				Expect(err).ToNot(HaveOccurred())

				Expect(jenkinsServer.ReceivedRequests()).To(HaveLen(3))
			})
		})

		Context("when the crumb issuer is disabled", func() {
			BeforeEach(func() {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/crumbIssuer/api/json"),
						ghttp.RespondWith(http.StatusNotFound, ""),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/job/my_job/doDelete"),
						func(w http.ResponseWriter, r *http.Request) {
							Expect(r.Header).ToNot(HaveKey("Jenkins-Crumb"))
						},
						ghttp.RespondWith(http.StatusOK, ""),
					),
				)
			})

			It("sends the request without a crumb", func() {
				err := connection.Send(Request{
					RequestName: jenkins.DeleteJob,
					Params:      rata.Params{"job_name": "my_job"},
				}, nil)
				Expect(err).ToNot(HaveOccurred())
			})
		})

		Context("when the crumb is rejected", func() {
			BeforeEach(func() {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/crumbIssuer/api/json"),
						ghttp.RespondWithJSONEncoded(http.StatusOK, jenkins.Crumb{Crumb: "stale", CrumbRequestField: "Jenkins-Crumb"}),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/scriptText"),
						ghttp.VerifyHeaderKV("Jenkins-Crumb", "stale"),
						ghttp.RespondWith(http.StatusForbidden, "No valid crumb was included in the request"),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/crumbIssuer/api/json"),
						ghttp.RespondWithJSONEncoded(http.StatusOK, jenkins.Crumb{Crumb: "fresh", CrumbRequestField: "Jenkins-Crumb"}),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/scriptText"),
						ghttp.VerifyHeaderKV("Jenkins-Crumb", "fresh"),
						ghttp.RespondWith(http.StatusOK, "ok"),
					),
				)
			})

			It("fetches a new crumb and retries once", func() {
				var out string
				err := connection.Send(Request{
					RequestName: jenkins.RunScript,
					Body:        []byte("script=println"),
				}, &Response{Result: &out})
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal("ok"))

				Expect(logger.LogMessages()).To(ContainElement("test.connection.crumb-rejected"))
			})
		})

		Context("when the request is forbidden for other reasons", func() {
			BeforeEach(func() {
				jenkinsServer.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/crumbIssuer/api/json"),
						ghttp.RespondWith(http.StatusNotFound, ""),
					),
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/scriptText"),
						ghttp.RespondWith(http.StatusForbidden, "admin is missing the Overall/Administer permission"),
					),
				)
			})

			It("returns ErrForbidden without retrying", func() {
				err := connection.Send(Request{RequestName: jenkins.RunScript}, nil)
				Expect(err).To(Equal(ErrForbidden))
				Expect(jenkinsServer.ReceivedRequests()).To(HaveLen(2))
			})
		})
	})
})
