package config

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/concourse/jenkinsflight/po"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-retryablehttp"
)

type Config struct {
	URL      string `env:"JENKINS_URL,required"`
	Username string `env:"JENKINS_USERNAME"`
	APIToken string `env:"JENKINS_API_TOKEN"`
	Insecure bool   `env:"JENKINS_INSECURE" envDefault:"false"`

	BuildTimeout  time.Duration `env:"JENKINS_BUILD_TIMEOUT" envDefault:"5m"`
	PollInterval  time.Duration `env:"JENKINS_POLL_INTERVAL" envDefault:"1s"`
	PluginTimeout time.Duration `env:"JENKINS_PLUGIN_TIMEOUT" envDefault:"5m"`

	HTTPRetryMax   int  `env:"JENKINS_HTTP_RETRY_MAX" envDefault:"4"`
	InstallPlugins bool `env:"JENKINS_INSTALL_PLUGINS" envDefault:"false"`
	Trace          bool `env:"JENKINS_TRACE" envDefault:"false"`
}

func Load() (Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith parses with the given options, e.g. a fixed Environment in tests.
func LoadWith(opts env.Options) (Config, error) {
	var config Config

	err := env.ParseWithOptions(&config, opts)
	if err != nil {
		return Config{}, err
	}

	err = config.Validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func (config Config) Validate() error {
	var errs *multierror.Error

	u, err := url.Parse(config.URL)
	switch {
	case config.URL == "":
		errs = multierror.Append(errs, errors.New("Missing Jenkins URL"))
	case err != nil:
		errs = multierror.Append(errs, fmt.Errorf("Invalid Jenkins URL: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = multierror.Append(errs, fmt.Errorf("Jenkins URL must be http or https, got %q", config.URL))
	case u.Host == "":
		errs = multierror.Append(errs, fmt.Errorf("Jenkins URL has no host: %q", config.URL))
	}

	if (config.Username == "") != (config.APIToken == "") {
		errs = multierror.Append(errs, errors.New("Username and API token must be given together"))
	}

	if config.BuildTimeout <= 0 {
		errs = multierror.Append(errs, errors.New("Build timeout must be positive"))
	}

	if config.PollInterval <= 0 {
		errs = multierror.Append(errs, errors.New("Poll interval must be positive"))
	}

	if config.PluginTimeout <= 0 {
		errs = multierror.Append(errs, errors.New("Plugin timeout must be positive"))
	}

	if config.HTTPRetryMax < 0 {
		errs = multierror.Append(errs, errors.New("HTTP retry max must not be negative"))
	}

	return errs.ErrorOrNil()
}

// HTTPClient retries transient failures and keeps a cookie jar, since
// Jenkins binds crumbs to the session that fetched them.
func (config Config) HTTPClient() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	retrying := retryablehttp.NewClient()
	retrying.RetryMax = config.HTTPRetryMax
	retrying.RetryWaitMin = 500 * time.Millisecond
	retrying.RetryWaitMax = 5 * time.Second
	retrying.Logger = nil
	retrying.CheckRetry = retryPolicy

	if config.Insecure {
		transport := retrying.HTTPClient.Transport.(*http.Transport)
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client := retrying.StandardClient()
	client.Jar = jar

	return client, nil
}

func (config Config) Timeouts() po.Timeouts {
	return po.Timeouts{
		Build:        config.BuildTimeout,
		Poll:         config.PollInterval,
		PluginUpdate: config.PluginTimeout,
	}
}

// retryPolicy only retries requests that are safe to send twice. Anything
// else, such as triggering a build, is retried only when the connection was
// never made.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	var method string
	var urlErr *url.Error
	switch {
	case resp != nil && resp.Request != nil:
		method = resp.Request.Method
	case errors.As(err, &urlErr):
		method = urlErr.Op
	}

	if !idempotent(method) && !dialFailed(err) {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func idempotent(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func dialFailed(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
