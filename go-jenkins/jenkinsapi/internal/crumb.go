package internal

import (
	"net/http"
	"time"

	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/patrickmn/go-cache"
)

const (
	crumbKey = "crumb"
	crumbTTL = 10 * time.Minute
)

// crumbs caches the CSRF crumb for the connection's session. A zero Crumb
// is cached when the issuer is disabled.
type crumbs struct {
	cache *cache.Cache
	fetch func() (jenkins.Crumb, error)
}

func newCrumbs(fetch func() (jenkins.Crumb, error)) *crumbs {
	return &crumbs{
		cache: cache.New(crumbTTL, 2*crumbTTL),
		fetch: fetch,
	}
}

func (c *crumbs) apply(req *http.Request) error {
	crumb, err := c.get()
	if err != nil {
		return err
	}

	if crumb.CrumbRequestField != "" {
		req.Header.Set(crumb.CrumbRequestField, crumb.Crumb)
	}

	return nil
}

func (c *crumbs) get() (jenkins.Crumb, error) {
	if cached, found := c.cache.Get(crumbKey); found {
		return cached.(jenkins.Crumb), nil
	}

	crumb, err := c.fetch()
	if err != nil {
		return jenkins.Crumb{}, err
	}

	c.cache.Set(crumbKey, crumb, cache.DefaultExpiration)

	return crumb, nil
}

func (c *crumbs) invalidate() {
	c.cache.Delete(crumbKey)
}
