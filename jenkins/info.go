package jenkins

const VersionHeader = "X-Jenkins"

type Info struct {
	Mode      string `json:"mode"`
	NodeName  string `json:"nodeName"`
	UseCrumbs bool   `json:"useCrumbs"`

	// Version is taken from the X-Jenkins response header.
	Version string `json:"-"`
}

type Crumb struct {
	Crumb             string `json:"crumb"`
	CrumbRequestField string `json:"crumbRequestField"`
}
