package jenkins

type BuildRef struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
}

type Job struct {
	Name            string `json:"name"`
	DisplayName     string `json:"displayName"`
	URL             string `json:"url"`
	Buildable       bool   `json:"buildable"`
	InQueue         bool   `json:"inQueue"`
	NextBuildNumber int    `json:"nextBuildNumber"`

	LastBuild          *BuildRef `json:"lastBuild"`
	LastCompletedBuild *BuildRef `json:"lastCompletedBuild"`
}
