package jenkins

type BuildResult string

const (
	ResultSuccess  BuildResult = "SUCCESS"
	ResultUnstable BuildResult = "UNSTABLE"
	ResultFailure  BuildResult = "FAILURE"
	ResultNotBuilt BuildResult = "NOT_BUILT"
	ResultAborted  BuildResult = "ABORTED"
)

// Completed is false while Jenkins still reports a null result.
func (r BuildResult) Completed() bool {
	return r != ""
}

func (r BuildResult) String() string {
	if r == "" {
		return "PENDING"
	}

	return string(r)
}

type Build struct {
	Number      int         `json:"number"`
	DisplayName string      `json:"displayName"`
	URL         string      `json:"url"`
	Building    bool        `json:"building"`
	Result      BuildResult `json:"result"`
	Duration    int64       `json:"duration"`
	Timestamp   int64       `json:"timestamp"`
}

type QueueItem struct {
	ID        int    `json:"id"`
	Blocked   bool   `json:"blocked"`
	Buildable bool   `json:"buildable"`
	Cancelled bool   `json:"cancelled"`
	Why       string `json:"why"`

	Executable *BuildRef `json:"executable"`
}
