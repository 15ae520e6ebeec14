package groovy

const (
	stringScriptSource       = "hudson.plugins.groovy.StringScriptSource"
	fileScriptSource         = "hudson.plugins.groovy.FileScriptSource"
	stringSystemScriptSource = "hudson.plugins.groovy.StringSystemScriptSource"
	fileSystemScriptSource   = "hudson.plugins.groovy.FileSystemScriptSource"
)

// ScriptSource is the <scriptSource> of a forked Groovy step. Exactly one
// of Command and ScriptFile is set, matching Class.
type ScriptSource struct {
	Class      string `xml:"class,attr"`
	Command    string `xml:"command,omitempty"`
	ScriptFile string `xml:"scriptFile,omitempty"`
}

// SecureGroovyScript is script-security's wrapper around system scripts.
type SecureGroovyScript struct {
	Plugin  string `xml:"plugin,attr,omitempty"`
	Script  string `xml:"script"`
	Sandbox bool   `xml:"sandbox"`
}

type SystemScriptSource struct {
	Class      string              `xml:"class,attr"`
	Script     *SecureGroovyScript `xml:"script,omitempty"`
	ScriptFile string              `xml:"scriptFile,omitempty"`
}
