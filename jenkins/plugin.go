package jenkins

type Plugin struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Version   string `json:"version"`
	Active    bool   `json:"active"`
	Enabled   bool   `json:"enabled"`
	HasUpdate bool   `json:"hasUpdate"`
}

type Plugins []Plugin

func (plugins Plugins) Lookup(shortName string) (Plugin, bool) {
	for _, p := range plugins {
		if p.ShortName == shortName {
			return p, true
		}
	}

	return Plugin{}, false
}

// Missing returns the names without an active, enabled plugin, in the
// order they were given.
func (plugins Plugins) Missing(shortNames ...string) []string {
	var missing []string
	for _, name := range shortNames {
		p, found := plugins.Lookup(name)
		if !found || !p.Active || !p.Enabled {
			missing = append(missing, name)
		}
	}

	return missing
}
