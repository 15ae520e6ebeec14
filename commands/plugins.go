package commands

import (
	"context"
	"sort"
	"strconv"

	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/concourse/jenkinsflight/ui"
	"github.com/fatih/color"
	"github.com/gobwas/glob"
)

type PluginsCommand struct {
	Plugins []string `short:"p" long:"plugin" description:"Plugin that must be active (can be specified multiple times)"`
	Install bool     `long:"install"          description:"Install the given plugins if they are missing"`
	Filter  string   `long:"filter"           description:"Only list plugins whose short name matches the glob"`
}

func (command *PluginsCommand) Execute([]string) error {
	filter := glob.MustCompile("*")
	if command.Filter != "" {
		var err error
		filter, err = glob.Compile(command.Filter)
		if err != nil {
			return err
		}
	}

	target, err := Jenkinsflight.target()
	if err != nil {
		return err
	}

	if len(command.Plugins) > 0 {
		err = target.jenkins.WithPlugins(context.Background(), command.Install, command.Plugins...)
		if err != nil {
			return err
		}
	}

	plugins, err := target.jenkins.Client().ListPlugins()
	if err != nil {
		return err
	}

	if len(command.Plugins) > 0 {
		var wanted jenkins.Plugins
		for _, name := range command.Plugins {
			plugin, found := plugins.Lookup(name)
			if !found {
				plugin.ShortName = name
			}

			wanted = append(wanted, plugin)
		}

		plugins = wanted
	}

	sort.Slice(plugins, func(i, j int) bool {
		return plugins[i].ShortName < plugins[j].ShortName
	})

	table := ui.Table{
		Headers: ui.TableRow{
			{Contents: "name", Color: color.New(color.Bold)},
			{Contents: "version", Color: color.New(color.Bold)},
			{Contents: "active", Color: color.New(color.Bold)},
			{Contents: "update", Color: color.New(color.Bold)},
		},
	}

	for _, plugin := range plugins {
		if !filter.Match(plugin.ShortName) {
			continue
		}

		active := ui.TableCell{Contents: "no", Color: ui.FailedColor}
		if plugin.Active && plugin.Enabled {
			active = ui.TableCell{Contents: "yes", Color: ui.SucceededColor}
		}

		table.Data = append(table.Data, ui.TableRow{
			{Contents: plugin.ShortName},
			{Contents: plugin.Version},
			active,
			{Contents: strconv.FormatBool(plugin.HasUpdate)},
		})
	}

	return table.Render(Jenkinsflight.stdout(), Jenkinsflight.PrintTableHeaders)
}
