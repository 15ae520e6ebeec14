package jenkins

import "github.com/tedsuo/rata"

const (
	GetInfo        = "GetInfo"
	GetCrumb       = "GetCrumb"
	CreateJob      = "CreateJob"
	GetJob         = "GetJob"
	GetJobConfig   = "GetJobConfig"
	SaveJobConfig  = "SaveJobConfig"
	DeleteJob      = "DeleteJob"
	TriggerBuild   = "TriggerBuild"
	GetQueueItem   = "GetQueueItem"
	GetBuild       = "GetBuild"
	GetConsoleText = "GetConsoleText"
	ListPlugins    = "ListPlugins"
	InstallPlugins = "InstallPlugins"
	RunScript      = "RunScript"
)

var Routes = rata.Routes{
	{Path: "/api/json", Method: "GET", Name: GetInfo},
	{Path: "/crumbIssuer/api/json", Method: "GET", Name: GetCrumb},

	{Path: "/createItem", Method: "POST", Name: CreateJob},
	{Path: "/job/:job_name/api/json", Method: "GET", Name: GetJob},
	{Path: "/job/:job_name/config.xml", Method: "GET", Name: GetJobConfig},
	{Path: "/job/:job_name/config.xml", Method: "POST", Name: SaveJobConfig},
	{Path: "/job/:job_name/doDelete", Method: "POST", Name: DeleteJob},

	{Path: "/job/:job_name/build", Method: "POST", Name: TriggerBuild},
	{Path: "/queue/item/:queue_id/api/json", Method: "GET", Name: GetQueueItem},
	{Path: "/job/:job_name/:build_number/api/json", Method: "GET", Name: GetBuild},
	{Path: "/job/:job_name/:build_number/consoleText", Method: "GET", Name: GetConsoleText},

	{Path: "/pluginManager/api/json", Method: "GET", Name: ListPlugins},
	{Path: "/pluginManager/installNecessaryPlugins", Method: "POST", Name: InstallPlugins},

	{Path: "/scriptText", Method: "POST", Name: RunScript},
}
