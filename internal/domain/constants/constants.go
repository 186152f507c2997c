package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collections
const (
	CollectionLogs   = "logs"
	CollectionAlerts = "alerts"
)

const (
	AlertEmailSubject = "[RED ALARM] VPL Monitoring Alert"
	LogExportSubject  = "Log Export - %s"
	TerminalCleared   = "Terminal cleared"
)
