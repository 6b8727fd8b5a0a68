package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// RequestIDField is the structured field attached when the context carries a request id.
	RequestIDField = "request_id"
)
