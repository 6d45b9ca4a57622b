package config

const (
	KeyAccessKey    = "biogrid_access_key"
	KeyBaseURL      = "biogrid_base_url"
	KeyTimeout      = "biogrid_timeout"
	KeyLogLevel     = "log_level"
	KeyTransport    = "transport"
	KeyHost         = "host"
	KeyPort         = "port"
	KeyEndpointPath = "endpoint_path"
)
