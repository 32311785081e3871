package config

const (
	KeyAPIToken     = "hibob_api_token"
	KeyBaseURL      = "hibob_base_url"
	KeyLogLevel     = "log_level"
	KeyTransport    = "transport"
	KeyHost         = "host"
	KeyPort         = "port"
	KeyEndpointPath = "endpoint_path"
)
