package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roivaz/hibob-mcp/internal/hibob"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Init binds environment variables, an optional .env file and the persistent
// flags of root. Flag names use dashes; keys use underscores.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, hibob.DefaultBaseURL)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
}

func APIToken() string     { return viper.GetString(KeyAPIToken) }
func BaseURL() string      { return viper.GetString(KeyBaseURL) }
func LogLevel() string     { return viper.GetString(KeyLogLevel) }
func Transport() string    { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string         { return viper.GetString(KeyHost) }
func Port() int            { return viper.GetInt(KeyPort) }
func EndpointPath() string { return viper.GetString(KeyEndpointPath) }

// HiBob returns the client configuration resolved at startup.
func HiBob() hibob.Config {
	return hibob.Config{BaseURL: BaseURL(), Token: APIToken()}
}
