package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type backend struct {
	BaseURL string `mapstructure:"base_url"`
}

type payment struct {
	BaseURL   string `mapstructure:"base_url"`
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

type brokerTLS struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

// broker is optional: with no seed brokers the storefront runs
// without the client-events stream.
type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	ClientEventsTopic  string    `mapstructure:"client_events_topic"`
	TLS                brokerTLS `mapstructure:"tls"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	StoragePath    string     `mapstructure:"storage_path"`
	Backend        backend    `mapstructure:"backend"`
	Payment        payment    `mapstructure:"payment"`
	Broker         broker     `mapstructure:"broker"`
}

func (c Config) EventsEnabled() bool {
	return len(c.Broker.SeedBrokers) != 0
}

func (c Config) BrokerTLSEnabled() bool {
	return c.Broker.TLS.CA != ""
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	StoragePath=%q

	Backend:
	BaseURL=%q

	Payment:
	BaseURL=%q
	KeyID=%q

	Broker:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	ClientEventsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.StoragePath,
		c.Backend.BaseURL,
		c.Payment.BaseURL,
		c.Payment.KeyID,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.ClientEventsTopic,
	)
}
