package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Conf struct {
	LogLevel string  `mapstructure:"logLevel"`
	Logstash string  `mapstructure:"logstash"`
	Metrics  Metrics `mapstructure:"metrics"`
}

type Metrics struct {
	Address string `mapstructure:"address"`
}

var content = `
logLevel = "info"

# logstash endpoint, e.g. "127.0.0.1:5044"; leave empty to log to stdout
logstash = ""

[metrics]
address = "localhost:9092"
`

// Load reads the CLI configuration, writing the default file on first use.
func Load() Conf {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	dir := filepath.Join(home, ".satlayer")
	path := filepath.Join(dir, "bvs-crypto.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
		if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0o644); err != nil {
			panic(err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	c := Conf{LogLevel: "info"}
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return c
}
