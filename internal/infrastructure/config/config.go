package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DATAGRID"

// Config holds settings shared by all datagrid commands
type Config struct {
	LogLevel slog.Level
	SeqURL   string // empty disables the Seq sink
	DataDir  string // base directory for relative LOAD paths
	Port     int
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		DataDir:  "databases",
		Port:     4444,
	}
}

// Load resolves the configuration for command from, in order of
// precedence, explicit flags, DATAGRID_* environment variables, the
// optional config file and the defaults.
func Load(command *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("log-level", def.LogLevel.String())
	v.SetDefault("seq-url", def.SeqURL)
	v.SetDefault("data-dir", def.DataDir)
	v.SetDefault("port", def.Port)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var bindErr error
	command.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr == nil {
			bindErr = v.BindPFlag(f.Name, f)
		}
	})
	if bindErr != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}

	return Config{
		LogLevel: level,
		SeqURL:   v.GetString("seq-url"),
		DataDir:  v.GetString("data-dir"),
		Port:     v.GetInt("port"),
	}, nil
}
