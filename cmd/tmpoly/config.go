package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mizrak/go.tmpoly/tmpolyio"
)

// cfg is the process-wide configuration store, layering flags over a
// config file over defaults the way viper does; individual commands read
// from it rather than closing over their own *cobra.Command flag set.
var cfg = viper.New()

func init() {
	cfg.SetEnvPrefix("TMPOLY")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
}

// bindPersistentFlags registers the flags shared by every subcommand and
// binds them into cfg, so a value may come from the flag, the environment,
// or the config file, in that order of precedence.
func bindPersistentFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("config", "", "path to a YAML/TOML/JSON config file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	cfg.BindPFlag("config", flags.Lookup("config"))
	cfg.BindPFlag("log-level", flags.Lookup("log-level"))
}

// logger builds a logger at the level configured by --log-level/TMPOLY_LOG_LEVEL.
func logger() *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	return tmpolyio.NewLogger(level)
}

// loadConfigFile reads the file named by --config into cfg, if one was given.
func loadConfigFile() error {
	path := cfg.GetString("config")
	if path == "" {
		return nil
	}
	cfg.SetConfigFile(path)
	return cfg.ReadInConfig()
}
