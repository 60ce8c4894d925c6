// Command satzbau declines German nouns and adjectives from the command
// line and serves the declension engine as a JSON REST API.
//
//	satzbau decline "der apfel, die äpfel, des apfels"
//	satzbau serve --lexicon testdata/lexicon.toml
package main

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	// conf is loaded before any subcommand runs.
	conf *Config

	levelMapping = map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
)

var rootCmd = &cobra.Command{
	Use:   "satzbau",
	Short: "German declension engine",
	Long: `satzbau generates declined German noun phrases from compact templates
such as "der apfel, die äpfel, des apfels".

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SATZBAU_* prefix, e.g. SATZBAU_LOG_LEVEL)
3. Config file given with --config (TOML)
4. Default values`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViper(configFile)
		if err != nil {
			return err
		}
		if err := bindFlags(v, cmd); err != nil {
			return err
		}
		c, err := loadConfig(v)
		if err != nil {
			return err
		}
		if err := setupLog(c.Log.Level, c.Log.JSON); err != nil {
			return err
		}
		conf = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "log JSON instead of console output")
	rootCmd.PersistentFlags().String("lexicon", "", "path to a TOML lexicon")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(declineCmd)
}

// bindFlags lets command line flags override config file and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"log.level": "log-level",
		"log.json":  "log-json",
		"lexicon":   "lexicon",
		"addr":      "addr",
		"watch":     "watch",
	}
	for key, name := range bindings {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

func setupLog(level string, json bool) error {
	lev, ok := levelMapping[level]
	if !ok {
		return errors.Newf("invalid logging level: %s", level)
	}
	zerolog.SetGlobalLevel(lev)
	if !json {
		log.Logger = log.Output(
			zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			},
		)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
