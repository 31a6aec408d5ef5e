package main

// Config loading for the rdfopts CLI.

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rdfopts "github.com/goliatone/go-rdf-options"
)

const (
	configFileName = ".rdfopts"
	configFileType = "yaml"
	envPrefix      = "RDFOPTS"

	cfgKeyEngine = "engine"
	cfgKeyOutput = "output"
	cfgKeyArea   = "area"

	defaultEngine = rdfopts.EngineExpr
	defaultOutput = "text"
)

// loadConfig reads .rdfopts.yaml from the working directory, or the file
// named by --config, and layers RDFOPTS_* environment variables on top.
// A missing default config file is not an error.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.cfg
	v.SetDefault(cfgKeyEngine, defaultEngine)
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyArea, "")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flag := cmd.Flags().Lookup("area"); flag != nil {
		_ = v.BindPFlag(cfgKeyArea, flag)
	}

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return systemError("read config: %w", err)
	}
	return nil
}

func (a *app) output() (string, error) {
	output := strings.ToLower(strings.TrimSpace(a.cfg.GetString(cfgKeyOutput)))
	switch output {
	case "", "text":
		return "text", nil
	case "json":
		return "json", nil
	default:
		return "", userError("unknown output format %q (valid: text, json)", output)
	}
}

// area resolves --area (or the configured default). An empty value means
// every area unless required is set.
func (a *app) area(required bool) (rdfopts.Area, error) {
	value := strings.TrimSpace(a.cfg.GetString(cfgKeyArea))
	if value == "" {
		if required {
			return rdfopts.AreaNone, userError("--area is required (valid: parser, serializer, turtle-writer, xml-writer, xml-reader)")
		}
		return rdfopts.AreaNone, nil
	}
	area, err := rdfopts.ParseArea(value)
	if err != nil {
		return rdfopts.AreaNone, userError("%w", err)
	}
	return area, nil
}

func (a *app) engine() string {
	return a.cfg.GetString(cfgKeyEngine)
}
