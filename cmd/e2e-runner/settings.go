package main

import (
	"strings"

	"github.com/spf13/viper"
)

// Settings carries the CLI-level configuration: origins plus log level.
// Test timeouts and credentials stay in internal/config, which the suites
// read directly.
type Settings struct {
	BaseURL  string
	APIURL   string
	LogLevel string
}

// loadSettings resolves CLI settings from flags, environment, and
// defaults, in that order of precedence.
func loadSettings(flagBaseURL, flagAPIURL string) Settings {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("base.url", "http://localhost:3000")
	v.SetDefault("api.url", "")
	v.SetDefault("log.level", "info")

	s := Settings{
		BaseURL:  v.GetString("base.url"),
		APIURL:   v.GetString("api.url"),
		LogLevel: v.GetString("log.level"),
	}
	if flagBaseURL != "" {
		s.BaseURL = flagBaseURL
	}
	if flagAPIURL != "" {
		s.APIURL = flagAPIURL
	}
	if s.APIURL == "" {
		s.APIURL = s.BaseURL
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	return s
}
