// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/affilscan/internal/secrets"
	"github.com/pdiddy/affilscan/pkg/types"
)

// setDefaults registers every config key with its default so that
// AutomaticEnv can resolve AFFILSCAN_* variables during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("entrez.base_url", d.Entrez.BaseURL)
	v.SetDefault("entrez.database", d.Entrez.Database)
	v.SetDefault("entrez.max_results", d.Entrez.MaxResults)
	v.SetDefault("entrez.timeout", d.Entrez.Timeout)
	v.SetDefault("entrez.user_agent", "affilscan/"+version)
	v.SetDefault("entrez.contact", "")
	v.SetDefault("entrez.tool", d.Entrez.Tool)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", "")
	v.SetDefault("output.file", "")
	v.SetDefault("output.sqlite_path", "")
	v.SetDefault("rules_file", "")
	v.SetDefault("mode", d.Mode)
	v.SetDefault("debug", false)
}

// loadConfig resolves the run configuration from v. Zero-valued flags fall
// back to defaults, --debug forces the debug level, and the contact-email
// secret fills an unset contact.
func loadConfig(v *viper.Viper, store secrets.Store) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	d := types.DefaultConfig()
	if cfg.Entrez.MaxResults == 0 {
		cfg.Entrez.MaxResults = d.Entrez.MaxResults
	}
	if cfg.Mode == "" {
		cfg.Mode = d.Mode
	}
	if v.GetBool("debug") {
		cfg.Log.Level = "debug"
	}
	if cfg.Entrez.Contact == "" {
		cfg.Entrez.Contact = store.ContactEmail()
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
