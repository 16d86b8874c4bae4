package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/r53adm/r53adm/config/r53admcfg"
)

const (
	defaultTTL        = 300
	defaultLogFormat  = "human"
	defaultConfigFile = "r53adm.yml"
)

// settings holds per-invocation configuration, threaded explicitly into each
// command entry point instead of living in process-wide state.
type settings struct {
	TTL       int64
	Verbose   bool
	LogFormat string
	Profile   string
	Region    string
}

// findFlag looks up a flag on the command or any of its parents.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// resolveSettings merges flag values with the optional config file. Explicit
// flags win over file values, file values over built-in defaults. A missing
// file at the default path is fine; an explicitly named one must exist.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	path := defaultConfigFile
	if env := os.Getenv("R53ADM_CONFIG"); env != "" {
		path = env
	}
	explicit := false
	if f := findFlag(cmd, "config"); f != nil && f.Changed {
		path = f.Value.String()
		explicit = true
	}

	cfg := &r53admcfg.Config{}
	if loaded, err := r53admcfg.Load(path); err == nil {
		cfg = loaded
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	s, err := mergeSettings(cmd.Flags(), cfg)
	if err != nil {
		return nil, err
	}
	if env := os.Getenv("R53ADM_LOG_FORMAT"); env != "" { // env overrides flag
		s.LogFormat = env
	}
	return s, nil
}

func mergeSettings(flags *pflag.FlagSet, cfg *r53admcfg.Config) (*settings, error) {
	s := &settings{TTL: defaultTTL, LogFormat: defaultLogFormat}
	if cfg.TTL > 0 {
		s.TTL = cfg.TTL
	}
	if cfg.LogFormat != "" {
		s.LogFormat = cfg.LogFormat
	}
	s.Profile = cfg.Profile
	s.Region = cfg.Region

	if flags.Changed("ttl") {
		v, err := flags.GetInt64("ttl")
		if err != nil {
			return nil, err
		}
		s.TTL = v
	}
	if flags.Changed("log-format") {
		v, err := flags.GetString("log-format")
		if err != nil {
			return nil, err
		}
		s.LogFormat = v
	}
	if flags.Changed("profile") {
		v, err := flags.GetString("profile")
		if err != nil {
			return nil, err
		}
		s.Profile = v
	}
	if flags.Changed("region") {
		v, err := flags.GetString("region")
		if err != nil {
			return nil, err
		}
		s.Region = v
	}
	if v, err := flags.GetBool("verbose"); err == nil {
		s.Verbose = v
	}
	return s, nil
}
