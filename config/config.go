// Package config loads the synthesis engine's tunable parameter set
// (spec §6's nVarsMax/nKeepMax/fTruth/fFilter/fUseZeros/fUseDcs, plus
// refactor's nNodeSizeMax/nConeSizeMax) from YAML or environment
// variables via Viper (no command-line flag is bound to Viper; the CLI
// commands apply their own flags on top of the loaded Params), in the
// shape of
// junjiewwang-perf-analysis/pkg/config.Load: a mapstructure-tagged
// struct, package-level defaults set on a fresh *viper.Viper, and a
// Validate method raised as a config-class error on range violations.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/aigsynth/errs"
)

const opLoad = "config.Load"

// Params is the full parameter set spec §6 documents, flattened into a
// single struct since (unlike perf-analysis's database/storage/APM
// sections) this engine has only one configuration surface: the
// rewrite/refactor tuning knobs themselves.
type Params struct {
	// NVarsMax is the cut input ceiling K ∈ [3, 16] (default 4 for
	// rewriting; refactor's reconvergence cut uses NConeSizeMax instead).
	NVarsMax int `mapstructure:"n_vars_max"`
	// NKeepMax is the cuts-per-node ceiling ∈ [1, 250].
	NKeepMax int `mapstructure:"n_keep_max"`
	// FTruth enables per-cut truth-table computation.
	FTruth bool `mapstructure:"f_truth"`
	// FFilter enables dominance filtering between sibling cuts.
	FFilter bool `mapstructure:"f_filter"`
	// FUseZeros accepts zero-gain replacements in both rewrite and
	// refactor.
	FUseZeros bool `mapstructure:"f_use_zeros"`
	// FUseDcs is carried for parity with spec §6's parameter set; it is
	// a documented no-op today (refactor's don't-care injection is a
	// future hook, spec §9 Gotcha).
	FUseDcs bool `mapstructure:"f_use_dcs"`
	// NNodeSizeMax is refactor's internal-node-count ceiling for the
	// growing reconvergence cone.
	NNodeSizeMax int `mapstructure:"n_node_size_max"`
	// NConeSizeMax is refactor's leaf-count ceiling for the same cone.
	NConeSizeMax int `mapstructure:"n_cone_size_max"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("n_vars_max", 4)
	v.SetDefault("n_keep_max", 250)
	v.SetDefault("f_truth", true)
	v.SetDefault("f_filter", true)
	v.SetDefault("f_use_zeros", false)
	v.SetDefault("f_use_dcs", false)
	v.SetDefault("n_node_size_max", 10)
	v.SetDefault("n_cone_size_max", 10)
}

// Load reads Params from configPath (YAML), falling back to defaults
// when the path is empty or the file does not exist, then lets any
// AIGSYNTH_-prefixed environment variable override the result, matching
// perf-analysis/pkg/config.Load's file-then-env precedence.
func Load(configPath string) (*Params, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// SetConfigFile with an explicit path that doesn't exist
			// surfaces as a wrapped *fs.PathError rather than viper's own
			// ConfigFileNotFoundError (that type is only returned by the
			// SetConfigName/AddConfigPath search mechanism) — perf-analysis's
			// own Load checks both for the same reason.
			_, notFoundErr := err.(viper.ConfigFileNotFoundError)
			if !notFoundErr && !os.IsNotExist(err) {
				return nil, errs.Config(opLoad, fmt.Errorf("reading %s: %w", configPath, err))
			}
		}
	}

	v.SetEnvPrefix("aigsynth")
	v.AutomaticEnv()

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return nil, errs.Config(opLoad, fmt.Errorf("unmarshaling config: %w", err))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFromReader loads Params from in-memory YAML content, for tests
// and embedded defaults.
func LoadFromReader(content []byte) (*Params, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, errs.Config(opLoad, fmt.Errorf("reading config: %w", err))
	}

	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return nil, errs.Config(opLoad, fmt.Errorf("unmarshaling config: %w", err))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default returns Params set to the library's documented defaults,
// bypassing Viper entirely — the zero-ceremony path a host reaches for
// when it has no config file or environment to read.
func Default() Params {
	return Params{
		NVarsMax:     4,
		NKeepMax:     250,
		FTruth:       true,
		FFilter:      true,
		FUseZeros:    false,
		FUseDcs:      false,
		NNodeSizeMax: 10,
		NConeSizeMax: 10,
	}
}

// Validate enforces spec §6's documented ranges, raising violations as
// a configuration-class error (spec §7).
func (p *Params) Validate() error {
	if p.NVarsMax < 3 || p.NVarsMax > 16 {
		return errs.Config(opLoad, fmt.Errorf("n_vars_max %d out of range [3, 16]", p.NVarsMax))
	}
	if p.NKeepMax < 1 || p.NKeepMax > 250 {
		return errs.Config(opLoad, fmt.Errorf("n_keep_max %d out of range [1, 250]", p.NKeepMax))
	}
	if p.NNodeSizeMax < 1 {
		return errs.Config(opLoad, fmt.Errorf("n_node_size_max %d must be positive", p.NNodeSizeMax))
	}
	if p.NConeSizeMax < 1 {
		return errs.Config(opLoad, fmt.Errorf("n_cone_size_max %d must be positive", p.NConeSizeMax))
	}
	return nil
}
