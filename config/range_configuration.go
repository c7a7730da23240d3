package config

import (
	"github.com/go-logr/logr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
	configvalidation "github.com/ARM-software/golang-lazyrange/config/validation"
	"github.com/ARM-software/golang-lazyrange/lazyrange"
)

// DefaultRangeEnvVarPrefix is the environment variable prefix used by LoadRange when none is given.
const DefaultRangeEnvVarPrefix = "range"

// RangeConfiguration describes a range either by its start, stop and step or by a textual definition
// (see lazyrange.Parse). When set, the definition takes precedence.
type RangeConfiguration struct {
	Start      int    `mapstructure:"start"`
	Stop       int    `mapstructure:"stop"`
	Step       int    `mapstructure:"step"`
	Definition string `mapstructure:"definition"`
}

// DefaultRangeConfiguration returns the configuration of the empty range [0, 0).
func DefaultRangeConfiguration() *RangeConfiguration {
	return &RangeConfiguration{
		Step: 1,
	}
}

func (cfg *RangeConfiguration) Validate() error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Step, validation.When(cfg.Definition == "", configvalidation.IsStep())),
		validation.Field(&cfg.Definition, configvalidation.IsRangeDefinition()),
	)
	return WrapValidationError(nil, err)
}

// ToRange validates the configuration and returns the range it describes.
func (cfg *RangeConfiguration) ToRange() (r lazyrange.Range, err error) {
	if cfg == nil {
		err = commonerrors.ErrUndefined
		return
	}
	if vErr := cfg.Validate(); vErr != nil {
		err = vErr
		return
	}
	if cfg.Definition != "" {
		return lazyrange.Parse(cfg.Definition)
	}
	return lazyrange.NewWithStep(cfg.Start, cfg.Stop, cfg.Step)
}

// LoadRange loads a range configuration from the environment (see Load) and returns the range it describes.
// Values missing from the environment are taken from defaultConfiguration, or DefaultRangeConfiguration if nil.
func LoadRange(logger logr.Logger, envVarPrefix string, defaultConfiguration *RangeConfiguration) (lazyrange.Range, error) {
	return LoadRangeFromViper(logger, viper.New(), envVarPrefix, defaultConfiguration)
}

// LoadRangeFromViper is the same as LoadRange but reuses the viper session provided e.g. with flags already bound.
func LoadRangeFromViper(logger logr.Logger, viperSession *viper.Viper, envVarPrefix string, defaultConfiguration *RangeConfiguration) (r lazyrange.Range, err error) {
	if envVarPrefix == "" {
		envVarPrefix = DefaultRangeEnvVarPrefix
	}
	if defaultConfiguration == nil {
		defaultConfiguration = DefaultRangeConfiguration()
	}
	cfg := &RangeConfiguration{}
	err = LoadFromViper(viperSession, envVarPrefix, cfg, defaultConfiguration)
	if err == nil {
		r, err = cfg.ToRange()
	}
	if err != nil {
		if vErr := WrapValidationError(&envVarPrefix, err); vErr != nil && commonerrors.Any(err, commonerrors.ErrInvalid) {
			err = vErr
		}
		logger.Error(err, "invalid range configuration", "prefix", envVarPrefix)
		return
	}
	logger.V(1).Info("loaded range configuration", "prefix", envVarPrefix, "range", r)
	return
}
