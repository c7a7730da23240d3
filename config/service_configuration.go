/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configurations from defaults, a `.env` file, environment variables and flags.
package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-lazyrange/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) into configurationToSet.
// Entries not found in the environment are taken from defaultConfiguration.
// `envVarPrefix` defines the prefix of environment variables e.g. with the prefix "range", `step` is read from "RANGE_STEP".
// The `mapstructure` tags of configurationToSet should only use `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided.
// Viper's precedence order is maintained: explicit `Set` calls, flags, environment, configuration file, key/value store and then defaults.
// Values of defaultConfiguration take precedence over defaults set via `SetDefault` or flags unless they are zero values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.ErrUndefined
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode the default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds a pflag to an environment variable.
// envVar is the name of the environment variable with or without the prefix envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if flag == nil {
		err = commonerrors.ErrUndefined
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = flagKeyPrefix + configKeySeparator + strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator)
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(envVarPrefix+EnvVarSeparator+short, configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies values bound to flags or environment variables onto the structure keys they correspond to.
// Viper aliases do not work well with nested configurations, hence the manual handling.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
			continue
		}
		value := viperSession.Get(flagKey)
		if isEmpty(value) {
			continue
		}
		viperSession.SetDefault(key, value)
		if isEmpty(viperSession.Get(key)) {
			viperSession.Set(key, value)
		}
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}
