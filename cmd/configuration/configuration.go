// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the configuration file in NavforgeHomeDir
	DefaultConfigFileName = "config"
	// NavforgeHomeDir is the directory under the user home holding configuration and cache
	NavforgeHomeDir = ".navforge"
	// NavforgeConfigEnv points to a configuration file used instead of the default one
	NavforgeConfigEnv = "NAVFORGECONFIG"
	// EnvPrefix prefixes the environment variables overriding options
	EnvPrefix = "NAVFORGE"
)

// Loader loads configuration into a viper instance
type Loader interface {
	Load(vip *viper.Viper) error
}

// DefaultConfigurationLoader reads the file named by NAVFORGECONFIG, or
// $HOME/.navforge/config if present, and binds NAVFORGE_ environment variables.
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load(vip *viper.Viper) error {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	vip.SetConfigType("yaml")

	if configFilePath, found := os.LookupEnv(NavforgeConfigEnv); found {
		if configFilePath == "" {
			return fmt.Errorf("the provided environment variable %s is set to empty string", NavforgeConfigEnv)
		}
		vip.SetConfigFile(configFilePath)
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
		}
		klog.Infof("Using configuration file %s", vip.ConfigFileUsed())
		return nil
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %v", err)
	}
	vip.AddConfigPath(filepath.Join(userHomeDir, NavforgeHomeDir))
	vip.SetConfigName(DefaultConfigFileName)
	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			klog.V(4).Infof("No configuration file in %s", filepath.Join(userHomeDir, NavforgeHomeDir))
			return nil
		}
		return err
	}
	klog.Infof("Using configuration file %s", vip.ConfigFileUsed())
	return nil
}
