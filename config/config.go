// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package config loads icapdump's configuration, grounded on
// packetd's confengine package: a thin wrapper around
// github.com/elastic/go-ucfg that unpacks a YAML file into a plain Go
// struct.
package config

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"

	"github.com/intuitivelabs/icapsp/logging"
)

// DefaultHeaderCapacity is the header array size icapdump passes to
// icapsp.NewRequest/NewResponse when no config overrides it.
const DefaultHeaderCapacity = 64

// Config is icapdump's unpacked configuration.
type Config struct {
	HeaderCapacity int             `config:"headerCapacity"`
	Logging        logging.Options `config:"logging"`
}

// Default returns a Config with icapdump's built-in defaults, used
// when no --config flag is given.
func Default() Config {
	return Config{
		HeaderCapacity: DefaultHeaderCapacity,
		Logging:        logging.Options{Level: "info"},
	}
}

// LoadPath reads and unpacks a YAML config file at path, starting from
// Default() so any field the file doesn't set keeps its default.
func LoadPath(path string) (Config, error) {
	cfg := Default()
	raw, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return cfg, err
	}
	if err := raw.Unpack(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
