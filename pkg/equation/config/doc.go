/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
It is used to read directory settings and equation definition files without
verbose type assertions and nil checks.

# Basic Usage

	cfg := config.New(map[string]any{
	    "max_depth": 100,
	    "log_level": "debug",
	})

	depth := cfg.Int("max_depth", 1000)       // 100
	level := cfg.String("log_level", "info")  // "debug"
	store := cfg.String("store", "")          // ""

# Nested Values

Definition files nest mappings and lists of mappings:

	for _, eq := range cfg.List("equations") {
	    name := eq.String("name", "")
	    text := eq.String("expr", "")
	}

	vars, err := cfg.Sub("solve").Floats("vars") // map[string]float64

# File Loading

Files are read through an afero filesystem, so tests can use an in-memory one:

	cfg, err := config.FromFile("equations.yaml")

	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "defs.yaml", data, 0o644)
	cfg, err = config.FromFS(fs, "defs.yaml")

	// Or load from bytes
	cfg, err = config.FromYAML(yamlBytes)
	cfg, err = config.FromJSON(jsonBytes)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
