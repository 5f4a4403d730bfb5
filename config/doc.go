// Package config provides the explicit configuration record for one
// reduction run, passed as a parameter rather than referenced as a
// global singleton. Values are loaded from a YAML/env source via
// github.com/spf13/viper and may be overridden with functional options
// (Default + WithX, panicking on invalid arguments at construction
// time).
package config
