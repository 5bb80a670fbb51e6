// Package config loads typed configuration structs from environment
// variables (and an optional .env file) using struct tags, keeping service
// wiring free of os.Getenv calls.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
package config
