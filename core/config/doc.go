// Package config provides type-safe environment variable loading with
// per-type caching. Configuration structs declare their variables with
// `env` tags; a .env file is picked up automatically on first use.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each type is parsed once per process; subsequent loads of the same type
// return the cached value.
package config
