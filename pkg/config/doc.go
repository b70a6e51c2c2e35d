// Package config loads process configuration from the environment.
//
// Load reads optional .env files with github.com/joho/godotenv and then parses
// the environment into a tagged struct with github.com/caarlos0/env/v11.
// LoadFrom parses an explicit variable map and never touches the process
// environment, which keeps tests hermetic.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
