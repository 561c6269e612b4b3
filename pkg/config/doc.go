// Package config loads configuration structs from defaults, an optional YAML
// file, .env files and the process environment, in that order of precedence
// (later layers win).
//
// Fields are mapped with `yaml` tags for the file and `env` tags for the
// environment, parsed by caarlos0/env:
//
//	type Config struct {
//		Address  string        `env:"ADDRESS" yaml:"address"`
//		Timeout  time.Duration `env:"TIMEOUT" yaml:"timeout"`
//		Upstream string        `env:"UPSTREAM_URL" yaml:"upstream"`
//	}
//
//	cfg := Config{Address: ":8080", Timeout: 30 * time.Second}
//	if err := config.Load(&cfg, config.WithFile(path)); err != nil {
//		log.Fatal(err)
//	}
//
// Defaults belong in the struct value passed to Load rather than in
// envDefault tags, so that a value from the YAML file is not overwritten by a
// default when the variable is unset.
package config
