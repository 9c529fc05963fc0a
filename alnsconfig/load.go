package alnsconfig

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads a RunConfig from a YAML file at path. If envFile is non-empty
// it is loaded into the process environment first (missing files are not
// an error, matching godotenv's typical "optional .env" usage), so
// ALNS_-prefixed environment variables can override individual fields
// before the file is parsed.
func Load(path, envFile string) (*RunConfig, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetEnvPrefix("alns")
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &RunConfig{CollectStatistics: true}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders cfg back to YAML, for logging or persisting the effective
// configuration a run was actually built from (env overrides included).
func Dump(cfg *RunConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
