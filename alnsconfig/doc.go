// Package alnsconfig is the ambient declarative-configuration layer: it
// loads a RunConfig from YAML (optionally overridden by environment
// variables and a .env file) and turns it into concrete selection.Scheme,
// acceptance.Criterion and stopping.Criterion instances, so a caller can
// describe an entire run in one file instead of wiring constructors by
// hand.
//
// Grounded on the pack's own config-loading convention
// (tabular/reinforcement.FromYaml): viper reads and unmarshals the file,
// godotenv seeds the process environment first so ALNS_* env vars can
// override individual fields.
package alnsconfig
