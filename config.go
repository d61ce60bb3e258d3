// config.go - TOML-loadable deployment configuration, primarily for
// selecting an S-box acceptance policy without recompiling (spec §4.3's
// strict-vs-relaxed split).
package ruc

import (
	"github.com/BurntSushi/toml"

	"github.com/ruc-crypto/ruc/sbox"
)

// Config is the on-disk description of which S-box acceptance policy a
// deployment's key expansion should use. Production configuration should
// always resolve to StrictPolicy; RelaxedPolicy exists for test suites
// that need key expansion to converge quickly.
type Config struct {
	SBox sbox.Policy `toml:"sbox"`
}

// LoadConfig parses TOML-encoded configuration.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandKeyWithPolicy derives a KeyMaterial under an explicit S-box
// acceptance policy instead of ExpandKey's default strict one. Production
// callers should pass sbox.StrictPolicy(); a relaxed policy loaded via
// Config is intended for test environments only.
func ExpandKeyWithPolicy(key []byte, policy sbox.Policy) (*KeyMaterial, error) {
	return expandKeyWithPolicy(key, policy)
}
