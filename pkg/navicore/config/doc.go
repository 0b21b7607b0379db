// Package config loads a Config from TOML, the same way gabagool's own
// configuration-adjacent tooling reaches for BurntSushi/toml, and fills
// unset fields with the library's documented defaults.
package config
