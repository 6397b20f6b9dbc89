package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/anirudhraja/protodump/render"
	"github.com/anirudhraja/protodump/wire"
)

// Environment overrides, applied after the config file.
const (
	EnvGroups       = "PROTODUMP_GROUPS"
	EnvMaxDepth     = "PROTODUMP_MAX_DEPTH"
	EnvStrictVarint = "PROTODUMP_STRICT_VARINT"
	EnvLogLevel     = "PROTODUMP_LOG_LEVEL"
	EnvLogNoColor   = "PROTODUMP_LOG_NOCOLOR"
)

// Config controls decoding, rendering and the command line tool.
type Config struct {
	// Groups is "skip" (default) or "nest".
	Groups string `toml:"groups"`
	// MaxDepth limits sub-message detection; 0 is unlimited.
	MaxDepth int `toml:"max_depth"`
	// Varint is "wrap" (default) or "reject" for varints past 64 bits.
	Varint string `toml:"varint"`

	// Hex makes the CLI read inputs as hex text instead of raw bytes.
	Hex bool `toml:"hex"`
	// FailFast stops the CLI at the first input that fails to decode.
	FailFast bool `toml:"fail_fast"`

	LogLevel   string `toml:"log_level"`
	LogNoColor bool   `toml:"log_no_color"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Groups:   render.GroupSkip.String(),
		Varint:   wire.VarintWrap.String(),
		LogLevel: "warn",
	}
}

// Load reads a TOML file on top of the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides cfg from PROTODUMP_* environment variables
func ApplyEnv(cfg *Config) error {
	if v, ok := lookup(EnvGroups); ok {
		cfg.Groups = strings.ToLower(v)
	}
	if v, ok := lookup(EnvMaxDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		cfg.MaxDepth = n
	}
	if v, ok := lookup(EnvStrictVarint); ok {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrictVarint, err)
		}
		if strict {
			cfg.Varint = wire.VarintReject.String()
		} else {
			cfg.Varint = wire.VarintWrap.String()
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogNoColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogNoColor = b
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// Validate checks that every option has a known value
func (c Config) Validate() error {
	if _, err := render.ParseGroupMode(c.Groups); err != nil {
		return fmt.Errorf("invalid groups: %w", err)
	}
	if _, err := wire.ParseVarintPolicy(c.Varint); err != nil {
		return fmt.Errorf("invalid varint: %w", err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth: %d", c.MaxDepth)
	}
	return nil
}

// WireOptions converts the config into decoder options
func (c Config) WireOptions() wire.Options {
	policy, _ := wire.ParseVarintPolicy(c.Varint)
	return wire.Options{Varint: policy}
}

// RenderOptions converts the config into renderer options
func (c Config) RenderOptions() render.Options {
	groups, _ := render.ParseGroupMode(c.Groups)
	return render.Options{
		Groups:   groups,
		MaxDepth: c.MaxDepth,
		Wire:     c.WireOptions(),
	}
}
