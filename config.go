package nest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the window and engine settings passed to Init.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Background is a hex color ("#rrggbb"). Empty or malformed means black.
	Background string `yaml:"background"`
	// Debug enables per-frame timing logs. See Nest.SetDebugMode.
	Debug bool `yaml:"debug"`

	// Ebiten configures NewEbitenBackend. Other backends ignore it.
	Ebiten EbitenOptions `yaml:"ebiten"`
}

// DefaultConfig returns an 800x600 window titled "nest" on a black background.
func DefaultConfig() Config {
	return Config{
		Title:  "nest",
		Width:  800,
		Height: 600,
		Ebiten: EbitenOptions{
			TPS:           60,
			ScreenshotDir: defaultScreenshotDir,
		},
	}
}

// LoadConfig parses YAML on top of DefaultConfig, so omitted keys keep their
// defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("nest: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("nest: read config: %w", err)
	}
	return LoadConfig(data)
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}
