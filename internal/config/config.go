// Package config holds the file-backed settings of the matrix CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	matrix "github.com/VatsalKhanna5/Matrix"
	"github.com/VatsalKhanna5/Matrix/raster"
)

type Serial struct {
	Port string `yaml:"port"` // e.g. /dev/ttyUSB0 or COM12
	Baud int    `yaml:"baud"` // 9600 | 57600 | 115200
}

type Render struct {
	Font         string  `yaml:"font,omitempty"` // .bdf/.ttf/.otf path, empty for the built-in face
	InkThreshold float64 `yaml:"ink_threshold"`
	Stride       int     `yaml:"stride"`
}

type Config struct {
	Serial  Serial `yaml:"serial"`
	Render  Render `yaml:"render"`
	DelayMs int    `yaml:"delay_ms"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Serial: Serial{Baud: matrix.DefaultBaud},
		Render: Render{
			InkThreshold: raster.DefaultInkThreshold,
			Stride:       1,
		},
		DelayMs: int(matrix.DefaultFrameDelay / time.Millisecond),
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Delay converts the configured pacing to a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Validate rejects settings the device cannot honor and clamps the
// frame delay into the recommended pacing window.
func (c *Config) Validate() error {
	supported := false
	for _, b := range matrix.SupportedBauds {
		if c.Serial.Baud == b {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("config: unsupported baud %d, pick one of %v", c.Serial.Baud, matrix.SupportedBauds)
	}
	if c.Render.InkThreshold <= 0 || c.Render.InkThreshold >= 1 {
		return fmt.Errorf("config: ink threshold %v outside (0, 1)", c.Render.InkThreshold)
	}
	if c.Render.Stride < 1 {
		return fmt.Errorf("config: stride must be at least 1, got %d", c.Render.Stride)
	}

	if lo := int(matrix.MinFrameDelay / time.Millisecond); c.DelayMs < lo {
		c.DelayMs = lo
	}
	if hi := int(matrix.MaxFrameDelay / time.Millisecond); c.DelayMs > hi {
		c.DelayMs = hi
	}
	return nil
}
