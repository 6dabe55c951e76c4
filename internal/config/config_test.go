package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	matrix "github.com/VatsalKhanna5/Matrix"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Serial.Baud, matrix.DefaultBaud, "default baud")
	assert.Equal(t, c.Render.InkThreshold, 0.7, "default ink threshold")
	assert.Equal(t, c.Render.Stride, 1, "default stride")
	assert.Equal(t, c.Delay(), 70*time.Millisecond, "default delay")
	assert.NoError(t, c.Validate(), "defaults must validate")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Config{
		Serial:  Serial{Port: "/dev/ttyUSB0", Baud: 57600},
		Render:  Render{Font: "fonts/cherry.bdf", InkThreshold: 0.5, Stride: 2},
		DelayMs: 40,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assert.Equal(t, got, want, "round trip")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "missing file")
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("\tserial: ["), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	assert.Error(t, err, "malformed yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unsupported baud",
			mutate:  func(c *Config) { c.Serial.Baud = 4800 },
			wantErr: "config: unsupported baud 4800, pick one of [9600 57600 115200]",
		},
		{
			name:    "threshold too high",
			mutate:  func(c *Config) { c.Render.InkThreshold = 1 },
			wantErr: "config: ink threshold 1 outside (0, 1)",
		},
		{
			name:    "threshold zero",
			mutate:  func(c *Config) { c.Render.InkThreshold = 0 },
			wantErr: "config: ink threshold 0 outside (0, 1)",
		},
		{
			name:    "stride zero",
			mutate:  func(c *Config) { c.Render.Stride = 0 },
			wantErr: "config: stride must be at least 1, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateClampsDelay(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below window", 5, 20},
		{"above window", 1000, 250},
		{"inside window", 70, 70},
		{"window floor", 20, 20},
		{"window ceiling", 250, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.DelayMs = tt.in
			assert.NoError(t, c.Validate(), "pacing is clamped, never rejected")
			assert.Equal(t, c.DelayMs, tt.want, "clamped delay")
		})
	}
}
