package simulator

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSimulator_UpdateFan(t *testing.T) {
	cfg := DefaultConfig()
	sim := New(cfg)

	result := sim.Update()

	if result.Stats.RayCount != cfg.Source.NumRays {
		t.Errorf("Expected %d rays, got %d", cfg.Source.NumRays, result.Stats.RayCount)
	}
	if len(result.Heatmaps) != len(cfg.Obstacles) {
		t.Errorf("Expected %d heatmaps, got %d", len(cfg.Obstacles), len(result.Heatmaps))
	}

	for i, ray := range result.Rays {
		if ray.Intensity < 0 || ray.Intensity > 1 {
			t.Errorf("Ray %d: intensity out of range: %v", i, ray.Intensity)
		}
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Ray %d: direction not unit length", i)
		}
	}

	if result.Stats.MeanIntensity <= 0 || result.Stats.MeanIntensity > 1 {
		t.Errorf("Mean intensity out of range: %v", result.Stats.MeanIntensity)
	}
	if result.Stats.MinIntensity > result.Stats.MeanIntensity {
		t.Errorf("Min intensity %v exceeds mean %v",
			result.Stats.MinIntensity, result.Stats.MeanIntensity)
	}
}

func TestSimulator_UpdateCone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeCone
	cfg.Source.NumRaysRadial = 3
	cfg.Source.NumRaysCircular = 12

	result := New(cfg).Update()

	// 1 axis ray + 4 + 8 ring rays.
	if result.Stats.RayCount != 13 {
		t.Errorf("Expected 13 cone rays, got %d", result.Stats.RayCount)
	}
}

func TestSimulator_UpdateIsRepeatable(t *testing.T) {
	sim := New(DefaultConfig())

	a := sim.Update()
	b := sim.Update()

	if a.Stats != b.Stats {
		t.Errorf("Expected identical stats across updates, got %+v and %+v", a.Stats, b.Stats)
	}
	for i := range a.Rays {
		if a.Rays[i].Direction != b.Rays[i].Direction {
			t.Errorf("Ray %d: direction differs between updates", i)
		}
	}
}

func TestSimulator_ZeroRaysDegradesToEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.NumRays = 0

	result := New(cfg).Update()

	if result.Stats.RayCount != 0 {
		t.Errorf("Expected empty batch, got %d rays", result.Stats.RayCount)
	}
	if len(result.Heatmaps) != 1 || len(result.Heatmaps[0]) != 0 {
		t.Errorf("Expected an empty heatmap, got %v", result.Heatmaps)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"cone mode is valid", func(c *Config) { c.Mode = ModeCone }, false},
		{"unknown mode", func(c *Config) { c.Mode = "laser" }, true},
		{"negative bounces", func(c *Config) { c.MaxBounces = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected a validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.toml")

	content := `
Mode = "cone"
InterfaceLevel = 250
MediumIndex = 1.5

[Source]
Position = [100.0, 20.0, 0.0]
SpreadAngle = 0.5
NumRaysRadial = 4
NumRaysCircular = 8

[[Obstacles]]
Position = [100.0, 400.0, 0.0]
Radius = 30.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	if cfg.Mode != ModeCone {
		t.Errorf("Expected cone mode, got %q", cfg.Mode)
	}
	if cfg.InterfaceLevel != 250 || cfg.MediumIndex != 1.5 {
		t.Errorf("Expected overridden scene values, got level %v index %v",
			cfg.InterfaceLevel, cfg.MediumIndex)
	}
	// Defaults survive where the file is silent.
	if cfg.MaxBounces != 5 {
		t.Errorf("Expected default max bounces 5, got %d", cfg.MaxBounces)
	}
	if len(cfg.Obstacles) != 1 || cfg.Obstacles[0].Radius != 30 {
		t.Errorf("Expected one obstacle of radius 30, got %v", cfg.Obstacles)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	if _, err := ParseConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("Mode = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseConfig(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}
