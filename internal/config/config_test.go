package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirilv/termfolio/internal/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Mode() != theme.Dark {
		t.Errorf("expected dark theme, got %s", cfg.Theme)
	}
	if cfg.Rain.CellWidth != 2 {
		t.Errorf("expected cell width 2, got %d", cfg.Rain.CellWidth)
	}
	if cfg.Rain.Frame != 33*time.Millisecond {
		t.Errorf("expected 33ms frames, got %s", cfg.Rain.Frame)
	}
	if cfg.Delays.Sudo != 500*time.Millisecond || cfg.Delays.Exit != time.Second {
		t.Errorf("unexpected delays %+v", cfg.Delays)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: light
rain:
  speed: 0.6
  frame: 50ms
delays:
  exit: 2s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := DefaultConfig()
	want.Theme = "light"
	want.Rain.Speed = 0.6
	want.Rain.Frame = 50 * time.Millisecond
	want.Delays.Exit = 2 * time.Second
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadPresetThenOverrides(t *testing.T) {
	path := writeConfig(t, `
rain:
  preset: storm
  fade: 0.2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	storm := Presets["storm"]
	if cfg.Rain.Speed != storm.Speed {
		t.Errorf("expected preset speed %g, got %g", storm.Speed, cfg.Rain.Speed)
	}
	if cfg.Rain.Fade != 0.2 {
		t.Errorf("expected explicit fade to win, got %g", cfg.Rain.Fade)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown theme", "theme: sepia\n", ErrInvalid},
		{"zero cell width", "rain:\n  cell_width: 0\n", ErrInvalid},
		{"negative frame", "rain:\n  frame: -1s\n", ErrInvalid},
		{"probability out of range", "rain:\n  reset_chance: 1.5\n", ErrInvalid},
		{"opacity out of range", "rain:\n  hidden_opacity: -0.1\n", ErrInvalid},
		{"negative delay", "delays:\n  sudo: -5ms\n", ErrInvalid},
		{"unknown preset", "rain:\n  preset: hail\n", ErrUnknownPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "rain: [unterminated\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip changed config (-want +got):\n%s", diff)
	}
}

func TestCommandOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delays.Sudo = time.Second
	if got := cfg.CommandOptions().SudoDelay; got != time.Second {
		t.Errorf("expected sudo delay 1s, got %s", got)
	}
}

func TestEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rain.CellWidth = 1
	cfg.Rain.VisibleOpacity = 0.5

	eng := cfg.Rain.Engine()
	if eng.CellWidth != 1 || eng.Opacity != 0.5 {
		t.Errorf("unexpected engine config %+v", eng)
	}
	if len(eng.Colors) == 0 || eng.Glyphs == "" {
		t.Error("expected default glyphs and colours")
	}
}

func TestPresets(t *testing.T) {
	if _, ok := GetPreset("classic"); !ok {
		t.Fatal("expected classic preset")
	}
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset for unknown name")
	}

	names := ListPresets()
	if diff := cmp.Diff([]string{"calm", "classic", "drizzle", "storm"}, names); diff != "" {
		t.Errorf("unexpected presets (-want +got):\n%s", diff)
	}

	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("drizzle"); err != nil {
		t.Fatal(err)
	}
	if cfg.Rain.Preset != "drizzle" || cfg.Rain.Speed != Presets["drizzle"].Speed {
		t.Errorf("preset not applied: %+v", cfg.Rain)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	before := cfg.Rain
	if err := cfg.ApplyPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if cfg.Rain != before {
		t.Error("unknown preset must leave rain settings unchanged")
	}
}
