package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3200*time.Millisecond, cfg.Surface.DefaultDuration.Duration())
	assert.Equal(t, 5, cfg.Surface.MaxVisible)
	assert.Equal(t, string(PositionTopRight), cfg.Surface.Position)
	assert.Equal(t, "default", cfg.Theme.Name)
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"3200", 3200 * time.Millisecond, false}, // bare integers are ms
		{"0", 0, false},
		{"3.2s", 3200 * time.Millisecond, false},
		{"1m30s", 90 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration())
		})
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[surface]
default_duration = "5s"
position = "bottom-left"

[theme]
name = "mono"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Surface.DefaultDuration.Duration())
	assert.Equal(t, string(PositionBottomLeft), cfg.Surface.Position)
	assert.Equal(t, "mono", cfg.Theme.Name)
	// Untouched keys keep their defaults
	assert.Equal(t, 5, cfg.Surface.MaxVisible)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[surface]
position = "middle"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad position", func(c *Config) { c.Surface.Position = "center" }, false},
		{"zero duration", func(c *Config) { c.Surface.DefaultDuration = 0 }, false},
		{"max_visible too low", func(c *Config) { c.Surface.MaxVisible = 0 }, false},
		{"max_visible too high", func(c *Config) { c.Surface.MaxVisible = 50 }, false},
		{"negative gap", func(c *Config) { c.Surface.Gap = -1 }, false},
		{"negative countdown", func(c *Config) { c.Demo.SaveCountdownSeconds = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Surface.DefaultDuration = Duration(7 * time.Second)
	cfg.Theme.Name = "mono"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	initial, err := Load(path)
	require.NoError(t, err)

	w, err := NewWatcher(path, initial, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	reloaded := make(chan *Config, 1)
	w.SetReloadCallback(func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})

	updated := DefaultConfig()
	updated.Theme.Name = "mono"
	require.NoError(t, updated.Save(path))

	select {
	case c := <-reloaded:
		assert.Equal(t, "mono", c.Theme.Name)
		assert.Equal(t, "mono", w.Current().Theme.Name)
	case <-time.After(3 * time.Second):
		t.Fatal("config change was not picked up")
	}
}

func TestWatcher_InvalidChangeKeepsCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, DefaultConfig().Save(path))

	initial, err := Load(path)
	require.NoError(t, err)

	w, err := NewWatcher(path, initial, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	failed := make(chan error, 1)
	w.SetErrorCallback(func(err error) {
		select {
		case failed <- err:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("[surface]\nposition = \"middle\"\n"), 0644))

	select {
	case err := <-failed:
		assert.Error(t, err)
		assert.Equal(t, "default", w.Current().Theme.Name)
	case <-time.After(3 * time.Second):
		t.Fatal("invalid config change was not reported")
	}
}
