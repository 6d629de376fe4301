package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2014, cfg.ExcludedYear)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1200*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, 2*time.Second, cfg.Playback.PauseDuration)
	assert.Equal(t, []int{2007, 2008, 2009, 2010, 2011, 2012, 2013}, cfg.Playback.Years)
	assert.Equal(t, 2006, cfg.Playback.SliderMin)
	assert.Equal(t, 2013, cfg.Playback.SliderMax)
	assert.Equal(t, 2013, cfg.Playback.SliderValue)
	assert.Equal(t, 1, cfg.Playback.SliderStep)
	assert.True(t, cfg.Playback.InitialRender)
	assert.Equal(t, 1, cfg.Playback.PageRefresh)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOANMAP_ADDR", ":9090")
	t.Setenv("LOANMAP_TICK_INTERVAL", "50ms")
	t.Setenv("LOANMAP_AUTOPLAY_YEARS", "2010,2011")

	cfg, err := Load(missingDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 50*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, []int{2010, 2011}, cfg.Playback.Years)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOANMAP_EXCLUDED_YEAR=2015\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LOANMAP_EXCLUDED_YEAR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2015, cfg.ExcludedYear)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("LOANMAP_EXCLUDED_YEAR", "not-an-int")

	_, err := Load(missingDotenv(t))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestValidate(t *testing.T) {
	base, err := Load(missingDotenv(t))
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Server)
		want   string
	}{
		{"zero shutdown", func(c *Server) { c.ShutdownTimeout = 0 }, "server timeouts"},
		{"zero tick", func(c *Server) { c.Playback.TickInterval = 0 }, "tick interval"},
		{"negative pause", func(c *Server) { c.Playback.PauseDuration = -time.Second }, "pause duration"},
		{"no years", func(c *Server) { c.Playback.Years = nil }, "years are required"},
		{"descending years", func(c *Server) { c.Playback.Years = []int{2009, 2008} }, "strictly ascending"},
		{"duplicate years", func(c *Server) { c.Playback.Years = []int{2008, 2008} }, "strictly ascending"},
		{"zero step", func(c *Server) { c.Playback.SliderStep = 0 }, "slider step"},
		{"slider bounds", func(c *Server) { c.Playback.SliderMin = 2020 }, "slider min"},
		{"slider value", func(c *Server) { c.Playback.SliderValue = 1999 }, "slider value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			cfg.Playback.Years = append([]int(nil), base.Playback.Years...)
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
