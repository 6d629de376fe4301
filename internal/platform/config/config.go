package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server captures process-level configuration for the loan map server.
type Server struct {
	Addr      string `env:"LOANMAP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOANMAP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOANMAP_LOG_FORMAT" envDefault:"text"`

	WriteTimeout    time.Duration `env:"LOANMAP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"LOANMAP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RecordsPath  string `env:"LOANMAP_RECORDS_PATH" envDefault:"data/prosperLoanData.csv"`
	GeometryPath string `env:"LOANMAP_GEOMETRY_PATH" envDefault:"data/us_states.json"`
	// Records originating in this year are dropped by the reader (partial year in the source data).
	ExcludedYear int `env:"LOANMAP_EXCLUDED_YEAR" envDefault:"2014"`

	Playback Playback
}

// Playback holds the autoplay cadence and slider bounds.
type Playback struct {
	TickInterval  time.Duration `env:"LOANMAP_TICK_INTERVAL" envDefault:"1200ms"`
	PauseDuration time.Duration `env:"LOANMAP_PAUSE_DURATION" envDefault:"2s"`
	Years         []int         `env:"LOANMAP_AUTOPLAY_YEARS" envSeparator:"," envDefault:"2007,2008,2009,2010,2011,2012,2013"`
	SliderMin     int           `env:"LOANMAP_SLIDER_MIN" envDefault:"2006"`
	SliderMax     int           `env:"LOANMAP_SLIDER_MAX" envDefault:"2013"`
	SliderValue   int           `env:"LOANMAP_SLIDER_VALUE" envDefault:"2013"`
	SliderStep    int           `env:"LOANMAP_SLIDER_STEP" envDefault:"1"`
	// InitialRender draws the first data year before autoplay begins.
	InitialRender bool `env:"LOANMAP_INITIAL_RENDER" envDefault:"true"`
	// PageRefresh is the autoplay page reload interval in seconds.
	PageRefresh int `env:"LOANMAP_PAGE_REFRESH" envDefault:"1"`
}

// Load reads optional dotenv files, then parses the environment. Missing
// dotenv files are ignored; values already in the environment win.
func Load(dotenvFiles ...string) (Server, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Server{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the playback controller cannot run.
func (c Server) Validate() error {
	if c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	p := c.Playback
	if p.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	if p.PauseDuration < 0 {
		return errors.New("pause duration must not be negative")
	}
	if len(p.Years) == 0 {
		return errors.New("autoplay years are required")
	}
	if !slices.IsSorted(p.Years) || len(slices.Compact(slices.Clone(p.Years))) != len(p.Years) {
		return errors.New("autoplay years must be strictly ascending")
	}
	if p.SliderStep <= 0 {
		return errors.New("slider step must be positive")
	}
	if p.SliderMin > p.SliderMax {
		return fmt.Errorf("slider min %d exceeds max %d", p.SliderMin, p.SliderMax)
	}
	if p.SliderValue < p.SliderMin || p.SliderValue > p.SliderMax {
		return fmt.Errorf("slider value %d outside [%d, %d]", p.SliderValue, p.SliderMin, p.SliderMax)
	}
	return nil
}
