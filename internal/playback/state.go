package playback

import (
	"fmt"
	"time"

	dErrors "loanmap/pkg/domain-errors"
)

// Phase is the controller's position in the one-way playback sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAutoplaying
	PhaseTransitioning
	PhaseInteractive
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAutoplaying:
		return "autoplaying"
	case PhaseTransitioning:
		return "transitioning_to_interactive"
	case PhaseInteractive:
		return "interactive"
	case PhaseStopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText renders the phase name in JSON.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Snapshot is a copy of the controller state. YearIndex is the next autoplay
// position; SelectedYear is set once Interactive.
type Snapshot struct {
	Phase        Phase `json:"phase"`
	YearIndex    int   `json:"year_index"`
	CurrentYear  int   `json:"current_year,omitempty"`
	SelectedYear int   `json:"selected_year,omitempty"`
	Renders      int   `json:"renders"`
}

// Slider describes the interactive year control.
type Slider struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Step  int `json:"step"`
	Value int `json:"value"`
}

// Accepts reports whether year is a position the slider can take.
func (s Slider) Accepts(year int) bool {
	if year < s.Min || year > s.Max {
		return false
	}
	return (year-s.Min)%s.Step == 0
}

// Summary is the static text panel shown alongside the slider.
type Summary struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// Default presentation copy.
const (
	DefaultTitle   = "Prosper Loan Density by State from 2006 - 2013"
	SummaryHeading = "Observations"
	SummaryText    = "Prosper is a peer-to-peer lender and the dataset used includes 113,937 loans with 81 variables " +
		"(such as loan amount, borrower rate, borrower state) for each loan. I choose to investigate the progression " +
		"of loan amount by state to get a picture of where the highest loan density occurs. Once I plotted overall " +
		"loan density, I included a time component to show the geographic fluctuations in lendees. What I discovered " +
		"was that the loan density traces the story of Prosper and the US economy as a whole; loan density starts out " +
		"strongest on the West Coast (where Prosper was founded in 2005), then follows the movement of the US economy " +
		"(with dips in 2008 - 2009)."
)

// Config fixes the year list, cadence and interactive controls.
type Config struct {
	Years         []int
	TickInterval  time.Duration
	PauseDuration time.Duration
	// InitialYear is rendered once before autoplay starts; zero skips it.
	InitialYear int
	Slider      Slider
	Title       string
	Summary     Summary
}

// DefaultConfig returns the 2007-2013 autoplay with a 2006-2013 slider.
func DefaultConfig() Config {
	return Config{
		Years:         []int{2007, 2008, 2009, 2010, 2011, 2012, 2013},
		TickInterval:  1200 * time.Millisecond,
		PauseDuration: 2 * time.Second,
		Slider:        Slider{Min: 2006, Max: 2013, Step: 1, Value: 2013},
		Title:         DefaultTitle,
		Summary:       Summary{Heading: SummaryHeading, Text: SummaryText},
	}
}

// Validate checks the config can drive a full playback.
func (c Config) Validate() error {
	if len(c.Years) == 0 {
		return dErrors.New(dErrors.CodeValidation, "playback needs at least one year")
	}
	for i := 1; i < len(c.Years); i++ {
		if c.Years[i] <= c.Years[i-1] {
			return dErrors.New(dErrors.CodeValidation, "playback years must be strictly ascending")
		}
	}
	if c.TickInterval <= 0 {
		return dErrors.New(dErrors.CodeValidation, "tick interval must be positive")
	}
	if c.PauseDuration < 0 {
		return dErrors.New(dErrors.CodeValidation, "pause duration must not be negative")
	}
	if c.Slider.Step <= 0 {
		return dErrors.New(dErrors.CodeValidation, "slider step must be positive")
	}
	if c.Slider.Min > c.Slider.Max {
		return dErrors.New(dErrors.CodeValidation, "slider min must not exceed max")
	}
	if !c.Slider.Accepts(c.Slider.Value) {
		return dErrors.New(dErrors.CodeValidation, "slider value must be a valid slider position")
	}
	return nil
}
