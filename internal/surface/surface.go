// Package surface holds what the page currently shows: the rendered map, the
// header, the autoplay year label and, once interactive, the slider and
// summary panel.
package surface

import (
	"sync"

	"github.com/google/uuid"

	"loanmap/internal/choropleth"
	"loanmap/internal/playback"
)

var (
	_ choropleth.MapSurface = (*Surface)(nil)
	_ playback.Presenter    = (*Surface)(nil)
)

// Controls is the interactive panel shown after autoplay.
type Controls struct {
	Slider  playback.Slider  `json:"slider"`
	Summary playback.Summary `json:"summary"`
}

// State is a copy of everything on the surface except the map itself.
type State struct {
	Frame     string    `json:"frame,omitempty"`
	Year      int       `json:"year,omitempty"`
	NoData    int       `json:"no_data_features"`
	Header    string    `json:"header,omitempty"`
	YearLabel int       `json:"year_label,omitempty"`
	Controls  *Controls `json:"controls,omitempty"`
	Frames    int       `json:"frames"`
}

// Surface is safe for concurrent use. Each ReplaceMap swaps the whole map and
// assigns it a new frame id.
type Surface struct {
	mu        sync.RWMutex
	current   *choropleth.RenderedMap
	frame     uuid.UUID
	frames    int
	header    string
	yearLabel int
	controls  *Controls
}

// New creates an empty surface.
func New() *Surface {
	return &Surface{}
}

// ReplaceMap discards the previous map and shows m.
func (s *Surface) ReplaceMap(m *choropleth.RenderedMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = m
	s.frame = uuid.New()
	s.frames++
}

// Current returns the map being shown and its frame id.
func (s *Surface) Current() (*choropleth.RenderedMap, uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.frame
}

// ShowHeader sets the page title.
func (s *Surface) ShowHeader(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = title
}

// ShowYearLabel sets the autoplay overlay, replacing any previous label.
func (s *Surface) ShowYearLabel(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yearLabel = year
}

// ClearYearLabel removes the autoplay overlay.
func (s *Surface) ClearYearLabel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yearLabel = 0
}

// ShowControls exposes the slider and summary panel.
func (s *Surface) ShowControls(slider playback.Slider, summary playback.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controls = &Controls{Slider: slider, Summary: summary}
}

// State returns a copy of the surface.
func (s *Surface) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{
		Header:    s.header,
		YearLabel: s.yearLabel,
		Frames:    s.frames,
	}
	if s.current != nil {
		st.Frame = s.frame.String()
		st.Year = s.current.Year
		st.NoData = s.current.NoDataCount()
	}
	if s.controls != nil {
		c := *s.controls
		st.Controls = &c
	}
	return st
}
