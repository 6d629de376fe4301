package handler

import (
	"loanmap/internal/choropleth"
	"loanmap/internal/playback"
	"loanmap/internal/surface"
)

// pageView is everything the page template needs.
type pageView struct {
	Phase    playback.Phase
	State    surface.State
	Map      *choropleth.RenderedMap
	Refresh  int
	ErrorMsg string
}

// sliderValue keeps the slider on the year currently drawn when it can take
// that position.
func sliderValue(s playback.Slider, current int) int {
	if s.Accepts(current) {
		return current
	}
	return s.Value
}

func sliderYears(s playback.Slider) []int {
	var years []int
	for y := s.Min; y <= s.Max; y += s.Step {
		years = append(years, y)
	}
	return years
}
