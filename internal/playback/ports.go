package playback

import "context"

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Renderer draws one year's map, replacing whatever was drawn before.
type Renderer interface {
	RenderYear(ctx context.Context, year int) error
}

// Presenter owns the non-map page elements.
type Presenter interface {
	ShowHeader(title string)
	ShowYearLabel(year int)
	ClearYearLabel()
	ShowControls(slider Slider, summary Summary)
}

// Observer is told about every phase change, after the change is in effect.
type Observer interface {
	OnTransition(from, to Phase)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(from, to Phase)

func (f ObserverFunc) OnTransition(from, to Phase) {
	f(from, to)
}
