// Package handler serves the presentation surface over HTTP: the HTML page,
// the current map as SVG, a JSON state view and the slider endpoint.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"loanmap/internal/choropleth"
	"loanmap/internal/playback"
	"loanmap/internal/surface"
	dErrors "loanmap/pkg/domain-errors"
	"loanmap/pkg/platform/httputil"
	"loanmap/pkg/platform/sentinel"
	"loanmap/pkg/requestcontext"
)

var errNoMap = dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "no map has been rendered yet")

// Playback is the part of the controller the surface drives.
type Playback interface {
	Snapshot() playback.Snapshot
	Select(ctx context.Context, year int) error
}

// Handler serves the surface routes.
type Handler struct {
	playback Playback
	surface  *surface.Surface
	logger   *slog.Logger
	refresh  int
}

// New creates a Handler. refreshSeconds controls the autoplay page refresh.
func New(pb Playback, s *surface.Surface, logger *slog.Logger, refreshSeconds int) *Handler {
	return &Handler{
		playback: pb,
		surface:  s,
		logger:   logger,
		refresh:  refreshSeconds,
	}
}

// SelectYearRequest is the body of POST /api/year.
type SelectYearRequest struct {
	Year int `json:"year"`
}

// StateResponse is the body of GET /api/state.
type StateResponse struct {
	Playback playback.Snapshot `json:"playback"`
	Surface  surface.State     `json:"surface"`
	ServedAt time.Time         `json:"served_at"`
}

// Register registers the surface routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/map.svg", h.handleMap)
	r.Post("/year", h.handleSelectForm)
	r.Get("/api/state", h.handleState)
	r.Post("/api/year", h.handleSelectYear)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "")
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	snap := h.playback.Snapshot()
	m, _ := h.surface.Current()
	v := pageView{
		Phase:    snap.Phase,
		State:    h.surface.State(),
		Map:      m,
		ErrorMsg: errMsg,
	}
	if snap.Phase == playback.PhaseAutoplaying || snap.Phase == playback.PhaseTransitioning {
		v.Refresh = h.refresh
	}
	templ.Handler(page(v), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) handleMap(w http.ResponseWriter, r *http.Request) {
	m, frame := h.surface.Current()
	if m == nil {
		httputil.WriteError(w, errNoMap)
		return
	}
	w.Header().Set("ETag", strconv.Quote(frame.String()))
	templ.Handler(choropleth.SVG(m), templ.WithContentType("image/svg+xml")).ServeHTTP(w, r)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StateResponse{
		Playback: h.playback.Snapshot(),
		Surface:  h.surface.State(),
		ServedAt: requestcontext.Now(r.Context()),
	})
}

func (h *Handler) handleSelectYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, err := httputil.DecodeJSON[SelectYearRequest](r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid select year request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if err := h.selectYear(ctx, requestID, req.Year); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.handleState(w, r)
}

func (h *Handler) handleSelectForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		h.renderPage(w, r, http.StatusBadRequest, "year must be a number")
		return
	}
	if err := h.selectYear(ctx, requestID, year); err != nil {
		h.renderPage(w, r, httputil.StatusFor(dErrors.CodeOf(err)), publicMessage(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) selectYear(ctx context.Context, requestID string, year int) error {
	err := h.playback.Select(ctx, year)
	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "year selected", "request_id", requestID, "year", year)
		return nil
	case dErrors.HasCode(err, dErrors.CodeValidation),
		dErrors.HasCode(err, dErrors.CodeConflict),
		dErrors.HasCode(err, dErrors.CodeUnavailable):
		h.logger.WarnContext(ctx, "year selection rejected",
			"request_id", requestID,
			"year", year,
			"error", err.Error(),
		)
		return err
	default:
		h.logger.ErrorContext(ctx, "failed to render selected year",
			"request_id", requestID,
			"year", year,
			"error", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to render selected year")
	}
}

func publicMessage(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		return de.Message
	}
	return "something went wrong"
}
