package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/daterange"
	"github.com/orgball2608/apod-gallery/internal/facts"
	"github.com/orgball2608/apod-gallery/internal/gallery"
	"github.com/orgball2608/apod-gallery/internal/modal"
	"github.com/orgball2608/apod-gallery/internal/session"
	"github.com/orgball2608/apod-gallery/internal/view"
	apperrors "github.com/orgball2608/apod-gallery/pkg/errors"
)

// headerReswap tells htmx how, or whether, to swap the response in.
const headerReswap = "HX-Reswap"

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := view.PageData{
		RangeData: view.RangeData{
			Range:  s.picker.Default(),
			Bounds: s.picker.Bounds(),
		},
		Fact:    facts.Random(),
		Loading: gallery.Loading,
		Gallery: gallery.Show(gallery.Intro),
		Modal:   modal.New().View(),
	}
	s.render(w, func(buf *bytes.Buffer) error { return s.templates.Page(buf, data) })
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := session.ClientID(ctx)
	gen := s.tracker.Begin(clientID)

	rng := daterange.Range{
		Start: r.URL.Query().Get("start_date"),
		End:   r.URL.Query().Get("end_date"),
	}

	result, err := s.fetch(r, clientID, rng)
	if err != nil {
		s.logger.Warn("Showing no-results placeholder",
			"start_date", rng.Start,
			"end_date", rng.End,
			"kind", apperrors.Kind(err),
			"code", apperrors.GetCode(err),
			"error", err)
	}

	if ctx.Err() != nil || !s.tracker.IsCurrent(clientID, gen) {
		s.metrics.SupersededResponses.Inc()
		s.logger.Info("Dropping superseded gallery response", "start_date", rng.Start, "end_date", rng.End, "generation", gen)
		w.Header().Set(headerReswap, "none")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	v := s.gallery.Render(result)
	s.render(w, func(buf *bytes.Buffer) error { return s.templates.Gallery(buf, v) })
}

// fetch validates the range and performs the archive request. Any error
// means the gallery shows the no-results placeholder.
func (s *Server) fetch(r *http.Request, clientID string, rng daterange.Range) (*apod.Result, error) {
	if err := s.picker.Validate(rng); err != nil {
		return nil, err
	}
	if !s.limiter.Allow(clientID) {
		s.metrics.RateLimited.Inc()
		return nil, fmt.Errorf("%w: client %s", apperrors.ErrRateLimited, clientID)
	}
	return s.apod.FetchRange(r.Context(), rng.Start, rng.End)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	data := view.RangeData{
		Range:  daterange.Range{Start: start, End: s.picker.EndFor(start)},
		Bounds: s.picker.Bounds(),
	}
	s.render(w, func(buf *bytes.Buffer) error { return s.templates.EndInput(buf, data) })
}

func (s *Server) handleModalOpen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rec := gallery.ParseModalForm(r.PostForm)
	if !rec.IsImage() {
		w.Header().Set(headerReswap, "none")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	p := modal.New()
	p.Open(rec)
	s.render(w, func(buf *bytes.Buffer) error { return s.templates.Modal(buf, p.View()) })
}

func (s *Server) handleModalDismiss(w http.ResponseWriter, r *http.Request) {
	p := modal.Shown()
	if !p.Click(modal.Region(r.URL.Query().Get("region"))) {
		w.Header().Set(headerReswap, "none")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.render(w, func(buf *bytes.Buffer) error { return s.templates.Modal(buf, p.View()) })
}

// render executes into a buffer first so a template error never leaves a
// half-written page.
func (s *Server) render(w http.ResponseWriter, exec func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := exec(&buf); err != nil {
		s.logger.Error("Failed to render template", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
