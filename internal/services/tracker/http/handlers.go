// Package http provides http transport for the tracker
package http

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/modkit/httpkit"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/tracker/domain"
	svc "clockjar/internal/services/tracker/service"
)

// Register mounts tracker endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.StartInput](r, "/start", h.start)
	httpkit.PostJSON[domain.StopInput](r, "/stop", h.stop)
	httpkit.PostJSON[domain.EntryInput](r, "/entries", h.addEntry)
	httpkit.PatchJSON[domain.EditInput](r, "/sessions/{id}", h.edit)
	httpkit.Delete(r, "/sessions/{id}", h.remove)
	httpkit.Get(r, "/status", h.status)
}

type handlers struct{ svc svc.Service }

func dto(s domain.Session) domain.SessionDTO {
	w := isoweek.Of(s.AttributedOn)
	return domain.SessionDTOFrom(s, w.Number, w.Year)
}

// swagger:route POST /tracker/start Tracker trackerStart
// @Summary Start a timer for one mode
// @Tags Tracker
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Mode"
// @Success 200 {object} domain.SessionDTO "ok"
// @Failure 409 "already running"
// @Router /tracker/start [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	// the handler is the only layer that reads the clock
	s, err := h.svc.Start(r.Context(), userID, domain.Mode(in.Mode), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return dto(s), nil
}

// swagger:route POST /tracker/stop Tracker trackerStop
// @Summary Stop the running timer for one mode
// @Tags Tracker
// @Accept json
// @Produce json
// @Param payload body domain.StopInput true "Mode and optional payment amount"
// @Success 200 {object} domain.SessionDTO "ok"
// @Failure 409 "not running"
// @Router /tracker/stop [post]
func (h *handlers) stop(r *stdhttp.Request, in domain.StopInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	s, err := h.svc.Stop(r.Context(), userID, domain.Mode(in.Mode), in.AmountCents, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return dto(s), nil
}

// swagger:route POST /tracker/entries Tracker trackerAddEntry
// @Summary Record a finished span against an explicit date
// @Tags Tracker
// @Accept json
// @Produce json
// @Param payload body domain.EntryInput true "Entry"
// @Success 200 {object} domain.SessionDTO "ok"
// @Router /tracker/entries [post]
func (h *handlers) addEntry(r *stdhttp.Request, in domain.EntryInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	on, err := calendar.Parse(in.Date)
	if err != nil {
		return nil, perrs.InvalidArgf("date must be YYYY-MM-DD")
	}
	s, err := h.svc.AddEntry(r.Context(), userID, on, domain.Mode(in.Mode), in.DurationSeconds, in.AmountCents)
	if err != nil {
		return nil, err
	}
	return dto(s), nil
}

// swagger:route PATCH /tracker/sessions/{id} Tracker trackerEditSession
// @Summary Rewrite the span of a session
// @Tags Tracker
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.EditInput true "New span"
// @Success 200 {object} domain.SessionDTO "ok"
// @Router /tracker/sessions/{id} [patch]
func (h *handlers) edit(r *stdhttp.Request, in domain.EditInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id := chi.URLParam(r, "id")
	started, err := time.Parse(time.RFC3339, in.StartedAt)
	if err != nil {
		return nil, perrs.InvalidArgf("started_at must be RFC3339")
	}
	ended, err := time.Parse(time.RFC3339, in.EndedAt)
	if err != nil {
		return nil, perrs.InvalidArgf("ended_at must be RFC3339")
	}
	s, err := h.svc.EditSession(r.Context(), userID, id, started.UTC(), ended.UTC())
	if err != nil {
		return nil, err
	}
	return dto(s), nil
}

// swagger:route DELETE /tracker/sessions/{id} Tracker trackerDeleteSession
// @Summary Delete a session
// @Tags Tracker
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} nil "ok"
// @Router /tracker/sessions/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteSession(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

// swagger:route GET /tracker/status Tracker trackerStatus
// @Summary Open sessions for the caller, at most one per mode
// @Tags Tracker
// @Produce json
// @Success 200 {object} domain.StatusDTO "ok"
// @Router /tracker/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	open, err := h.svc.OpenSessions(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	out := domain.StatusDTO{Open: make([]domain.SessionDTO, 0, len(open))}
	for _, s := range open {
		out.Open = append(out.Open, dto(s))
	}
	return out, nil
}
