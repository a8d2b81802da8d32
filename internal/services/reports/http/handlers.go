// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"
	"time"

	"clockjar/internal/modkit/httpkit"
	"clockjar/internal/services/reports/domain"
	svc "clockjar/internal/services/reports/service"
)

// Register mounts reports endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/week/current", h.currentWeek)
	httpkit.PostJSON[domain.MonthInput](r, "/month", h.month)
	httpkit.PostJSON[domain.WeeksInput](r, "/weeks", h.weeks)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /reports/week/current Reports reportsCurrentWeek
// @Summary Totals for the week containing now
// @Tags Reports
// @Produce json
// @Success 200 {object} domain.WeekDTO "ok"
// @Router /reports/week/current [get]
func (h *handlers) currentWeek(r *stdhttp.Request) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CurrentWeek(r.Context(), userID, time.Now().UTC())
}

// swagger:route POST /reports/month Reports reportsMonth
// @Summary Totals for one month
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.MonthInput true "Month"
// @Success 200 {object} domain.MonthDTO "ok"
// @Router /reports/month [post]
func (h *handlers) month(r *stdhttp.Request, in domain.MonthInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Month(r.Context(), userID, in)
}

// swagger:route POST /reports/weeks Reports reportsWeeks
// @Summary Weekly totals over a date range
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.WeeksInput true "Range"
// @Success 200 {array} domain.WeekDTO "ok"
// @Router /reports/weeks [post]
func (h *handlers) weeks(r *stdhttp.Request, in domain.WeeksInput) (any, error) {
	userID, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Weeks(r.Context(), userID, in)
}
