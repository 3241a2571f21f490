// Package http provides http transport for wraps
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gitwrapped/internal/modkit/httpkit"
	perr "gitwrapped/internal/platform/errors"
	"gitwrapped/internal/platform/net/http/bind"
	"gitwrapped/internal/services/wraps/domain"
	svc "gitwrapped/internal/services/wraps/service"
)

// Register mounts wraps endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/analyze/{username}", h.analyze)
	httpkit.Get(r, "/{id}", h.byID)
	httpkit.PostJSON[domain.ShareInput](r, "/{id}/share", h.share)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /wraps/analyze/{username} Wraps wrapsAnalyze
// @Summary Generate or fetch the cached year in review for a user
// @Tags Wraps
// @Produce json
// @Param username path string true "GitHub username"
// @Param year query int false "Wrap year, defaults to the current year"
// @Success 200 {object} domain.AnalyzeResult "ok"
// @Router /wraps/analyze/{username} [get]
func (h *handlers) analyze(r *stdhttp.Request) (any, error) {
	in := domain.AnalyzeInput{Username: chi.URLParam(r, "username")}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "year must be an integer")
		}
		in.Year = year
	}

	if err := bind.Get().Validator.Struct(in); err != nil {
		_, msg := bind.ValidationFieldAndMessage(err)
		return nil, perr.Newf(perr.ErrorCodeValidation, "%s", msg)
	}

	return h.svc.Analyze(r.Context(), in)
}

// swagger:route GET /wraps/{id} Wraps wrapsByID
// @Summary Fetch a stored wrap by id
// @Tags Wraps
// @Produce json
// @Param id path string true "Wrap id"
// @Success 200 {object} domain.WrapSnapshot "ok"
// @Router /wraps/{id} [get]
func (h *handlers) byID(r *stdhttp.Request) (any, error) {
	return h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route POST /wraps/{id}/share Wraps wrapsShare
// @Summary Record a share action for a wrap
// @Tags Wraps
// @Accept json
// @Produce json
// @Param id path string true "Wrap id"
// @Param payload body domain.ShareInput true "Share platform"
// @Success 200 {object} nil "ok"
// @Router /wraps/{id}/share [post]
func (h *handlers) share(r *stdhttp.Request, in domain.ShareInput) (any, error) {
	in.WrapID = chi.URLParam(r, "id")
	if err := h.svc.Share(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"shared": true}, nil
}
