package user

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	apphttp "github.com/km-arc/go-beans/framework/http"
	"github.com/km-arc/go-beans/framework/routing"
)

// Handler serves the user listing over HTTP.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates a Handler backed by repo.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Routes mounts the handler on r.
//
//	GET /                → List
//	GET /users/count     → Count
//	GET /users/{login}   → Show
func (h *Handler) Routes(r *routing.Router) {
	r.Get("/", h.List)
	r.Prefix("/users", func(r *routing.Router) {
		r.Get("/count", h.Count)
		r.Get("/{login}", h.Show)
	})
}

// List writes every user as a JSON array.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	res := apphttp.NewResponse(w)
	users, err := h.repo.FindAll(r.Context())
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		res.ServerError()
		return
	}
	res.OK(users)
}

// Show writes the user identified by the login path parameter.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	res := apphttp.NewResponse(w)
	u, err := h.repo.FindOne(r.Context(), routing.Param(r, "login"))
	switch {
	case errors.Is(err, ErrNotFound):
		res.NotFound()
	case err != nil:
		h.logger.Error("show user", zap.Error(err))
		res.ServerError()
	default:
		res.OK(u)
	}
}

// Count writes {"count": N}.
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	res := apphttp.NewResponse(w)
	n, err := h.repo.Count(r.Context())
	if err != nil {
		h.logger.Error("count users", zap.Error(err))
		res.ServerError()
		return
	}
	res.OK(map[string]int{"count": n})
}
