package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/ysraell/sudoku/internal/usecase"
)

// Server exposes the enumerator and its collaborators as a JSON API
// under /api.
type Server struct {
	logger  *logrus.Logger
	uc      *usecase.Service
	handler http.Handler
}

func NewServer(logger *logrus.Logger, uc *usecase.Service) *Server {
	s := &Server{logger: logger, uc: uc}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, errMethodNotAllowed)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", s.solve)
		r.Post("/count", s.count)
		r.Post("/validate", s.validate)
		r.Post("/hint", s.hint)
		r.Post("/generate", s.generate)
		r.Post("/render", s.renderText)
	})
	s.handler = r
	return s
}

// Handler returns the root handler for wiring into an http.Server.
func (s *Server) Handler() http.Handler { return s.handler }
