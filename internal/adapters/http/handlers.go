package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/samber/lo"

	"github.com/ysraell/sudoku/internal/domain"
	gridrender "github.com/ysraell/sudoku/internal/render"
	"github.com/ysraell/sudoku/internal/validator"
)

func boards(gs []domain.Grid) [][9][9]uint8 {
	return lo.Map(gs, func(g domain.Grid, _ int) [9][9]uint8 { return g.Cells() })
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
	Limit int         `json:"limit,omitempty"`
	Check bool        `json:"check,omitempty"`
}

type solveResp struct {
	Solutions  [][9][9]uint8 `json:"solutions"`
	Count      int           `json:"count"`
	Truncated  bool          `json:"truncated,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	DurationMs int64         `json:"durationMs"`
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	g, err := domain.FromCells(req.Board)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	if req.Check {
		if err := s.uc.Check(r.Context(), g); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, validator.ErrConflictingGivens) {
				status = http.StatusUnprocessableEntity
			}
			render.Status(r, status)
			render.JSON(w, r, newError(err.Error()))
			return
		}
	}

	// With a limit the lazy sequence stops the search as soon as
	// enough solutions came out; one extra pull detects truncation.
	if req.Limit > 0 {
		seq, err := s.uc.Solutions(r.Context(), g)
		if err != nil {
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, newError(err.Error()))
			return
		}
		start := time.Now()
		var sols []domain.Grid
		truncated := false
		for sol := range seq {
			if len(sols) == req.Limit {
				truncated = true
				break
			}
			sols = append(sols, sol)
		}
		render.JSON(w, r, solveResp{
			Solutions:  boards(sols),
			Count:      len(sols),
			Truncated:  truncated,
			DurationMs: time.Since(start).Milliseconds(),
		})
		return
	}

	sols, st, err := s.uc.Solve(r.Context(), g)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, solveResp{
		Solutions:  boards(sols),
		Count:      len(sols),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Count ----

type countReq struct {
	Board [9][9]uint8 `json:"board"`
	Limit int         `json:"limit,omitempty"`
}

type countResp struct {
	Count      int   `json:"count"`
	Nodes      int   `json:"nodes"`
	DurationMs int64 `json:"durationMs"`
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	var req countReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	g, err := domain.FromCells(req.Board)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	n, st, err := s.uc.Count(r.Context(), g, req.Limit)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, countResp{
		Count:      n,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Spot `json:"conflicts,omitempty"`
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	g, err := domain.FromCells(req.Board)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	ok, conflicts, err := s.uc.Validate(r.Context(), g)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [9][9]uint8 `json:"board"`
}

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func (s *Server) hint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	g, err := domain.FromCells(req.Board)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	h, found, err := s.uc.Hint(r.Context(), g)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &h
	}
	render.JSON(w, r, resp)
}

// ---- Generate ----

type generateReq struct {
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResp struct {
	Board      [9][9]uint8 `json:"board"`
	Solution   [9][9]uint8 `json:"solution"`
	Seed       int64       `json:"seed"`
	Difficulty string      `json:"difficulty"`
	Givens     int         `json:"givens"`
	Nodes      int         `json:"nodes"`
	DurationMs int64       `json:"durationMs"`
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	// An empty body means "generate with defaults".
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := s.uc.Generate(r.Context(), seed, diff)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.JSON(w, r, generateResp{
		Board:      p.Givens.Cells(),
		Solution:   p.Solution.Cells(),
		Seed:       p.Seed,
		Difficulty: p.Difficulty.String(),
		Givens:     p.Givens.FilledCount(),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Render ----

type renderReq struct {
	Board [9][9]uint8 `json:"board"`
}

func (s *Server) renderText(w http.ResponseWriter, r *http.Request) {
	var req renderReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errBadRequest)
		return
	}
	g, err := domain.FromCells(req.Board)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, newError(err.Error()))
		return
	}
	render.PlainText(w, r, gridrender.Text(g))
}
