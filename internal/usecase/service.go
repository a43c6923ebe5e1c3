package usecase

import (
	"context"
	"errors"
	"iter"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/ports"
)

// Service bundles the ports behind one façade for the adapters.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid) ([]domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Solutions(ctx context.Context, g domain.Grid) (iter.Seq[domain.Grid], error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return u.Solver.Solutions(ctx, g), nil
}

func (u *Service) Count(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Count(ctx, g, limit)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.Spot, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Check(ctx context.Context, g domain.Grid) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.Check(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}
