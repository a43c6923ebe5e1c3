package main

import (
	"context"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/render"
)

var (
	commandSolveFlagLimit   int
	commandSolveFlagStats   bool
	commandSolveFlagColor   bool
	commandSolveFlagCheck   bool
	commandSolveFlagProfile bool
)

var commandSolve = &cobra.Command{
	Use:   "solve [grid-file]",
	Short: "Print every completion of a grid",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	commandSolve.Flags().IntVarP(&commandSolveFlagLimit, "limit", "n", 0, "stop after this many solutions (0 = all)")
	commandSolve.Flags().BoolVar(&commandSolveFlagStats, "stats", false, "log nodes and duration")
	commandSolve.Flags().BoolVar(&commandSolveFlagColor, "color", false, "highlight placed digits")
	commandSolve.Flags().BoolVar(&commandSolveFlagCheck, "check", false, "reject grids whose givens conflict")
	commandSolve.Flags().BoolVar(&commandSolveFlagProfile, "profile", false, "write a CPU profile")
	mainCommand.AddCommand(commandSolve)
}

func runSolve(args []string) error {
	g, err := readGridArg(args)
	if err != nil {
		return err
	}
	if commandSolveFlagProfile {
		defer profile.Start().Stop()
	}
	uc := newService()
	ctx := context.Background()

	if commandSolveFlagCheck {
		if err := uc.Check(ctx, g); err != nil {
			return err
		}
	}

	emit := func(sol domain.Grid) {
		if commandSolveFlagColor {
			os.Stdout.WriteString(render.Colored(sol, g))
		} else {
			os.Stdout.WriteString(render.Text(sol))
		}
		os.Stdout.WriteString("\n")
	}

	if commandSolveFlagLimit > 0 {
		seq, err := uc.Solutions(ctx, g)
		if err != nil {
			return err
		}
		n := 0
		for sol := range seq {
			emit(sol)
			n++
			if n == commandSolveFlagLimit {
				break
			}
		}
		logrus.Infof("found %d solutions (limit %d)", n, commandSolveFlagLimit)
		return nil
	}

	sols, st, err := uc.Solve(ctx, g)
	if err != nil {
		return err
	}
	for _, sol := range sols {
		emit(sol)
	}
	logrus.Infof("found %d solutions", len(sols))
	if commandSolveFlagStats {
		logrus.WithFields(logrus.Fields{
			"nodes":   st.Nodes,
			"elapsed": st.Duration,
		}).Info("search stats")
	}
	return nil
}
