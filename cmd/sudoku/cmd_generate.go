package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/render"
)

var (
	commandGenerateFlagSeed       int64
	commandGenerateFlagDifficulty string
	commandGenerateFlagSolution   bool
)

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique completion",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	commandGenerate.Flags().Int64Var(&commandGenerateFlagSeed, "seed", 0, "random seed (0 = time based)")
	commandGenerate.Flags().StringVarP(&commandGenerateFlagDifficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	commandGenerate.Flags().BoolVar(&commandGenerateFlagSolution, "solution", false, "also print the solution")
	mainCommand.AddCommand(commandGenerate)
}

func runGenerate() error {
	diff, err := domain.ParseDifficulty(commandGenerateFlagDifficulty)
	if err != nil {
		return err
	}
	seed := commandGenerateFlagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := newService().Generate(context.Background(), seed, diff)
	if err != nil {
		return err
	}
	os.Stdout.WriteString(render.Text(p.Givens))
	if commandGenerateFlagSolution {
		os.Stdout.WriteString("\n")
		os.Stdout.WriteString(render.Text(p.Solution))
	}
	logrus.WithFields(logrus.Fields{
		"seed":       p.Seed,
		"difficulty": p.Difficulty.String(),
		"givens":     p.Givens.FilledCount(),
		"nodes":      st.Nodes,
		"elapsed":    st.Duration,
	}).Info("generated")
	return nil
}
