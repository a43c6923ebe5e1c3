package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/generator"
	"github.com/ysraell/sudoku/internal/hint"
	"github.com/ysraell/sudoku/internal/solver"
	"github.com/ysraell/sudoku/internal/usecase"
	"github.com/ysraell/sudoku/internal/validator"
)

var logLevel string

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "Enumerate every completion of a 9x9 Sudoku grid",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatal("parse log level: ", err)
		}
		logrus.StandardLogger().SetLevel(level)
	},
}

func init() {
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).ForceColors = true
	mainCommand.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set log level")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// newService wires providers into the use case façade.
func newService() *usecase.Service {
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles())
}

// readGridArg loads a grid from the file named by args, or from stdin
// when no file (or "-") is given.
func readGridArg(args []string) (domain.Grid, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(io.LimitReader(os.Stdin, 1<<20))
	}
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.ParseGrid(string(data))
}
