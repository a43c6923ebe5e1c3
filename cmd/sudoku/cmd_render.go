package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ysraell/sudoku/internal/render"
)

var commandRender = &cobra.Command{
	Use:   "render [grid-file]",
	Short: "Reprint a grid in the canonical block form",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mainCommand.AddCommand(commandRender)
}

func runRender(args []string) error {
	g, err := readGridArg(args)
	if err != nil {
		return err
	}
	os.Stdout.WriteString(render.Text(g))
	return nil
}
