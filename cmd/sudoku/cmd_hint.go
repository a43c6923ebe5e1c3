package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var commandHint = &cobra.Command{
	Use:   "hint [grid-file]",
	Short: "Suggest the next forced placement, if one exists",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHint(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mainCommand.AddCommand(commandHint)
}

func runHint(args []string) error {
	g, err := readGridArg(args)
	if err != nil {
		return err
	}
	h, found, err := newService().Hint(context.Background(), g)
	if err != nil {
		return err
	}
	if !found {
		return errors.New("no naked single in this grid")
	}
	fmt.Printf("row %d col %d: %s\n", h.At.Row+1, h.At.Col+1, h.Message)
	return nil
}
