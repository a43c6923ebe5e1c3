package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var commandValidate = &cobra.Command{
	Use:   "validate [grid-file]",
	Short: "Check a grid's givens for row/column/box conflicts",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	mainCommand.AddCommand(commandValidate)
}

func runValidate(args []string) error {
	g, err := readGridArg(args)
	if err != nil {
		return err
	}
	ok, conflicts, err := newService().Validate(context.Background(), g)
	if err != nil {
		return err
	}
	if !ok {
		for _, at := range conflicts {
			logrus.Warnf("conflict at row %d col %d", at.Row+1, at.Col+1)
		}
		return errors.New("grid has conflicting givens")
	}
	fmt.Println("ok")
	return nil
}
