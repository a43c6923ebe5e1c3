package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var commandCountFlagLimit int

var commandCount = &cobra.Command{
	Use:   "count [grid-file]",
	Short: "Count the completions of a grid",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCount(args); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	commandCount.Flags().IntVarP(&commandCountFlagLimit, "limit", "n", 0, "stop counting at this many (0 = all)")
	mainCommand.AddCommand(commandCount)
}

func runCount(args []string) error {
	g, err := readGridArg(args)
	if err != nil {
		return err
	}
	n, st, err := newService().Count(context.Background(), g, commandCountFlagLimit)
	if err != nil {
		return err
	}
	fmt.Println(n)
	logrus.WithFields(logrus.Fields{
		"nodes":   st.Nodes,
		"elapsed": st.Duration,
	}).Debug("count stats")
	return nil
}
