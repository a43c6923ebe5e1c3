package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "github.com/ysraell/sudoku/internal/adapters/http"
)

var commandServeFlagAddr string

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			logrus.Fatal(err)
		}
	},
	Args: cobra.NoArgs,
}

func init() {
	commandServe.Flags().StringVar(&commandServeFlagAddr, "addr", ":8080", "listen address")
	mainCommand.AddCommand(commandServe)
}

func runServe() error {
	logger := logrus.StandardLogger()
	server := httpadapter.NewServer(logger, newService())

	srv := &http.Server{
		Addr:              commandServeFlagAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		osSignals := make(chan os.Signal, 1)
		signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
		<-osSignals
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	logger.WithField("addr", commandServeFlagAddr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
