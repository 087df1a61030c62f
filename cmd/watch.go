package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManouchehrRasoulli/notefs/pkg/logger"
	"github.com/ManouchehrRasoulli/notefs/pkg/model"
	"github.com/ManouchehrRasoulli/notefs/pkg/protocol"
	"github.com/ManouchehrRasoulli/notefs/pkg/watcher"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var watchConfiguration struct {
	metricsAddress string
}

var watchCommand = &cobra.Command{
	Use:   "watch <directory>...",
	Short: "Print created, deleted and changed paths until interrupted",
	Args:  cobra.MinimumNArgs(1),
	RunE:  watchMain,
}

func init() {
	watchCommand.Flags().StringVar(&watchConfiguration.metricsAddress, "metrics-address", "",
		"serve prometheus metrics on this address while watching")
}

func colorFor(op model.Op) logger.Color {
	switch op {
	case model.Created:
		return logger.ColorGreen
	case model.Deleted:
		return logger.ColorRed
	default:
		return logger.ColorYellow
	}
}

func watchMain(cmd *cobra.Command, args []string) error {
	a := current
	reg := prometheus.NewRegistry()

	registry, err := watcher.NewRegistry(
		watcher.WithLogger(a.lg),
		watcher.WithBufferSize(a.cfg.Watch.BufferSize),
		watcher.WithIgnorePatterns(a.cfg.Watch.Ignore...),
		watcher.WithMetrics(reg))
	if err != nil {
		return err
	}
	defer registry.Close()

	if watchConfiguration.metricsAddress != "" {
		srv := &http.Server{
			Addr:    watchConfiguration.metricsAddress,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.status.Printcf(logger.ColorRed, "watch notefs : metrics server %v", err)
			}
		}()
		defer srv.Close()
	}

	ch, cancel := registry.Subscribe()
	defer cancel()

	roots := make(map[string]string, len(args))
	for _, path := range args {
		id, err := registry.Start(path)
		if err != nil {
			return err
		}
		roots[id] = path
		a.status.Printcf(logger.ColorGreen, "watch notefs : watcher %s on %s", id, path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = consume(ctx, ch, roots)

	for id := range roots {
		if serr := registry.Stop(id); serr != nil {
			err = errors.Join(err, serr)
		}
		a.status.Printcf(logger.ColorBlue, "watch notefs : stopped watcher %s", id)
	}

	return err
}

func consume(ctx context.Context, ch <-chan model.Notification, roots map[string]string) error {
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return nil
			}

			if _, known := roots[n.WatcherID]; !known {
				continue
			}

			if rootConfiguration.json {
				heading := map[string]interface{}{"root": roots[n.WatcherID]}
				if err := current.enc.Encode(protocol.ChangeNotify, heading, protocol.NewChangeNotify(n)); err != nil {
					return err
				}
				continue
			}
			current.printer.Printcf(colorFor(n.Op), "%s", n)
		case <-ctx.Done():
			return nil
		}
	}
}
