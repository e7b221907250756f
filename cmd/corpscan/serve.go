package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mwalkiewicz/corpscan/analyze"
	corpscanhttp "github.com/mwalkiewicz/corpscan/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command: the JSON API server and the pending-
// domain worker run until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	interval, err := time.ParseDuration(c.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", c.Interval, err)
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := corpscanhttp.NewServer()
	server.Addr = listenAddr(c.Addr)
	server.DomainService = deps.Domains
	server.AnalysisService = deps.Analysis
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		return err
	}

	worker := &analyze.Worker{
		Domains:  deps.Domains,
		Analysis: deps.Analysis,
		Interval: interval,
		Logger:   deps.Logger,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})

	fmt.Fprintf(deps.Stdout, "Serving on %s\n", server.URL())

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// listenAddr accepts either a full listen address or a bare port, the
// latter being what PORT conventionally holds.
func listenAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
