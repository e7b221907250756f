package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mwalkiewicz/corpscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Domains  corpscan.DomainService
	Analysis corpscan.AnalysisService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or more domains"`
	Add     AddCmd     `cmd:"" help:"Register a domain for analysis"`
	List    ListCmd    `cmd:"" help:"List all tracked domains"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a tracked domain"`
	Serve   ServeCmd   `cmd:"" help:"Run the API server and background worker"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Domains   []string `arg:"" help:"Bare domain names, e.g. example.com"`
	Snapshots string   `short:"s" help:"Directory for markdown snapshots of fetched pages"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Domain string `arg:"" help:"Bare domain name, e.g. example.com"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Domain string `arg:"" help:"Bare domain name"`
	Force  bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8080" env:"PORT" help:"Listen address or port"`
	Interval string `default:"1m" help:"Worker sweep interval, e.g. 30s, 5m"`
}
