package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/astar/v2"
	"github.com/pdrpinto/astar/v2/config"
	"github.com/pdrpinto/astar/v2/grid"
)

type solution struct {
	Scenario string       `json:"scenario"`
	Found    bool         `json:"found"`
	Cost     int          `json:"cost"`
	Expanded int          `json:"expanded"`
	Visited  int          `json:"visited"`
	Path     []grid.Point `json:"path"`
}

func runSolve(cmd *cobra.Command, args []string, flags *solveFlags) error {
	if flags.format != "text" && flags.format != "json" {
		return fmt.Errorf("unknown format %q", flags.format)
	}

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.FromFile(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}
	opts = append(opts, astar.WithSearchID(uuid.New().String()))

	queries := make([]astar.Query[grid.Point], 0, len(args))
	for _, path := range args {
		scenario, err := grid.LoadScenario(path)
		if err != nil {
			return err
		}
		_, start, goal, err := scenario.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		queries = append(queries, astar.Query[grid.Point]{Start: start, Goal: goal})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := astar.SearchAll(ctx, queries, opts...)
	if err != nil {
		return err
	}

	solutions := make([]solution, len(results))
	for i, res := range results {
		solutions[i] = solution{
			Scenario: args[i],
			Found:    res.Found,
			Cost:     res.Cost,
			Expanded: res.Expanded,
			Visited:  res.Visited,
			Path:     res.Path,
		}
	}

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solutions)
	}
	for i, s := range solutions {
		writeText(out, s, queries[i])
	}
	return nil
}

func writeText(out io.Writer, s solution, query astar.Query[grid.Point]) {
	if !s.Found {
		fmt.Fprintf(out, "%s: no path from %s to %s (visited %d)\n", s.Scenario, query.Start, query.Goal, s.Visited)
		return
	}
	steps := make([]string, len(s.Path))
	for i, p := range s.Path {
		steps[i] = p.String()
	}
	fmt.Fprintf(out, "%s: %d steps (expanded %d, visited %d)\n", s.Scenario, s.Cost, s.Expanded, s.Visited)
	fmt.Fprintf(out, "  %s\n", strings.Join(steps, " -> "))
}
