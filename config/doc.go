/*
Package config loads search engine settings from YAML or JSON and turns
them into astar options.

# Basic Usage

	cfg, err := config.FromFile("search.yaml")
	if err != nil {
	    return err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
	    return err
	}
	res, err := astar.Search(ctx, start, goal, opts...)

# File Format

	tie_break: lifo        # fifo (default) or lifo
	max_expansions: 50000  # 0 means unbounded
	workers: 4             # SearchAll pool size, 0 means one per CPU
	metrics: true          # record OpenTelemetry metrics
	tracing: true          # record OpenTelemetry spans
	log_level: debug       # debug, info, warn or error
*/
package config
