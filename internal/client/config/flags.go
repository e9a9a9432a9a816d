package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/skillswap/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about; everything else in
// args (such as -c) is filtered out first through flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-catalog", "-dsn", "-log-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.DurationVar(&cfg.Delay, "d", cfg.Delay, "artificial latency of sign-in, refresh and post")
	fs.StringVar(&cfg.CatalogBackend, "catalog", cfg.CatalogBackend, "catalog backend (sqlite or memory)")
	fs.StringVar(&cfg.CatalogDSN, "dsn", cfg.CatalogDSN, "SQLite DSN of the catalog store")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return fs.Parse(args)
}
