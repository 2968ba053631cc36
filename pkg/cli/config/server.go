package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Server holds configuration of the interactive form server
type Server struct {
	Addr     string
	CacheTTL time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("SLACKINVITE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "How long member and channel listings are reused between form requests (0 disables caching)",
			Value:       usecase.DefaultCacheTTL,
			Sources:     cli.EnvVars("SLACKINVITE_CACHE_TTL"),
			Destination: &s.CacheTTL,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Duration("cache_ttl", s.CacheTTL),
	)
}
