package server

import (
	"log/slog"
)

// Spec holds the runtime parameters of a treed server.
type Spec struct {
	Config *Config
	Addr   string // TCP listen address, overrides Config.Addr
	Log    *slog.Logger
}
