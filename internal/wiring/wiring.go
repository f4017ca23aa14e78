// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/tanji-dg/cmt/internal/adapters/config"
	_ "github.com/tanji-dg/cmt/internal/adapters/fs"
	_ "github.com/tanji-dg/cmt/internal/adapters/logger"
	_ "github.com/tanji-dg/cmt/internal/adapters/proc"
	_ "github.com/tanji-dg/cmt/internal/adapters/telemetry"
	_ "github.com/tanji-dg/cmt/internal/adapters/variants"
	// Register app and engine nodes.
	_ "github.com/tanji-dg/cmt/internal/app"
	_ "github.com/tanji-dg/cmt/internal/engine/driver"
)
