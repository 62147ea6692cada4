package http

import (
	"github.com/mrlokans/libman/internal/database"
	"github.com/mrlokans/libman/internal/records"
)

// RouterConfig carries every dependency the router needs. Controllers get
// their stores from here instead of reaching for globals, which keeps
// request handling free of shared mutable state.
type RouterConfig struct {
	// Records is the record service used by all entity endpoints.
	Records *records.Service

	// Reports runs the aggregation queries for the reporting endpoints.
	Reports ReportStore

	// DB is only used by the health endpoint for connectivity checks.
	DB *database.Database

	// Version is reported by the health endpoint.
	Version string

	// ExposeErrors includes underlying store errors in 500 responses.
	// Keep it off in production.
	ExposeErrors bool
}
