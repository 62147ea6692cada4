package http

import (
	dbreports "github.com/mrlokans/libman/internal/database/reports"
	"github.com/mrlokans/libman/internal/records"
)

// This file consolidates the interface wiring between controllers and
// their backing services. Each controller defines its own interface
// (Interface Segregation Principle); the checks below pin the concrete
// implementations at compile time.

var (
	_ CatalogService     = (*records.Service)(nil)
	_ MemberService      = (*records.Service)(nil)
	_ CirculationService = (*records.Service)(nil)
	_ ReportStore        = (*dbreports.Repository)(nil)
)
