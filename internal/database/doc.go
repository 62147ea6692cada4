// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration
//	├── records/         # Per-entity listing and insert operations
//	└── reports/         # Read-only aggregation queries
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./library.db")
//
//	// Create domain-specific repositories
//	recordsRepo := records.NewRepository(db.DB)
//	reportsRepo := reports.NewRepository(db.DB)
//
//	// Use repositories
//	books, err := recordsRepo.ListBooks()
//	stats, err := reportsRepo.DashboardStats()
//
// Repositories execute parameterized SQL against the shared connection pool
// and surface driver-level errors (constraint violations, type errors)
// without interpretation; translation into domain error categories happens
// one layer up, in internal/records.
//
// # Adding a New Domain
//
// To add a new domain (e.g., acquisitions):
//
//  1. Create a new sub-package: internal/database/acquisitions/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
