package interfaces

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for the lookup history store.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// RecordLookup inserts one triggered analysis request.
	RecordLookup(lookup models.MLookup) error

	// -----------------------------------------------------------------------------

	// RecentLookups returns the most recent lookups, newest first.
	RecentLookups(limit int) ([]models.MLookup, error)

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
