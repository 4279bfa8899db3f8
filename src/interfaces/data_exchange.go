package interfaces

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger is the surface the pipeline uses to publish a completed
// analysis to connected dashboard clients.
// -----------------------------------------------------------------------------

type IDataExchanger interface {

	// -----------------------------------------------------------------------------

	// Broadcast pushes a completed analysis result to all connected clients.
	Broadcast(result *models.MAnalysisResult)

	// -----------------------------------------------------------------------------

	// Start the server (blocking).
	Start() error

	// -----------------------------------------------------------------------------

	// Stop the server gracefully
	Stop() error
}
