package worker

import (
	"github.com/cascade-freight/chatbot-service/internal/service"
)

// StartDiagnosticsWorker registers event diagnostics handlers.
func StartDiagnosticsWorker(diagnosticsService *service.DiagnosticsService) {
	if diagnosticsService == nil {
		return
	}
	diagnosticsService.RegisterHandlers()
}
