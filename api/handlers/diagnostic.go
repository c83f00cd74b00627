package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/models"
)

// Diagnostic exported for testing purposes
type Diagnostic struct {
	DB databases.DatabaseHelper
}

// RootHandler reports that the backend is up
func (d Diagnostic) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.RootResponse{Message: "fortimeet-api backend running"})
}

// DatabaseDiagnosticHandler reports database connectivity and lists up to
// ten collection names. Database failures are reported inside the response
// body, never as a 5xx.
func (d Diagnostic) DatabaseDiagnosticHandler(w http.ResponseWriter, r *http.Request) {
	resp := models.DiagnosticResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if d.DB != nil {
		resp.DatabaseName = d.DB.Name()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := d.DB.Client().Ping(ctx); err != nil {
			resp.Database = "error: " + truncateError(err)
		} else {
			resp.Database = "available"
			resp.ConnectionStatus = "connected"

			names, err := d.DB.CollectionNames(ctx)
			if err != nil {
				resp.Database = "connected but error: " + truncateError(err)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				resp.Collections = names
				resp.Database = "connected and working"
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func truncateError(err error) string {
	s := err.Error()
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
