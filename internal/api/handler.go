package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"visa-admin-backend/internal/mw"
	"visa-admin-backend/internal/remote"
	"visa-admin-backend/internal/service"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	applicants    *service.ApplicantService
	reSchedules   *service.ReScheduleService
	configuration *service.ConfigurationService
	remote        *remote.Client
	sessions      *mw.SessionManager
}

// NewHandler creates a new API handler.
func NewHandler(
	applicants *service.ApplicantService,
	reSchedules *service.ReScheduleService,
	configuration *service.ConfigurationService,
	rc *remote.Client,
	sessions *mw.SessionManager,
) *Handler {
	return &Handler{
		applicants:    applicants,
		reSchedules:   reSchedules,
		configuration: configuration,
		remote:        rc,
		sessions:      sessions,
	}
}

// respondError maps an upstream failure onto the gateway's response. Client
// mistakes echoed by the remote service keep their detail; transport and
// server failures become a generic retry-suggesting message with the detail
// logged.
func respondError(c *gin.Context, err error) {
	var apiErr *remote.APIError

	switch {
	case errors.Is(err, remote.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &apiErr) && apiErr.StatusCode < 500 && apiErr.Detail != "":
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Detail})
	default:
		log.Printf("remote call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "The remote service is unavailable. Please try again."})
	}
}

// requireConfirmation implements the destructive-action gate: a delete is
// only dispatched when the caller explicitly confirms it.
func requireConfirmation(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"error": "confirmation required: retry with ?confirm=true",
		})
		return false
	}
	return true
}
