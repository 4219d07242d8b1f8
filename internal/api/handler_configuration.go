package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"visa-admin-backend/internal/form"
)

type configurationRequest struct {
	BaseURL    string `json:"base_url"`
	HubAddress string `json:"hub_address"`
	SleepTime  string `json:"sleep_time"`
	PushToken  string `json:"push_token"`
	PushUser   string `json:"push_user"`
	DfMsg      string `json:"df_msg"`
}

// GetConfiguration handles GET /api/configuration.
func (h *Handler) GetConfiguration(c *gin.Context) {
	cfg, err := h.configuration.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfiguration handles PUT /api/configuration/:id. The settings
// record is validated as a whole; an out-of-range sleep_time never reaches
// the remote service.
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	current, err := h.configuration.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f := form.NewConfigurationForm(current)
	f.Set("base_url", req.BaseURL)
	f.Set("hub_address", req.HubAddress)
	f.Set("sleep_time", req.SleepTime)
	f.Set("push_token", req.PushToken)
	f.Set("push_user", req.PushUser)
	f.Set("df_msg", req.DfMsg)

	payload, ok := f.UpdatePayload()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": f.Errors()})
		return
	}

	updated, err := h.configuration.Update(c.Request.Context(), id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
