package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/internal/dashboard"
	"pulse/internal/model"
	"pulse/internal/utils"
)

// getConversations renders the logged history as the message thread the
// conversation view displays.
func (h *Handler) getConversations(c *gin.Context) {
	records, err := h.logbook.History()
	if err != nil {
		log.Printf("[Conversations] Failed to read history: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to read conversation history")
		return
	}

	messages := make([]model.Message, 0, len(records)*2)
	for _, rec := range records {
		messages = append(messages, rec.Messages()...)
	}

	utils.Success(c, gin.H{
		"messages": messages,
	})
}

// listRelationships returns the tracked relationships for the dashboard
// selector.
func (h *Handler) listRelationships(c *gin.Context) {
	relationships := h.dashboards.Relationships()

	items := make([]gin.H, 0, len(relationships))
	for _, r := range relationships {
		items = append(items, gin.H{
			"id":   r.ID,
			"name": r.Name,
			"type": r.Type,
		})
	}

	utils.Success(c, gin.H{
		"relationships": items,
	})
}

// getRelationshipDashboard returns the full dashboard payload for one
// relationship, with the computed averages the header cards show.
func (h *Handler) getRelationshipDashboard(c *gin.Context) {
	id := c.Param("relationship_id")

	r, ok := h.dashboards.Relationship(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "relationship not found")
		return
	}

	utils.Success(c, gin.H{
		"relationship": r,
		"summary":      dashboard.Summarize(r),
	})
}
