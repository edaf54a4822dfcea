package handler

import (
	"io"

	"gamevault/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// StreamEvents godoc
// @Summary      Subscribe to library events
// @Description  Streams post-commit library-changed events (entity added) over SSE.
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200 {string} string "SSE stream"
// @Router       /events [get]
func StreamEvents(c *gin.Context) {
	client := make(hub.Client, 16)
	hub.GlobalHub.Subscribe(hub.TopicLibrary, client)
	defer hub.GlobalHub.Unsubscribe(hub.TopicLibrary, client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
