package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/creative-desk/internal/api/middleware"
	"github.com/linskybing/creative-desk/internal/realtime"
	"github.com/linskybing/creative-desk/pkg/logger"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.AllowOrigin(origin)
	},
}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// StreamNotifications godoc
// @Summary Live notification stream
// @Description Upgrades to a websocket. Each new notification is pushed as {"type":"notification","data":{...}}. The token may be passed as ?token= for browsers.
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "JWT when headers cannot be set"
// @Success 101
// @Failure 401 {object} response.ErrorResponse
// @Router /ws/notifications [get]
func (h *WSHandler) StreamNotifications(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "live updates are disabled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn().Err(err).Uint("user_id", uid).Msg("websocket upgrade failed")
		return
	}
	h.hub.Serve(uid, conn)
}
