package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/api/handlers"
	"github.com/linskybing/creative-desk/internal/api/middleware"
)

// TicketRoutes registers tickets, their workflow actions and nested resources.
func TicketRoutes(rg *gin.RouterGroup, h *handlers.Handlers, authMiddleware *middleware.Auth) {
	tickets := rg.Group("/tickets")
	{
		tickets.POST("", h.Ticket.CreateTicket)
		tickets.GET("", h.Ticket.ListTickets)
		tickets.GET("/:id", h.Ticket.GetTicket)
		tickets.PUT("/:id", h.Ticket.UpdateTicket)
		tickets.DELETE("/:id", authMiddleware.Admin(), h.Ticket.DeleteTicket)
		tickets.POST("/:id/:action", h.Ticket.ApplyAction)

		tickets.GET("/:id/comments", h.Comment.ListComments)
		tickets.POST("/:id/comments", h.Comment.AddComment)
		tickets.DELETE("/:id/comments/:comment_id", h.Comment.DeleteComment)

		tickets.GET("/:id/attachments", h.Attachment.ListAttachments)
		tickets.POST("/:id/attachments", h.Attachment.UploadAttachment)
		tickets.GET("/:id/attachments/:attachment_id/download", h.Attachment.DownloadAttachment)
		tickets.DELETE("/:id/attachments/:attachment_id", h.Attachment.DeleteAttachment)

		tickets.GET("/:id/collaborators", h.Collaborator.ListCollaborators)
		tickets.POST("/:id/collaborators", h.Collaborator.AddCollaborator)
		tickets.DELETE("/:id/collaborators/:user_id", h.Collaborator.RemoveCollaborator)

		tickets.GET("/:id/activity", h.Activity.ListTicketActivity)
	}
}
