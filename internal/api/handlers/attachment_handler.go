package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

const multipartSlack = 1 << 20

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// ListAttachments godoc
// @Summary List attachments on a ticket
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.Attachment
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	list, err := h.svc.ListAttachments(uid, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UploadAttachment godoc
// @Summary Upload a file to a ticket
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param file formData file true "File"
// @Success 201 {object} ticket.Attachment
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage unavailable"
// @Router /tickets/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	if limit := h.svc.MaxBytes(); limit > 0 {
		// leave room for the multipart envelope, the service checks the file itself
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartSlack)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, application.ErrFileTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read uploaded file"})
		return
	}
	defer f.Close()

	a, err := h.svc.UploadAttachment(c.Request.Context(), uid, ticketID, application.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// DownloadAttachment godoc
// @Summary Download an attachment
// @Tags attachments
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param attachment_id path int true "Attachment ID"
// @Success 200 {file} file
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments/{attachment_id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	a, body, err := h.svc.OpenAttachment(c.Request.Context(), uid, ticketID, attachmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": a.FileName})
	c.DataFromReader(http.StatusOK, a.Size, a.ContentType, body, map[string]string{
		"Content-Disposition": disposition,
		"Cache-Control":       "private, max-age=300",
	})
}

// DeleteAttachment godoc
// @Summary Delete an attachment (uploader or admin)
// @Tags attachments
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param attachment_id path int true "Attachment ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments/{attachment_id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.DeleteAttachment(c.Request.Context(), uid, ticketID, attachmentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
