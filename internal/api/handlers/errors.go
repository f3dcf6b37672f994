package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/pkg/logger"
	"github.com/linskybing/creative-desk/pkg/response"
)

// fieldLabels maps struct fields to the names clients send.
var fieldLabels = map[string]string{
	"Username":     "username",
	"Password":     "password",
	"OldPassword":  "old password",
	"Email":        "email",
	"FullName":     "full name",
	"Role":         "role",
	"DepartmentID": "department_id",
	"ProductID":    "product_id",
	"RequestType":  "request_type",
	"UserID":       "user_id",
}

// validationMessage turns binding errors into a message the frontend can show as is.
func validationMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			if fe.Kind().String() == "string" {
				msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
			}
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: validationMessage(err)})
}

var notFoundErrors = []error{
	application.ErrUserNotFound,
	application.ErrDepartmentNotFound,
	application.ErrProductNotFound,
	application.ErrTicketNotFound,
	application.ErrCommentNotFound,
	application.ErrAttachmentNotFound,
	application.ErrCollaboratorNotFound,
	application.ErrNotificationNotFound,
}

var conflictErrors = []error{
	application.ErrUsernameTaken,
	application.ErrUserInUse,
	application.ErrDepartmentExists,
	application.ErrDepartmentInUse,
	application.ErrProductExists,
	application.ErrProductInUse,
	application.ErrCollaboratorExists,
	application.ErrVersionConflict,
	ticket.ErrInvalidTransition,
}

var badRequestErrors = []error{
	application.ErrMissingOldPassword,
	application.ErrIncorrectPassword,
	application.ErrDepartmentInactive,
	application.ErrProductMismatch,
	application.ErrReasonRequired,
	application.ErrAssigneeRequired,
	application.ErrAssigneeNotFound,
	application.ErrEmptyComment,
	application.ErrEmptyFile,
	application.ErrInvalidRange,
	ticket.ErrUnknownAction,
}

var forbiddenErrors = []error{
	application.ErrForbidden,
	application.ErrTicketLocked,
	application.ErrReservedAdminUser,
	application.ErrUserInactive,
}

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case matches(err, notFoundErrors):
		return http.StatusNotFound
	case matches(err, conflictErrors):
		return http.StatusConflict
	case matches(err, badRequestErrors):
		return http.StatusBadRequest
	case matches(err, forbiddenErrors):
		return http.StatusForbidden
	case errors.Is(err, application.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, application.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are logged and
// reported without detail.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		logger.Log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(status, response.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
