package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/JonnyWalker81/pawlog/backend/internal/apierror"
	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
	"github.com/JonnyWalker81/pawlog/backend/pkg/supabase"
)

// unavailableRetryAfter is the Retry-After hint, in seconds, sent when the
// event store cannot be reached
const unavailableRetryAfter = 5

// writeError maps a service error onto a problem details response.
// resource and id name the record for 404 responses.
func writeError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]apierror.FieldError, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields = append(fields, apierror.FieldError{Field: f.Field, Message: f.Message, Code: f.Code})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
		return
	}

	if repository.IsNotFound(err) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
		return
	}

	if errors.Is(err, service.ErrConflict) {
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error()))
		return
	}

	log := logger.Ctx(c.Request.Context())

	var apiErr *supabase.APIError
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusInternalServerError) {
		log.Warn("event store unavailable", logger.Err(err), logger.String("path", c.FullPath()))
		apierror.WriteProblem(c, apierror.NewServiceUnavailableError(requestID, unavailableRetryAfter))
		return
	}

	log.Error("request failed", logger.Err(err), logger.String("path", c.FullPath()))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// bindJSON decodes the request body into req. Binding tag failures become
// field-level validation errors; anything else is a malformed body.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	requestID := apierror.GetRequestID(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apierror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			message := "is invalid"
			if fe.Tag() == "required" {
				message = "is required"
			}
			fields = append(fields, apierror.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: message,
				Code:    fe.Tag(),
			})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
		return false
	}

	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
	return false
}

// parseID reads the :id path parameter. Ids are positive integers.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apierror.WriteProblem(c, apierror.NewInvalidIDError(apierror.GetRequestID(c), raw))
		return 0, false
	}
	return id, true
}
