package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/dto"
	"github.com/mdfaizanashrafi/sovereon/internal/middleware"
)

// respondSuccess writes data in the uniform response envelope.
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.SuccessResponse(data))
}

// respondError maps any error to the envelope exactly once at the
// boundary. Internal errors are logged with their cause but surface only a
// generic message.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", appErr.Error()))
	}
	c.JSON(appErr.Status, dto.ErrorResponse(appErr.Code, appErr.Message))
}

// bindStrictJSON decodes a request body rejecting unknown fields, then runs
// the struct through the binding validator. Malformed input never reaches
// business logic.
func bindStrictJSON(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return apperrors.NewValidationError(validationMessage(err))
	}
	return nil
}

// validationMessage flattens validator field errors into a single
// human-readable message, e.g. "email is invalid, password is too short".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation error: " + err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email address")
		case "min":
			parts = append(parts, field+" must be at least "+fe.Param()+" characters")
		case "max":
			parts = append(parts, field+" must be at most "+fe.Param()+" characters")
		case "oneof":
			parts = append(parts, field+" must be one of: "+fe.Param())
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, ", ")
}
