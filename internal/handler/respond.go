package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/errs"
)

// respondError maps the domain error taxonomy onto HTTP statuses: validation
// 400, not-found 404, bad reference 422, tracking collision 409, anything
// else 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrReference):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrCollision):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
