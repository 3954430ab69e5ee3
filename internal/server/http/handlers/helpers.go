package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solanera/ventaflow/internal/adapter/identity"
	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/server/http/middleware"
)

// CurrentIdentity extracts the resolved acting identity from context.
func CurrentIdentity(c *gin.Context) identity.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return identity.Identity{}
	}
	ident, _ := val.(identity.Identity)
	return ident
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// renderWorkflowError maps a workflow rule violation to an HTTP status with
// the rule named in the body, so the dashboard can explain the rule rather
// than show a generic failure.
func renderWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrOutOfOrderTransition),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrDocumentsNotReady),
		errors.Is(err, domainErrors.ErrStepNotActive),
		errors.Is(err, domainErrors.ErrDocumentPending),
		errors.Is(err, domainErrors.ErrAlreadyReviewed),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrEmptyContent),
		errors.Is(err, domainErrors.ErrRejectionNotes),
		errors.Is(err, domainErrors.ErrEmptyStepPlan),
		errors.Is(err, domainErrors.ErrInvalidAmount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
