package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/server/http/dto"
)

// CommentHandler manages step annotation endpoints.
type CommentHandler struct {
	facade CommentFacade
}

// NewCommentHandler constructs CommentHandler.
func NewCommentHandler(facade CommentFacade) *CommentHandler {
	return &CommentHandler{facade: facade}
}

// Add handles POST /api/steps/:id/comments.
func (h *CommentHandler) Add(c *gin.Context) {
	stepID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ident := CurrentIdentity(c)
	isInternal := req.IsInternal && ident.Role == model.UserRoleOrganization

	comment, err := h.facade.AddComment(c.Request.Context(), stepID, ident, req.Content, isInternal)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(*comment))
}

// List handles GET /api/steps/:id/comments. Internal annotations stay on
// the organization side.
func (h *CommentHandler) List(c *gin.Context) {
	stepID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.facade.StepComments(c.Request.Context(), stepID)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	ident := CurrentIdentity(c)
	response := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		if comment.IsInternal && ident.Role != model.UserRoleOrganization {
			continue
		}
		response = append(response, toCommentResponse(comment))
	}
	c.JSON(http.StatusOK, response)
}

func toCommentResponse(c model.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:         c.ID,
		StepID:     c.StepID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt,
	}
}
