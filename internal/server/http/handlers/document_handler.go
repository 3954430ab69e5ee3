package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/server/http/dto"
)

// DocumentHandler manages document upload, review, and listing endpoints.
type DocumentHandler struct {
	facade    DocumentFacade
	maxUpload int64
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(facade DocumentFacade, maxUpload int64) *DocumentHandler {
	return &DocumentHandler{facade: facade, maxUpload: maxUpload}
}

// Upload handles POST /api/operations/:id/steps/:stepID/documents.
// Multipart form: "file" part plus a "document_type" field.
func (h *DocumentHandler) Upload(c *gin.Context) {
	operationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stepID, ok := pathID(c, "stepID")
	if !ok {
		return
	}

	documentType := strings.TrimSpace(c.PostForm("document_type"))
	if documentType == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		c.Status(http.StatusRequestEntityTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	doc, err := h.facade.UploadDocument(c.Request.Context(), operationID, stepID, CurrentIdentity(c), documentType, fileHeader.Filename, mimeType, content)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDocumentResponse(*doc))
}

// Review handles POST /api/documents/:id/review.
func (h *DocumentHandler) Review(c *gin.Context) {
	if CurrentIdentity(c).Role != model.UserRoleOrganization {
		c.Status(http.StatusForbidden)
		return
	}

	documentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	decision := model.ReviewDecision(req.Decision)
	if decision != model.ReviewDecisionValidated && decision != model.ReviewDecisionRejected {
		c.Status(http.StatusBadRequest)
		return
	}

	doc, err := h.facade.ReviewDocument(c.Request.Context(), documentID, decision, req.Notes)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(*doc))
}

// List handles GET /api/steps/:id/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	stepID, ok := pathID(c, "id")
	if !ok {
		return
	}

	docs, err := h.facade.StepDocuments(c.Request.Context(), stepID)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	response := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		response = append(response, toDocumentResponse(d))
	}
	c.JSON(http.StatusOK, response)
}

func toDocumentResponse(d model.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:           d.ID,
		StepID:       d.StepID,
		OperationID:  d.OperationID,
		UploaderID:   d.UploaderID,
		UploaderRole: string(d.UploaderRole),
		DocumentType: d.DocumentType,
		URL:          d.File.URL,
		FileName:     d.File.FileName,
		FileSize:     d.File.FileSize,
		MimeType:     d.File.MimeType,
		Status:       string(d.Status),
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
}
