package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/server/http/dto"
)

// OperationHandler manages operation and step ledger endpoints.
type OperationHandler struct {
	facade OperationFacade
}

// NewOperationHandler constructs OperationHandler.
func NewOperationHandler(facade OperationFacade) *OperationHandler {
	return &OperationHandler{facade: facade}
}

// Create handles POST /api/operations.
func (h *OperationHandler) Create(c *gin.Context) {
	if CurrentIdentity(c).Role != model.UserRoleOrganization {
		c.Status(http.StatusForbidden)
		return
	}

	var req dto.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": domainErrors.ErrInvalidAmount.Error()})
		return
	}

	op, steps, err := h.facade.CreateOperation(c.Request.Context(), req.BuyerID, amount, req.Currency, req.Steps)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOperationResponse(op, steps))
}

// Get handles GET /api/operations/:id.
func (h *OperationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	op, steps, err := h.facade.Operation(c.Request.Context(), id)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	ident := CurrentIdentity(c)
	if ident.Role == model.UserRoleBuyer && op.BuyerID != ident.UserID {
		c.Status(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(op, steps))
}

// List handles GET /api/operations for the authenticated buyer.
func (h *OperationHandler) List(c *gin.Context) {
	ident := CurrentIdentity(c)
	ops, err := h.facade.BuyerOperations(c.Request.Context(), ident.UserID)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}
	if len(ops) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OperationResponse, 0, len(ops))
	for i := range ops {
		response = append(response, toOperationResponse(&ops[i], nil))
	}
	c.JSON(http.StatusOK, response)
}

// CurrentStep handles GET /api/operations/:id/steps/current.
func (h *OperationHandler) CurrentStep(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	step, err := h.facade.CurrentStep(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(*step))
}

// StartNext handles POST /api/operations/:id/steps/start.
func (h *OperationHandler) StartNext(c *gin.Context) {
	if CurrentIdentity(c).Role != model.UserRoleOrganization {
		c.Status(http.StatusForbidden)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	step, err := h.facade.StartNextStep(c.Request.Context(), id)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(*step))
}

// CompleteCurrent handles POST /api/operations/:id/steps/complete.
func (h *OperationHandler) CompleteCurrent(c *gin.Context) {
	if CurrentIdentity(c).Role != model.UserRoleOrganization {
		c.Status(http.StatusForbidden)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	step, err := h.facade.CompleteCurrentStep(c.Request.Context(), id)
	if err != nil {
		renderWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(*step))
}

func toOperationResponse(op *model.Operation, steps []model.Step) dto.OperationResponse {
	resp := dto.OperationResponse{
		ID:          op.ID,
		BuyerID:     op.BuyerID,
		TotalAmount: op.TotalAmount.StringFixed(2),
		Currency:    op.Currency,
		Status:      string(op.Status),
		CreatedAt:   op.CreatedAt,
	}
	for _, s := range steps {
		resp.Steps = append(resp.Steps, toStepResponse(s))
	}
	return resp
}

func toStepResponse(s model.Step) dto.StepResponse {
	return dto.StepResponse{
		ID:        s.ID,
		StepOrder: s.StepOrder,
		StepName:  s.StepName,
		Status:    string(s.Status),
		UpdatedAt: s.UpdatedAt,
	}
}
