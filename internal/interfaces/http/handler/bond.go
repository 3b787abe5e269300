package handler

import (
	appbilling "github.com/bondtrack/backend/internal/application/billing"
	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BondHandler handles a person's bond section. Creating or updating a
// bond with a positive amount guarantees its invoice exists.
type BondHandler struct {
	BaseHandler
	service *appbilling.BondService
}

// NewBondHandler creates a new BondHandler
func NewBondHandler(service *appbilling.BondService) *BondHandler {
	return &BondHandler{service: service}
}

func (h *BondHandler) bind(c *gin.Context) (appbilling.BondInput, bool) {
	var req dto.BondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid bond payload")
		return appbilling.BondInput{}, false
	}
	date, err := dto.ParseDatePtr(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid bond date")
		return appbilling.BondInput{}, false
	}
	return appbilling.BondInput{
		Amount:      req.Amount,
		Date:        date,
		Offense:     req.Offense,
		PowerNumber: req.PowerNumber,
		Status:      billing.BondStatus(req.Status),
	}, true
}

// List handles GET /api/v1/people/:id/bonds
func (h *BondHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewBondListResponse(items))
}

// Create handles POST /api/v1/people/:id/bonds
func (h *BondHandler) Create(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Create(c.Request.Context(), tenantID, personID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewBondResponse(item))
}

// Get handles GET /api/v1/people/:id/bonds/:childID
func (h *BondHandler) Get(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	childID, err := parseUUIDParam(c, "childID")
	if err != nil {
		h.NotFound(c)
		return
	}
	item, err := h.service.Get(c.Request.Context(), tenantID, personID, childID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewBondResponse(item))
}

// Update handles PUT /api/v1/people/:id/bonds/:childID
func (h *BondHandler) Update(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	childID, err := parseUUIDParam(c, "childID")
	if err != nil {
		h.NotFound(c)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Update(c.Request.Context(), tenantID, personID, childID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewBondResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/bonds/:childID
func (h *BondHandler) Delete(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	childID, err := parseUUIDParam(c, "childID")
	if err != nil {
		h.NotFound(c)
		return
	}
	if err := h.service.Delete(c.Request.Context(), tenantID, personID, childID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
