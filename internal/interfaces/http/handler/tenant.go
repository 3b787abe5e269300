package handler

import (
	"github.com/bondtrack/backend/internal/application/tenantapp"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant profile endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *tenantapp.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *tenantapp.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Get handles GET /api/v1/tenant
func (h *TenantHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}

	t, err := h.tenantService.Get(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewTenantResponse(t))
}

// Update handles PUT /api/v1/tenant
func (h *TenantHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}

	var req dto.TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid tenant payload")
		return
	}

	t, err := h.tenantService.UpdateProfile(c.Request.Context(), tenantID, req.Name, req.ContactEmail, req.Phone, req.Address)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewTenantResponse(t))
}
