package handler

import (
	appbilling "github.com/bondtrack/backend/internal/application/billing"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PrintHandler serves printable document read models
type PrintHandler struct {
	BaseHandler
	printService *appbilling.PrintService
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *appbilling.PrintService) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// CourtNotice handles GET /api/v1/print/court-dates/:id/notice
func (h *PrintHandler) CourtNotice(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}
	courtDateID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return
	}

	notice, err := h.printService.GetCourtNotice(c.Request.Context(), tenantID, courtDateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewCourtNoticeResponse(notice))
}

// Receipt handles GET /api/v1/print/receipts/:id
func (h *PrintHandler) Receipt(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}
	receiptID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return
	}

	doc, err := h.printService.GetReceiptDocument(c.Request.Context(), tenantID, receiptID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewReceiptDocumentResponse(doc))
}
