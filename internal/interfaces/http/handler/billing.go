package handler

import (
	appbilling "github.com/bondtrack/backend/internal/application/billing"
	"github.com/bondtrack/backend/internal/domain/billing"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles a person's invoice section
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appbilling.InvoiceService
	billingService *appbilling.BillingService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *appbilling.InvoiceService, billingService *appbilling.BillingService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		billingService: billingService,
	}
}

func (h *InvoiceHandler) bind(c *gin.Context) (appbilling.InvoiceInput, bool) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid invoice payload")
		return appbilling.InvoiceInput{}, false
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid invoice date")
		return appbilling.InvoiceInput{}, false
	}
	dueDate, err := dto.ParseDatePtr(req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid invoice due date")
		return appbilling.InvoiceInput{}, false
	}
	return appbilling.InvoiceInput{
		Number:      req.Number,
		Date:        date,
		DueDate:     dueDate,
		Description: req.Description,
		Amount:      req.Amount,
	}, true
}

// List handles GET /api/v1/people/:id/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.invoiceService.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	out := make([]dto.InvoiceResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewInvoiceResponse(&items[i]))
	}
	h.Success(c, out)
}

// Create handles POST /api/v1/people/:id/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.invoiceService.Create(c.Request.Context(), tenantID, personID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewInvoiceResponse(item))
}

// Get handles GET /api/v1/people/:id/invoices/:invoiceID
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	invoiceID, err := parseUUIDParam(c, "invoiceID")
	if err != nil {
		h.NotFound(c)
		return
	}
	item, err := h.invoiceService.Get(c.Request.Context(), tenantID, personID, invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceResponse(item))
}

// Update handles PUT /api/v1/people/:id/invoices/:invoiceID
func (h *InvoiceHandler) Update(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	invoiceID, err := parseUUIDParam(c, "invoiceID")
	if err != nil {
		h.NotFound(c)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.invoiceService.Update(c.Request.Context(), tenantID, personID, invoiceID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/invoices/:invoiceID
func (h *InvoiceHandler) Delete(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	invoiceID, err := parseUUIDParam(c, "invoiceID")
	if err != nil {
		h.NotFound(c)
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), tenantID, personID, invoiceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// BillingContext handles GET /api/v1/people/:id/billing. The paid and
// balance figures are derived on every call, never stored.
func (h *InvoiceHandler) BillingContext(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	ctx, err := h.billingService.GetInvoiceContext(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceContextResponse(ctx))
}

// ReceiptHandler handles receipts under an invoice
type ReceiptHandler struct {
	BaseHandler
	service *appbilling.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(service *appbilling.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

func (h *ReceiptHandler) bind(c *gin.Context) (appbilling.ReceiptInput, bool) {
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid receipt payload")
		return appbilling.ReceiptInput{}, false
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid receipt date")
		return appbilling.ReceiptInput{}, false
	}
	return appbilling.ReceiptInput{
		Amount: req.Amount,
		Date:   date,
		Method: billing.PaymentMethod(req.Method),
		Notes:  req.Notes,
	}, true
}

func (h *ReceiptHandler) receiptScope(c *gin.Context) (tenantID, personID, invoiceID uuid.UUID, ok bool) {
	tenantID, personID, ok = h.scope(c)
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	invoiceID, err := parseUUIDParam(c, "invoiceID")
	if err != nil {
		h.NotFound(c)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}
	return tenantID, personID, invoiceID, true
}

// List handles GET /api/v1/people/:id/invoices/:invoiceID/receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	tenantID, personID, invoiceID, ok := h.receiptScope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID, invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewReceiptListResponse(items))
}

// Create handles POST /api/v1/people/:id/invoices/:invoiceID/receipts
func (h *ReceiptHandler) Create(c *gin.Context) {
	tenantID, personID, invoiceID, ok := h.receiptScope(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Create(c.Request.Context(), tenantID, personID, invoiceID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewReceiptResponse(item))
}

// Update handles PUT /api/v1/people/:id/invoices/:invoiceID/receipts/:receiptID
func (h *ReceiptHandler) Update(c *gin.Context) {
	tenantID, personID, invoiceID, ok := h.receiptScope(c)
	if !ok {
		return
	}
	receiptID, err := parseUUIDParam(c, "receiptID")
	if err != nil {
		h.NotFound(c)
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Update(c.Request.Context(), tenantID, personID, invoiceID, receiptID, in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewReceiptResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/invoices/:invoiceID/receipts/:receiptID
func (h *ReceiptHandler) Delete(c *gin.Context) {
	tenantID, personID, invoiceID, ok := h.receiptScope(c)
	if !ok {
		return
	}
	receiptID, err := parseUUIDParam(c, "receiptID")
	if err != nil {
		h.NotFound(c)
		return
	}
	if err := h.service.Delete(c.Request.Context(), tenantID, personID, invoiceID, receiptID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
