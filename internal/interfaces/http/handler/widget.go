package handler

import (
	"time"

	appbilling "github.com/bondtrack/backend/internal/application/billing"
	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WidgetHandler serves the person detail page widgets. Widgets always
// reflect current data; nothing behind them is cached or stored.
type WidgetHandler struct {
	BaseHandler
	widgetService  *appcasefile.WidgetService
	billingService *appbilling.BillingService
}

// NewWidgetHandler creates a new WidgetHandler
func NewWidgetHandler(widgetService *appcasefile.WidgetService, billingService *appbilling.BillingService) *WidgetHandler {
	return &WidgetHandler{
		widgetService:  widgetService,
		billingService: billingService,
	}
}

// BillingSummary handles GET /api/v1/people/:id/widgets/billing-summary
func (h *WidgetHandler) BillingSummary(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	summary, err := h.billingService.GetSummary(c.Request.Context(), tenantID, personID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewBillingSummaryResponse(summary))
}

// RecentCourtDate handles GET /api/v1/people/:id/widgets/recent-court-date
func (h *WidgetHandler) RecentCourtDate(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	cd, err := h.widgetService.RecentCourtDate(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewRecentCourtDateResponse(cd))
}

// LastCheckIn handles GET /api/v1/people/:id/widgets/last-check-in
func (h *WidgetHandler) LastCheckIn(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	result, err := h.widgetService.LastCheckIn(c.Request.Context(), tenantID, personID, time.Now())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewLastCheckInResponse(result))
}
