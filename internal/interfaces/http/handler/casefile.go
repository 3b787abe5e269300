package handler

import (
	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// scope extracts the tenant and person IDs shared by every child
// section route. A malformed person ID reads as a missing person.
func (h *BaseHandler) scope(c *gin.Context) (tenantID, personID uuid.UUID, ok bool) {
	tenantID, hasTenant := getTenantID(c)
	if !hasTenant {
		h.NoTenant(c)
		return uuid.Nil, uuid.Nil, false
	}
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, personID, true
}

// IndemnitorHandler handles a person's indemnitor section
type IndemnitorHandler struct {
	BaseHandler
	service *appcasefile.IndemnitorService
}

// NewIndemnitorHandler creates a new IndemnitorHandler
func NewIndemnitorHandler(service *appcasefile.IndemnitorService) *IndemnitorHandler {
	return &IndemnitorHandler{service: service}
}

func (h *IndemnitorHandler) bind(c *gin.Context) (appcasefile.IndemnitorInput, bool) {
	var req dto.IndemnitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid indemnitor payload")
		return appcasefile.IndemnitorInput{}, false
	}
	return appcasefile.IndemnitorInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
	}, true
}

// List handles GET /api/v1/people/:id/indemnitors
func (h *IndemnitorHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewIndemnitorListResponse(items))
}

// Create handles POST /api/v1/people/:id/indemnitors
func (h *IndemnitorHandler) Create(c *gin.Context) {
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
	h.Created(c, dto.NewIndemnitorResponse(item))
}

// Get handles GET /api/v1/people/:id/indemnitors/:childID
func (h *IndemnitorHandler) Get(c *gin.Context) {
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
	h.Success(c, dto.NewIndemnitorResponse(item))
}

// Update handles PUT /api/v1/people/:id/indemnitors/:childID
func (h *IndemnitorHandler) Update(c *gin.Context) {
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
	h.Success(c, dto.NewIndemnitorResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/indemnitors/:childID
func (h *IndemnitorHandler) Delete(c *gin.Context) {
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

// ReferenceHandler handles a person's reference section
type ReferenceHandler struct {
	BaseHandler
	service *appcasefile.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(service *appcasefile.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) bind(c *gin.Context) (appcasefile.ReferenceInput, bool) {
	var req dto.ReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid reference payload")
		return appcasefile.ReferenceInput{}, false
	}
	return appcasefile.ReferenceInput{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Notes:        req.Notes,
	}, true
}

// List handles GET /api/v1/people/:id/references
func (h *ReferenceHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewReferenceListResponse(items))
}

// Create handles POST /api/v1/people/:id/references
func (h *ReferenceHandler) Create(c *gin.Context) {
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
	h.Created(c, dto.NewReferenceResponse(item))
}

// Get handles GET /api/v1/people/:id/references/:childID
func (h *ReferenceHandler) Get(c *gin.Context) {
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
	h.Success(c, dto.NewReferenceResponse(item))
}

// Update handles PUT /api/v1/people/:id/references/:childID
func (h *ReferenceHandler) Update(c *gin.Context) {
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
	h.Success(c, dto.NewReferenceResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/references/:childID
func (h *ReferenceHandler) Delete(c *gin.Context) {
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

// CourtDateHandler handles a person's court date section
type CourtDateHandler struct {
	BaseHandler
	service *appcasefile.CourtDateService
}

// NewCourtDateHandler creates a new CourtDateHandler
func NewCourtDateHandler(service *appcasefile.CourtDateService) *CourtDateHandler {
	return &CourtDateHandler{service: service}
}

func (h *CourtDateHandler) bind(c *gin.Context) (appcasefile.CourtDateInput, bool) {
	var req dto.CourtDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid court date payload")
		return appcasefile.CourtDateInput{}, false
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid court date")
		return appcasefile.CourtDateInput{}, false
	}
	return appcasefile.CourtDateInput{
		Date:      date,
		TimeOfDay: req.Time,
		Location:  req.Location,
		Room:      req.Room,
		Notes:     req.Notes,
	}, true
}

// List handles GET /api/v1/people/:id/court-dates
func (h *CourtDateHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewCourtDateListResponse(items))
}

// Create handles POST /api/v1/people/:id/court-dates
func (h *CourtDateHandler) Create(c *gin.Context) {
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
	h.Created(c, dto.NewCourtDateResponse(item))
}

// Get handles GET /api/v1/people/:id/court-dates/:childID
func (h *CourtDateHandler) Get(c *gin.Context) {
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
	h.Success(c, dto.NewCourtDateResponse(item))
}

// Update handles PUT /api/v1/people/:id/court-dates/:childID
func (h *CourtDateHandler) Update(c *gin.Context) {
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
	h.Success(c, dto.NewCourtDateResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/court-dates/:childID
func (h *CourtDateHandler) Delete(c *gin.Context) {
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

// CheckInHandler handles a person's check-in section
type CheckInHandler struct {
	BaseHandler
	service *appcasefile.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(service *appcasefile.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

func (h *CheckInHandler) bind(c *gin.Context) (appcasefile.CheckInInput, bool) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid check-in payload")
		return appcasefile.CheckInInput{}, false
	}
	return appcasefile.CheckInInput{
		Method: casefile.CheckInMethod(req.Method),
		Notes:  req.Notes,
	}, true
}

// List handles GET /api/v1/people/:id/check-ins
func (h *CheckInHandler) List(c *gin.Context) {
	tenantID, personID, ok := h.scope(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewCheckInListResponse(items))
}

// Create handles POST /api/v1/people/:id/check-ins
func (h *CheckInHandler) Create(c *gin.Context) {
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
	h.Created(c, dto.NewCheckInResponse(item))
}

// Get handles GET /api/v1/people/:id/check-ins/:childID
func (h *CheckInHandler) Get(c *gin.Context) {
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
	h.Success(c, dto.NewCheckInResponse(item))
}

// Update handles PUT /api/v1/people/:id/check-ins/:childID
func (h *CheckInHandler) Update(c *gin.Context) {
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
	h.Success(c, dto.NewCheckInResponse(item))
}

// Delete handles DELETE /api/v1/people/:id/check-ins/:childID
func (h *CheckInHandler) Delete(c *gin.Context) {
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
