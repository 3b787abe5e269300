package handler

import (
	appcasefile "github.com/bondtrack/backend/internal/application/casefile"
	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PersonHandler handles people endpoints
type PersonHandler struct {
	BaseHandler
	personService *appcasefile.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService *appcasefile.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// List handles GET /api/v1/people. The q parameter filters by first
// name, last name, phone or email, case-insensitive substring.
func (h *PersonHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}

	var req dto.PeopleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters")
		return
	}

	filter := shared.DefaultFilter()
	if req.Limit > 0 {
		filter.Limit = req.Limit
	}

	people, err := h.personService.Search(c.Request.Context(), tenantID, req.Q, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessList(c, dto.NewPersonListResponse(people), len(people), filter.Limit)
}

// Create handles POST /api/v1/people
func (h *PersonHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}

	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid person payload")
		return
	}

	p, err := h.personService.Create(c.Request.Context(), tenantID, appcasefile.PersonInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, dto.NewPersonResponse(p))
}

// Get handles GET /api/v1/people/:id
func (h *PersonHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return
	}

	p, err := h.personService.Get(c.Request.Context(), tenantID, personID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewPersonResponse(p))
}

// Update handles PUT /api/v1/people/:id
func (h *PersonHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return
	}

	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid person payload")
		return
	}

	p, err := h.personService.Update(c.Request.Context(), tenantID, personID, appcasefile.PersonInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.NewPersonResponse(p))
}

// Delete handles DELETE /api/v1/people/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.NoTenant(c)
		return
	}
	personID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c)
		return
	}

	if err := h.personService.Delete(c.Request.Context(), tenantID, personID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
