package models

import (
	"time"

	"github.com/bondtrack/backend/internal/domain/casefile"
	"github.com/google/uuid"
)

// PersonModel is the persistence model for people
type PersonModel struct {
	TenantAggregateModel
	FirstName string `gorm:"size:150;not null;index"`
	LastName  string `gorm:"size:150;not null;index"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:255"`
	Address   string `gorm:"size:500"`
	Notes     string `gorm:"type:text"`
}

// TableName returns the table name
func (PersonModel) TableName() string {
	return "people"
}

// ToDomain converts the model to a domain person
func (m *PersonModel) ToDomain() *casefile.Person {
	p := &casefile.Person{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		Notes:     m.Notes,
	}
	m.PopulateTenantAggregateRoot(&p.TenantAggregateRoot)
	return p
}

// FromDomain populates the model from a domain person
func (m *PersonModel) FromDomain(p *casefile.Person) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Phone = p.Phone
	m.Email = p.Email
	m.Address = p.Address
	m.Notes = p.Notes
}

// IndemnitorModel is the persistence model for indemnitors
type IndemnitorModel struct {
	TenantAggregateModel
	PersonID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"size:255;not null"`
	Relationship string    `gorm:"size:100"`
	Phone        string    `gorm:"size:50"`
	Email        string    `gorm:"size:255"`
	Address      string    `gorm:"size:500"`
}

// TableName returns the table name
func (IndemnitorModel) TableName() string {
	return "indemnitors"
}

// ToDomain converts the model to a domain indemnitor
func (m *IndemnitorModel) ToDomain() *casefile.Indemnitor {
	i := &casefile.Indemnitor{
		PersonID:     m.PersonID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
	}
	m.PopulateTenantAggregateRoot(&i.TenantAggregateRoot)
	return i
}

// FromDomain populates the model from a domain indemnitor
func (m *IndemnitorModel) FromDomain(i *casefile.Indemnitor) {
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	m.PersonID = i.PersonID
	m.Name = i.Name
	m.Relationship = i.Relationship
	m.Phone = i.Phone
	m.Email = i.Email
	m.Address = i.Address
}

// ReferenceModel is the persistence model for references
type ReferenceModel struct {
	TenantAggregateModel
	PersonID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"size:255;not null"`
	Relationship string    `gorm:"size:100"`
	Phone        string    `gorm:"size:50"`
	Notes        string    `gorm:"type:text"`
}

// TableName returns the table name
func (ReferenceModel) TableName() string {
	return "person_references"
}

// ToDomain converts the model to a domain reference
func (m *ReferenceModel) ToDomain() *casefile.Reference {
	r := &casefile.Reference{
		PersonID:     m.PersonID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Phone:        m.Phone,
		Notes:        m.Notes,
	}
	m.PopulateTenantAggregateRoot(&r.TenantAggregateRoot)
	return r
}

// FromDomain populates the model from a domain reference
func (m *ReferenceModel) FromDomain(r *casefile.Reference) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.PersonID = r.PersonID
	m.Name = r.Name
	m.Relationship = r.Relationship
	m.Phone = r.Phone
	m.Notes = r.Notes
}

// CourtDateModel is the persistence model for court dates
type CourtDateModel struct {
	TenantAggregateModel
	PersonID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	TimeOfDay string    `gorm:"size:5"`
	Location  string    `gorm:"size:255"`
	Room      string    `gorm:"size:100"`
	Notes     string    `gorm:"type:text"`
}

// TableName returns the table name
func (CourtDateModel) TableName() string {
	return "court_dates"
}

// ToDomain converts the model to a domain court date
func (m *CourtDateModel) ToDomain() *casefile.CourtDate {
	cd := &casefile.CourtDate{
		PersonID:  m.PersonID,
		Date:      m.Date,
		TimeOfDay: m.TimeOfDay,
		Location:  m.Location,
		Room:      m.Room,
		Notes:     m.Notes,
	}
	m.PopulateTenantAggregateRoot(&cd.TenantAggregateRoot)
	return cd
}

// FromDomain populates the model from a domain court date
func (m *CourtDateModel) FromDomain(cd *casefile.CourtDate) {
	m.FromDomainTenantAggregateRoot(cd.TenantAggregateRoot)
	m.PersonID = cd.PersonID
	m.Date = cd.Date
	m.TimeOfDay = cd.TimeOfDay
	m.Location = cd.Location
	m.Room = cd.Room
	m.Notes = cd.Notes
}

// CheckInModel is the persistence model for check-ins
type CheckInModel struct {
	TenantAggregateModel
	PersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	Method   string    `gorm:"size:20;not null"`
	Notes    string    `gorm:"type:text"`
}

// TableName returns the table name
func (CheckInModel) TableName() string {
	return "check_ins"
}

// ToDomain converts the model to a domain check-in
func (m *CheckInModel) ToDomain() *casefile.CheckIn {
	ci := &casefile.CheckIn{
		PersonID: m.PersonID,
		Method:   casefile.CheckInMethod(m.Method),
		Notes:    m.Notes,
	}
	m.PopulateTenantAggregateRoot(&ci.TenantAggregateRoot)
	return ci
}

// FromDomain populates the model from a domain check-in
func (m *CheckInModel) FromDomain(ci *casefile.CheckIn) {
	m.FromDomainTenantAggregateRoot(ci.TenantAggregateRoot)
	m.PersonID = ci.PersonID
	m.Method = string(ci.Method)
	m.Notes = ci.Notes
}
