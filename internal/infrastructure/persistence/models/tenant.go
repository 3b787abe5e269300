package models

import (
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/google/uuid"
)

// TenantModel is the persistence model for tenants
type TenantModel struct {
	AggregateModel
	Name         string `gorm:"size:255;not null"`
	ContactEmail string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`
	Address      string `gorm:"size:500"`
}

// TableName returns the table name
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the model to a domain tenant
func (m *TenantModel) ToDomain() *tenant.Tenant {
	t := &tenant.Tenant{
		Name:         m.Name,
		ContactEmail: m.ContactEmail,
		Phone:        m.Phone,
		Address:      m.Address,
	}
	m.PopulateAggregateRoot(&t.BaseAggregateRoot)
	return t
}

// FromDomain populates the model from a domain tenant
func (m *TenantModel) FromDomain(t *tenant.Tenant) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Name = t.Name
	m.ContactEmail = t.ContactEmail
	m.Phone = t.Phone
	m.Address = t.Address
}

// UserModel is the persistence model for users. TenantID is nullable:
// a user without a tenant authenticates but is rejected by the tenant
// middleware on every scoped route.
type UserModel struct {
	AggregateModel
	Username     string     `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string     `gorm:"size:255;not null"`
	TenantID     *uuid.UUID `gorm:"type:uuid;index"`
	Active       bool       `gorm:"not null;default:true"`
}

// TableName returns the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *tenant.User {
	u := &tenant.User{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		TenantID:     m.TenantID,
		Active:       m.Active,
	}
	m.PopulateAggregateRoot(&u.BaseAggregateRoot)
	return u
}

// FromDomain populates the model from a domain user
func (m *UserModel) FromDomain(u *tenant.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.TenantID = u.TenantID
	m.Active = u.Active
}
