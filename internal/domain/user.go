package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleClient     UserRole = "client"
	RoleTechnician UserRole = "technician"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleTechnician:
		return true
	}
	return false
}

type AdminRole string

const (
	AdminSuper   AdminRole = "SUPER_ADMIN"
	AdminSupport AdminRole = "SUPPORT_ADMIN"
	AdminContent AdminRole = "CONTENT_ADMIN"
)

func (r AdminRole) Valid() bool {
	switch r {
	case AdminSuper, AdminSupport, AdminContent:
		return true
	}
	return false
}

// Account holds the fields shared by every user type.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Fullname       string    `json:"fullname"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type Admin struct {
	Account
	Role AdminRole `json:"role"`
}

// CanModerate reports whether the admin may verify technicians and toggle accounts.
func (a *Admin) CanModerate() bool {
	return a.Role == AdminSuper || a.Role == AdminSupport
}

type Client struct {
	Account
	Location Location `json:"location"`
}

type Technician struct {
	Account
	Location    Location `json:"location"`
	Rating      float64  `json:"rating"`
	Services    []string `json:"services"`
	IsAvailable bool     `json:"is_available"`
	IsVerified  bool     `json:"is_verified"`
}

// NearbyTechnician is a search hit with its distance from the client.
type NearbyTechnician struct {
	Technician
	DistanceKm float64 `json:"distance_km"`
	Score      float64 `json:"score,omitempty"`
}
