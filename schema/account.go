package schema

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin                UserRole = "admin"
	RoleLabTechnician        UserRole = "lab_technician"
	RoleDoctor               UserRole = "doctor"
	RoleResearcher           UserRole = "researcher"
	RolePublicHealthOfficial UserRole = "public_health_official"
	RoleFieldWorker          UserRole = "field_worker"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleLabTechnician, RoleDoctor, RoleResearcher,
		RolePublicHealthOfficial, RoleFieldWorker:
		return true
	}
	return false
}

// User is an account that submits reports or receives alerts.
// Users live in Postgres; surveillance documents live in MongoDB.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Username    string    `json:"username" gorm:"unique;not null"`
	Email       string    `json:"email" gorm:"unique;not null"`
	Role        UserRole  `json:"role" gorm:"not null;default:'lab_technician'"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
