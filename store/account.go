package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/openamr/surveillance-api/schema"
)

// ormUserRegistry is the Postgres-backed UserRegistry.
type ormUserRegistry struct {
	db *gorm.DB
}

// NewUserRegistry wraps a gorm connection as a UserRegistry.
func NewUserRegistry(db *gorm.DB) UserRegistry {
	return &ormUserRegistry{db: db}
}

func (r *ormUserRegistry) Ping() error {
	return r.db.DB().Ping()
}

// CreateUser registers an account into the surveillance system.
func (r *ormUserRegistry) CreateUser(username, email string, role schema.UserRole, fullName, phoneNumber string) (*schema.User, error) {
	u := schema.User{
		ID:          uuid.New(),
		Username:    username,
		Email:       email,
		Role:        role,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		IsActive:    true,
	}

	if err := r.db.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser returns the user with the given id.
func (r *ormUserRegistry) GetUser(id string) (*schema.User, error) {
	var u schema.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListActiveUsersByRole returns every active user holding one of the
// given roles. Alert fan-out resolves recipients through this query.
func (r *ormUserRegistry) ListActiveUsersByRole(roles ...schema.UserRole) ([]schema.User, error) {
	users := make([]schema.User, 0)
	if err := r.db.Where("role IN (?) AND is_active = ?", roles, true).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateLastLogin stamps the login time of a user.
func (r *ormUserRegistry) UpdateLastLogin(id string) error {
	result := r.db.Model(schema.User{}).Where("id = ?", id).
		Update("last_login", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeactivateUser removes a user from alert fan-out without deleting the
// account.
func (r *ormUserRegistry) DeactivateUser(id string) error {
	result := r.db.Model(schema.User{}).Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
