package mapping

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/models"
)

// ToModelUser converts a domain User to its persistence model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:             d.ID,
		Username:       d.Username,
		HashedPassword: d.HashedPassword,
		Role:           string(d.Role),
		DisplayName:    d.DisplayName,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a persistence User to the domain type.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:             m.ID,
		Username:       m.Username,
		HashedPassword: m.HashedPassword,
		Role:           domain.Role(m.Role),
		DisplayName:    m.DisplayName,
		CreatedAt:      m.CreatedAt,
	}
}
