package converter

import (
	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO with its role flags
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		User:         *user,
		FullName:     user.FullName(),
		IsAdmin:      user.IsAdmin(),
		IsMedecin:    user.IsMedecin(),
		IsSecretaire: user.IsSecretaire(),
		IsPatient:    user.IsPatient(),
	}
}
