package dto

import (
	"github.com/google/uuid"

	"shareit/internal/domains/user/model"
	"shareit/shared"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

func (r *CreateUserRequest) ToModel(username string) model.User {
	return model.User{
		ID:    uuid.NewString(),
		Name:  r.Name,
		Email: r.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"  db:"name"  validate:"omitempty,max=255"`
	Email *string `json:"email,omitempty" db:"email" validate:"omitempty,email,max=512"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
