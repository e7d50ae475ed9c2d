package dto

import (
	"github.com/google/uuid"

	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	"shareit/shared"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}

func (r *CreateRequestRequest) ToModel(requesterID string) model.Request {
	return model.Request{
		ID:          uuid.NewString(),
		Description: r.Description,
		RequesterID: requesterID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  requesterID,
			ModifiedBy: requesterID,
		},
	}
}

// ItemBrief is an item listed in response to a request.
type ItemBrief struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	Available bool   `json:"available"`
}

func (r *ItemBrief) FromModel(model itemModel.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.OwnerID = model.OwnerID
	r.Available = model.Available
}

type RequestResponse struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	RequesterID string      `json:"requester_id"`
	Items       []ItemBrief `json:"items"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(model model.Request) {
	r.ID = model.ID
	r.Description = model.Description
	r.RequesterID = model.RequesterID
	r.Items = []ItemBrief{}
	r.Metadata.FromModel(model.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
