package dto

import (
	"time"

	"github.com/google/uuid"

	bookingModel "shareit/internal/domains/booking/model"
	"shareit/internal/domains/item/model"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type CreateItemRequest struct {
	Name        string  `json:"name"                 validate:"required,max=255"`
	Description string  `json:"description"          validate:"required,max=2000"`
	Available   *bool   `json:"available"            validate:"required"`
	RequestID   *string `json:"request_id,omitempty" validate:"omitempty,uuid"`
}

func (r *CreateItemRequest) ToModel(ownerID string) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		OwnerID:     ownerID,
		RequestID:   r.RequestID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"        db:"name"        validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" db:"description" validate:"omitempty,max=2000"`
	Available   *bool   `json:"available,omitempty"   db:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (r *CreateCommentRequest) ToModel(itemID, authorID string) model.Comment {
	return model.Comment{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     r.Text,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  authorID,
			ModifiedBy: authorID,
		},
	}
}

type CommentResponse struct {
	ID         string `json:"id"`
	ItemID     string `json:"item_id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	Created    string `json:"created"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.ItemID = model.ItemID
	r.Text = model.Text
	r.AuthorName = model.AuthorName
	r.Created = timezone.Format(model.CreatedAt, constant.DateFormat)
}

// BookingBrief is the short projection of an approved booking attached to an
// item when its owner asks for it.
type BookingBrief struct {
	ID       string    `json:"id"`
	BookerID string    `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func (r *BookingBrief) FromModel(model bookingModel.Booking) {
	r.ID = model.ID
	r.BookerID = model.BookerID
	r.Start = model.Start
	r.End = model.End
}

type ItemResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     string            `json:"owner_id"`
	RequestID   *string           `json:"request_id,omitempty"`
	LastBooking *BookingBrief     `json:"last_booking,omitempty"`
	NextBooking *BookingBrief     `json:"next_booking,omitempty"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available
	r.OwnerID = model.OwnerID
	r.RequestID = model.RequestID
	r.Metadata.FromModel(model.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
