package model

import "shareit/shared/model"

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
)

// Request is a want-ad: a user describes an item they need, and other users
// may list items in response.
type Request struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	RequesterID string `db:"requester_id"`
	model.Metadata
}
