package model

import "shareit/shared/model"

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldOwnerID     = "owner_id"
	FieldRequestID   = "request_id"
)

const (
	CommentTableName  = "comments"
	CommentEntityName = "comment"

	CommentFieldID         = "id"
	CommentFieldItemID     = "item_id"
	CommentFieldAuthorID   = "author_id"
	CommentFieldText       = "text"
	CommentFieldAuthorName = "author_name"
)

type Item struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Available   bool    `db:"available"`
	OwnerID     string  `db:"owner_id"`
	RequestID   *string `db:"request_id"`
	model.Metadata
}

type Comment struct {
	ID       string `db:"id"`
	ItemID   string `db:"item_id"`
	AuthorID string `db:"author_id"`
	Text     string `db:"text"`
	// resolved from the author row, never written
	AuthorName string `db:"author_name" table:"users" column:"name"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.author_id"
}
