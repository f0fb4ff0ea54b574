package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment lives in the "comentarios" collection. It references a user and a
// post; nothing references a comment, so deleting one cascades nowhere.
type Comment struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"usuario" bson:"usuario"`
	PostID    primitive.ObjectID `json:"post" bson:"post"`
	Content   string             `json:"contenido" bson:"contenido"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CommentWithAuthor is a comment with its author reference populated.
type CommentWithAuthor struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Author    UserRef            `json:"usuario" bson:"usuario"`
	PostID    primitive.ObjectID `json:"post" bson:"post"`
	Content   string             `json:"contenido" bson:"contenido"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateCommentRequest is the body of POST /comentar/:id. The author is the
// session user.
type CreateCommentRequest struct {
	Content string `json:"contenido" validate:"required"`
}
