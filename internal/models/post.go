package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a content record in the "posts" collection, owned by a user.
type Post struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"usuario" bson:"usuario"`
	Title     string             `json:"titulo" bson:"titulo"`
	Image     string             `json:"imagen,omitempty" bson:"imagen,omitempty"`
	Content   string             `json:"contenido" bson:"contenido"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PostWithAuthor is a post with its owner reference populated.
type PostWithAuthor struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Author    UserRef            `json:"usuario" bson:"usuario"`
	Title     string             `json:"titulo" bson:"titulo"`
	Image     string             `json:"imagen,omitempty" bson:"imagen,omitempty"`
	Content   string             `json:"contenido" bson:"contenido"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreatePostRequest is the body of POST /crear_post. The owner is always the
// session user; any owner field in the body is ignored.
type CreatePostRequest struct {
	Title   string `json:"titulo" validate:"required"`
	Image   string `json:"imagen"`
	Content string `json:"contenido" validate:"required"`
}

// UpdatePostRequest is the body of PUT /actualizar_post/:id. Fields overwrite
// the stored post in place.
type UpdatePostRequest struct {
	Title   string `json:"titulo"`
	Image   string `json:"imagen"`
	Content string `json:"contenido"`
}
