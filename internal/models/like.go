package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is a single endorsement of a post by a user, stored in the "likes"
// collection. A compound unique index on (usuario, post) enforces one like
// per pair.
type Like struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"usuario" bson:"usuario"`
	PostID primitive.ObjectID `json:"post" bson:"post"`
}

// LikeWithUser is a like with its user reference populated (nombre, correo).
type LikeWithUser struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	User   UserRef            `json:"usuario" bson:"usuario"`
	PostID primitive.ObjectID `json:"post" bson:"post"`
}
