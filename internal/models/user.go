package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPhotoURL is the placeholder profile photo assigned at registration
// when none is provided.
const DefaultPhotoURL = "https://cdn-icons-png.flaticon.com/512/3106/3106921.png"

// User is an account record in the "usuarios" collection. Nombre and Correo
// carry unique indexes. The password hash is never serialized.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"nombre" bson:"nombre"`
	Email    string             `json:"correo" bson:"correo"`
	Password string             `json:"-" bson:"contrasena"`
	Photo    string             `json:"foto" bson:"foto"`
}

// UserRef is the subset of user fields embedded when a reference is populated
// into a post, like or comment response.
type UserRef struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"nombre" bson:"nombre"`
	Email string             `json:"correo" bson:"correo"`
	Photo string             `json:"foto,omitempty" bson:"foto,omitempty"`
}

// RegisterRequest is the body of POST /registrar.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
	Photo    string `json:"foto"`
}

// LoginRequest is the body of POST /iniciar_sesion.
type LoginRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Password string `json:"contrasena" validate:"required"`
}
