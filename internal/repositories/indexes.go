package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the handlers rely on: unique nombre and
// correo on usuarios, a compound unique (usuario, post) on likes, and
// createdAt sort indexes on posts and comentarios.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("usuarios").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nombre", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "correo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "usuario", Value: 1}, {Key: "post", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("comentarios").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
