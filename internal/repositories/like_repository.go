package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dcampos/red-social-backend/internal/models"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Exists(ctx context.Context, userID, postID primitive.ObjectID) (bool, error)
	GetByPostWithUsers(ctx context.Context, postID primitive.ObjectID) ([]models.LikeWithUser, error)
	Delete(ctx context.Context, userID, postID primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}

// MongoLikeRepository implements LikeRepository for MongoDB
type MongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new MongoLikeRepository
func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

// Create inserts a like. The compound unique index on (usuario, post) rejects
// a second like for the same pair even under concurrent requests; that case
// comes back as ErrDuplicate.
func (r *MongoLikeRepository) Create(ctx context.Context, like *models.Like) error {
	like.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, like)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// Exists reports whether the user already liked the post
func (r *MongoLikeRepository) Exists(ctx context.Context, userID, postID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"usuario": userID, "post": postID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByPostWithUsers retrieves a post's likes with the liking user's
// nombre/correo resolved.
func (r *MongoLikeRepository) GetByPostWithUsers(ctx context.Context, postID primitive.ObjectID) ([]models.LikeWithUser, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "post", Value: postID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "usuarios"},
			{Key: "localField", Value: "usuario"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "usuario"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$usuario"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "post", Value: 1},
			{Key: "usuario._id", Value: 1},
			{Key: "usuario.nombre", Value: 1},
			{Key: "usuario.correo", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []models.LikeWithUser
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// Delete removes the like matching (usuario, post)
func (r *MongoLikeRepository) Delete(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"usuario": userID, "post": postID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByPost removes every like referencing a post, used by the post
// deletion cascade.
func (r *MongoLikeRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"post": postID})
	return err
}
