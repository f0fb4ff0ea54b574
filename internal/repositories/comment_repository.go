package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dcampos/red-social-backend/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostWithUsers(ctx context.Context, postID primitive.ObjectID) ([]models.CommentWithAuthor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comentarios")}
}

// Create inserts a new comment, stamping id and creation time.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetByPostWithUsers retrieves a post's comments newest first with the
// author's nombre/correo resolved.
func (r *MongoCommentRepository) GetByPostWithUsers(ctx context.Context, postID primitive.ObjectID) ([]models.CommentWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "post", Value: postID}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
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
			{Key: "contenido", Value: 1},
			{Key: "createdAt", Value: 1},
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

	var comments []models.CommentWithAuthor
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment by id
func (r *MongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByPost removes every comment referencing a post, used by the post
// deletion cascade.
func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"post": postID})
	return err
}
