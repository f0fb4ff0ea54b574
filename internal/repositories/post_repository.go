package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcampos/red-social-backend/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	GetAllWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// Create inserts a new post, stamping id and creation time.
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetByID retrieves a post by id
func (r *MongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetByUserID retrieves a user's posts, newest first.
func (r *MongoPostRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"usuario": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAllWithAuthors retrieves every post newest first with the owner's
// nombre/correo/foto resolved from the usuarios collection.
func (r *MongoPostRepository) GetAllWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	pipeline := mongo.Pipeline{
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
			{Key: "titulo", Value: 1},
			{Key: "imagen", Value: 1},
			{Key: "contenido", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "usuario._id", Value: 1},
			{Key: "usuario.nombre", Value: 1},
			{Key: "usuario.correo", Value: 1},
			{Key: "usuario.foto", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.PostWithAuthor
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites titulo/imagen/contenido in place and returns the updated
// document.
func (r *MongoPostRepository) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdatePostRequest) (*models.Post, error) {
	update := bson.M{
		"$set": bson.M{
			"titulo":    req.Title,
			"imagen":    req.Image,
			"contenido": req.Content,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post by id
func (r *MongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
