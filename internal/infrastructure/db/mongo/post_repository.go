package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository implements ports.PostRepository on MongoDB. Reads that
// carry the author name run a $lookup join against the users collection.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mp mongoPost) toDomain() domain.Post {
	return domain.Post{
		ID:        mp.ID.Hex(),
		AuthorID:  mp.AuthorID.Hex(),
		Title:     mp.Title,
		Content:   mp.Content,
		CreatedAt: mp.CreatedAt.UTC(),
		UpdatedAt: mp.UpdatedAt.UTC(),
	}
}

type mongoPostWithAuthor struct {
	ID         primitive.ObjectID `bson:"_id"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	AuthorName string             `bson:"author_name"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (mp mongoPostWithAuthor) toDomain() domain.PostWithAuthor {
	return domain.PostWithAuthor{
		ID:         mp.ID.Hex(),
		Title:      mp.Title,
		Content:    mp.Content,
		AuthorName: mp.AuthorName,
		CreatedAt:  mp.CreatedAt.UTC(),
	}
}

// authorLookupStages joins posts to their authors and projects the fields of
// the PostWithAuthor view.
func authorLookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         usersCollection,
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author_info",
		}},
		{"$unwind": "$author_info"},
		{"$project": bson.M{
			"_id":         1,
			"title":       1,
			"content":     1,
			"created_at":  1,
			"author_name": "$author_info.username",
		}},
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	authorOID, err := primitive.ObjectIDFromHex(post.AuthorID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		AuthorID:  authorOID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.UTC(),
		UpdatedAt: post.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert post: unexpected inserted id %T", res.InsertedID)
	}

	created := *post
	created.ID = id.Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post := mp.toDomain()
	return &post, nil
}

func (r *PostRepository) FindWithAuthor(ctx context.Context, id string) (*domain.PostWithAuthor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := append([]bson.M{{"$match": bson.M{"_id": oid}}}, authorLookupStages()...)
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find post with author: %w", err)
	}

	var docs []mongoPostWithAuthor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find post with author: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrPostNotFound
	}

	post := docs[0].toDomain()
	return &post, nil
}

func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]domain.PostWithAuthor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, authorLookupStages())
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var docs []mongoPostWithAuthor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]domain.PostWithAuthor, len(docs))
	for i, mp := range docs {
		posts[i] = mp.toDomain()
	}
	return posts, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"author_id": oid})
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}

	var docs []mongoPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}

	posts := make([]domain.Post, len(docs))
	for i, mp := range docs {
		posts[i] = mp.toDomain()
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, id string, patch ports.PostPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the author_id index used by /posts/me.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
