package summaries

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type postDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	URL        string             `bson:"url"`
	FullText   string             `bson:"fullText"`
	Summary    string             `bson:"summary"`
	Translated string             `bson:"translated"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// MongoStore writes full posts to a Mongo collection.
type MongoStore struct {
	Collection *mongo.Collection
}

// SavePost inserts the post; the ID is a new ObjectID.
func (s *MongoStore) SavePost(ctx context.Context, post Post) (Post, error) {
	doc := toPostDocument(post)
	doc.ID = primitive.NewObjectID()
	if _, err := s.Collection.InsertOne(ctx, doc); err != nil {
		return Post{}, err
	}
	post.ID = doc.ID.Hex()
	return post, nil
}

func toPostDocument(post Post) postDocument {
	return postDocument{
		URL:        post.URL,
		FullText:   post.FullText,
		Summary:    post.Summary,
		Translated: post.Translated,
		CreatedAt:  post.CreatedAt.UTC(),
	}
}

var _ PostStore = (*MongoStore)(nil)
