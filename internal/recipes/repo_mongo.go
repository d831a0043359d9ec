package recipes

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const untitledRecipe = "Untitled Recipe"

// recipeDocument is the stored shape of a recipe in the Mongo collection.
type recipeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Prompt    string             `bson:"prompt"`
	Content   string             `bson:"content,omitempty"`
	OwnerKey  string             `bson:"ownerKey,omitempty"`
	Origin    string             `bson:"origin"`
	Succeeded bool               `bson:"succeeded"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// summaryProjection selects the listing fields.
var summaryProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "title", Value: 1},
	{Key: "prompt", Value: 1},
	{Key: "origin", Value: 1},
	{Key: "succeeded", Value: 1},
	{Key: "createdAt", Value: 1},
}

// MongoRepo implements Repo over a Mongo collection.
type MongoRepo struct {
	Collection *mongo.Collection
}

// EnsureIndexes creates the owner/createdAt listing index.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerKey", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("owner_created"),
	})
	return err
}

// Create inserts the recipe; the ID is a new ObjectID.
func (r *MongoRepo) Create(ctx context.Context, recipe Recipe) (Recipe, error) {
	doc := toDocument(recipe)
	doc.ID = primitive.NewObjectID()
	if _, err := r.Collection.InsertOne(ctx, doc); err != nil {
		return Recipe{}, err
	}
	recipe.ID = doc.ID.Hex()
	return recipe, nil
}

// ListByOwner finds summaries for owner sorted by createdAt descending.
func (r *MongoRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(summaryProjection)

	cur, err := r.Collection.Find(ctx, bson.M{"ownerKey": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Summary, 0)
	for cur.Next(ctx) {
		var doc recipeDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, fromDocument(doc).Summary())
	}
	return out, cur.Err()
}

// GetByID finds a recipe by its ObjectID hex.
func (r *MongoRepo) GetByID(ctx context.Context, id string) (Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Recipe{}, ErrInvalidInput
	}
	var doc recipeDocument
	if err := r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, err
	}
	return fromDocument(doc), nil
}

// DeleteByID removes a recipe and returns its summary.
func (r *MongoRepo) DeleteByID(ctx context.Context, id string) (Summary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Summary{}, ErrInvalidInput
	}
	opts := options.FindOneAndDelete().SetProjection(summaryProjection)
	var doc recipeDocument
	if err := r.Collection.FindOneAndDelete(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Summary{}, ErrNotFound
		}
		return Summary{}, err
	}
	return fromDocument(doc).Summary(), nil
}

// ValidID accepts 24-character ObjectID hex strings.
func (r *MongoRepo) ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func toDocument(recipe Recipe) recipeDocument {
	doc := recipeDocument{
		Title:     recipe.Title,
		Prompt:    recipe.Prompt,
		Content:   recipe.Content,
		OwnerKey:  recipe.OwnerKey,
		Origin:    string(recipe.Origin),
		Succeeded: recipe.Succeeded,
		CreatedAt: recipe.CreatedAt.UTC(),
	}
	if oid, err := primitive.ObjectIDFromHex(recipe.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func fromDocument(doc recipeDocument) Recipe {
	recipe := Recipe{
		Title:     doc.Title,
		Prompt:    doc.Prompt,
		Content:   doc.Content,
		OwnerKey:  doc.OwnerKey,
		Origin:    Origin(doc.Origin),
		Succeeded: doc.Succeeded,
		CreatedAt: doc.CreatedAt.UTC(),
	}
	if !doc.ID.IsZero() {
		recipe.ID = doc.ID.Hex()
	}
	// Documents written without title or origin read as untitled generated recipes.
	if recipe.Title == "" {
		recipe.Title = untitledRecipe
	}
	if recipe.Origin == "" {
		recipe.Origin = OriginGenerated
		recipe.Succeeded = true
	}
	return recipe
}

var _ Repo = (*MongoRepo)(nil)
