package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aliskhannn/wordbook/internal/domain/entities"
)

// WordCollection is a MongoDB collection of word entry documents.
type WordCollection struct {
	coll *mongo.Collection
}

// NewWordCollection uses the collection called name in db.
func NewWordCollection(db *mongo.Database, name string) *WordCollection {
	return &WordCollection{coll: db.Collection(name)}
}

// InsertOne appends doc to the collection; the server assigns its _id.
func (c *WordCollection) InsertOne(ctx context.Context, doc entities.Document) (int64, error) {
	if _, err := c.coll.InsertOne(ctx, toBSON(doc)); err != nil {
		return 0, fmt.Errorf("insert document: %w", wrapError(err))
	}
	return 1, nil
}

// FindAll returns every document in natural order.
func (c *WordCollection) FindAll(ctx context.Context) ([]entities.Document, error) {
	cursor, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", wrapError(err))
	}

	var raw []bson.D
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode documents: %w", wrapError(err))
	}

	docs := make([]entities.Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, fromBSON(d))
	}

	return docs, nil
}

func toBSON(doc entities.Document) bson.D {
	d := make(bson.D, 0, len(doc))
	for _, f := range doc {
		d = append(d, bson.E{Key: f.Key, Value: f.Value})
	}
	return d
}

func fromBSON(d bson.D) entities.Document {
	doc := make(entities.Document, 0, len(d))
	for _, e := range d {
		doc = append(doc, entities.Field{Key: e.Key, Value: fromBSONValue(e.Value)})
	}
	return doc
}

func fromBSONValue(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case bson.D:
		return fromBSON(val)
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSONValue(item)
		}
		return out
	default:
		return v
	}
}
