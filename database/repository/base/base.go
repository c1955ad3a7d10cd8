package baseRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Base carries the CRUD plumbing shared by every entity repository. Entity
// repositories embed it and layer their domain-specific queries on top, so
// the per-collection boilerplate lives in one place.
type Base[T any] struct {
	Coll *mongo.Collection
	// Entity is the singular noun used in error messages, e.g. "vehicle".
	Entity string
}

// New creates a Base over the given collection.
func New[T any](coll *mongo.Collection, entity string) *Base[T] {
	return &Base[T]{Coll: coll, Entity: entity}
}

// Context creates a request-scoped context with the given timeout.
func Context(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// EnsureIndexes creates the given indexes on the collection.
func (b *Base[T]) EnsureIndexes(indexes []mongo.IndexModel) error {
	ctx, cancel := Context(10 * time.Second)
	defer cancel()

	if _, err := b.Coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", b.Entity, err)
	}
	return nil
}

// Insert adds a new document.
func (b *Base[T]) Insert(doc *T) error {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	if _, err := b.Coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s: %w", b.Entity, err)
	}
	return nil
}

// Replace overwrites the document matching filter with doc. Errors when
// nothing matched; key is only used in the error message.
func (b *Base[T]) Replace(filter bson.M, doc *T, key string) error {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	result, err := b.Coll.UpdateOne(ctx, filter, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update %s with id %s: %w", b.Entity, key, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s with id %s not found", b.Entity, key)
	}
	return nil
}

// FindOne returns the first document matching filter, or (nil, nil) when
// absent. Absence is not an error; callers decide whether it is.
func (b *Base[T]) FindOne(filter bson.M, key string) (*T, error) {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	var doc T
	if err := b.Coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s %s: %w", b.Entity, key, err)
	}
	return &doc, nil
}

// Find returns every document matching filter, decoded into a slice. A nil
// opts is allowed.
func (b *Base[T]) Find(filter bson.M, opts *options.FindOptions) ([]T, error) {
	ctx, cancel := Context(10 * time.Second)
	defer cancel()

	cursor, err := b.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", b.Entity, err)
	}
	defer cursor.Close(ctx)

	var docs []T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", b.Entity, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Count counts documents matching filter.
func (b *Base[T]) Count(filter bson.M) (int64, error) {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	count, err := b.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", b.Entity, err)
	}
	return count, nil
}

// Exists reports whether any document matches filter.
func (b *Base[T]) Exists(filter bson.M) (bool, error) {
	count, err := b.Count(filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteOne removes the first document matching filter and returns how many
// were removed (zero or one).
func (b *Base[T]) DeleteOne(filter bson.M) (int64, error) {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	result, err := b.Coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", b.Entity, err)
	}
	return result.DeletedCount, nil
}

// DeleteMany removes every document matching filter and returns the count.
func (b *Base[T]) DeleteMany(filter bson.M) (int64, error) {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	result, err := b.Coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s records: %w", b.Entity, err)
	}
	return result.DeletedCount, nil
}

// Distinct returns the distinct string values of field across documents
// matching filter. Non-string values are skipped.
func (b *Base[T]) Distinct(field string, filter bson.M) ([]string, error) {
	ctx, cancel := Context(5 * time.Second)
	defer cancel()

	values, err := b.Coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s values: %w", field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
