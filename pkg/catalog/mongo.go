package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/toolverse/pkg/errors"
)

// Default MongoDB locations.
const (
	DefaultMongoDatabase   = "toolverse"
	DefaultMongoCollection = "categories"
)

// MongoSource loads a catalog from a MongoDB collection holding one document
// per category. Documents are read in ascending "order" and then natural
// order, and decoded with the bson tags of Category and Tool.
type MongoSource struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// ParseMongoURI builds a MongoSource from a connection string of the form
// mongodb://host:port/database#collection. Database and collection fall back
// to DefaultMongoDatabase and DefaultMongoCollection.
func ParseMongoURI(uri string) (*MongoSource, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse mongodb uri")
	}
	s := &MongoSource{
		Database:   strings.Trim(u.Path, "/"),
		Collection: u.Fragment,
		Timeout:    10 * time.Second,
	}
	if s.Database == "" {
		s.Database = DefaultMongoDatabase
	}
	if s.Collection == "" {
		s.Collection = DefaultMongoCollection
	}
	u.Fragment = ""
	s.URI = u.String()
	return s, nil
}

func (s *MongoSource) String() string {
	return fmt.Sprintf("mongodb:%s.%s", s.Database, s.Collection)
}

func (s *MongoSource) Load(ctx context.Context) (*Catalog, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect mongodb")
	}
	defer client.Disconnect(context.WithoutCancel(ctx))

	coll := client.Database(s.Database).Collection(s.Collection)
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "query %s", s)
	}
	defer cur.Close(ctx)

	var docs []bson.Raw
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read %s", s)
	}
	return decodeCategories(docs)
}

// decodeCategories turns raw category documents into a validated catalog.
func decodeCategories(docs []bson.Raw) (*Catalog, error) {
	c := &Catalog{Categories: make([]Category, 0, len(docs))}
	for i, doc := range docs {
		var cat Category
		if err := bson.Unmarshal(doc, &cat); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode category document %d", i)
		}
		if cat.Icon == "" {
			cat.Icon = Icon(cat.ID)
		}
		c.Categories = append(c.Categories, cat)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
