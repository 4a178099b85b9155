package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bibliotech/catalog-api/internal/core/domain"
	"github.com/bibliotech/catalog-api/internal/core/ports"
)

const booksCollection = "books"

// BookRepository persists book records in MongoDB and owns query
// construction for the listing endpoint.
type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type bookDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Author          string             `bson:"author"`
	Summary         string             `bson:"summary"`
	CoverImageURL   string             `bson:"cover_image_url,omitempty"`
	PublicationDate time.Time          `bson:"publication_date"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func fromDomain(b *domain.Book) bookDoc {
	return bookDoc{
		Title:           b.Title,
		Author:          b.Author,
		Summary:         b.Summary,
		CoverImageURL:   b.CoverImageURL,
		PublicationDate: b.PublicationDate,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (d bookDoc) toDomain() *domain.Book {
	return &domain.Book{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Author:          d.Author,
		Summary:         d.Summary,
		CoverImageURL:   d.CoverImageURL,
		PublicationDate: d.PublicationDate,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// bookID parses a client-supplied identifier. A malformed hex string is a
// client error, distinct from a missing document.
func bookID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidBookID
	}
	return oid, nil
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomain(b))
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := bookID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookRepository) Replace(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	oid, err := bookID(b.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomain(b)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace book: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBookNotFound
	}
	return b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := bookID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) List(ctx context.Context, filter ports.ListBooksFilter) ([]*domain.Book, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildBookFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	opts := options.Find().
		SetSort(buildBookSort(filter.Sort)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find books: %w", err)
	}
	defer cur.Close(ctx)

	books := make([]*domain.Book, 0, filter.Limit)
	for cur.Next(ctx) {
		var doc bookDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate books: %w", err)
	}

	return books, total, nil
}

// buildBookFilter translates the listing filter into a Mongo query. Title
// and author match as case-insensitive substrings; the publication date
// matches any moment within the given UTC calendar day.
func buildBookFilter(filter ports.ListBooksFilter) bson.M {
	query := bson.M{}
	if filter.Title != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Title), "$options": "i"}
	}
	if filter.Author != "" {
		query["author"] = bson.M{"$regex": regexp.QuoteMeta(filter.Author), "$options": "i"}
	}
	if filter.PublicationDate != nil {
		day := filter.PublicationDate.UTC().Truncate(24 * time.Hour)
		query["publication_date"] = bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		}
	}
	return query
}

// buildBookSort maps a client-supplied sort expression to a Mongo sort
// document. A "-" prefix selects descending order. The field name itself is
// passed through unvalidated.
func buildBookSort(sort string) bson.D {
	field := sort
	order := 1
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
		order = -1
	}
	if field == "" {
		field = "created_at"
	}
	return bson.D{{Key: field, Value: order}}
}

// EnsureIndexes creates the secondary indexes backing the listing filters.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
