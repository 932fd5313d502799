package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/photoshare/photoshare-api/internal/core/domain"
)

const collectionCards = "cards"

type CardRepository struct {
	col *mongo.Collection
}

func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{col: db.Collection(collectionCards)}
}

type mongoCard struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Link      string               `bson:"link"`
	Owner     primitive.ObjectID   `bson:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"createdAt"`
}

func (mc *mongoCard) toDomain() *domain.Card {
	likes := make([]string, 0, len(mc.Likes))
	for _, id := range mc.Likes {
		likes = append(likes, id.Hex())
	}
	return &domain.Card{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Link:      mc.Link,
		OwnerID:   mc.Owner.Hex(),
		Likes:     likes,
		CreatedAt: mc.CreatedAt.UTC(),
	}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	owner, err := primitive.ObjectIDFromHex(card.OwnerID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCard{
		Name:      card.Name,
		Link:      card.Link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: card.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}

	created := *card
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Likes = []string{}
	return &created, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCard
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	return mc.toDomain(), nil
}

// List returns all cards, newest first.
func (r *CardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Card
	for cur.Next(ctx) {
		var mc mongoCard
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode card: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cur.Err()
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// AddLike relies on $addToSet for the at-most-once invariant: liking an
// already-liked card leaves the set untouched.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$addToSet")
}

// RemoveLike uses $pull; removing an absent id is a no-op on the set.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$pull")
}

func (r *CardRepository) updateLikes(ctx context.Context, cardID, userID, op string) (*domain.Card, error) {
	cardOID, err := primitive.ObjectIDFromHex(cardID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mc mongoCard
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": cardOID},
		bson.M{op: bson.M{"likes": userOID}},
		opts,
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("update likes: %w", err)
	}
	return mc.toDomain(), nil
}

// EnsureIndexes creates the query indexes on the cards collection.
func (r *CardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
