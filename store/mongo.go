package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cravespot/cravespot-api/models"
)

// Collection names in CraveSpotDB.
const (
	menuCollection    = "menu"
	reviewCollection  = "reviews"
	cartCollection    = "cart"
	userCollection    = "users"
	paymentCollection = "payment"
)

// NewMongoStores wires the per-collection stores over a mongo database.
func NewMongoStores(client *mongo.Client, db *mongo.Database) *Stores {
	return &Stores{
		Users:    &mongoUserStore{col: db.Collection(userCollection)},
		Menus:    &mongoMenuStore{col: db.Collection(menuCollection)},
		Reviews:  &mongoReviewStore{col: db.Collection(reviewCollection)},
		Carts:    &mongoCartStore{col: db.Collection(cartCollection)},
		Payments: &mongoPaymentStore{col: db.Collection(paymentCollection)},
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ─────────── users ───────────

type mongoUserStore struct {
	col *mongo.Collection
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *mongoUserStore) Insert(ctx context.Context, u *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	u.ID = oid
	return oid.Hex(), nil
}

func (s *mongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *mongoUserStore) SetRole(ctx context.Context, id, role string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ─────────── menu ───────────

type mongoMenuStore struct {
	col *mongo.Collection
}

func categoryFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": category}
}

func (s *mongoMenuStore) Find(ctx context.Context, category string, skip, limit int64) ([]models.MenuItem, error) {
	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.col.Find(ctx, categoryFilter(category), opts)
	if err != nil {
		return nil, err
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoMenuStore) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var item models.MenuItem
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mongoMenuStore) Count(ctx context.Context, category string) (int64, error) {
	return s.col.CountDocuments(ctx, categoryFilter(category))
}

func (s *mongoMenuStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	item.ID = oid
	return oid.Hex(), nil
}

func (s *mongoMenuStore) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoMenuStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ─────────── reviews ───────────

type mongoReviewStore struct {
	col *mongo.Collection
}

func (s *mongoReviewStore) FindAll(ctx context.Context) ([]models.Review, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ─────────── cart ───────────

type mongoCartStore struct {
	col *mongo.Collection
}

func (s *mongoCartStore) Insert(ctx context.Context, item *models.CartItem) (string, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	item.ID = oid
	return oid.Hex(), nil
}

func (s *mongoCartStore) FindByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCartStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *mongoCartStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return 0, err
		}
		oids = append(oids, oid)
	}
	res, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ─────────── payment ───────────

type mongoPaymentStore struct {
	col *mongo.Collection
}

func (s *mongoPaymentStore) Insert(ctx context.Context, p *models.Payment) (string, error) {
	res, err := s.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	p.ID = oid
	return oid.Hex(), nil
}

func (s *mongoPaymentStore) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
