package authservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAccountRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountRepository ensures the unique email index before returning
// the repository. The index is the authority on email uniqueness; the
// service's pre-check only exists for the friendly conflict message.
func NewMongoAccountRepository(c *mongo.Collection) (AccountRepository, error) {
	_, err := c.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &mongoAccountRepository{collection: c}, nil
}

func (m *mongoAccountRepository) FindByEmail(email string) (*Account, error) {
	return m.findAccountBy("email", email)
}

func (m *mongoAccountRepository) FindByID(id ID) (*Account, error) {
	return m.findAccountBy("_id", string(id))
}

func (m *mongoAccountRepository) findAccountBy(key string, val string) (*Account, error) {
	var acc Account
	sr := m.collection.FindOne(context.TODO(), bson.M{key: val})

	if errors.Is(sr.Err(), mongo.ErrNoDocuments) {
		return nil, ErrAccountNotFound
	}

	if err := sr.Decode(&acc); err != nil {
		return nil, err
	}

	return &acc, nil
}

func (m *mongoAccountRepository) Create(acc *Account) (*Account, error) {
	if acc.ID == "" {
		acc.ID = NewID()
	}

	if _, err := m.collection.InsertOne(context.TODO(), acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return acc, nil
}

func (m *mongoAccountRepository) Delete(acc *Account) error {
	_, err := m.collection.DeleteOne(context.TODO(), bson.M{"_id": acc.ID})
	return err
}

type mongoTokenRepository struct {
	collection *mongo.Collection
}

func NewMongoTokenRepository(c *mongo.Collection) TokenRepository {
	return &mongoTokenRepository{collection: c}
}

func (m *mongoTokenRepository) Insert(t *AccessToken) error {
	// _id is the token value itself, so the primary key rejects duplicates.
	if _, err := m.collection.InsertOne(context.TODO(), t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (m *mongoTokenRepository) FindByToken(value string) (*AccessToken, error) {
	var t AccessToken
	sr := m.collection.FindOne(context.TODO(), bson.M{"_id": value})

	if errors.Is(sr.Err(), mongo.ErrNoDocuments) {
		return nil, ErrTokenNotFound
	}

	if err := sr.Decode(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (m *mongoTokenRepository) ListByUser(userID ID) ([]AccessToken, error) {
	cur, err := m.collection.Find(context.TODO(), bson.M{"userId": string(userID)})
	if err != nil {
		return nil, err
	}

	list := []AccessToken{}
	if err := cur.All(context.TODO(), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (m *mongoTokenRepository) Delete(value string) error {
	_, err := m.collection.DeleteOne(context.TODO(), bson.M{"_id": value})
	return err
}
