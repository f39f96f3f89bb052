package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrUserNotFound signals that the user does not exist.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("auth: email already registered")
)

// Repository handles data access for user accounts.
type Repository interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, userID string) (User, error)
	ListUsers(ctx context.Context, limit int64) ([]User, error)
	DeleteUser(ctx context.Context, userID string) error
	CountUsers(ctx context.Context) (int64, error)
}

// MongoRepository implements Repository backed by the users collection.
type MongoRepository struct {
	users *mongo.Collection
}

// NewRepository creates a MongoDB-backed auth repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{users: database.Collection("users")}
}

// CreateUser inserts a new user after checking the email is unused.
// The duplicate check is a case-sensitive exact match on the stored email.
func (r *MongoRepository) CreateUser(ctx context.Context, user User) error {
	err := r.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("auth: check email: %w", err)
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("auth: insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by exact email match.
func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("auth: get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by its opaque id.
func (r *MongoRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("auth: get user by id: %w", err)
	}
	return user, nil
}

// ListUsers returns up to limit user records.
func (r *MongoRepository) ListUsers(ctx context.Context, limit int64) ([]User, error) {
	cursor, err := r.users.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("auth: list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("auth: decode users: %w", err)
	}
	return users, nil
}

// DeleteUser removes the user record. The user's listings are not touched;
// they remain queryable under the now-dangling owner id.
func (r *MongoRepository) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.users.DeleteOne(ctx, bson.M{"id": userID})
	if err != nil {
		return fmt.Errorf("auth: delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CountUsers returns the total number of registered users.
func (r *MongoRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("auth: count users: %w", err)
	}
	return n, nil
}
