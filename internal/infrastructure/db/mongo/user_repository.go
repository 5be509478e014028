package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviehub/accounts-api/internal/core/domain"
	"github.com/moviehub/accounts-api/internal/core/ports"
)

const userCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index. The duplicate-key error it
// produces on insert is what surfaces as domain.ErrUserExists.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	FirstName         string             `bson:"first_name"`
	LastName          string             `bson:"last_name"`
	Email             string             `bson:"email"`
	Avatar            string             `bson:"avatar,omitempty"`
	PasswordHash      string             `bson:"password_hash"`
	PasswordChangedAt *time.Time         `bson:"password_changed_at,omitempty"`
	FavoriteMovies    []int              `bson:"favorite_movies,omitempty"`
	WatchList         []int              `bson:"watch_list,omitempty"`
	CreatedAt         int64              `bson:"created_at"`
	UpdatedAt         int64              `bson:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		Avatar:            user.Avatar,
		PasswordHash:      user.PasswordHash,
		PasswordChangedAt: user.PasswordChangedAt,
		FavoriteMovies:    user.FavoriteMovies,
		WatchList:         user.WatchList,
		CreatedAt:         user.CreatedAt.Unix(),
		UpdatedAt:         user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// AddToList appends movieID in one conditional update: the filter excludes
// documents already holding the id, so a concurrent duplicate add matches
// nothing instead of double-inserting.
func (r *UserRepository) AddToList(ctx context.Context, email string, field ports.ListField, movieID int) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, string(field): bson.M{"$ne": movieID}},
		bson.M{
			"$addToSet": bson.M{string(field): movieID},
			"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
		},
	)
	if err != nil {
		return fmt.Errorf("add to %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAlreadyInList
	}
	return nil
}

// RemoveFromList pulls movieID in one conditional update; a filter miss
// means the id was not in the list.
func (r *UserRepository) RemoveFromList(ctx context.Context, email string, field ports.ListField, movieID int) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email, string(field): movieID},
		bson.M{
			"$pull": bson.M{string(field): movieID},
			"$set":  bson.M{"updated_at": time.Now().UTC().Unix()},
		},
	)
	if err != nil {
		return fmt.Errorf("remove from %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotInList
	}
	return nil
}

func (r *UserRepository) SetAvatar(ctx context.Context, email, avatar string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"avatar": avatar, "updated_at": time.Now().UTC().Unix()}},
	)
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Search runs a case-insensitive prefix match over first name, last name
// and email. The query is quoted so user input cannot alter the pattern.
func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]domain.User, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
		bson.M{"email": pattern},
	}}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search cursor: %w", err)
	}
	return users, nil
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                mu.ID.Hex(),
		FirstName:         mu.FirstName,
		LastName:          mu.LastName,
		Email:             mu.Email,
		Avatar:            mu.Avatar,
		PasswordHash:      mu.PasswordHash,
		PasswordChangedAt: mu.PasswordChangedAt,
		FavoriteMovies:    mu.FavoriteMovies,
		WatchList:         mu.WatchList,
		CreatedAt:         unixToTime(mu.CreatedAt),
		UpdatedAt:         unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
