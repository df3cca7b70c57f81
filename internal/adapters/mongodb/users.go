package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/replset-api/internal/domain/user"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// UsersCollection is the collection that holds user documents.
const UsersCollection = "users"

// Compile-time interface check.
var _ ports.Repository[*user.User, *user.Patch] = (*UserRepository)(nil)

// UserRepository stores users. Only the password hash is persisted.
type UserRepository = Repository[*user.User, *user.Patch, userDoc]

type userDoc struct {
	ID           bson.ObjectID `bson:"_id"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	Age          int           `bson:"age"`
	PasswordHash string        `bson:"password,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"`
}

// NewUserRepository creates a repository over the users collection.
func NewUserRepository(db DatabaseProvider, guard *Guard) *UserRepository {
	return newRepository(db, guard, UsersCollection, "user", codec[*user.User, *user.Patch, userDoc]{
		newDoc:    newUserDoc,
		toEntity:  userFromDoc,
		setFields: userSetFields,
	})
}

func newUserDoc(u *user.User, now time.Time) (userDoc, error) {
	return userDoc{
		ID:           bson.NewObjectID(),
		Name:         u.Name,
		Email:        u.Email,
		Age:          u.Age,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func userFromDoc(d *userDoc) *user.User {
	return &user.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Age:          d.Age,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func userSetFields(p *user.Patch, now time.Time) (bson.D, error) {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *p.Email})
	}
	if p.Age != nil {
		set = append(set, bson.E{Key: "age", Value: *p.Age})
	}
	if p.PasswordHash != nil {
		set = append(set, bson.E{Key: "password", Value: *p.PasswordHash})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now}), nil
}
