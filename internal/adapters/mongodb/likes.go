package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// LikesCollection is the collection that holds like documents.
const LikesCollection = "likes"

// Compile-time interface check.
var _ ports.Repository[*like.Like, *like.Patch] = (*LikeRepository)(nil)

// LikeRepository stores likes.
type LikeRepository = Repository[*like.Like, *like.Patch, likeDoc]

type likeDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	User      bson.ObjectID `bson:"user"`
	Post      bson.ObjectID `bson:"post"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

// NewLikeRepository creates a repository over the likes collection.
func NewLikeRepository(db DatabaseProvider, guard *Guard) *LikeRepository {
	return newRepository(db, guard, LikesCollection, "like", codec[*like.Like, *like.Patch, likeDoc]{
		newDoc:    newLikeDoc,
		toEntity:  likeFromDoc,
		setFields: likeSetFields,
	})
}

func newLikeDoc(l *like.Like, now time.Time) (likeDoc, error) {
	userID, err := parseID("user", l.UserID)
	if err != nil {
		return likeDoc{}, err
	}
	postID, err := parseID("post", l.PostID)
	if err != nil {
		return likeDoc{}, err
	}
	return likeDoc{
		ID:        bson.NewObjectID(),
		User:      userID,
		Post:      postID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func likeFromDoc(d *likeDoc) *like.Like {
	return &like.Like{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		PostID:    d.Post.Hex(),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func likeSetFields(p *like.Patch, now time.Time) (bson.D, error) {
	set := bson.D{}
	if p.UserID != nil {
		oid, err := parseID("user", *p.UserID)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "user", Value: oid})
	}
	if p.PostID != nil {
		oid, err := parseID("post", *p.PostID)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "post", Value: oid})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now}), nil
}
