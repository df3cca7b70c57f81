package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// PostsCollection is the collection that holds post documents.
const PostsCollection = "posts"

// Compile-time interface checks.
var (
	_ ports.Repository[*post.Post, *post.Patch] = (*PostRepository)(nil)
	_ ports.LikeLinker                          = (*PostRepository)(nil)
)

type postDoc struct {
	ID        bson.ObjectID   `bson:"_id"`
	Title     string          `bson:"title"`
	Content   string          `bson:"content"`
	Author    bson.ObjectID   `bson:"author,omitempty"`
	Likes     []bson.ObjectID `bson:"likes"`
	CreatedAt time.Time       `bson:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

// PostRepository stores posts and maintains each post's embedded like IDs.
type PostRepository struct {
	*Repository[*post.Post, *post.Patch, postDoc]
}

// NewPostRepository creates a repository over the posts collection.
func NewPostRepository(db DatabaseProvider, guard *Guard) *PostRepository {
	return &PostRepository{
		Repository: newRepository(db, guard, PostsCollection, "post", codec[*post.Post, *post.Patch, postDoc]{
			newDoc:    newPostDoc,
			toEntity:  postFromDoc,
			setFields: postSetFields,
		}),
	}
}

// LinkLike appends likeID to the post's likes.
func (r *PostRepository) LinkLike(ctx context.Context, postID, likeID string) error {
	postOID, likeOID, err := parseLinkIDs(postID, likeID)
	if err != nil {
		return err
	}

	return r.run(ctx, "updateOne", func(ctx context.Context, coll *mongo.Collection) error {
		res, err := coll.UpdateOne(ctx, byID(postOID), bson.D{
			{Key: "$push", Value: bson.D{{Key: "likes", Value: likeOID}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: r.now()}}},
		})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
		}
		return nil
	})
}

// UnlinkLike removes likeID from the post's likes.
func (r *PostRepository) UnlinkLike(ctx context.Context, postID, likeID string) error {
	postOID, likeOID, err := parseLinkIDs(postID, likeID)
	if err != nil {
		return err
	}

	return r.run(ctx, "updateOne", func(ctx context.Context, coll *mongo.Collection) error {
		_, err := coll.UpdateOne(ctx, byID(postOID), bson.D{
			{Key: "$pull", Value: bson.D{{Key: "likes", Value: likeOID}}},
		})
		return err
	})
}

// UnlinkAllLikes empties the likes list of every post.
func (r *PostRepository) UnlinkAllLikes(ctx context.Context) error {
	return r.run(ctx, "updateMany", func(ctx context.Context, coll *mongo.Collection) error {
		_, err := coll.UpdateMany(ctx, bson.D{}, bson.D{
			{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.A{}}}},
		})
		return err
	})
}

func parseLinkIDs(postID, likeID string) (bson.ObjectID, bson.ObjectID, error) {
	postOID, err := parseID("post", postID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, err
	}
	likeOID, err := parseID("like", likeID)
	if err != nil {
		return bson.ObjectID{}, bson.ObjectID{}, err
	}
	return postOID, likeOID, nil
}

func newPostDoc(p *post.Post, now time.Time) (postDoc, error) {
	author, err := parseOptionalID("author", p.AuthorID)
	if err != nil {
		return postDoc{}, err
	}
	likes := make([]bson.ObjectID, 0, len(p.Likes))
	for _, id := range p.Likes {
		oid, err := parseID("likes", id)
		if err != nil {
			return postDoc{}, err
		}
		likes = append(likes, oid)
	}
	return postDoc{
		ID:        bson.NewObjectID(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    author,
		Likes:     likes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func postFromDoc(d *postDoc) *post.Post {
	likes := make([]string, 0, len(d.Likes))
	for _, oid := range d.Likes {
		likes = append(likes, oid.Hex())
	}
	return &post.Post{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		AuthorID:  hexOrEmpty(d.Author),
		Likes:     likes,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func postSetFields(p *post.Patch, now time.Time) (bson.D, error) {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *p.Content})
	}
	if p.AuthorID != nil {
		author, err := parseOptionalID("author", *p.AuthorID)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "author", Value: author})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now}), nil
}
