package mongodb

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func keys(d bson.D) []string {
	out := make([]string, 0, len(d))
	for _, e := range d {
		out = append(out, e.Key)
	}
	return out
}

func TestUserCodec_StoresHashOnly(t *testing.T) {
	t.Parallel()

	doc, err := newUserDoc(&user.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		Age:          36,
		Password:     "plaintext",
		PasswordHash: "$2a$04$hash",
	}, testNow)
	if err != nil {
		t.Fatalf("newUserDoc error: %v", err)
	}

	if doc.ID.IsZero() {
		t.Error("newUserDoc did not assign an ID")
	}
	if doc.PasswordHash != "$2a$04$hash" {
		t.Errorf("PasswordHash = %q, want the hash", doc.PasswordHash)
	}
	if !doc.CreatedAt.Equal(testNow) || !doc.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps = %v/%v, want %v", doc.CreatedAt, doc.UpdatedAt, testNow)
	}

	u := userFromDoc(&doc)
	if u.ID != doc.ID.Hex() {
		t.Errorf("ID = %q, want %q", u.ID, doc.ID.Hex())
	}
	if u.Password != "" {
		t.Errorf("Password = %q, want empty after load", u.Password)
	}
}

func TestUserSetFields(t *testing.T) {
	t.Parallel()

	hash := "$2a$04$new"
	set, err := userSetFields(&user.Patch{Email: strPtr("new@example.com"), PasswordHash: &hash}, testNow)
	if err != nil {
		t.Fatalf("userSetFields error: %v", err)
	}

	want := []string{"email", "password", "updatedAt"}
	got := keys(set)
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPostCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	author := bson.NewObjectID().Hex()
	doc, err := newPostDoc(&post.Post{Title: "Hello", Content: "World", AuthorID: author}, testNow)
	if err != nil {
		t.Fatalf("newPostDoc error: %v", err)
	}
	if doc.Likes == nil {
		t.Error("Likes is nil, want empty array so the field is stored")
	}

	p := postFromDoc(&doc)
	if p.AuthorID != author {
		t.Errorf("AuthorID = %q, want %q", p.AuthorID, author)
	}
	if p.Title != "Hello" || p.Content != "World" {
		t.Errorf("post = %+v, want title/content preserved", p)
	}
	if len(p.Likes) != 0 {
		t.Errorf("Likes = %v, want empty", p.Likes)
	}
}

func TestPostCodec_NoAuthor(t *testing.T) {
	t.Parallel()

	doc, err := newPostDoc(&post.Post{Title: "Anonymous"}, testNow)
	if err != nil {
		t.Fatalf("newPostDoc error: %v", err)
	}
	if p := postFromDoc(&doc); p.AuthorID != "" {
		t.Errorf("AuthorID = %q, want empty", p.AuthorID)
	}
}

func TestPostCodec_InvalidAuthor(t *testing.T) {
	t.Parallel()

	_, err := newPostDoc(&post.Post{Title: "Hello", AuthorID: "bogus"}, testNow)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["author"]; !ok {
		t.Errorf("Fields = %v, want author", verr.Fields)
	}
}

func TestPostSetFields_InvalidAuthor(t *testing.T) {
	t.Parallel()

	_, err := postSetFields(&post.Patch{AuthorID: strPtr("bogus")}, testNow)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestLikeCodec(t *testing.T) {
	t.Parallel()

	userID := bson.NewObjectID().Hex()
	postID := bson.NewObjectID().Hex()

	doc, err := newLikeDoc(&like.Like{UserID: userID, PostID: postID}, testNow)
	if err != nil {
		t.Fatalf("newLikeDoc error: %v", err)
	}

	l := likeFromDoc(&doc)
	if l.UserID != userID || l.PostID != postID {
		t.Errorf("like = %+v, want user %s post %s", l, userID, postID)
	}
}

func TestLikeCodec_InvalidReferences(t *testing.T) {
	t.Parallel()

	_, err := newLikeDoc(&like.Like{UserID: "nope", PostID: bson.NewObjectID().Hex()}, testNow)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Fields["user"] != domain.MsgInvalidID {
		t.Errorf("error = %v, want user %q", err, domain.MsgInvalidID)
	}

	_, err = likeSetFields(&like.Patch{PostID: strPtr("nope")}, testNow)
	if !errors.As(err, &verr) || verr.Fields["post"] != domain.MsgInvalidID {
		t.Errorf("error = %v, want post %q", err, domain.MsgInvalidID)
	}
}

func TestParseLinkIDs(t *testing.T) {
	t.Parallel()

	if _, _, err := parseLinkIDs("bad", bson.NewObjectID().Hex()); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad post id error = %v, want ErrValidation", err)
	}
	if _, _, err := parseLinkIDs(bson.NewObjectID().Hex(), "bad"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("bad like id error = %v, want ErrValidation", err)
	}
}
