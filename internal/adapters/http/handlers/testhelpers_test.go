package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
)

const (
	testUserID = "65f0c0ffee0000000000beef"
	testPostID = "65f0c0ffee0000000000cafe"
	testLikeID = "65f0c0ffee0000000000f00d"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validUser() *user.User {
	return &user.User{
		ID:           testUserID,
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Age:          36,
		PasswordHash: "$2a$04$hash",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func validPost() *post.Post {
	return &post.Post{
		ID:        testPostID,
		Title:     "Replica sets",
		Content:   "Three members and an election.",
		AuthorID:  testUserID,
		Likes:     []string{testLikeID},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validLike() *like.Like {
	return &like.Like{
		ID:        testLikeID,
		UserID:    testUserID,
		PostID:    testPostID,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
