package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/domain"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		wantField string
	}{
		{"missing name", dto.CreateUserRequest{Email: "ada@example.com"}, "name"},
		{"blank name", dto.CreateUserRequest{Name: "  ", Email: "ada@example.com"}, "name"},
		{"missing email", dto.CreateUserRequest{Name: "Ada"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, tt.req.Validate(), tt.wantField)
		})
	}
}

func TestCreateUserRequest_ToEntity(t *testing.T) {
	t.Parallel()

	req := dto.CreateUserRequest{Name: " Ada ", Email: "ada@example.com ", Age: 36, Password: "secret"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	u := req.ToEntity()
	if u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Errorf("entity = %+v, want trimmed name and email", u)
	}
	if u.Password != "secret" {
		t.Errorf("Password = %q, want %q", u.Password, "secret")
	}
	if u.PasswordHash != "" {
		t.Error("PasswordHash set by the request, want empty")
	}
}

func TestUpdateUserRequest_ToPatch(t *testing.T) {
	t.Parallel()

	req := dto.UpdateUserRequest{Age: intPtr(40), Password: stringPtr("new")}
	p := req.ToPatch()

	if p.Age == nil || *p.Age != 40 {
		t.Errorf("Age = %v, want 40", p.Age)
	}
	if p.Name != nil || p.Email != nil {
		t.Errorf("unset fields were populated: %+v", p)
	}
	if p.PasswordHash != nil {
		t.Error("PasswordHash set from the request, want nil")
	}
}

func TestCreatePostRequest(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.CreatePostRequest{Content: "body"}).Validate(), "title")

	req := dto.CreatePostRequest{Title: "Hello", Content: "World", Author: " 65f0c0ffee0000000000beef "}
	p := req.ToEntity()
	if p.AuthorID != "65f0c0ffee0000000000beef" {
		t.Errorf("AuthorID = %q, want trimmed id", p.AuthorID)
	}
}

func TestUpdatePostRequest_ToPatch(t *testing.T) {
	t.Parallel()

	p := (&dto.UpdatePostRequest{Title: stringPtr("New")}).ToPatch()
	if p.Title == nil || *p.Title != "New" {
		t.Errorf("Title = %v, want New", p.Title)
	}
	if p.Content != nil || p.AuthorID != nil {
		t.Errorf("unset fields were populated: %+v", p)
	}
}

func TestCreateLikeRequest(t *testing.T) {
	t.Parallel()

	err := (&dto.CreateLikeRequest{}).Validate()
	requireValidationField(t, err, "user")
	requireValidationField(t, err, "post")

	l := (&dto.CreateLikeRequest{User: "u1", Post: "p1"}).ToEntity()
	if l.UserID != "u1" || l.PostID != "p1" {
		t.Errorf("like = %+v, want user u1 post p1", l)
	}
}

func TestUpdateLikeRequest_ToPatch(t *testing.T) {
	t.Parallel()

	p := (&dto.UpdateLikeRequest{Post: stringPtr("p2")}).ToPatch()
	if p.PostID == nil || *p.PostID != "p2" {
		t.Errorf("PostID = %v, want p2", p.PostID)
	}
	if p.UserID != nil {
		t.Errorf("UserID = %v, want nil", p.UserID)
	}
}
