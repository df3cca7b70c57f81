package dto

import (
	"strings"

	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
)

// CreateUserRequest is the JSON body for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToEntity converts the request to a domain User.
func (r *CreateUserRequest) ToEntity() *user.User {
	return &user.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Age:      r.Age,
		Password: r.Password,
	}
}

// UpdateUserRequest is the JSON body for updating a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Validate is a no-op; field rules live on user.Patch.
func (r *UpdateUserRequest) Validate() error { return nil }

// ToPatch converts the request to a domain user patch.
func (r *UpdateUserRequest) ToPatch() *user.Patch {
	return &user.Patch{
		Name:     r.Name,
		Email:    r.Email,
		Age:      r.Age,
		Password: r.Password,
	}
}

// CreatePostRequest is the JSON body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.NewFieldError("title", domain.MsgRequired)
	}
	return nil
}

// ToEntity converts the request to a domain Post.
func (r *CreatePostRequest) ToEntity() *post.Post {
	return &post.Post{
		Title:    strings.TrimSpace(r.Title),
		Content:  r.Content,
		AuthorID: strings.TrimSpace(r.Author),
	}
}

// UpdatePostRequest is the JSON body for updating a post. Nil fields are
// left unchanged.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
}

// Validate is a no-op; field rules live on post.Patch.
func (r *UpdatePostRequest) Validate() error { return nil }

// ToPatch converts the request to a domain post patch.
func (r *UpdatePostRequest) ToPatch() *post.Patch {
	return &post.Patch{
		Title:    r.Title,
		Content:  r.Content,
		AuthorID: r.Author,
	}
}

// CreateLikeRequest is the JSON body for creating a like.
type CreateLikeRequest struct {
	User string `json:"user"`
	Post string `json:"post"`
}

// Validate checks that both references are present.
func (r *CreateLikeRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.User) == "" {
		fields["user"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Post) == "" {
		fields["post"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToEntity converts the request to a domain Like.
func (r *CreateLikeRequest) ToEntity() *like.Like {
	return &like.Like{
		UserID: strings.TrimSpace(r.User),
		PostID: strings.TrimSpace(r.Post),
	}
}

// UpdateLikeRequest is the JSON body for updating a like. Nil fields are
// left unchanged.
type UpdateLikeRequest struct {
	User *string `json:"user,omitempty"`
	Post *string `json:"post,omitempty"`
}

// Validate is a no-op; field rules live on like.Patch.
func (r *UpdateLikeRequest) Validate() error { return nil }

// ToPatch converts the request to a domain like patch.
func (r *UpdateLikeRequest) ToPatch() *like.Patch {
	return &like.Patch{
		UserID: r.User,
		PostID: r.Post,
	}
}
