package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/replset-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// Resource handlers.
type (
	UserHandler = CRUDHandler[*user.User, *user.Patch]
	PostHandler = CRUDHandler[*post.Post, *post.Patch]
	LikeHandler = CRUDHandler[*like.Like, *like.Patch]
)

// NewUserHandler creates the /users handler.
func NewUserHandler(svc ports.CRUDService[*user.User, *user.Patch]) *UserHandler {
	return &UserHandler{
		svc: svc,
		decodeCreate: func(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
			var req dto.CreateUserRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToEntity(), true
		},
		decodeUpdate: func(w http.ResponseWriter, r *http.Request) (*user.Patch, bool) {
			var req dto.UpdateUserRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToPatch(), true
		},
		render: func(u *user.User) any { return dto.ToUserResponse(u) },
	}
}

// NewPostHandler creates the /posts handler.
func NewPostHandler(svc ports.CRUDService[*post.Post, *post.Patch]) *PostHandler {
	return &PostHandler{
		svc: svc,
		decodeCreate: func(w http.ResponseWriter, r *http.Request) (*post.Post, bool) {
			var req dto.CreatePostRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToEntity(), true
		},
		decodeUpdate: func(w http.ResponseWriter, r *http.Request) (*post.Patch, bool) {
			var req dto.UpdatePostRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToPatch(), true
		},
		render: func(p *post.Post) any { return dto.ToPostResponse(p) },
	}
}

// NewLikeHandler creates the /likes handler.
func NewLikeHandler(svc ports.CRUDService[*like.Like, *like.Patch]) *LikeHandler {
	return &LikeHandler{
		svc: svc,
		decodeCreate: func(w http.ResponseWriter, r *http.Request) (*like.Like, bool) {
			var req dto.CreateLikeRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToEntity(), true
		},
		decodeUpdate: func(w http.ResponseWriter, r *http.Request) (*like.Patch, bool) {
			var req dto.UpdateLikeRequest
			if !readRequest(w, r, &req) {
				return nil, false
			}
			return req.ToPatch(), true
		},
		render: func(l *like.Like) any { return dto.ToLikeResponse(l) },
	}
}
