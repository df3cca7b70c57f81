package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/replset-api/internal/app/context"
	"github.com/jsamuelsen11/replset-api/internal/domain"
	"github.com/jsamuelsen11/replset-api/internal/domain/like"
	"github.com/jsamuelsen11/replset-api/internal/domain/post"
	"github.com/jsamuelsen11/replset-api/internal/domain/user"
	"github.com/jsamuelsen11/replset-api/internal/ports"
)

// Validation message for references to entities that do not exist.
const msgUnknownReference = "does not reference an existing entity"

// Compile-time check that LikeService implements ports.CRUDService.
var _ ports.CRUDService[*like.Like, *like.Patch] = (*LikeService)(nil)

// LikeService is the CRUD service for likes. It keeps each post's embedded
// likes list in step with the likes collection: a like is only stored when
// its user and post exist, and its ID is linked into the post in the same
// staged commit.
type LikeService struct {
	*CRUDService[*like.Like, *like.Patch]

	likes  ports.Repository[*like.Like, *like.Patch]
	users  ports.Repository[*user.User, *user.Patch]
	posts  ports.Repository[*post.Post, *post.Patch]
	linker ports.LikeLinker
	logger *slog.Logger
}

// NewLikeService creates a LikeService. A nil logger is replaced with a
// no-op logger.
func NewLikeService(
	likes ports.Repository[*like.Like, *like.Patch],
	users ports.Repository[*user.User, *user.Patch],
	posts ports.Repository[*post.Post, *post.Patch],
	linker ports.LikeLinker,
	logger *slog.Logger,
) *LikeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LikeService{
		CRUDService: NewCRUDService("like", likes, logger),
		likes:       likes,
		users:       users,
		posts:       posts,
		linker:      linker,
		logger:      logger.With(slog.String("resource", "like")),
	}
}

// Create stores a like and links it into its post. If linking fails the
// stored like is deleted again.
func (s *LikeService) Create(ctx context.Context, l *like.Like) (*like.Like, error) {
	s.logger.InfoContext(ctx, "creating like",
		slog.String("user_id", l.UserID),
		slog.String("post_id", l.PostID),
	)

	if err := l.Validate(); err != nil {
		return nil, err
	}

	rc := appctx.FromContext(ctx)
	if err := s.checkReferences(rc, l.UserID, l.PostID); err != nil {
		return nil, err
	}

	insert := &insertLikeAction{repo: s.likes, like: l}
	if err := rc.Stage(insert); err != nil {
		return nil, err
	}
	if err := rc.Stage(&linkLikeAction{linker: s.linker, insert: insert}); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create like",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return insert.created, nil
}

// Update applies a patch. When the like moves to another post the old post
// is unlinked and the new one linked.
func (s *LikeService) Update(ctx context.Context, id string, patch *like.Patch) (*like.Like, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	rc := appctx.FromContext(ctx)
	current, err := appctx.GetOrFetch(rc, "like:"+id, func(ctx context.Context) (*like.Like, error) {
		return s.likes.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	userID, postID := current.UserID, current.PostID
	if patch.UserID != nil {
		userID = *patch.UserID
	}
	if patch.PostID != nil {
		postID = *patch.PostID
	}
	if err := s.checkReferences(rc, userID, postID); err != nil {
		return nil, err
	}

	updated, err := s.CRUDService.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if updated.PostID != current.PostID {
		s.unlink(ctx, current.PostID, id)
		if err := s.linker.LinkLike(ctx, updated.PostID, id); err != nil {
			s.logger.ErrorContext(ctx, "failed to link like to new post",
				slog.String("operation", "Update"),
				slog.String("id", id),
				slog.String("post_id", updated.PostID),
				slog.Any("error", err),
			)
			return nil, err
		}
	}
	return updated, nil
}

// Delete removes a like and pulls it from its post.
func (s *LikeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.remove(ctx, id)
	if err != nil {
		return err
	}
	s.unlink(ctx, deleted.PostID, deleted.ID)
	return nil
}

// DeleteAll removes every like and empties every post's likes list.
func (s *LikeService) DeleteAll(ctx context.Context) error {
	if err := s.CRUDService.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.linker.UnlinkAllLikes(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear post likes",
			slog.String("operation", "DeleteAll"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// checkReferences verifies that the user and post exist. Lookups are
// memoized in the request context.
func (s *LikeService) checkReferences(rc *appctx.RequestContext, userID, postID string) error {
	fields := make(map[string]string)

	if _, err := appctx.GetOrFetch(rc, "user:"+userID, func(ctx context.Context) (*user.User, error) {
		return s.users.Get(ctx, userID)
	}); err != nil {
		msg, ferr := referenceMessage(err)
		if ferr != nil {
			return ferr
		}
		fields["user"] = msg
	}

	if _, err := appctx.GetOrFetch(rc, "post:"+postID, func(ctx context.Context) (*post.Post, error) {
		return s.posts.Get(ctx, postID)
	}); err != nil {
		msg, ferr := referenceMessage(err)
		if ferr != nil {
			return ferr
		}
		fields["post"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// referenceMessage turns a lookup failure into a field message. Failures
// other than not-found or a malformed ID are returned as errors.
func referenceMessage(err error) (string, error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return msgUnknownReference, nil
	case errors.As(err, &verr):
		return domain.MsgInvalidID, nil
	default:
		return "", err
	}
}

func (s *LikeService) unlink(ctx context.Context, postID, likeID string) {
	if err := s.linker.UnlinkLike(ctx, postID, likeID); err != nil {
		s.logger.WarnContext(ctx, "failed to unlink like from post",
			slog.String("like_id", likeID),
			slog.String("post_id", postID),
			slog.Any("error", err),
		)
	}
}

// insertLikeAction stores a like; rollback deletes it again.
type insertLikeAction struct {
	repo    ports.Repository[*like.Like, *like.Patch]
	like    *like.Like
	created *like.Like
}

func (a *insertLikeAction) Execute(ctx context.Context) error {
	created, err := a.repo.Create(ctx, a.like)
	if err != nil {
		return err
	}
	a.created = created
	return nil
}

func (a *insertLikeAction) Rollback(ctx context.Context) error {
	if a.created == nil {
		return nil
	}
	_, err := a.repo.Delete(ctx, a.created.ID)
	return err
}

func (a *insertLikeAction) Description() string {
	return fmt.Sprintf("insert like of post %s by user %s", a.like.PostID, a.like.UserID)
}

// linkLikeAction appends the inserted like's ID to its post.
type linkLikeAction struct {
	linker ports.LikeLinker
	insert *insertLikeAction
}

func (a *linkLikeAction) Execute(ctx context.Context) error {
	return a.linker.LinkLike(ctx, a.insert.created.PostID, a.insert.created.ID)
}

func (a *linkLikeAction) Rollback(ctx context.Context) error {
	return a.linker.UnlinkLike(ctx, a.insert.created.PostID, a.insert.created.ID)
}

func (a *linkLikeAction) Description() string {
	return "link like to post " + a.insert.like.PostID
}
