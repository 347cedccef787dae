package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/residensync/residensync-backend/api/validators"
	"github.com/residensync/residensync-backend/pkg/db/models"
	"github.com/residensync/residensync-backend/pkg/enums"
	pkgerrors "github.com/residensync/residensync-backend/pkg/errors"
	"github.com/residensync/residensync-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service publishes and lists community posts.
type Service interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole enums.UserRole, req CreateRequest) (*PostDTO, error)
	ListAnnouncements(ctx context.Context, limit int) ([]PostDTO, error)
	ListSchedule(ctx context.Context, limit int) ([]PostDTO, error)
}

type postRepository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	ListByCreated(ctx context.Context, limit int) ([]models.Post, error)
	ListByEventDate(ctx context.Context, limit int) ([]models.Post, error)
}

type authorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type service struct {
	posts   postRepository
	authors authorRepository
}

// ServiceParams bundles the dependencies required to build a posts service.
type ServiceParams struct {
	PostRepo   postRepository
	AuthorRepo authorRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.PostRepo == nil {
		return nil, fmt.Errorf("post repository is required")
	}
	if params.AuthorRepo == nil {
		return nil, fmt.Errorf("author repository is required")
	}
	return &service{posts: params.PostRepo, authors: params.AuthorRepo}, nil
}

// Create publishes a post. The admin check runs before any validation or
// repository work: hiding the button client-side is not the boundary.
func (s *service) Create(ctx context.Context, actorID uuid.UUID, actorRole enums.UserRole, req CreateRequest) (*PostDTO, error) {
	if !actorRole.IsAdmin() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only administrators can publish posts")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "description is required")
	}

	date, err := validators.ParseDate("event_date", req.EventDate)
	if err != nil {
		return nil, err
	}
	clock, err := validators.ParseTimeOfDay("event_time", req.EventTime)
	if err != nil {
		return nil, err
	}

	author, err := s.authors.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account not recognized")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup author")
	}

	var title *string
	if req.Title != nil {
		if trimmed := strings.TrimSpace(*req.Title); trimmed != "" {
			title = &trimmed
		}
	}

	post, err := s.posts.Create(ctx, &models.Post{
		UserID:      author.ID,
		UserName:    author.FullName,
		Title:       title,
		Description: description,
		EventDate:   validators.CombineDateTime(date, clock),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create post")
	}
	return FromModel(post), nil
}

func (s *service) ListAnnouncements(ctx context.Context, limit int) ([]PostDTO, error) {
	rows, err := s.posts.ListByCreated(ctx, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list announcements")
	}
	return toDTOs(rows), nil
}

func (s *service) ListSchedule(ctx context.Context, limit int) ([]PostDTO, error) {
	rows, err := s.posts.ListByEventDate(ctx, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list schedule")
	}
	return toDTOs(rows), nil
}

func toDTOs(rows []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
