package listing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 50
	ownerPageLimit   = 100
)

// ErrForbidden signals that the requester does not own the listing.
var ErrForbidden = errors.New("listing: not authorized")

// Service implements the listing operations. The description is generated
// synchronously before the initial write and before every update write, so
// a persisted listing always carries one.
type Service struct {
	repo Repository
	gen  Generator
	now  func() time.Time
}

// NewService builds a Service. A nil generator falls back to the built-in
// templates.
func NewService(repo Repository, gen Generator) *Service {
	if gen == nil {
		gen = TemplateGenerator{}
	}
	return &Service{
		repo: repo,
		gen:  gen,
		now:  time.Now,
	}
}

// Create validates the attributes, generates the description, and persists
// a new listing owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, attrs Attributes) (Listing, error) {
	if err := attrs.Validate(); err != nil {
		return Listing{}, err
	}
	attrs.normalize()

	now := s.now().UTC()
	l := Listing{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Attributes:  attrs,
		Description: s.gen.Describe(ctx, attrs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// List returns a page of listings. A non-positive limit falls back to the
// default page size.
func (s *Service) List(ctx context.Context, skip, limit int64) ([]Listing, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return s.repo.FindPage(ctx, skip, limit)
}

// GetByID returns a single listing or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// ListMine returns the listings owned by ownerID.
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]Listing, error) {
	return s.repo.FindByOwner(ctx, ownerID, ownerPageLimit)
}

// Update replaces the attributes of an existing listing and regenerates the
// description, even when no narrative-affecting field changed. Identity,
// owner, and creation time are preserved.
func (s *Service) Update(ctx context.Context, id, requesterID string, attrs Attributes) (Listing, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Listing{}, err
	}
	if existing.UserID != requesterID {
		return Listing{}, ErrForbidden
	}

	if err := attrs.Validate(); err != nil {
		return Listing{}, err
	}
	attrs.normalize()

	updated := Listing{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Attributes:  attrs,
		Description: s.gen.Describe(ctx, attrs),
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now().UTC(),
	}

	if err := s.repo.Replace(ctx, updated); err != nil {
		return Listing{}, err
	}
	return updated, nil
}

// Delete removes a listing after the same ownership check as Update.
func (s *Service) Delete(ctx context.Context, id, requesterID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != requesterID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
