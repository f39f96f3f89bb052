package admin

import (
	"context"

	"rentify/auth"
	"rentify/listing"
)

const moderationPageLimit = 100

// UserStore abstracts the user-account operations moderation needs.
// auth's repository satisfies it.
type UserStore interface {
	ListUsers(ctx context.Context, limit int64) ([]auth.User, error)
	DeleteUser(ctx context.Context, userID string) error
	CountUsers(ctx context.Context) (int64, error)
}

// ListingStore abstracts the listing operations moderation needs.
// listing's repository satisfies it. Delete here bypasses the ownership
// check on purpose: admins may remove any listing.
type ListingStore interface {
	FindPage(ctx context.Context, skip, limit int64) ([]listing.Listing, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Stats summarizes the store for the admin dashboard.
type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalProperties int64 `json:"total_properties"`
}

// Service exposes the moderation operations behind the admin endpoints.
type Service struct {
	users    UserStore
	listings ListingStore
}

// NewService builds a Service over the two stores.
func NewService(users UserStore, listings ListingStore) *Service {
	return &Service{users: users, listings: listings}
}

// Stats counts users and listings.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalProperties, err := s.listings.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalUsers: totalUsers, TotalProperties: totalProperties}, nil
}

// ListUsers returns registered users for moderation.
func (s *Service) ListUsers(ctx context.Context) ([]auth.User, error) {
	return s.users.ListUsers(ctx, moderationPageLimit)
}

// DeleteUser removes a user account. The user's listings stay in place.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	return s.users.DeleteUser(ctx, userID)
}

// ListListings returns listings for moderation.
func (s *Service) ListListings(ctx context.Context) ([]listing.Listing, error) {
	return s.listings.FindPage(ctx, 0, moderationPageLimit)
}

// DeleteListing removes any listing regardless of owner.
func (s *Service) DeleteListing(ctx context.Context, id string) error {
	return s.listings.Delete(ctx, id)
}
