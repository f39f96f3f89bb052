package admin

import (
	"context"
	"errors"
	"testing"

	"rentify/auth"
	"rentify/listing"
)

type fakeUserStore struct {
	users map[string]auth.User
}

func (f *fakeUserStore) ListUsers(ctx context.Context, limit int64) ([]auth.User, error) {
	out := []auth.User{}
	for _, u := range f.users {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return auth.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserStore) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeListingStore struct {
	listings map[string]listing.Listing
}

func (f *fakeListingStore) FindPage(ctx context.Context, skip, limit int64) ([]listing.Listing, error) {
	out := []listing.Listing{}
	for _, l := range f.listings {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeListingStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return listing.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeListingStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.listings)), nil
}

func TestServiceStats(t *testing.T) {
	users := &fakeUserStore{users: map[string]auth.User{
		"u1": {ID: "u1"},
		"u2": {ID: "u2"},
	}}
	listings := &fakeListingStore{listings: map[string]listing.Listing{
		"l1": {ID: "l1", UserID: "u1"},
	}}
	svc := NewService(users, listings)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalProperties != 1 {
		t.Fatalf("stats: got %+v, want 2 users and 1 property", stats)
	}
}

func TestServiceDeleteListingIgnoresOwnership(t *testing.T) {
	listings := &fakeListingStore{listings: map[string]listing.Listing{
		"l1": {ID: "l1", UserID: "someone-else"},
	}}
	svc := NewService(&fakeUserStore{users: map[string]auth.User{}}, listings)
	ctx := context.Background()

	if err := svc.DeleteListing(ctx, "l1"); err != nil {
		t.Fatalf("admin delete should bypass ownership: %v", err)
	}
	if err := svc.DeleteListing(ctx, "l1"); !errors.Is(err, listing.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestServiceDeleteUserKeepsListings(t *testing.T) {
	users := &fakeUserStore{users: map[string]auth.User{"u1": {ID: "u1"}}}
	listings := &fakeListingStore{listings: map[string]listing.Listing{
		"l1": {ID: "l1", UserID: "u1"},
	}}
	svc := NewService(users, listings)
	ctx := context.Background()

	if err := svc.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	// orphaned listings stay queryable
	if n, _ := listings.Count(ctx); n != 1 {
		t.Fatalf("listings should survive owner deletion, got %d", n)
	}
	if err := svc.DeleteUser(ctx, "u1"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
