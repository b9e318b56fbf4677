package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceRegisterAndValidate(t *testing.T) {
	store := newTestRepos(t)
	svc := NewUserService(store.Users, store.Households)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Email: " Alice@Example.com ", Password: "s3cret", Name: "Alice",
		HouseholdName: "Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEmpty(t, u.HouseholdID)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	// Household was created alongside the account.
	hh, err := store.Households.GetByID(ctx, u.HouseholdID)
	require.NoError(t, err)
	assert.Equal(t, "Home", hh.Name)

	got, err := svc.ValidateCredentials(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.ValidateCredentials(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ValidateCredentials(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	store := newTestRepos(t)
	svc := NewUserService(store.Users, store.Households)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "alice@example.com", Password: "pw", Name: "Alice", HouseholdName: "Home",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{
		Email: "alice@example.com", Password: "pw2", Name: "Alice Again", HouseholdName: "Other",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserServiceRegisterJoinsExistingHousehold(t *testing.T) {
	store := newTestRepos(t)
	svc := NewUserService(store.Users, store.Households)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{
		Email: "alice@example.com", Password: "pw", Name: "Alice", HouseholdName: "Home",
	})
	require.NoError(t, err)

	second, err := svc.Register(ctx, RegisterInput{
		Email: "bob@example.com", Password: "pw", Name: "Bob", HouseholdID: first.HouseholdID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.HouseholdID, second.HouseholdID)

	members, err := svc.ListHousehold(ctx, first.HouseholdID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	_, err = svc.Register(ctx, RegisterInput{
		Email: "eve@example.com", Password: "pw", Name: "Eve", HouseholdID: "missing",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceRejectsBlankFields(t *testing.T) {
	store := newTestRepos(t)
	svc := NewUserService(store.Users, store.Households)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "", Password: "pw", Name: "X"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.c", Password: "", Name: "X"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
