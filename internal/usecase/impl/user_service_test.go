package impl

import (
	"context"
	"testing"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (usecase.UserUsecase, *fakeUserRepo) {
	userRepo := newFakeUserRepo()

	return NewUserService(userRepo, fakeHasher{}, fakeTokenService{}), userRepo
}

func TestUserService_Register(t *testing.T) {
	svc, repo := newUserFixture()

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "gardening-rocks",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.Token)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)

	stored := repo.users[output.User.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:gardening-rocks", stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()

	input := &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret-pw"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "gardening-rocks",
	})
	require.NoError(t, err)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "gardening-rocks",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "gardening-rocks",
	})
	require.NoError(t, err)

	// A wrong password and an unknown email must be indistinguishable.
	_, wrongPw := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	_, noUser := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "bob@example.com",
		Password: "gardening-rocks",
	})

	assert.ErrorIs(t, wrongPw, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc, repo := newUserFixture()

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "gardening-rocks",
	})
	require.NoError(t, err)
	originalHash := repo.users[output.User.ID].PasswordHash

	// Without a password the credential stays untouched.
	updated, err := svc.UpdateUser(context.Background(), output.User.ID, &usecase.UpdateUserInput{
		Name:  "Alice Green",
		Email: "alice@example.com",
		Role:  "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, originalHash, repo.users[output.User.ID].PasswordHash)

	// Supplying a password re-hashes it.
	_, err = svc.UpdateUser(context.Background(), output.User.ID, &usecase.UpdateUserInput{
		Name:     "Alice Green",
		Email:    "alice@example.com",
		Role:     "admin",
		Password: "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:new-secret", repo.users[output.User.ID].PasswordHash)
}

func TestUserService_UpdateUser_UnknownRole(t *testing.T) {
	svc, repo := newUserFixture()
	user := repo.add("Alice", "alice@example.com")

	_, err := svc.UpdateUser(context.Background(), user.ID, &usecase.UpdateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "gardener",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	svc, _ := newUserFixture()

	err := svc.DeleteUser(context.Background(), 12)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
