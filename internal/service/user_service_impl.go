package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trackr/internal/domain"
	"github.com/alexanderramin/trackr/internal/repository"
	"github.com/google/uuid"
)

// ErrNoCurrentUser is returned when no account has been selected yet.
var ErrNoCurrentUser = errors.New("no user selected; run \"trackr user add\" or \"trackr user use\"")

type userService struct {
	users repository.UserRepo
	state repository.StateRepo
}

func NewUserService(users repository.UserRepo, state repository.StateRepo) UserService {
	return &userService{users: users, state: state}
}

func (u *userService) SignUp(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("account %s already exists", email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := u.state.SetCurrentUserID(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) Use(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if err := u.state.SetCurrentUserID(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) Current(ctx context.Context) (*domain.User, error) {
	id, err := u.state.CurrentUserID(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoCurrentUser
		}
		return nil, err
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoCurrentUser
		}
		return nil, err
	}
	return user, nil
}

func (u *userService) List(ctx context.Context) ([]*domain.User, error) {
	return u.users.List(ctx)
}
