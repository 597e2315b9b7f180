package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	users repo.UserRepository
}

func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// 部分更新。nilのフィールドは変更しない。
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]UserOutput, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]UserOutput, 0, len(users))
	for _, user := range users {
		outs = append(outs, UserOutput{ID: user.ID, Name: user.Name, Email: user.Email})
	}
	return outs, nil
}

// UpdateUser は本人のみ。他人の更新は403。
func (u *UserUsecase) UpdateUser(ctx context.Context, callerID int64, targetID int64, in UpdateUserInput) (UserOutput, error) {
	if callerID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if callerID != targetID {
		return UserOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return UserOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
		}
		user.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" || !strings.Contains(email, "@") {
			return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
		}
		user.Email = email
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return UserOutput{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()

	if err := u.users.Update(ctx, user); err != nil {
		if err == repo.ErrEmailTaken {
			return UserOutput{}, NewHTTPError(http.StatusConflict, "email already taken")
		}
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// DeleteUser も本人のみ。
func (u *UserUsecase) DeleteUser(ctx context.Context, callerID int64, targetID int64) error {
	if callerID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if callerID != targetID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	err := u.users.Delete(ctx, targetID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
