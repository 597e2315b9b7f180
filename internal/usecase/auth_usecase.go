package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = time.Hour

type AuthUsecase struct {
	cfg       config.Config
	tx        repo.TransactionManager
	users     repo.UserRepository
	blacklist repo.TokenBlacklist
}

func NewAuthUsecase(
	cfg config.Config,
	tx repo.TransactionManager,
	users repo.UserRepository,
	blacklist repo.TokenBlacklist,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		tx:        tx,
		users:     users,
		blacklist: blacklist,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UserOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}

// Register はユーザーとそのカートを同一トランザクションで作成する。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	now := time.Now()
	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	//ユーザーとカートは必ずセットで作る
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().Create(ctx, &user); err != nil {
			if err == repo.ErrEmailTaken {
				return NewHTTPError(http.StatusConflict, "email already taken")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Carts().Create(ctx, model.Cart{
			UserID:    user.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
	if err != nil {
		return UserOutput{}, err
	}

	return UserOutput{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login は認証してJWTを発行する。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	// 存在しないか、パスワード不一致かは外からは区別できないようにする
	if user == nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	return LoginOutput{
		Token: token,
		User:  UserOutput{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// Logout はトークンのjtiをブラックリストに積む。
func (u *AuthUsecase) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.blacklist.Add(ctx, tokenID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "blacklist error")
	}
	return nil
}

func (u *AuthUsecase) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}
