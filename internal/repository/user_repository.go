package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// emailのユニーク制約違反を統一
var ErrEmailTaken = errors.New("email already taken")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（emailが重複していたらErrEmailTaken）
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければ(nil, nil)。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。見つからなければ(nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// ユーザー情報の更新=>名前・メール・パスワードの変更など
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID int64) error
}
