package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartRepository interface {
	// ユーザー登録と同じトランザクションで呼ばれる
	Create(ctx context.Context, cart model.Cart) error
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
}
