package repository

import "context"

// ログアウト済みトークンの置き場。
// プロセス内メモリ実装が標準だが、共有キャッシュに差し替えられるようinterfaceにする。
type TokenBlacklist interface {
	Add(ctx context.Context, tokenID string) error
	Has(ctx context.Context, tokenID string) (bool, error)
}
