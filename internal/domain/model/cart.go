package model

import "time"

// 1ユーザーにつきカートは1つ。PKは所有者のuser_id。
// ユーザー作成と同じトランザクションで作られる。
type Cart struct {
	UserID    int64     `gorm:"primaryKey;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
