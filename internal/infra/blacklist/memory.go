package blacklist

import (
	"context"
	"sync"
)

// プロセス内メモリのログアウト済みトークン集合。
// 再起動で消える・複数台で共有されないのは仕様どおりの割り切り。
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]struct{})}
}

func (m *Memory) Add(ctx context.Context, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[tokenID] = struct{}{}
	return nil
}

func (m *Memory) Has(ctx context.Context, tokenID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.tokens[tokenID]
	return ok, nil
}
