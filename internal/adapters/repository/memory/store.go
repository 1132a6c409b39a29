package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

// Store はプロセス内台帳に対する排他的トランザクションを提供する具象ストアです。
// RunTx は fn の実行中ミューテックスを保持する単一書き込み主体のクリティカル
// セクションであり、再入できません。fn の中から再度 RunTx を呼ぶとデッドロック
// します。複数のゴルーチンからコマンドを投入する場合でも、あるコマンドが完全に
// 終わってから次が始まること以上の順序保証はありません。
type Store struct {
	mu     sync.Mutex
	ledger *payroll.Ledger
}

// NewStore は空の台帳を持つ Store を生成します。
func NewStore() *Store {
	return &Store{ledger: payroll.NewLedger()}
}

// RunTx は台帳への排他アクセスを取得して fn を実行し、その結果を返します。
func (s *Store) RunTx(ctx context.Context, fn func(*payroll.Ledger) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memory: transaction aborted: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.ledger)
}
