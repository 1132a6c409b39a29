package payroll

import "context"

// Database は台帳への排他的アクセスを提供する抽象です。
// RunTx は fn の実行中、台帳を単一の書き込み主体として占有します。
// 再入はできません。1 つのコマンドを構成する複数のプリミティブ操作は、
// 必ず 1 回の RunTx 内で実行してください。
type Database interface {
	RunTx(ctx context.Context, fn func(*Ledger) error) error
}
