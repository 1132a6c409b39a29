package transaction

import (
	"context"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

// Transaction は 1 つのコマンドをストアとルールファクトリに束縛した実行単位です。
// Execute を構成するプリミティブ操作は必ず 1 回の RunTx 内で実行されます。
type Transaction interface {
	Execute(ctx context.Context) (Response, error)
}

// Response はトランザクション実行結果を表す閉じた直和型です。
type Response interface {
	isResponse()
}

// VoidResponse は返すべき値がないことを表します。
type VoidResponse struct{}

// EmployeeIDResponse は作成された従業員の ID を返します。
type EmployeeIDResponse struct {
	ID payroll.EmployeeID
}

// PaychecksResponse は給与日処理で発行された従業員ごとの小切手を返します。
type PaychecksResponse struct {
	Paychecks map[payroll.EmployeeID]*payroll.Paycheck
}

func (VoidResponse) isResponse()       {}
func (EmployeeIDResponse) isResponse() {}
func (PaychecksResponse) isResponse()  {}
