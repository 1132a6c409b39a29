package transaction

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/script"
)

// 各トランザクションは「失敗しうる読み取りを先に、書き込みを最後に」の順で
// プリミティブを並べます。Fetch がコピーを返すため、途中で失敗しても
// Update を呼ぶ前の変更は台帳へ漏れません。

type addEmployeeTx struct {
	d        *Dispatcher
	cmd      script.Command
	employee *payroll.Employee
}

func (t *addEmployeeTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		return l.Insert(t.employee)
	}); err != nil {
		return nil, err
	}

	return EmployeeIDResponse{ID: t.employee.ID}, nil
}

type deleteEmployeeTx struct {
	d   *Dispatcher
	cmd *script.DeleteEmployee
}

// Execute は従業員を削除します。組合員索引の対応エントリと支払い履歴も
// 同じクリティカルセクション内で取り除くため、削除後に FindUnionMember が
// 不在の従業員 ID を返すことはありません。
func (t *deleteEmployeeTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		e, err := l.Fetch(t.cmd.ID)
		if err != nil {
			return err
		}
		if union, ok := e.Affiliation.(*payroll.UnionAffiliation); ok {
			if err := l.RemoveUnionMember(union.MemberID); err != nil {
				return err
			}
		}
		return l.Remove(t.cmd.ID)
	}); err != nil {
		return nil, err
	}

	return VoidResponse{}, nil
}

type timeCardTx struct {
	d   *Dispatcher
	cmd *script.AddTimeCard
}

func (t *timeCardTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		e, err := l.Fetch(t.cmd.ID)
		if err != nil {
			return err
		}
		hourly, ok := e.Classification.(*payroll.HourlyClassification)
		if !ok {
			return fmt.Errorf("employee %d: %w", t.cmd.ID, payroll.ErrHourlyClassificationRequired)
		}
		hourly.AddTimecard(t.cmd.Date, t.cmd.Hours)
		return l.Update(e)
	}); err != nil {
		return nil, err
	}

	return VoidResponse{}, nil
}

type salesReceiptTx struct {
	d   *Dispatcher
	cmd *script.AddSalesReceipt
}

func (t *salesReceiptTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		e, err := l.Fetch(t.cmd.ID)
		if err != nil {
			return err
		}
		commissioned, ok := e.Classification.(*payroll.CommissionedClassification)
		if !ok {
			return fmt.Errorf("employee %d: %w", t.cmd.ID, payroll.ErrCommissionedClassificationRequired)
		}
		commissioned.AddSalesReceipt(t.cmd.Date, t.cmd.Amount)
		return l.Update(e)
	}); err != nil {
		return nil, err
	}

	return VoidResponse{}, nil
}

type serviceChargeTx struct {
	d   *Dispatcher
	cmd *script.AddServiceCharge
}

// Execute は組合員 ID から従業員を解決してサービス料を追記します。
// 解決・取得・検査をすべて済ませてから Update するため、途中の失敗で
// 台帳が書き換わることはありません。
func (t *serviceChargeTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		employeeID, err := l.FindUnionMember(t.cmd.MemberID)
		if err != nil {
			return err
		}
		e, err := l.Fetch(employeeID)
		if err != nil {
			return err
		}
		union, ok := e.Affiliation.(*payroll.UnionAffiliation)
		if !ok {
			return fmt.Errorf("employee %d: %w", employeeID, payroll.ErrUnionAffiliationRequired)
		}
		union.AddServiceCharge(t.cmd.Date, t.cmd.Amount)
		return l.Update(e)
	}); err != nil {
		return nil, err
	}

	return VoidResponse{}, nil
}

type changeEmployeeTx struct {
	d     *Dispatcher
	cmd   script.Command
	id    payroll.EmployeeID
	apply func(*payroll.Ledger, *payroll.Employee) error
}

func (t *changeEmployeeTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		e, err := l.Fetch(t.id)
		if err != nil {
			return err
		}
		if err := t.apply(l, e); err != nil {
			return err
		}
		return l.Update(e)
	}); err != nil {
		return nil, err
	}

	return VoidResponse{}, nil
}

type paydayTx struct {
	d   *Dispatcher
	cmd *script.Payday
}

// Execute は全従業員を走査し、支給スケジュールが指定日を支給日と判定した
// 従業員の小切手を作成して履歴へ記録します。配達はログ出力のみです。
func (t *paydayTx) Execute(ctx context.Context) (Response, error) {
	if err := t.d.validateCommand(t.cmd); err != nil {
		return nil, err
	}

	paychecks := make(map[payroll.EmployeeID]*payroll.Paycheck)

	if err := t.d.db.RunTx(ctx, func(l *payroll.Ledger) error {
		snapshot := l.FetchAll()

		ids := make([]payroll.EmployeeID, 0, len(snapshot))
		for id := range snapshot {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			paycheck, ok := payroll.ComputePaycheck(snapshot[id], t.cmd.Date)
			if !ok {
				continue
			}
			l.RecordPaycheck(id, paycheck)
			paychecks[id] = paycheck

			t.d.logger.WithFields(logrus.Fields{
				"employee_id": id,
				"paycheck_id": paycheck.ID,
				"net_pay":     paycheck.NetPay.String(),
				"disposition": paycheck.Disposition,
			}).Info("paycheck delivered")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return PaychecksResponse{Paychecks: paychecks}, nil
}

type unknownTx struct {
	cmd script.Command
}

func (t *unknownTx) Execute(context.Context) (Response, error) {
	return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, t.cmd)
}
