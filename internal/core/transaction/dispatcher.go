package transaction

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/script"
)

// ErrUnknownCommand は対応するトランザクションが存在しないコマンドを表します。
var ErrUnknownCommand = errors.New("transaction: unknown command")

// Dispatcher は解析済みコマンドを実行可能なトランザクションへ写像します。
// 新規従業員の既定値(月給制→月払い、時給制→週払い、歩合制→隔週払い、
// 支給方法 Hold、無所属)の選択はパーサーではなくここが所有します。
type Dispatcher struct {
	db       payroll.Database
	rules    RuleFactory
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewDispatcher は Dispatcher を生成します。
// rules が nil の場合は DefaultRuleFactory、logger が nil の場合は標準設定の
// logrus ロガーを使用します。
func NewDispatcher(db payroll.Database, rules RuleFactory, logger *logrus.Logger) *Dispatcher {
	if rules == nil {
		rules = DefaultRuleFactory{}
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Dispatcher{
		db:       db,
		rules:    rules,
		validate: validator.New(),
		logger:   logger,
	}
}

// Dispatch はコマンドをストアとルールファクトリに束縛したトランザクションへ変換します。
func (d *Dispatcher) Dispatch(cmd script.Command) Transaction {
	switch c := cmd.(type) {
	case *script.AddSalariedEmployee:
		return &addEmployeeTx{d: d, cmd: cmd, employee: &payroll.Employee{
			ID:             c.ID,
			Name:           c.Name,
			Address:        c.Address,
			Classification: d.rules.Salaried(c.Salary),
			Schedule:       d.rules.Monthly(),
			Method:         d.rules.Hold(),
			Affiliation:    d.rules.NoAffiliation(),
		}}
	case *script.AddHourlyEmployee:
		return &addEmployeeTx{d: d, cmd: cmd, employee: &payroll.Employee{
			ID:             c.ID,
			Name:           c.Name,
			Address:        c.Address,
			Classification: d.rules.Hourly(c.HourlyRate),
			Schedule:       d.rules.Weekly(),
			Method:         d.rules.Hold(),
			Affiliation:    d.rules.NoAffiliation(),
		}}
	case *script.AddCommissionedEmployee:
		return &addEmployeeTx{d: d, cmd: cmd, employee: &payroll.Employee{
			ID:             c.ID,
			Name:           c.Name,
			Address:        c.Address,
			Classification: d.rules.Commissioned(c.Salary, c.CommissionRate),
			Schedule:       d.rules.Biweekly(),
			Method:         d.rules.Hold(),
			Affiliation:    d.rules.NoAffiliation(),
		}}
	case *script.DeleteEmployee:
		return &deleteEmployeeTx{d: d, cmd: c}
	case *script.AddTimeCard:
		return &timeCardTx{d: d, cmd: c}
	case *script.AddSalesReceipt:
		return &salesReceiptTx{d: d, cmd: c}
	case *script.AddServiceCharge:
		return &serviceChargeTx{d: d, cmd: c}
	case *script.ChangeName:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Name = c.Name
			return nil
		})
	case *script.ChangeAddress:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Address = c.Address
			return nil
		})
	case *script.ChangeHourly:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Classification = d.rules.Hourly(c.HourlyRate)
			e.Schedule = d.rules.Weekly()
			return nil
		})
	case *script.ChangeSalaried:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Classification = d.rules.Salaried(c.Salary)
			e.Schedule = d.rules.Monthly()
			return nil
		})
	case *script.ChangeCommissioned:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Classification = d.rules.Commissioned(c.Salary, c.CommissionRate)
			e.Schedule = d.rules.Biweekly()
			return nil
		})
	case *script.ChangeHold:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Method = d.rules.Hold()
			return nil
		})
	case *script.ChangeDirect:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Method = d.rules.Direct(c.Bank, c.Account)
			return nil
		})
	case *script.ChangeMail:
		return d.changeTx(cmd, c.ID, func(_ *payroll.Ledger, e *payroll.Employee) error {
			e.Method = d.rules.Mail(c.Address)
			return nil
		})
	case *script.ChangeMember:
		return d.changeTx(cmd, c.ID, d.applyMember(c))
	case *script.ChangeNoMember:
		return d.changeTx(cmd, c.ID, func(l *payroll.Ledger, e *payroll.Employee) error {
			if union, ok := e.Affiliation.(*payroll.UnionAffiliation); ok {
				if err := l.RemoveUnionMember(union.MemberID); err != nil {
					return err
				}
			}
			e.Affiliation = d.rules.NoAffiliation()
			return nil
		})
	case *script.Payday:
		return &paydayTx{d: d, cmd: c}
	default:
		return &unknownTx{cmd: cmd}
	}
}

// applyMember は組合加入の変更を組み立てます。
// 新しい組合員 ID の空きを先に確認してから索引を書き換えることで、
// 失敗時に部分的な索引更新が残らないようにしています。
func (d *Dispatcher) applyMember(c *script.ChangeMember) func(*payroll.Ledger, *payroll.Employee) error {
	return func(l *payroll.Ledger, e *payroll.Employee) error {
		if existing, err := l.FindUnionMember(c.MemberID); err == nil && existing != c.ID {
			return fmt.Errorf("member %d: %w", c.MemberID, payroll.ErrMemberAlreadyExists)
		}

		if union, ok := e.Affiliation.(*payroll.UnionAffiliation); ok {
			if err := l.RemoveUnionMember(union.MemberID); err != nil {
				return err
			}
		}

		if err := l.AddUnionMember(c.MemberID, c.ID); err != nil {
			return err
		}

		e.Affiliation = d.rules.Union(c.MemberID, c.Dues)
		return nil
	}
}

func (d *Dispatcher) changeTx(cmd script.Command, id payroll.EmployeeID, apply func(*payroll.Ledger, *payroll.Employee) error) Transaction {
	return &changeEmployeeTx{d: d, cmd: cmd, id: id, apply: apply}
}

func (d *Dispatcher) validateCommand(cmd script.Command) error {
	if err := d.validate.Struct(cmd); err != nil {
		return fmt.Errorf("transaction: invalid %T: %w", cmd, err)
	}
	return nil
}
