package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayPeriod は小切手が対象とする給与期間(両端を含む日付範囲)です。
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains は指定日が期間内(両端を含む)かどうかを返します。
func (p PayPeriod) Contains(date time.Time) bool {
	date = NormalizeDate(date)
	return !date.Before(p.Start) && !date.After(p.End)
}

// Paycheck は給与日処理で従業員ごとに生成される小切手です。
// 台帳の支払い履歴へ記録された後は変更されません。
type Paycheck struct {
	ID          string
	EmployeeID  EmployeeID
	Period      PayPeriod
	GrossPay    decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	Disposition string
}

// ComputePaycheck は指定日が従業員の支給日であれば小切手を作成します。
// 支給日でない場合は (nil, false) を返します。
func ComputePaycheck(e *Employee, payDate time.Time) (*Paycheck, bool) {
	payDate = NormalizeDate(payDate)
	if !e.Schedule.IsPayDate(payDate) {
		return nil, false
	}

	period := e.Schedule.PayPeriod(payDate)
	gross := e.Classification.CalculatePay(period)
	deductions := e.Affiliation.CalculateDeductions(period)

	return &Paycheck{
		ID:          uuid.NewString(),
		EmployeeID:  e.ID,
		Period:      period,
		GrossPay:    gross,
		Deductions:  deductions,
		NetPay:      gross.Sub(deductions),
		Disposition: e.Method.Disposition(),
	}, true
}
