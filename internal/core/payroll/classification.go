package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	regularHoursPerDay = decimal.NewFromInt(8)
	overtimeFactor     = decimal.RequireFromString("1.5")
)

// PaymentClassification は支給区分を表す閉じた直和型です。
// 月給制・時給制・歩合制のいずれかであり、給与期間に対する総支給額を計算します。
type PaymentClassification interface {
	// CalculatePay は指定された給与期間の総支給額を計算します。
	CalculatePay(period PayPeriod) decimal.Decimal

	clone() PaymentClassification
}

// SalariedClassification は固定月給の支給区分です。
type SalariedClassification struct {
	Salary decimal.Decimal
}

// CalculatePay は給与期間に関わらず固定給を返します。
func (c *SalariedClassification) CalculatePay(PayPeriod) decimal.Decimal {
	return c.Salary
}

func (c *SalariedClassification) clone() PaymentClassification {
	clone := *c
	return &clone
}

// Timecard は時給制従業員の 1 日分の勤務記録です。
type Timecard struct {
	Date  time.Time
	Hours decimal.Decimal
}

// HourlyClassification は時給制の支給区分です。タイムカードを蓄積します。
type HourlyClassification struct {
	HourlyRate decimal.Decimal
	Timecards  []Timecard
}

// AddTimecard は勤務記録を追加します。
func (c *HourlyClassification) AddTimecard(date time.Time, hours decimal.Decimal) {
	c.Timecards = append(c.Timecards, Timecard{Date: NormalizeDate(date), Hours: hours})
}

// CalculatePay は給与期間内のタイムカードを集計します。
// 1 日 8 時間を超えた分は時給の 1.5 倍で計算します。
func (c *HourlyClassification) CalculatePay(period PayPeriod) decimal.Decimal {
	pay := decimal.Zero
	for _, tc := range c.Timecards {
		if !period.Contains(tc.Date) {
			continue
		}

		straight := decimal.Min(tc.Hours, regularHoursPerDay)
		overtime := decimal.Max(tc.Hours.Sub(regularHoursPerDay), decimal.Zero)
		pay = pay.Add(straight.Mul(c.HourlyRate))
		pay = pay.Add(overtime.Mul(c.HourlyRate).Mul(overtimeFactor))
	}
	return pay
}

func (c *HourlyClassification) clone() PaymentClassification {
	clone := *c
	clone.Timecards = append([]Timecard(nil), c.Timecards...)
	return &clone
}

// SalesReceipt は歩合制従業員の売上記録です。
type SalesReceipt struct {
	Date   time.Time
	Amount decimal.Decimal
}

// CommissionedClassification は基本給と歩合からなる支給区分です。売上記録を蓄積します。
type CommissionedClassification struct {
	Salary         decimal.Decimal
	CommissionRate decimal.Decimal
	SalesReceipts  []SalesReceipt
}

// AddSalesReceipt は売上記録を追加します。
func (c *CommissionedClassification) AddSalesReceipt(date time.Time, amount decimal.Decimal) {
	c.SalesReceipts = append(c.SalesReceipts, SalesReceipt{Date: NormalizeDate(date), Amount: amount})
}

// CalculatePay は基本給に給与期間内の売上 × 歩合率を加算します。
func (c *CommissionedClassification) CalculatePay(period PayPeriod) decimal.Decimal {
	pay := c.Salary
	for _, sr := range c.SalesReceipts {
		if !period.Contains(sr.Date) {
			continue
		}
		pay = pay.Add(sr.Amount.Mul(c.CommissionRate))
	}
	return pay
}

func (c *CommissionedClassification) clone() PaymentClassification {
	clone := *c
	clone.SalesReceipts = append([]SalesReceipt(nil), c.SalesReceipts...)
	return &clone
}
