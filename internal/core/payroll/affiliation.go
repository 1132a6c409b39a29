package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Affiliation は従業員の所属を表す閉じた直和型です。
// 給与期間に対する控除額を計算します。
type Affiliation interface {
	// CalculateDeductions は指定された給与期間の控除額を計算します。
	CalculateDeductions(period PayPeriod) decimal.Decimal

	clone() Affiliation
}

// NoAffiliation は無所属を表します。控除はありません。
type NoAffiliation struct{}

// CalculateDeductions は常にゼロを返します。
func (NoAffiliation) CalculateDeductions(PayPeriod) decimal.Decimal {
	return decimal.Zero
}

func (a NoAffiliation) clone() Affiliation {
	return a
}

// ServiceCharge は組合のサービス料の記録です。
type ServiceCharge struct {
	Date   time.Time
	Amount decimal.Decimal
}

// UnionAffiliation は組合所属を表します。
// 週会費とサービス料を控除として計算し、サービス料を蓄積します。
type UnionAffiliation struct {
	MemberID       MemberID
	Dues           decimal.Decimal
	ServiceCharges []ServiceCharge
}

// AddServiceCharge はサービス料の記録を追加します。
func (a *UnionAffiliation) AddServiceCharge(date time.Time, amount decimal.Decimal) {
	a.ServiceCharges = append(a.ServiceCharges, ServiceCharge{Date: NormalizeDate(date), Amount: amount})
}

// CalculateDeductions は期間内の金曜日 1 回につき週会費を課し、
// 期間内に日付を持つサービス料を加算します。
func (a *UnionAffiliation) CalculateDeductions(period PayPeriod) decimal.Decimal {
	fridays := decimal.NewFromInt(int64(countFridays(period)))
	deductions := a.Dues.Mul(fridays)

	for _, sc := range a.ServiceCharges {
		if !period.Contains(sc.Date) {
			continue
		}
		deductions = deductions.Add(sc.Amount)
	}
	return deductions
}

func (a *UnionAffiliation) clone() Affiliation {
	clone := *a
	clone.ServiceCharges = append([]ServiceCharge(nil), a.ServiceCharges...)
	return &clone
}

func countFridays(period PayPeriod) int {
	count := 0
	for d := period.Start; !d.After(period.End); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Friday {
			count++
		}
	}
	return count
}
