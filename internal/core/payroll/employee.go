package payroll

import "time"

// EmployeeID は従業員の識別子です。
type EmployeeID int

// MemberID は組合員の識別子です。
type MemberID int

// Employee は給与計算の対象となる従業員エンティティです。
// 4 つのファセット(支給区分・支給スケジュール・支給方法・所属)を排他的に所有し、
// 区分変更などではファセットを丸ごと差し替えます。
type Employee struct {
	ID             EmployeeID
	Name           string
	Address        string
	Classification PaymentClassification
	Schedule       PaymentSchedule
	Method         PaymentMethod
	Affiliation    Affiliation
}

// Clone は従業員の深いコピーを返します。蓄積データ(タイムカード等)も複製されるため、
// コピーへの変更は Update を呼ぶまで台帳へ反映されません。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}

	clone := *e
	if e.Classification != nil {
		clone.Classification = e.Classification.clone()
	}
	if e.Schedule != nil {
		clone.Schedule = e.Schedule.clone()
	}
	if e.Method != nil {
		clone.Method = e.Method.clone()
	}
	if e.Affiliation != nil {
		clone.Affiliation = e.Affiliation.clone()
	}
	return &clone
}

// NormalizeDate は日付を UTC の 0 時 0 分へ正規化します。
// 給与計算はすべて日単位で行うため、時刻成分は保持しません。
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
