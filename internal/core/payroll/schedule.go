package payroll

import "time"

// PaymentSchedule は支給スケジュールを表す閉じた直和型です。
// 支給日の判定と、その支給日で締まる給与期間の算出を行います。
// 判定は毎回カレンダーから計算され、結果は保持しません。
type PaymentSchedule interface {
	// IsPayDate は指定日が支給日かどうかを返します。
	IsPayDate(date time.Time) bool
	// PayPeriod は指定支給日で締まる給与期間を返します。
	PayPeriod(payDate time.Time) PayPeriod

	clone() PaymentSchedule
}

// MonthlySchedule は月末払いのスケジュールです。
// 支給日は各月の末日、給与期間は月初から支給日までです。
type MonthlySchedule struct{}

// IsPayDate は指定日が暦の上での月末かどうかを返します。
func (MonthlySchedule) IsPayDate(date time.Time) bool {
	return date.AddDate(0, 0, 1).Day() == 1
}

// PayPeriod は支給日の属する月の 1 日から支給日までを返します。
func (MonthlySchedule) PayPeriod(payDate time.Time) PayPeriod {
	payDate = NormalizeDate(payDate)
	start := time.Date(payDate.Year(), payDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	return PayPeriod{Start: start, End: payDate}
}

func (s MonthlySchedule) clone() PaymentSchedule {
	return s
}

// WeeklySchedule は毎週金曜払いのスケジュールです。
type WeeklySchedule struct{}

// IsPayDate は指定日が金曜日かどうかを返します。
func (WeeklySchedule) IsPayDate(date time.Time) bool {
	return date.Weekday() == time.Friday
}

// PayPeriod は支給日を含む直前 7 日間を返します。
func (WeeklySchedule) PayPeriod(payDate time.Time) PayPeriod {
	payDate = NormalizeDate(payDate)
	return PayPeriod{Start: payDate.AddDate(0, 0, -6), End: payDate}
}

func (s WeeklySchedule) clone() PaymentSchedule {
	return s
}

// BiweeklySchedule は隔週金曜払いのスケジュールです。
// ISO 週番号が偶数の金曜日を支給日とします。
type BiweeklySchedule struct{}

// IsPayDate は指定日が偶数 ISO 週の金曜日かどうかを返します。
func (BiweeklySchedule) IsPayDate(date time.Time) bool {
	if date.Weekday() != time.Friday {
		return false
	}
	_, week := date.ISOWeek()
	return week%2 == 0
}

// PayPeriod は支給日を含む直前 14 日間を返します。
func (BiweeklySchedule) PayPeriod(payDate time.Time) PayPeriod {
	payDate = NormalizeDate(payDate)
	return PayPeriod{Start: payDate.AddDate(0, 0, -13), End: payDate}
}

func (s BiweeklySchedule) clone() PaymentSchedule {
	return s
}
