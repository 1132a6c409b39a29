package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

// RuleFactory は各ファセットのインスタンス生成を一箇所に集約します。
// すべてのトランザクションが同じファクトリを経由するため、
// テストではモックを差し替えて生成内容を検証できます。
type RuleFactory interface {
	Salaried(salary decimal.Decimal) payroll.PaymentClassification
	Hourly(rate decimal.Decimal) payroll.PaymentClassification
	Commissioned(salary, rate decimal.Decimal) payroll.PaymentClassification

	Monthly() payroll.PaymentSchedule
	Weekly() payroll.PaymentSchedule
	Biweekly() payroll.PaymentSchedule

	Hold() payroll.PaymentMethod
	Direct(bank, account string) payroll.PaymentMethod
	Mail(address string) payroll.PaymentMethod

	Union(memberID payroll.MemberID, dues decimal.Decimal) payroll.Affiliation
	NoAffiliation() payroll.Affiliation
}

// DefaultRuleFactory は本物のファセットバリアントを生成する既定実装です。
type DefaultRuleFactory struct{}

func (DefaultRuleFactory) Salaried(salary decimal.Decimal) payroll.PaymentClassification {
	return &payroll.SalariedClassification{Salary: salary}
}

func (DefaultRuleFactory) Hourly(rate decimal.Decimal) payroll.PaymentClassification {
	return &payroll.HourlyClassification{HourlyRate: rate}
}

func (DefaultRuleFactory) Commissioned(salary, rate decimal.Decimal) payroll.PaymentClassification {
	return &payroll.CommissionedClassification{Salary: salary, CommissionRate: rate}
}

func (DefaultRuleFactory) Monthly() payroll.PaymentSchedule {
	return payroll.MonthlySchedule{}
}

func (DefaultRuleFactory) Weekly() payroll.PaymentSchedule {
	return payroll.WeeklySchedule{}
}

func (DefaultRuleFactory) Biweekly() payroll.PaymentSchedule {
	return payroll.BiweeklySchedule{}
}

func (DefaultRuleFactory) Hold() payroll.PaymentMethod {
	return payroll.HoldMethod{}
}

func (DefaultRuleFactory) Direct(bank, account string) payroll.PaymentMethod {
	return &payroll.DirectMethod{Bank: bank, Account: account}
}

func (DefaultRuleFactory) Mail(address string) payroll.PaymentMethod {
	return &payroll.MailMethod{Address: address}
}

func (DefaultRuleFactory) Union(memberID payroll.MemberID, dues decimal.Decimal) payroll.Affiliation {
	return &payroll.UnionAffiliation{MemberID: memberID, Dues: dues}
}

func (DefaultRuleFactory) NoAffiliation() payroll.Affiliation {
	return payroll.NoAffiliation{}
}
