package payroll

import "fmt"

// PaymentMethod は支給方法を表す閉じた直和型です。
// この中核実装では実際の支払い処理は行わず、どのように支払われたかを
// Disposition 文字列として小切手に記録します。
type PaymentMethod interface {
	// Disposition は支払い方法の記述を返します。小切手の配達記録に使用します。
	Disposition() string

	clone() PaymentMethod
}

// HoldMethod は小切手を経理で保管する支給方法です。新規従業員の既定値です。
type HoldMethod struct{}

// Disposition は保管扱いであることを返します。
func (HoldMethod) Disposition() string {
	return "hold"
}

func (m HoldMethod) clone() PaymentMethod {
	return m
}

// DirectMethod は口座振込の支給方法です。
type DirectMethod struct {
	Bank    string
	Account string
}

// Disposition は振込先を含む記述を返します。
func (m *DirectMethod) Disposition() string {
	return fmt.Sprintf("direct %s/%s", m.Bank, m.Account)
}

func (m *DirectMethod) clone() PaymentMethod {
	clone := *m
	return &clone
}

// MailMethod は小切手を郵送する支給方法です。
type MailMethod struct {
	Address string
}

// Disposition は郵送先を含む記述を返します。
func (m *MailMethod) Disposition() string {
	return fmt.Sprintf("mail %s", m.Address)
}

func (m *MailMethod) clone() PaymentMethod {
	clone := *m
	return &clone
}
