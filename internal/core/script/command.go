package script

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

// Command は解析済みのスクリプト 1 行を表す閉じた直和型です。
// 各バリアントはディスパッチャに渡す前に validate タグで構造検証されます。
type Command interface {
	isCommand()
}

// AddSalariedEmployee は AddEmp <id> "<name>" "<address>" S <salary> に対応します。
type AddSalariedEmployee struct {
	ID      payroll.EmployeeID `json:"id" validate:"gte=1"`
	Name    string             `json:"name" validate:"required"`
	Address string             `json:"address" validate:"required"`
	Salary  decimal.Decimal    `json:"salary"`
}

// AddHourlyEmployee は AddEmp <id> "<name>" "<address>" H <hourly_rate> に対応します。
type AddHourlyEmployee struct {
	ID         payroll.EmployeeID `json:"id" validate:"gte=1"`
	Name       string             `json:"name" validate:"required"`
	Address    string             `json:"address" validate:"required"`
	HourlyRate decimal.Decimal    `json:"hourly_rate"`
}

// AddCommissionedEmployee は AddEmp <id> "<name>" "<address>" C <salary> <rate> に対応します。
type AddCommissionedEmployee struct {
	ID             payroll.EmployeeID `json:"id" validate:"gte=1"`
	Name           string             `json:"name" validate:"required"`
	Address        string             `json:"address" validate:"required"`
	Salary         decimal.Decimal    `json:"salary"`
	CommissionRate decimal.Decimal    `json:"commission_rate"`
}

// DeleteEmployee は DelEmp <id> に対応します。
type DeleteEmployee struct {
	ID payroll.EmployeeID `json:"id" validate:"gte=1"`
}

// AddTimeCard は TimeCard <id> <date> <hours> に対応します。
type AddTimeCard struct {
	ID    payroll.EmployeeID `json:"id" validate:"gte=1"`
	Date  time.Time          `json:"date"`
	Hours decimal.Decimal    `json:"hours"`
}

// AddSalesReceipt は SalesReceipt <id> <date> <amount> に対応します。
type AddSalesReceipt struct {
	ID     payroll.EmployeeID `json:"id" validate:"gte=1"`
	Date   time.Time          `json:"date"`
	Amount decimal.Decimal    `json:"amount"`
}

// AddServiceCharge は ServiceCharge <member_id> <date> <amount> に対応します。
// 従業員 ID ではなく組合員 ID で宛先を指定する点に注意してください。
type AddServiceCharge struct {
	MemberID payroll.MemberID `json:"member_id" validate:"gte=1"`
	Date     time.Time        `json:"date"`
	Amount   decimal.Decimal  `json:"amount"`
}

// ChangeName は ChgEmp <id> Name "<new>" に対応します。
type ChangeName struct {
	ID   payroll.EmployeeID `json:"id" validate:"gte=1"`
	Name string             `json:"name" validate:"required"`
}

// ChangeAddress は ChgEmp <id> Address "<new>" に対応します。
type ChangeAddress struct {
	ID      payroll.EmployeeID `json:"id" validate:"gte=1"`
	Address string             `json:"address" validate:"required"`
}

// ChangeHourly は ChgEmp <id> Hourly <rate> に対応します。
type ChangeHourly struct {
	ID         payroll.EmployeeID `json:"id" validate:"gte=1"`
	HourlyRate decimal.Decimal    `json:"hourly_rate"`
}

// ChangeSalaried は ChgEmp <id> Salaried <salary> に対応します。
type ChangeSalaried struct {
	ID     payroll.EmployeeID `json:"id" validate:"gte=1"`
	Salary decimal.Decimal    `json:"salary"`
}

// ChangeCommissioned は ChgEmp <id> Commissioned <salary> <rate> に対応します。
type ChangeCommissioned struct {
	ID             payroll.EmployeeID `json:"id" validate:"gte=1"`
	Salary         decimal.Decimal    `json:"salary"`
	CommissionRate decimal.Decimal    `json:"commission_rate"`
}

// ChangeHold は ChgEmp <id> Hold に対応します。
type ChangeHold struct {
	ID payroll.EmployeeID `json:"id" validate:"gte=1"`
}

// ChangeDirect は ChgEmp <id> Direct "<bank>" "<account>" に対応します。
type ChangeDirect struct {
	ID      payroll.EmployeeID `json:"id" validate:"gte=1"`
	Bank    string             `json:"bank" validate:"required"`
	Account string             `json:"account" validate:"required"`
}

// ChangeMail は ChgEmp <id> Mail "<address>" に対応します。
type ChangeMail struct {
	ID      payroll.EmployeeID `json:"id" validate:"gte=1"`
	Address string             `json:"address" validate:"required"`
}

// ChangeMember は ChgEmp <id> Member <member_id> Dues <amount> に対応します。
type ChangeMember struct {
	ID       payroll.EmployeeID `json:"id" validate:"gte=1"`
	MemberID payroll.MemberID   `json:"member_id" validate:"gte=1"`
	Dues     decimal.Decimal    `json:"dues"`
}

// ChangeNoMember は ChgEmp <id> NoMember に対応します。
type ChangeNoMember struct {
	ID payroll.EmployeeID `json:"id" validate:"gte=1"`
}

// Payday は Payday <date> に対応します。
type Payday struct {
	Date time.Time `json:"date"`
}

func (*AddSalariedEmployee) isCommand()     {}
func (*AddHourlyEmployee) isCommand()       {}
func (*AddCommissionedEmployee) isCommand() {}
func (*DeleteEmployee) isCommand()          {}
func (*AddTimeCard) isCommand()             {}
func (*AddSalesReceipt) isCommand()         {}
func (*AddServiceCharge) isCommand()        {}
func (*ChangeName) isCommand()              {}
func (*ChangeAddress) isCommand()           {}
func (*ChangeHourly) isCommand()            {}
func (*ChangeSalaried) isCommand()          {}
func (*ChangeCommissioned) isCommand()      {}
func (*ChangeHold) isCommand()              {}
func (*ChangeDirect) isCommand()            {}
func (*ChangeMail) isCommand()              {}
func (*ChangeMember) isCommand()            {}
func (*ChangeNoMember) isCommand()          {}
func (*Payday) isCommand()                  {}
