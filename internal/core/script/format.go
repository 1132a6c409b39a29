package script

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Format はコマンドを正規のスクリプト構文へ整形します。
// Format の結果を Parse すると同じコマンドが得られます。
func Format(cmd Command) string {
	switch c := cmd.(type) {
	case *AddSalariedEmployee:
		return fmt.Sprintf("AddEmp %d %q %q S %s", c.ID, c.Name, c.Address, c.Salary)
	case *AddHourlyEmployee:
		return fmt.Sprintf("AddEmp %d %q %q H %s", c.ID, c.Name, c.Address, c.HourlyRate)
	case *AddCommissionedEmployee:
		return fmt.Sprintf("AddEmp %d %q %q C %s %s", c.ID, c.Name, c.Address, c.Salary, c.CommissionRate)
	case *DeleteEmployee:
		return fmt.Sprintf("DelEmp %d", c.ID)
	case *AddTimeCard:
		return fmt.Sprintf("TimeCard %d %s %s", c.ID, formatDate(c.Date), c.Hours)
	case *AddSalesReceipt:
		return fmt.Sprintf("SalesReceipt %d %s %s", c.ID, formatDate(c.Date), c.Amount)
	case *AddServiceCharge:
		return fmt.Sprintf("ServiceCharge %d %s %s", c.MemberID, formatDate(c.Date), c.Amount)
	case *ChangeName:
		return fmt.Sprintf("ChgEmp %d Name %q", c.ID, c.Name)
	case *ChangeAddress:
		return fmt.Sprintf("ChgEmp %d Address %q", c.ID, c.Address)
	case *ChangeHourly:
		return fmt.Sprintf("ChgEmp %d Hourly %s", c.ID, c.HourlyRate)
	case *ChangeSalaried:
		return fmt.Sprintf("ChgEmp %d Salaried %s", c.ID, c.Salary)
	case *ChangeCommissioned:
		return fmt.Sprintf("ChgEmp %d Commissioned %s %s", c.ID, c.Salary, c.CommissionRate)
	case *ChangeHold:
		return fmt.Sprintf("ChgEmp %d Hold", c.ID)
	case *ChangeDirect:
		return fmt.Sprintf("ChgEmp %d Direct %q %q", c.ID, c.Bank, c.Account)
	case *ChangeMail:
		return fmt.Sprintf("ChgEmp %d Mail %q", c.ID, c.Address)
	case *ChangeMember:
		return fmt.Sprintf("ChgEmp %d Member %d Dues %s", c.ID, c.MemberID, c.Dues)
	case *ChangeNoMember:
		return fmt.Sprintf("ChgEmp %d NoMember", c.ID)
	case *Payday:
		return fmt.Sprintf("Payday %s", formatDate(c.Date))
	default:
		return fmt.Sprintf("<unknown command %T>", cmd)
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
