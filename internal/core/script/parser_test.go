package script

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParse_RoundTripAllVariants(t *testing.T) {
	t.Parallel()

	cmds := []Command{
		&AddSalariedEmployee{ID: 1, Name: "Bob", Address: "Home", Salary: dec("3215.88")},
		&AddHourlyEmployee{ID: 2, Name: "Alice", Address: "Work St", HourlyRate: dec("15.25")},
		&AddCommissionedEmployee{ID: 3, Name: "Lance", Address: "Away", Salary: dec("2500"), CommissionRate: dec("0.32")},
		&DeleteEmployee{ID: 4},
		&AddTimeCard{ID: 2, Date: date(2025, time.January, 9), Hours: dec("8.5")},
		&AddSalesReceipt{ID: 3, Date: date(2025, time.January, 6), Amount: dec("1200.50")},
		&AddServiceCharge{MemberID: 7, Date: date(2025, time.January, 8), Amount: dec("19.42")},
		&ChangeName{ID: 1, Name: "Robert"},
		&ChangeAddress{ID: 1, Address: "New Home"},
		&ChangeHourly{ID: 1, HourlyRate: dec("12.75")},
		&ChangeSalaried{ID: 2, Salary: dec("3000")},
		&ChangeCommissioned{ID: 2, Salary: dec("2000"), CommissionRate: dec("0.1")},
		&ChangeHold{ID: 3},
		&ChangeDirect{ID: 3, Bank: "FirstNational", Account: "1058209"},
		&ChangeMail{ID: 3, Address: "PO Box 42"},
		&ChangeMember{ID: 2, MemberID: 7, Dues: dec("9.45")},
		&ChangeNoMember{ID: 2},
		&Payday{Date: date(2025, time.March, 31)},
	}

	for _, cmd := range cmds {
		line := Format(cmd)

		parsed, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", line, err)
		}
		if got := Format(parsed); got != line {
			t.Fatalf("round trip mismatch: %q became %q", line, got)
		}
	}
}

func TestParse_AddEmpFields(t *testing.T) {
	t.Parallel()

	cmd, err := Parse(`AddEmp 1 "Bob" "Home" S 3215.88`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	add, ok := cmd.(*AddSalariedEmployee)
	if !ok {
		t.Fatalf("expected *AddSalariedEmployee, got %T", cmd)
	}
	if add.ID != 1 || add.Name != "Bob" || add.Address != "Home" {
		t.Fatalf("unexpected fields: %+v", add)
	}
	if !add.Salary.Equal(dec("3215.88")) {
		t.Fatalf("unexpected salary: %s", add.Salary)
	}
}

func TestParse_LeadingDotDecimal(t *testing.T) {
	t.Parallel()

	cmd, err := Parse(`ChgEmp 2 Commissioned 2000 .32`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	change, ok := cmd.(*ChangeCommissioned)
	if !ok {
		t.Fatalf("expected *ChangeCommissioned, got %T", cmd)
	}
	if !change.CommissionRate.Equal(dec("0.32")) {
		t.Fatalf("expected .32 to parse as 0.32, got %s", change.CommissionRate)
	}
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "# comment", "  # indented comment"} {
		cmd, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", line, err)
		}
		if cmd != nil {
			t.Fatalf("Parse(%q) returned a command: %+v", line, cmd)
		}
	}
}

func TestParse_UnknownKeyword(t *testing.T) {
	t.Parallel()

	_, err := Parse("FireEmp 1")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Position != 0 {
		t.Fatalf("unexpected position: %d", parseErr.Position)
	}
	if parseErr.Found != "FireEmp" {
		t.Fatalf("unexpected found token: %q", parseErr.Found)
	}
	if len(parseErr.Expected) != 7 {
		t.Fatalf("expected the full command keyword set, got %v", parseErr.Expected)
	}
}

func TestParse_TruncatedLine(t *testing.T) {
	t.Parallel()

	line := `AddEmp 1 "Bob" "Home"`
	_, err := Parse(line)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Position != len(line) {
		t.Fatalf("expected position at end of line, got %d", parseErr.Position)
	}
	if parseErr.Found != "end of line" {
		t.Fatalf("unexpected found token: %q", parseErr.Found)
	}
}

func TestParse_TrailingGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("DelEmp 1 extra")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Found != "extra" {
		t.Fatalf("unexpected found token: %q", parseErr.Found)
	}
}

func TestParse_BadDate(t *testing.T) {
	t.Parallel()

	_, err := Parse("Payday 2025-13-01")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Found != "2025-13-01" {
		t.Fatalf("unexpected found token: %q", parseErr.Found)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	t.Parallel()

	_, err := Parse(`AddEmp 1 "Bob`)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Expected[0] != "closing quote" {
		t.Fatalf("unexpected expected set: %v", parseErr.Expected)
	}
}

func TestParse_ChgEmpSubformCommit(t *testing.T) {
	t.Parallel()

	// 下位キーワードに一致したら、その形式の引数不足は別コマンドへ退行せずエラーになる
	_, err := Parse("ChgEmp 1 Member 7")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Expected[0] != "Dues" {
		t.Fatalf("expected commit to the Member subform, got %v", parseErr.Expected)
	}
}

func TestParse_MemberIDAddressing(t *testing.T) {
	t.Parallel()

	cmd, err := Parse("ServiceCharge 7 2025-01-08 19.42")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	charge, ok := cmd.(*AddServiceCharge)
	if !ok {
		t.Fatalf("expected *AddServiceCharge, got %T", cmd)
	}
	if charge.MemberID != payroll.MemberID(7) {
		t.Fatalf("unexpected member id: %d", charge.MemberID)
	}
	if !charge.Date.Equal(date(2025, time.January, 8)) {
		t.Fatalf("unexpected date: %v", charge.Date)
	}
}
