package payroll

import (
	"errors"
	"testing"
	"time"
)

func newTestEmployee(id EmployeeID) *Employee {
	return &Employee{
		ID:             id,
		Name:           "Bob",
		Address:        "Home",
		Classification: &SalariedClassification{Salary: dec("1000")},
		Schedule:       MonthlySchedule{},
		Method:         HoldMethod{},
		Affiliation:    NoAffiliation{},
	}
}

func TestLedger_Insert_Duplicate(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	if err := l.Insert(newTestEmployee(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Insert(newTestEmployee(1)); !errors.Is(err, ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}
}

func TestLedger_AbsentID(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	if _, err := l.Fetch(42); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound from Fetch, got %v", err)
	}
	if err := l.Update(newTestEmployee(42)); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound from Update, got %v", err)
	}
	if err := l.Remove(42); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound from Remove, got %v", err)
	}
}

func TestLedger_FetchReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	e := newTestEmployee(1)
	e.Classification = &HourlyClassification{HourlyRate: dec("10")}
	if err := l.Insert(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := l.Fetch(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fetched.Name = "Changed"
	fetched.Classification.(*HourlyClassification).AddTimecard(date(2025, time.January, 9), dec("8"))

	again, err := l.Fetch(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Name != "Bob" {
		t.Fatalf("mutation of a fetched copy leaked into the ledger: %s", again.Name)
	}
	if n := len(again.Classification.(*HourlyClassification).Timecards); n != 0 {
		t.Fatalf("expected no timecards in the ledger, got %d", n)
	}

	if err := l.Update(fetched); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	updated, err := l.Fetch(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Changed" {
		t.Fatalf("expected Update to publish the mutation, got %s", updated.Name)
	}
}

func TestLedger_FetchAllIdempotent(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	if err := l.Insert(newTestEmployee(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Insert(newTestEmployee(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := l.FetchAll()
	first[1].Name = "Mutated"

	second := l.FetchAll()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both snapshots to hold 2 employees")
	}
	if second[1].Name != "Bob" {
		t.Fatalf("expected snapshot mutation not to affect the ledger, got %s", second[1].Name)
	}
}

func TestLedger_UnionMemberIndex(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	if err := l.AddUnionMember(7, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.AddUnionMember(7, 2); !errors.Is(err, ErrMemberAlreadyExists) {
		t.Fatalf("expected ErrMemberAlreadyExists, got %v", err)
	}

	employeeID, err := l.FindUnionMember(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employeeID != 1 {
		t.Fatalf("expected member 7 to resolve to employee 1, got %d", employeeID)
	}

	if err := l.RemoveUnionMember(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.RemoveUnionMember(7); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if _, err := l.FindUnionMember(7); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound from FindUnionMember, got %v", err)
	}
}

func TestLedger_PaycheckHistory(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	if err := l.Insert(newTestEmployee(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pc, ok := ComputePaycheck(newTestEmployee(1), date(2025, time.March, 31))
	if !ok {
		t.Fatalf("expected a paycheck")
	}
	l.RecordPaycheck(1, pc)

	history := l.PaychecksFor(1)
	if len(history) != 1 {
		t.Fatalf("expected 1 recorded paycheck, got %d", len(history))
	}

	history[0].Disposition = "tampered"
	if got := l.PaychecksFor(1)[0].Disposition; got != "hold" {
		t.Fatalf("expected history copies to be isolated, got %s", got)
	}

	if err := l.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(l.PaychecksFor(1)); n != 0 {
		t.Fatalf("expected history to be discarded with the employee, got %d", n)
	}
}
