package payroll

import "fmt"

// Ledger は従業員・組合員索引・支払い履歴を保持するプロセス内台帳です。
// Ledger 自身は排他制御を持ちません。Database.RunTx のクリティカルセクション内で
// のみ操作されることを前提とします。
//
// 部分適用を避けるため、各プリミティブは「成功するか、何も書き込まないか」の
// いずれかです。複数プリミティブを組み合わせるトランザクションは、失敗しうる
// 読み取りを先に、書き込みを最後に行うことで同じ保証を維持します。
type Ledger struct {
	employees map[EmployeeID]*Employee
	members   map[MemberID]EmployeeID
	paychecks map[EmployeeID][]*Paycheck
}

// NewLedger は空の台帳を生成します。
func NewLedger() *Ledger {
	return &Ledger{
		employees: make(map[EmployeeID]*Employee),
		members:   make(map[MemberID]EmployeeID),
		paychecks: make(map[EmployeeID][]*Paycheck),
	}
}

// Insert は従業員を追加します。同じ ID が既に存在する場合は失敗します。
func (l *Ledger) Insert(e *Employee) error {
	if _, ok := l.employees[e.ID]; ok {
		return fmt.Errorf("employee %d: %w", e.ID, ErrEmployeeAlreadyExists)
	}
	l.employees[e.ID] = e.Clone()
	return nil
}

// Remove は従業員を削除します。支払い履歴も併せて破棄します。
func (l *Ledger) Remove(id EmployeeID) error {
	if _, ok := l.employees[id]; !ok {
		return fmt.Errorf("employee %d: %w", id, ErrEmployeeNotFound)
	}
	delete(l.employees, id)
	delete(l.paychecks, id)
	return nil
}

// Fetch は従業員の深いコピーを返します。
// コピーへの変更は Update を呼ぶまで台帳に反映されません。
func (l *Ledger) Fetch(id EmployeeID) (*Employee, error) {
	e, ok := l.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %d: %w", id, ErrEmployeeNotFound)
	}
	return e.Clone(), nil
}

// FetchAll は全従業員のスナップショットを返します。
// 返された値を変更しても Update を呼ぶまで台帳には影響しません。
func (l *Ledger) FetchAll() map[EmployeeID]*Employee {
	snapshot := make(map[EmployeeID]*Employee, len(l.employees))
	for id, e := range l.employees {
		snapshot[id] = e.Clone()
	}
	return snapshot
}

// Update は既存の従業員を置き換えます。存在しない ID の場合は失敗します(upsert はしません)。
func (l *Ledger) Update(e *Employee) error {
	if _, ok := l.employees[e.ID]; !ok {
		return fmt.Errorf("employee %d: %w", e.ID, ErrEmployeeNotFound)
	}
	l.employees[e.ID] = e.Clone()
	return nil
}

// AddUnionMember は組合員 ID と従業員 ID の対応を登録します。
// 組合員 ID が既に登録済みの場合は失敗します。
func (l *Ledger) AddUnionMember(memberID MemberID, employeeID EmployeeID) error {
	if _, ok := l.members[memberID]; ok {
		return fmt.Errorf("member %d: %w", memberID, ErrMemberAlreadyExists)
	}
	l.members[memberID] = employeeID
	return nil
}

// RemoveUnionMember は組合員 ID の登録を解除します。未登録の場合は失敗します。
func (l *Ledger) RemoveUnionMember(memberID MemberID) error {
	if _, ok := l.members[memberID]; !ok {
		return fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
	}
	delete(l.members, memberID)
	return nil
}

// FindUnionMember は組合員 ID から従業員 ID を解決します。
func (l *Ledger) FindUnionMember(memberID MemberID) (EmployeeID, error) {
	employeeID, ok := l.members[memberID]
	if !ok {
		return 0, fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
	}
	return employeeID, nil
}

// RecordPaycheck は従業員の支払い履歴に小切手を追記します。
// 存在する従業員に対しては失敗しません。
func (l *Ledger) RecordPaycheck(id EmployeeID, paycheck *Paycheck) {
	l.paychecks[id] = append(l.paychecks[id], paycheck)
}

// PaychecksFor は従業員の支払い履歴のコピーを返します。履歴がなければ空です。
func (l *Ledger) PaychecksFor(id EmployeeID) []*Paycheck {
	history := l.paychecks[id]
	copied := make([]*Paycheck, len(history))
	for i, pc := range history {
		clone := *pc
		copied[i] = &clone
	}
	return copied
}
