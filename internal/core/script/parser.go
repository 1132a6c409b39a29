package script

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
)

// Parse はスクリプト 1 行を型付きコマンドへ解析します。
// 空行と `#` で始まるコメント行は (nil, nil) を返します。
// 不正な行は *ParseError を返し、その行の解析はそこで打ち切られます。
// Parse は純粋で状態を持たず、台帳には一切触れません。
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	c := &cursor{tokens: tokens, lineLen: len(line)}

	head, err := c.keyword("AddEmp", "DelEmp", "TimeCard", "SalesReceipt", "ServiceCharge", "ChgEmp", "Payday")
	if err != nil {
		return nil, err
	}

	var cmd Command
	switch head {
	case "AddEmp":
		cmd, err = parseAddEmp(c)
	case "DelEmp":
		cmd, err = parseDelEmp(c)
	case "TimeCard":
		cmd, err = parseTimeCard(c)
	case "SalesReceipt":
		cmd, err = parseSalesReceipt(c)
	case "ServiceCharge":
		cmd, err = parseServiceCharge(c)
	case "ChgEmp":
		cmd, err = parseChgEmp(c)
	case "Payday":
		cmd, err = parsePayday(c)
	}
	if err != nil {
		return nil, err
	}

	if err := c.end(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseAddEmp(c *cursor) (Command, error) {
	id, err := c.employeeID()
	if err != nil {
		return nil, err
	}
	name, err := c.quotedField("<name>")
	if err != nil {
		return nil, err
	}
	address, err := c.quotedField("<address>")
	if err != nil {
		return nil, err
	}

	kind, err := c.keyword("H", "S", "C")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "H":
		rate, err := c.decimalField("<hourly-rate>")
		if err != nil {
			return nil, err
		}
		return &AddHourlyEmployee{ID: id, Name: name, Address: address, HourlyRate: rate}, nil
	case "S":
		salary, err := c.decimalField("<salary>")
		if err != nil {
			return nil, err
		}
		return &AddSalariedEmployee{ID: id, Name: name, Address: address, Salary: salary}, nil
	default:
		salary, err := c.decimalField("<salary>")
		if err != nil {
			return nil, err
		}
		rate, err := c.decimalField("<commission-rate>")
		if err != nil {
			return nil, err
		}
		return &AddCommissionedEmployee{ID: id, Name: name, Address: address, Salary: salary, CommissionRate: rate}, nil
	}
}

func parseDelEmp(c *cursor) (Command, error) {
	id, err := c.employeeID()
	if err != nil {
		return nil, err
	}
	return &DeleteEmployee{ID: id}, nil
}

func parseTimeCard(c *cursor) (Command, error) {
	id, err := c.employeeID()
	if err != nil {
		return nil, err
	}
	date, err := c.dateField()
	if err != nil {
		return nil, err
	}
	hours, err := c.decimalField("<hours>")
	if err != nil {
		return nil, err
	}
	return &AddTimeCard{ID: id, Date: date, Hours: hours}, nil
}

func parseSalesReceipt(c *cursor) (Command, error) {
	id, err := c.employeeID()
	if err != nil {
		return nil, err
	}
	date, err := c.dateField()
	if err != nil {
		return nil, err
	}
	amount, err := c.decimalField("<amount>")
	if err != nil {
		return nil, err
	}
	return &AddSalesReceipt{ID: id, Date: date, Amount: amount}, nil
}

func parseServiceCharge(c *cursor) (Command, error) {
	memberID, err := c.memberID()
	if err != nil {
		return nil, err
	}
	date, err := c.dateField()
	if err != nil {
		return nil, err
	}
	amount, err := c.decimalField("<amount>")
	if err != nil {
		return nil, err
	}
	return &AddServiceCharge{MemberID: memberID, Date: date, Amount: amount}, nil
}

// parseChgEmp は ChgEmp の下位形式を固定順で試します。
// 順序: Name, Address, Hourly, Salaried, Commissioned, Hold, Direct, Mail, Member, NoMember。
// 共有接頭辞 `ChgEmp <id>` を越えた最初の一致にコミットし、別コマンドへは退行しません。
func parseChgEmp(c *cursor) (Command, error) {
	id, err := c.employeeID()
	if err != nil {
		return nil, err
	}

	sub, err := c.keyword("Name", "Address", "Hourly", "Salaried", "Commissioned", "Hold", "Direct", "Mail", "Member", "NoMember")
	if err != nil {
		return nil, err
	}

	switch sub {
	case "Name":
		name, err := c.quotedField("<name>")
		if err != nil {
			return nil, err
		}
		return &ChangeName{ID: id, Name: name}, nil
	case "Address":
		address, err := c.quotedField("<address>")
		if err != nil {
			return nil, err
		}
		return &ChangeAddress{ID: id, Address: address}, nil
	case "Hourly":
		rate, err := c.decimalField("<hourly-rate>")
		if err != nil {
			return nil, err
		}
		return &ChangeHourly{ID: id, HourlyRate: rate}, nil
	case "Salaried":
		salary, err := c.decimalField("<salary>")
		if err != nil {
			return nil, err
		}
		return &ChangeSalaried{ID: id, Salary: salary}, nil
	case "Commissioned":
		salary, err := c.decimalField("<salary>")
		if err != nil {
			return nil, err
		}
		rate, err := c.decimalField("<commission-rate>")
		if err != nil {
			return nil, err
		}
		return &ChangeCommissioned{ID: id, Salary: salary, CommissionRate: rate}, nil
	case "Hold":
		return &ChangeHold{ID: id}, nil
	case "Direct":
		bank, err := c.quotedField("<bank>")
		if err != nil {
			return nil, err
		}
		account, err := c.quotedField("<account>")
		if err != nil {
			return nil, err
		}
		return &ChangeDirect{ID: id, Bank: bank, Account: account}, nil
	case "Mail":
		address, err := c.quotedField("<address>")
		if err != nil {
			return nil, err
		}
		return &ChangeMail{ID: id, Address: address}, nil
	case "Member":
		memberID, err := c.memberID()
		if err != nil {
			return nil, err
		}
		if _, err := c.keyword("Dues"); err != nil {
			return nil, err
		}
		dues, err := c.decimalField("<dues>")
		if err != nil {
			return nil, err
		}
		return &ChangeMember{ID: id, MemberID: memberID, Dues: dues}, nil
	default:
		return &ChangeNoMember{ID: id}, nil
	}
}

func parsePayday(c *cursor) (Command, error) {
	date, err := c.dateField()
	if err != nil {
		return nil, err
	}
	return &Payday{Date: date}, nil
}

// token は行内の 1 トークンです。pos は行頭からのバイト位置です。
type token struct {
	text   string
	pos    int
	quoted bool
}

// tokenize は行を空白区切りトークンと二重引用符リテラルへ分割します。
// 引用符内にエスケープ構文はありません。
func tokenize(line string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(line) {
		r := rune(line[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '"':
			end := strings.IndexByte(line[i+1:], '"')
			if end < 0 {
				return nil, newParseError(i, line[i:], "closing quote")
			}
			tokens = append(tokens, token{text: line[i+1 : i+1+end], pos: i, quoted: true})
			i += end + 2
		default:
			start := i
			for i < len(line) && !unicode.IsSpace(rune(line[i])) && line[i] != '"' {
				i++
			}
			tokens = append(tokens, token{text: line[start:i], pos: start})
		}
	}
	return tokens, nil
}

type cursor struct {
	tokens  []token
	pos     int
	lineLen int
}

func (c *cursor) take(expected ...string) (token, error) {
	if c.pos >= len(c.tokens) {
		return token{}, newParseError(c.lineLen, "end of line", expected...)
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

func (c *cursor) keyword(options ...string) (string, error) {
	tok, err := c.take(options...)
	if err != nil {
		return "", err
	}
	if tok.quoted {
		return "", newParseError(tok.pos, strconv.Quote(tok.text), options...)
	}
	for _, opt := range options {
		if tok.text == opt {
			return opt, nil
		}
	}
	return "", newParseError(tok.pos, tok.text, options...)
}

func (c *cursor) employeeID() (payroll.EmployeeID, error) {
	n, err := c.intField("<employee-id>")
	return payroll.EmployeeID(n), err
}

func (c *cursor) memberID() (payroll.MemberID, error) {
	n, err := c.intField("<member-id>")
	return payroll.MemberID(n), err
}

func (c *cursor) intField(name string) (int, error) {
	tok, err := c.take(name)
	if err != nil {
		return 0, err
	}
	if tok.quoted {
		return 0, newParseError(tok.pos, strconv.Quote(tok.text), name)
	}
	n, convErr := strconv.Atoi(tok.text)
	if convErr != nil {
		return 0, newParseError(tok.pos, tok.text, name)
	}
	return n, nil
}

func (c *cursor) quotedField(name string) (string, error) {
	tok, err := c.take(name)
	if err != nil {
		return "", err
	}
	if !tok.quoted {
		return "", newParseError(tok.pos, tok.text, name)
	}
	return tok.text, nil
}

func (c *cursor) dateField() (time.Time, error) {
	tok, err := c.take("<date>")
	if err != nil {
		return time.Time{}, err
	}
	if tok.quoted {
		return time.Time{}, newParseError(tok.pos, strconv.Quote(tok.text), "<date>")
	}
	t, convErr := time.Parse(dateLayout, tok.text)
	if convErr != nil {
		return time.Time{}, newParseError(tok.pos, tok.text, "<date>")
	}
	return payroll.NormalizeDate(t), nil
}

// decimalField は標準的な 10 進小数を受理します。先頭ゼロを省いた `.1` 形式も許容します。
func (c *cursor) decimalField(name string) (decimal.Decimal, error) {
	tok, err := c.take(name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if tok.quoted {
		return decimal.Decimal{}, newParseError(tok.pos, strconv.Quote(tok.text), name)
	}

	text := tok.text
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	} else if strings.HasPrefix(text, "-.") {
		text = "-0" + text[1:]
	}

	d, convErr := decimal.NewFromString(text)
	if convErr != nil {
		return decimal.Decimal{}, newParseError(tok.pos, tok.text, name)
	}
	return d, nil
}

func (c *cursor) end() error {
	if c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		return newParseError(tok.pos, tok.text, "end of line")
	}
	return nil
}
