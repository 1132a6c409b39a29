package script

import (
	"encoding/json"
	"fmt"
	"io"
)

// コマンド待ち行列の構造化表現です。スクリプト構文とは独立に、
// 種別名付きエンベロープの JSON 配列としてコマンド列を往復変換できます。

type envelope struct {
	Type    string          `json:"type"`
	Command json.RawMessage `json:"command"`
}

const (
	typeAddSalariedEmployee     = "add_salaried_employee"
	typeAddHourlyEmployee       = "add_hourly_employee"
	typeAddCommissionedEmployee = "add_commissioned_employee"
	typeDeleteEmployee          = "delete_employee"
	typeAddTimeCard             = "add_time_card"
	typeAddSalesReceipt         = "add_sales_receipt"
	typeAddServiceCharge        = "add_service_charge"
	typeChangeName              = "change_name"
	typeChangeAddress           = "change_address"
	typeChangeHourly            = "change_hourly"
	typeChangeSalaried          = "change_salaried"
	typeChangeCommissioned      = "change_commissioned"
	typeChangeHold              = "change_hold"
	typeChangeDirect            = "change_direct"
	typeChangeMail              = "change_mail"
	typeChangeMember            = "change_member"
	typeChangeNoMember          = "change_no_member"
	typePayday                  = "payday"
)

func typeName(cmd Command) (string, error) {
	switch cmd.(type) {
	case *AddSalariedEmployee:
		return typeAddSalariedEmployee, nil
	case *AddHourlyEmployee:
		return typeAddHourlyEmployee, nil
	case *AddCommissionedEmployee:
		return typeAddCommissionedEmployee, nil
	case *DeleteEmployee:
		return typeDeleteEmployee, nil
	case *AddTimeCard:
		return typeAddTimeCard, nil
	case *AddSalesReceipt:
		return typeAddSalesReceipt, nil
	case *AddServiceCharge:
		return typeAddServiceCharge, nil
	case *ChangeName:
		return typeChangeName, nil
	case *ChangeAddress:
		return typeChangeAddress, nil
	case *ChangeHourly:
		return typeChangeHourly, nil
	case *ChangeSalaried:
		return typeChangeSalaried, nil
	case *ChangeCommissioned:
		return typeChangeCommissioned, nil
	case *ChangeHold:
		return typeChangeHold, nil
	case *ChangeDirect:
		return typeChangeDirect, nil
	case *ChangeMail:
		return typeChangeMail, nil
	case *ChangeMember:
		return typeChangeMember, nil
	case *ChangeNoMember:
		return typeChangeNoMember, nil
	case *Payday:
		return typePayday, nil
	default:
		return "", fmt.Errorf("script: unknown command type %T", cmd)
	}
}

func emptyCommand(typ string) (Command, error) {
	switch typ {
	case typeAddSalariedEmployee:
		return &AddSalariedEmployee{}, nil
	case typeAddHourlyEmployee:
		return &AddHourlyEmployee{}, nil
	case typeAddCommissionedEmployee:
		return &AddCommissionedEmployee{}, nil
	case typeDeleteEmployee:
		return &DeleteEmployee{}, nil
	case typeAddTimeCard:
		return &AddTimeCard{}, nil
	case typeAddSalesReceipt:
		return &AddSalesReceipt{}, nil
	case typeAddServiceCharge:
		return &AddServiceCharge{}, nil
	case typeChangeName:
		return &ChangeName{}, nil
	case typeChangeAddress:
		return &ChangeAddress{}, nil
	case typeChangeHourly:
		return &ChangeHourly{}, nil
	case typeChangeSalaried:
		return &ChangeSalaried{}, nil
	case typeChangeCommissioned:
		return &ChangeCommissioned{}, nil
	case typeChangeHold:
		return &ChangeHold{}, nil
	case typeChangeDirect:
		return &ChangeDirect{}, nil
	case typeChangeMail:
		return &ChangeMail{}, nil
	case typeChangeMember:
		return &ChangeMember{}, nil
	case typeChangeNoMember:
		return &ChangeNoMember{}, nil
	case typePayday:
		return &Payday{}, nil
	default:
		return nil, fmt.Errorf("script: unknown command type %q", typ)
	}
}

// EncodeQueue はコマンド列を JSON 配列として書き出します。
func EncodeQueue(w io.Writer, cmds []Command) error {
	envelopes := make([]envelope, 0, len(cmds))
	for _, cmd := range cmds {
		typ, err := typeName(cmd)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(cmd)
		if err != nil {
			return fmt.Errorf("script: encode %s: %w", typ, err)
		}
		envelopes = append(envelopes, envelope{Type: typ, Command: raw})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelopes); err != nil {
		return fmt.Errorf("script: encode queue: %w", err)
	}
	return nil
}

// DecodeQueue は EncodeQueue が書き出した JSON 配列を読み戻します。
func DecodeQueue(r io.Reader) ([]Command, error) {
	var envelopes []envelope
	if err := json.NewDecoder(r).Decode(&envelopes); err != nil {
		return nil, fmt.Errorf("script: decode queue: %w", err)
	}

	cmds := make([]Command, 0, len(envelopes))
	for _, env := range envelopes {
		cmd, err := emptyCommand(env.Type)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(env.Command, cmd); err != nil {
			return nil, fmt.Errorf("script: decode %s: %w", env.Type, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
