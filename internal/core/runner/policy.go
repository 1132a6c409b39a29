package runner

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/payroll"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/script"
	"github.com/ogurasousui/payroll-batch-engine/internal/core/transaction"
)

// Outcome は 1 コマンドの実行結果です。
// Command は解析に失敗した行では nil になります。
type Outcome struct {
	Command  script.Command
	Response transaction.Response
	Err      error
	Elapsed  time.Duration
}

// Policy はコマンドごとの実行結果の扱いを決めます。
// 返り値が非 nil の場合、Runner は実行を中断します。
// ポリシーはデコレータとして合成します。継承による拡張はしません。
type Policy interface {
	Apply(o *Outcome) error
}

// HaltPolicy はポリシー未指定時の既定動作です。
// エラーをそのまま伝播させ、実行を停止します。
type HaltPolicy struct{}

// Apply は実行結果のエラーをそのまま返します。
func (HaltPolicy) Apply(o *Outcome) error {
	return o.Err
}

// EchoPolicy は応答またはエラーを報告先へ書き出し、常に続行します。
type EchoPolicy struct {
	Sink io.Writer
}

// Apply は実行結果を 1 行ずつ報告します。エラーでも実行は続行します。
func (p EchoPolicy) Apply(o *Outcome) error {
	switch {
	case o.Err != nil && o.Command != nil:
		fmt.Fprintf(p.Sink, "%s -> error: %v\n", script.Format(o.Command), o.Err)
	case o.Err != nil:
		fmt.Fprintf(p.Sink, "error: %v\n", o.Err)
	default:
		fmt.Fprintf(p.Sink, "%s -> %s\n", script.Format(o.Command), describeResponse(o.Response))
	}
	return nil
}

// SilentPolicy は応答を破棄し、常に続行します。
type SilentPolicy struct{}

// Apply は何もしません。
func (SilentPolicy) Apply(*Outcome) error {
	return nil
}

// FailOpenPolicy はエラーをログに記録したうえで VoidResponse に置き換え、
// 決して実行を中断させないデコレータです。
type FailOpenPolicy struct {
	logger *logrus.Logger
	next   Policy
}

// NewFailOpen は FailOpenPolicy を生成します。next が nil の場合は SilentPolicy、
// logger が nil の場合は標準設定の logrus ロガーを使用します。
func NewFailOpen(logger *logrus.Logger, next Policy) *FailOpenPolicy {
	if logger == nil {
		logger = logrus.New()
	}
	if next == nil {
		next = SilentPolicy{}
	}
	return &FailOpenPolicy{logger: logger, next: next}
}

// NewFailSafe は FailOpen と同じ動作のポリシーを生成します。
// 合成時に意図を名前で区別できるよう、別名として残しています。
func NewFailSafe(logger *logrus.Logger, next Policy) *FailOpenPolicy {
	return NewFailOpen(logger, next)
}

// Apply はエラーを握り潰して VoidResponse に差し替え、内側のポリシーへ渡します。
func (p *FailOpenPolicy) Apply(o *Outcome) error {
	if o.Err != nil {
		fields := logrus.Fields{}
		if o.Command != nil {
			fields["command"] = script.Format(o.Command)
		}
		p.logger.WithFields(fields).WithError(o.Err).Warn("command failed, continuing")

		o.Err = nil
		o.Response = transaction.VoidResponse{}
	}
	return p.next.Apply(o)
}

// ChronographPolicy は任意のポリシーを包み、コマンドごとの経過時間と
// 実行全体の合計時間を報告するデコレータです。
type ChronographPolicy struct {
	sink  io.Writer
	next  Policy
	total time.Duration
	count int
}

// NewChronograph は ChronographPolicy を生成します。next が nil の場合は
// SilentPolicy を包みます。
func NewChronograph(sink io.Writer, next Policy) *ChronographPolicy {
	if next == nil {
		next = SilentPolicy{}
	}
	return &ChronographPolicy{sink: sink, next: next}
}

// Apply は経過時間を報告してから内側のポリシーへ委譲します。
func (p *ChronographPolicy) Apply(o *Outcome) error {
	p.total += o.Elapsed
	p.count++
	fmt.Fprintf(p.sink, "elapsed %s\n", o.Elapsed)
	return p.next.Apply(o)
}

// Finish は実行終了時に合計時間を報告します。Runner が終了時に呼び出します。
func (p *ChronographPolicy) Finish() {
	fmt.Fprintf(p.sink, "total %s over %d commands\n", p.total, p.count)
}

func describeResponse(resp transaction.Response) string {
	switch r := resp.(type) {
	case transaction.VoidResponse:
		return "ok"
	case transaction.EmployeeIDResponse:
		return fmt.Sprintf("employee %d", r.ID)
	case transaction.PaychecksResponse:
		return describePaychecks(r)
	default:
		return fmt.Sprintf("%v", resp)
	}
}

func describePaychecks(r transaction.PaychecksResponse) string {
	ids := make([]payroll.EmployeeID, 0, len(r.Paychecks))
	for id := range r.Paychecks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := fmt.Sprintf("%d paychecks", len(ids))
	for _, id := range ids {
		pc := r.Paychecks[id]
		out += fmt.Sprintf("\n  employee %d: gross %s deductions %s net %s (%s)",
			id, pc.GrossPay, pc.Deductions, pc.NetPay, pc.Disposition)
	}
	return out
}
