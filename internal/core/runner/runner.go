package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/transaction"
)

// State は Runner の状態です。
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateDone    State = "done"
)

// ErrAlreadyRan は終了済みの Runner を再実行しようとしたことを表します。
// Runner は途中からの再開をサポートしません。
var ErrAlreadyRan = errors.New("runner: restart not supported")

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Runner は供給源のコマンドを 1 つずつ完了まで実行します。
// コマンド間のオーバーラップはなく、各コマンドの結果はポリシーが処理します。
// 設計上シングルスレッドで動作します。並行アクセスの調停はストアの
// RunTx だけが行います。
type Runner struct {
	source     Source
	dispatcher *transaction.Dispatcher
	policy     Policy
	clock      Clock
	state      State
}

// New は Runner を生成します。policy が nil の場合は HaltPolicy
// (エラーで停止)、clock が nil の場合は実時刻を使用します。
func New(source Source, dispatcher *transaction.Dispatcher, policy Policy, clock Clock) *Runner {
	if policy == nil {
		policy = HaltPolicy{}
	}
	if clock == nil {
		clock = realClock{}
	}
	return &Runner{
		source:     source,
		dispatcher: dispatcher,
		policy:     policy,
		clock:      clock,
		state:      StateIdle,
	}
}

// State は現在の状態を返します。
func (r *Runner) State() State {
	return r.state
}

// Run は供給源が尽きるまでコマンドを実行します。
// ポリシーが中断を指示した場合、そのエラーを返して Done になります。
func (r *Runner) Run(ctx context.Context) error {
	if r.state != StateIdle {
		return ErrAlreadyRan
	}
	r.state = StateRunning
	defer func() {
		r.state = StateDone
		if f, ok := r.policy.(interface{ Finish() }); ok {
			f.Finish()
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("runner: aborted: %w", err)
		}

		cmd, ok, err := r.source.Next()
		if !ok {
			return err
		}

		outcome := Outcome{Command: cmd, Err: err}
		if err == nil {
			tx := r.dispatcher.Dispatch(cmd)
			start := r.clock.Now()
			outcome.Response, outcome.Err = tx.Execute(ctx)
			outcome.Elapsed = r.clock.Now().Sub(start)
		}

		if policyErr := r.policy.Apply(&outcome); policyErr != nil {
			return policyErr
		}
	}
}
