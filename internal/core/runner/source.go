package runner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ogurasousui/payroll-batch-engine/internal/core/script"
)

// Source は実行すべきコマンドを 1 つずつ供給します。
// ok が false になった時点で供給源は尽きています。
// 行の解析に失敗した場合は ok を true のまま err を返し、
// 続行の判断は Runner のポリシーに委ねます。
type Source interface {
	Next() (cmd script.Command, ok bool, err error)
}

// LineSource は行バッファリングされたテキスト(ファイル・標準入力・メモリ上の
// バッファ)からスクリプト行を読み、解析して供給します。
// 空行とコメント行は読み飛ばします。
type LineSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineSource は LineSource を生成します。
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Next は次のコマンドを返します。解析エラーには行番号を付与します。
func (s *LineSource) Next() (script.Command, bool, error) {
	for s.scanner.Scan() {
		s.line++
		cmd, err := script.Parse(s.scanner.Text())
		if err != nil {
			return nil, true, fmt.Errorf("runner: line %d: %w", s.line, err)
		}
		if cmd == nil {
			continue
		}
		return cmd, true, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("runner: read script: %w", err)
	}
	return nil, false, nil
}

// SliceSource はメモリ上のコマンド列を供給します。
// JSON 待ち行列から復元したコマンドの実行にも使用します。
type SliceSource struct {
	cmds []script.Command
	pos  int
}

// NewSliceSource は SliceSource を生成します。
func NewSliceSource(cmds []script.Command) *SliceSource {
	return &SliceSource{cmds: cmds}
}

// Next は次のコマンドを返します。
func (s *SliceSource) Next() (script.Command, bool, error) {
	if s.pos >= len(s.cmds) {
		return nil, false, nil
	}
	cmd := s.cmds[s.pos]
	s.pos++
	return cmd, true, nil
}
