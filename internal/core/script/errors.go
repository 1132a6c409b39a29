package script

import (
	"fmt"
	"strings"
)

// ParseError はスクリプト行の解析失敗を表します。
// Position は行内の 0 始まりの桁位置、Expected はその位置で許容されるトークンの集合、
// Found は実際に見つかったテキストです。
type ParseError struct {
	Position int
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script: column %d: expected %s, found %q", e.Position, strings.Join(e.Expected, " or "), e.Found)
}

func newParseError(position int, found string, expected ...string) *ParseError {
	return &ParseError{Position: position, Expected: expected, Found: found}
}
