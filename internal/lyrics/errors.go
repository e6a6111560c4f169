package lyrics

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat 选择范围不符合"start-end"格式
var ErrInvalidFormat = errors.New("invalid selection format, expected 'start-end'")

// ErrInvalidSelection 选择范围顺序错误或越界
var ErrInvalidSelection = errors.New("invalid selection range")

// LineCountError 选中范围内非空行数不等于4
type LineCountError struct {
	Selected  int // 实际选中的非空行数
	LineCount int // 歌词总行数，有效范围为 1-LineCount
}

func (e *LineCountError) Error() string {
	return fmt.Sprintf("selected range contains %d non-empty lines, but exactly 4 are required (available lines: 1-%d)",
		e.Selected, e.LineCount)
}
