package lyrics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var selectionPattern = regexp.MustCompile(`^\d+-\d+$`)

// SelectLines 按"start-end"格式从歌词中提取正好4个非空行。
// 行号从1开始，范围两端均包含；只过滤完全为空的行，纯空白行保留。
// 校验失败时先向交互输出流写出诊断信息，再返回对应错误。
func (p *Provider) SelectLines(lyrics string, selection string) (string, error) {
	lines := strings.Split(lyrics, "\n")
	lineCount := len(lines)

	if !selectionPattern.MatchString(selection) {
		fmt.Fprintln(p.out, "Invalid format. Please use 'start-end' format (e.g., '1-4')")
		return "", ErrInvalidFormat
	}

	parts := strings.Split(selection, "-")
	if len(parts) != 2 {
		fmt.Fprintln(p.out, "Invalid format. Please use 'start-end' format (e.g., '1-4')")
		return "", ErrInvalidFormat
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		fmt.Fprintln(p.out, "Invalid format. Please use 'start-end' format (e.g., '1-4')")
		return "", ErrInvalidFormat
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintln(p.out, "Invalid format. Please use 'start-end' format (e.g., '1-4')")
		return "", ErrInvalidFormat
	}

	// 按顺序校验，命中第一个错误即返回
	if start >= end {
		fmt.Fprintf(p.out, "Start line (%d) must be less than end line (%d)\n", start, end)
		return "", ErrInvalidSelection
	}
	if start <= 0 {
		fmt.Fprintf(p.out, "Start line must be greater than 0. Available lines: 1-%d\n", lineCount)
		return "", ErrInvalidSelection
	}
	if end > lineCount {
		fmt.Fprintf(p.out, "End line (%d) exceeds available lines. Available lines: 1-%d\n", end, lineCount)
		return "", ErrInvalidSelection
	}

	extracted := lines[start-1 : end]
	selected := make([]string, 0, len(extracted))
	for _, line := range extracted {
		if line != "" {
			selected = append(selected, line)
		}
	}

	if len(selected) != 4 {
		fmt.Fprintf(p.out, "Selected range contains %d non-empty lines, but exactly 4 are required.\n", len(selected))
		fmt.Fprintf(p.out, "Try selecting a different range from the available lines (1-%d)\n", lineCount)
		return "", &LineCountError{Selected: len(selected), LineCount: lineCount}
	}

	return strings.TrimSpace(strings.Join(selected, "\n")), nil
}
