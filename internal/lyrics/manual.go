package lyrics

import (
	"bufio"
	"fmt"
	"strings"
)

// NoLyricsPlaceholder 手动输入为空时返回的占位文本
const NoLyricsPlaceholder = "No lyrics available"

// manualEndSentinel 手动输入的结束标记（不区分大小写）
const manualEndSentinel = "end"

// CollectManualLyrics 逐行手动输入歌词，单独一行输入end结束。
// 输入流结束（EOF）等同于输入了结束标记。
func (p *Provider) CollectManualLyrics() string {
	fmt.Fprintln(p.out, "\nNo lyrics found for this track.")
	fmt.Fprintln(p.out, "Please enter the lyrics line by line.")
	fmt.Fprintln(p.out, "Type 'end' on a new line when you're finished.")
	fmt.Fprintln(p.out)

	scanner := bufio.NewScanner(p.in)
	var lines []string
	for {
		fmt.Fprintf(p.out, "%2d. ", len(lines)+1)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(strings.ToLower(line)) == manualEndSentinel {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		logger.Info().Msg("No manual lyrics entered, using placeholder text")
		fmt.Fprintln(p.out, "No lyrics entered. Using placeholder text.")
		return NoLyricsPlaceholder
	}

	lyrics := strings.Join(lines, "\n")

	// 回显已输入的歌词供用户确认（仅提示，无需二次确认）
	fmt.Fprintln(p.out, "\nYou entered the following lyrics:")
	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	writeNumberedLines(p.out, lines)
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	return lyrics
}
