package lyrics

import (
	"strings"
	"testing"
)

// TestCollectManualLyrics 测试手动输入歌词
func TestCollectManualLyrics(t *testing.T) {
	t.Run("OnlySentinel", func(t *testing.T) {
		p, out := newTestProvider("end\n")
		result := p.CollectManualLyrics()

		if result != NoLyricsPlaceholder {
			t.Errorf("Expected placeholder %q, got %q", NoLyricsPlaceholder, result)
		}
		if !strings.Contains(out.String(), "No lyrics entered") {
			t.Error("Expected notice about empty input")
		}
	})

	t.Run("SentinelIsCaseInsensitive", func(t *testing.T) {
		p, _ := newTestProvider("line one\n  END  \n")
		result := p.CollectManualLyrics()

		if result != "line one" {
			t.Errorf("Expected 'line one', got %q", result)
		}
	})

	t.Run("JoinsLinesWithNewline", func(t *testing.T) {
		p, out := newTestProvider("first\nsecond\nthird\nend\n")
		result := p.CollectManualLyrics()

		if result != "first\nsecond\nthird" {
			t.Errorf("Expected joined lines, got %q", result)
		}

		// 回显带行号
		if !strings.Contains(out.String(), " 1. first") {
			t.Error("Expected numbered echo of entered lines")
		}
	})

	t.Run("EmptyLinesAreKeptAndEchoed", func(t *testing.T) {
		p, out := newTestProvider("first\n\nthird\nend\n")
		result := p.CollectManualLyrics()

		if result != "first\n\nthird" {
			t.Errorf("Expected empty line preserved, got %q", result)
		}
		if !strings.Contains(out.String(), "[empty line]") {
			t.Error("Expected empty line rendered as [empty line]")
		}
	})

	t.Run("EOFTerminatesInput", func(t *testing.T) {
		// 输入流结束等同于输入了end
		p, _ := newTestProvider("only line")
		result := p.CollectManualLyrics()

		if result != "only line" {
			t.Errorf("Expected 'only line', got %q", result)
		}
	})

	t.Run("EOFWithoutInput", func(t *testing.T) {
		p, _ := newTestProvider("")
		result := p.CollectManualLyrics()

		if result != NoLyricsPlaceholder {
			t.Errorf("Expected placeholder %q, got %q", NoLyricsPlaceholder, result)
		}
	})
}
