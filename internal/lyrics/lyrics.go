package lyrics

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("component", "lyrics-provider").Logger()

// TrackMetadata 歌曲元数据（由调用方提供，只读）
type TrackMetadata struct {
	Name   string
	Artist string
}

// SearchResult 歌词搜索结果条目
type SearchResult struct {
	ID           int
	TrackName    string
	ArtistName   string
	Instrumental bool
}

// LyricsRecord 单条歌词记录
type LyricsRecord struct {
	PlainLyrics  string
	SyncedLyrics string
	Instrumental bool
}

// Lookup 歌词查询能力接口
type Lookup interface {
	// Search 按歌名和歌手搜索，返回有序候选列表（可能为空）
	Search(ctx context.Context, trackName, artistName string) ([]SearchResult, error)

	// GetLyricsByID 根据搜索结果的ID获取歌词记录
	GetLyricsByID(ctx context.Context, id int) (*LyricsRecord, error)
}

// Provider 歌词提供器
type Provider struct {
	lookup           Lookup
	instrumentalText string
	in               io.Reader
	out              io.Writer
}

// NewProvider 创建歌词提供器，交互读写默认绑定到标准输入输出
func NewProvider(lookup Lookup, instrumentalText string) *Provider {
	return NewProviderWithIO(lookup, instrumentalText, os.Stdin, os.Stdout)
}

// NewProviderWithIO 创建歌词提供器并指定交互读写流
func NewProviderWithIO(lookup Lookup, instrumentalText string, in io.Reader, out io.Writer) *Provider {
	return &Provider{
		lookup:           lookup,
		instrumentalText: instrumentalText,
		in:               in,
		out:              out,
	}
}

// GetLyrics 获取歌词：先搜索，再判断纯音乐，最后取歌词正文；
// 搜索无结果或歌词为空时回退到手动输入。查询服务的错误原样向上传递。
func (p *Provider) GetLyrics(ctx context.Context, metadata TrackMetadata) (string, error) {
	results, err := p.lookup.Search(ctx, metadata.Name, metadata.Artist)
	if err != nil {
		return "", err
	}

	if len(results) == 0 {
		logger.Info().
			Str("track", metadata.Name).
			Str("artist", metadata.Artist).
			Msg("No search results, falling back to manual input")
		return p.CollectManualLyrics(), nil
	}

	// 只看第一个候选，不做多结果消歧
	first := results[0]
	if first.Instrumental {
		logger.Info().
			Int("id", first.ID).
			Str("track", metadata.Name).
			Msg("Track is instrumental, using placeholder text")
		return p.instrumentalText, nil
	}

	record, err := p.lookup.GetLyricsByID(ctx, first.ID)
	if err != nil {
		return "", err
	}

	if record == nil || record.PlainLyrics == "" {
		logger.Info().
			Int("id", first.ID).
			Msg("Result has no plain lyrics, falling back to manual input")
		return p.CollectManualLyrics(), nil
	}

	lines := strings.Split(record.PlainLyrics, "\n")
	fmt.Fprintln(p.out, "\nLyrics with line numbers:")
	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	writeNumberedLines(p.out, lines)
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	return record.PlainLyrics, nil
}

// writeNumberedLines 带行号输出歌词，空白行显示为[empty line]
func writeNumberedLines(w io.Writer, lines []string) {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			fmt.Fprintf(w, "%2d. %s\n", i+1, line)
		} else {
			fmt.Fprintf(w, "%2d. [empty line]\n", i+1)
		}
	}
}
