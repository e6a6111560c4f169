package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"lyrics-core/internal/config"
	"lyrics-core/internal/lyrics"
	"lyrics-core/pkg/lrclib"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// App 交互式歌词选取应用
type App struct {
	cfg      *config.Config
	provider *lyrics.Provider
	scanner  *bufio.Scanner
}

// lrclibLookup 将LRCLib客户端适配到歌词查询接口
type lrclibLookup struct {
	client *lrclib.Client
}

func (l *lrclibLookup) Search(ctx context.Context, trackName, artistName string) ([]lyrics.SearchResult, error) {
	records, err := l.client.Search(ctx, trackName, artistName)
	if err != nil {
		return nil, err
	}

	results := make([]lyrics.SearchResult, len(records))
	for i, record := range records {
		results[i] = lyrics.SearchResult{
			ID:           record.ID,
			TrackName:    record.TrackName,
			ArtistName:   record.ArtistName,
			Instrumental: record.Instrumental,
		}
	}
	return results, nil
}

func (l *lrclibLookup) GetLyricsByID(ctx context.Context, id int) (*lyrics.LyricsRecord, error) {
	record, err := l.client.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &lyrics.LyricsRecord{
		PlainLyrics:  record.PlainLyrics,
		SyncedLyrics: record.SyncedLyrics,
		Instrumental: record.Instrumental,
	}, nil
}

func New(cfg *config.Config) *App {
	// 设置 zerolog 的全局配置
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	client := lrclib.NewClient(
		cfg.LRCLib.BaseURL,
		cfg.LRCLib.UserAgent,
		cfg.LRCLib.RequestTimeout,
		cfg.LRCLib.MaxRetries,
	)
	provider := lyrics.NewProvider(&lrclibLookup{client: client}, cfg.App.InstrumentalText)

	return &App{
		cfg:      cfg,
		provider: provider,
		scanner:  bufio.NewScanner(os.Stdin),
	}
}

func (a *App) Run() {
	trackName := a.promptLine("Track name: ")
	artistName := a.promptLine("Artist: ")

	if trackName == "" {
		log.Fatal().Msg("Track name is required")
	}

	metadata := lyrics.TrackMetadata{Name: trackName, Artist: artistName}

	lyricsText, err := a.provider.GetLyrics(context.Background(), metadata)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get lyrics")
	}

	a.selectQuatrain(lyricsText)
}

// selectQuatrain 循环提示用户选择行范围，直到选出四行或放弃
func (a *App) selectQuatrain(lyricsText string) {
	for {
		selection := a.promptLine("\nSelect exactly 4 non-empty lines (e.g. '2-5', empty to quit): ")
		if selection == "" {
			log.Info().Msg("Selection aborted by user")
			return
		}

		quatrain, err := a.provider.SelectLines(lyricsText, selection)
		if err != nil {
			// 诊断信息已由SelectLines输出，这里只决定是否继续
			var countErr *lyrics.LineCountError
			if errors.Is(err, lyrics.ErrInvalidFormat) ||
				errors.Is(err, lyrics.ErrInvalidSelection) ||
				errors.As(err, &countErr) {
				continue
			}
			log.Fatal().Err(err).Msg("Failed to select lines")
		}

		fmt.Println("\nSelected quatrain:")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println(quatrain)
		fmt.Println(strings.Repeat("-", 40))
		return
	}
}

func (a *App) promptLine(prompt string) string {
	fmt.Print(prompt)
	if !a.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}
