package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

const indexFile = "index.json"

// Source loads the deck index and deck documents from a local directory
// or an HTTP base URL.
type Source struct {
	dir     string
	baseURL string
	client  *http.Client
}

// NewFileSource returns a source reading deck documents from a directory.
func NewFileSource(dir string) *Source {
	return &Source{dir: dir}
}

// NewHTTPSource returns a source fetching deck documents from a base URL.
func NewHTTPSource(baseURL string) *Source {
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// LoadIndex reads and parses the deck index document. Entries missing an
// id or a file reference are dropped.
func (s *Source) LoadIndex(ctx context.Context) ([]model.DeckMeta, error) {
	raw, err := s.read(ctx, indexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck index: %w", err)
	}
	var metas []model.DeckMeta
	if err := json.Unmarshal(raw, &metas); err != nil {
		return nil, fmt.Errorf("failed to parse deck index: %w", err)
	}
	valid := make([]model.DeckMeta, 0, len(metas))
	for _, meta := range metas {
		if meta.ID == "" || meta.File == "" {
			continue
		}
		valid = append(valid, meta)
	}
	return valid, nil
}

// LoadDocument returns the raw deck document for a descriptor.
func (s *Source) LoadDocument(ctx context.Context, meta model.DeckMeta) ([]byte, error) {
	file := meta.File
	if file == "" {
		file = meta.ID + ".json"
	}
	raw, err := s.read(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %q: %w", meta.ID, err)
	}
	return raw, nil
}

// LoadDeck loads and normalizes one deck. A failed or malformed document
// degrades to a deck with no items.
func (s *Source) LoadDeck(ctx context.Context, meta model.DeckMeta) model.Deck {
	raw, err := s.LoadDocument(ctx, meta)
	if err != nil {
		return Normalize(meta, nil)
	}
	return Normalize(meta, raw)
}

// LoadDecks loads all decks concurrently, one goroutine per descriptor.
// Each load is independent: a failure degrades that entry to an empty
// deck and never aborts the batch.
func (s *Source) LoadDecks(ctx context.Context, metas []model.DeckMeta) []model.Deck {
	decks := make([]model.Deck, len(metas))
	var wg sync.WaitGroup
	for i, meta := range metas {
		wg.Add(1)
		go func(i int, meta model.DeckMeta) {
			defer wg.Done()
			decks[i] = s.LoadDeck(ctx, meta)
		}(i, meta)
	}
	wg.Wait()
	return decks
}

func (s *Source) read(ctx context.Context, file string) ([]byte, error) {
	if s.baseURL != "" {
		return s.fetch(ctx, s.baseURL+"/"+url.PathEscape(file))
	}
	return os.ReadFile(filepath.Join(s.dir, file))
}

func (s *Source) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
