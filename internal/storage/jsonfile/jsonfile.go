// Package jsonfile persists every collection as one flat JSON document,
// rewritten wholesale on each mutation. A mutex per document serializes
// read-modify-write cycles; writes go through a temp file and rename so a
// crash cannot leave a half-written document behind.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nullchan-dev/nullchan/internal/domain"
)

const (
	boardsFile = "boards.json"
	postsFile  = "posts.json"
	siteFile   = "site.json"
	infoFile   = "infoposts.json"
)

type boardsDoc struct {
	Boards []domain.Board `json:"boards"`
}

type postsDoc struct {
	Threads map[domain.BoardId][]*domain.Thread `json:"threads"`
	Replies map[domain.ThreadId][]*domain.Reply `json:"replies"`
}

type infoDoc struct {
	Posts []domain.InfoPost `json:"posts"`
}

type Storage struct {
	dir string

	// lock order when both are needed: boardsMu before postsMu
	boardsMu sync.Mutex
	postsMu  sync.Mutex
	siteMu   sync.Mutex
	infoMu   sync.Mutex
}

// New prepares the data directory and seeds any missing document.
// Callers treat an error here as fatal: every later read assumes the
// files exist and parse.
func New(dataDir string) (*Storage, error) {
	dir := filepath.Clean(dataDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	s := &Storage{dir: dir}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) seed() error {
	now := domain.NowMillis()
	seeds := map[string]interface{}{
		boardsFile: boardsDoc{Boards: []domain.Board{
			{Id: "general", Name: "General", Description: "General discussion", Created: now, Admin: true},
			{Id: "science", Name: "Science", Description: "Scientific discussions and research", Created: now, Admin: true},
			{Id: "memes", Name: "Memes", Description: "Funny content and memes", Created: now, Admin: true},
		}},
		postsFile: postsDoc{
			Threads: map[domain.BoardId][]*domain.Thread{},
			Replies: map[domain.ThreadId][]*domain.Reply{},
		},
		siteFile: domain.SiteConfig{
			Title:         "nullchan",
			Description:   "A tiny anonymous imageboard",
			SocialLinks:   map[string]string{},
			AudioURL:      "/theme.mp3",
			AudioAutoplay: true,
			AudioLoop:     true,
			AudioVolume:   0.3,
		},
		infoFile: infoDoc{Posts: []domain.InfoPost{}},
	}

	for name, doc := range seeds {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := s.write(name, doc); err != nil {
			return err
		}
	}
	return nil
}

// read parses the whole document. The file is assumed to exist because
// seeding runs first; a missing or corrupt file surfaces as an error the
// handler layer maps to a 500.
func (s *Storage) read(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// write serializes the whole document and swaps it in atomically.
func (s *Storage) write(name string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
