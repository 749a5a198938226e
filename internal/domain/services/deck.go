package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// GenerateRequest describes one document to generate
type GenerateRequest struct {
	// OutputPath is where the document is written
	OutputPath string

	// Title is the deck title
	Title string

	// Slides holds raw "Title|line1\nline2" values; empty uses the default deck
	Slides []string
}

// GenerateResult describes a written document
type GenerateResult struct {
	OutputPath   string
	DeckID       string
	PageCount    int
	Bytes        int
	UsedDefaults bool
}

// DeckService drives parse, render, assemble and write
type DeckService struct {
	parser    ports.SpecParser
	renderer  ports.SlideRenderer
	assembler ports.DocumentAssembler
	fs        ports.FileSystem
	logger    ports.Logger
	dirMode   os.FileMode
	fileMode  os.FileMode
}

// NewDeckService creates a new deck generation service
func NewDeckService(
	parser ports.SpecParser,
	renderer ports.SlideRenderer,
	assembler ports.DocumentAssembler,
	fs ports.FileSystem,
	logger ports.Logger,
	output entities.OutputConfig,
) *DeckService {
	if logger == nil {
		logger = ports.NopLogger{}
	}

	return &DeckService{
		parser:    parser,
		renderer:  renderer,
		assembler: assembler,
		fs:        fs,
		logger:    logger,
		dirMode:   output.GetDirMode(),
		fileMode:  output.GetFileMode(),
	}
}

// Generate builds the document for req and writes it. Every slide is parsed
// before anything touches the file system, so a bad value leaves no output.
func (s *DeckService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.OutputPath == "" {
		return nil, errors.New("output path cannot be empty")
	}

	deck, usedDefaults, err := s.buildDeck(req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("parsed slides", "count", len(deck.Specs), "defaults", usedDefaults)

	doc, err := s.Render(ctx, deck)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation cancelled: %w", err)
	}

	data := doc.Bytes()
	if err := s.write(req.OutputPath, data); err != nil {
		return nil, err
	}

	s.logger.Info("document written", "path", req.OutputPath, "pages", doc.PageCount, "bytes", len(data))

	return &GenerateResult{
		OutputPath:   req.OutputPath,
		DeckID:       doc.ID,
		PageCount:    doc.PageCount,
		Bytes:        len(data),
		UsedDefaults: usedDefaults,
	}, nil
}

// Render turns a parsed deck into a document without writing it
func (s *DeckService) Render(ctx context.Context, deck *entities.Deck) (*entities.Document, error) {
	fragments := make([]entities.Fragment, 0, len(deck.Specs))
	for seed := 1; seed <= len(deck.Specs); seed++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}

		spec, err := deck.GetSpecBySeed(seed)
		if err != nil {
			return nil, err
		}

		fragments = append(fragments, s.renderer.Render(seed, *spec))
		s.logger.Debug("rendered slide", "seed", seed, "title", spec.Title, "body", spec.Body().Kind)
	}

	doc, err := s.assembler.Assemble(deck.Title, fragments)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	return doc, nil
}

func (s *DeckService) buildDeck(req GenerateRequest) (*entities.Deck, bool, error) {
	if len(req.Slides) == 0 {
		return &entities.Deck{Title: req.Title, Specs: entities.DefaultSpecs()}, true, nil
	}

	specs, err := s.parser.ParseAll(req.Slides)
	if err != nil {
		return nil, false, err
	}

	return &entities.Deck{Title: req.Title, Specs: specs}, false, nil
}

// write replaces path with data in one step: the document goes to a temp
// file next to path and is renamed over it, so a failed write leaves
// nothing behind.
func (s *DeckService) write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, s.dirMode); err != nil {
		return &entities.FilesystemError{Op: "create directory", Path: dir, Err: err}
	}

	tmp, err := s.fs.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &entities.FilesystemError{Op: "create", Path: path, Err: err}
	}

	tmpName := tmp.Name()
	fail := func(op string, err error) error {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return &entities.FilesystemError{Op: op, Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}

	if err := tmp.Chmod(s.fileMode); err != nil {
		return fail("chmod", err)
	}

	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}

	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return &entities.FilesystemError{Op: "close", Path: path, Err: err}
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return &entities.FilesystemError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
