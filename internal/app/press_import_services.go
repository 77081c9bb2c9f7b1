package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CariHQ/nnp-web/internal/domain/posts"
	"github.com/CariHQ/nnp-web/internal/domain/pressimport"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

// pressImportService implements the ImportService interface
type pressImportService struct {
	extractor pressimport.TextExtractor
	cleaner   pressimport.ContentCleaner
	posts     posts.BlogPostService
	author    string
	logger    logger.Logger
	now       func() time.Time
}

// NewPressImportService creates a new instance of ImportService
func NewPressImportService(
	extractor pressimport.TextExtractor,
	cleaner pressimport.ContentCleaner,
	postService posts.BlogPostService,
	author string,
	logger logger.Logger,
) (pressimport.ImportService, error) {
	if author == "" {
		author = pressimport.DefaultAuthor
	}
	return &pressImportService{
		extractor: extractor,
		cleaner:   cleaner,
		posts:     postService,
		author:    author,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (s *pressImportService) Import(ctx context.Context, dir string) (*pressimport.Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read press release directory %s: %w", dir, err)
	}

	report := &pressimport.Report{}
	var releases []*pressimport.Release

	for _, entry := range entries {
		if entry.IsDir() || pressimport.KindOf(entry.Name()) == pressimport.KindUnsupported {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Found++

		info, err := entry.Info()
		if err != nil {
			s.logger.Error("Failed to stat ", entry.Name(), ": ", err)
			report.Failed++
			continue
		}

		release := pressimport.NewRelease(filepath.Join(dir, entry.Name()), info.ModTime())
		if release.Slug == "" {
			s.logger.Error("Cannot derive a slug from ", entry.Name())
			report.Failed++
			continue
		}

		s.prepare(ctx, release)
		releases = append(releases, release)
	}

	pressimport.SortReleases(releases)

	for _, release := range releases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		created, err := s.store(ctx, release)
		if err != nil {
			s.logger.Error("Failed to import ", release.FileName, ": ", err)
			report.Failed++
			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	s.logger.Info("Press import finished: ", report.Found, " found, ", report.Created, " created, ", report.Updated, " updated, ", report.Failed, " failed")
	return report, nil
}

// prepare fills Content and Date of release
func (s *pressImportService) prepare(ctx context.Context, release *pressimport.Release) {
	content, extracted := s.readContent(ctx, release)

	if extracted && pressimport.ShouldClean(content) {
		cleaned, err := s.cleaner.CleanContent(ctx, content)
		if err != nil {
			s.logger.Warn("Content cleaning failed for ", release.FileName, ": ", err)
		} else if strings.TrimSpace(cleaned) != "" {
			content = cleaned
		}
	}

	if strings.TrimSpace(content) == "" {
		content = release.Title
	}
	release.Content = content

	if date, ok := s.resolveDate(ctx, release.FileName, content); ok {
		release.Date = &date
		s.logger.Info("Found ", release.Title, " dated ", date.Format("2006-01-02"))
	} else {
		s.logger.Info("Found ", release.Title, " without a date, using the file modification time")
	}
}

// readContent returns the text of the file and whether it is real extracted
// text rather than a failure placeholder
func (s *pressImportService) readContent(ctx context.Context, release *pressimport.Release) (string, bool) {
	switch pressimport.KindOf(release.FileName) {
	case pressimport.KindPDF:
		text, err := s.extractor.PDFText(ctx, release.Path)
		if err != nil {
			s.logger.Debug("PDF text extraction failed for ", release.FileName, ": ", err)
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}

		if !s.extractor.OCRAvailable() {
			s.logger.Warn("PDF text extraction failed and OCR is not available for ", release.FileName)
			return pressimport.PDFExtractionFailed(release.FileName), false
		}

		text, err = s.extractor.OCRPDFPage(ctx, release.Path, 1)
		if err != nil {
			s.logger.Warn("OCR of ", release.FileName, " failed: ", err)
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}
		return pressimport.PDFExtractionAndOCRFailed(release.FileName), false

	case pressimport.KindImage:
		if !s.extractor.OCRAvailable() {
			return pressimport.ImageOCRUnavailable(release.FileName), false
		}

		text, err := s.extractor.OCRImage(ctx, release.Path)
		if err != nil {
			s.logger.Warn("OCR of ", release.FileName, " failed: ", err)
			return pressimport.ImageOCRFailed(release.FileName, err), false
		}
		if strings.TrimSpace(text) == "" {
			return pressimport.ImageOCREmpty(release.FileName), false
		}
		return text, true
	}

	return "", false
}

// resolveDate tries the file name, the cleaner, the content heuristics and
// finally a repair of the invalid candidates, in that order
func (s *pressImportService) resolveDate(ctx context.Context, filename, content string) (time.Time, bool) {
	if date, ok := pressimport.DateFromFilename(filename); ok {
		return date, true
	}

	if content == "" {
		return time.Time{}, false
	}

	answer, err := s.cleaner.ExtractDate(ctx, content)
	if err != nil {
		s.logger.Warn("Date extraction failed for ", filename, ": ", err)
	} else if date, ok := pressimport.ParseISODate(answer); ok {
		return date, true
	}

	candidates := pressimport.FindDateCandidates(content)
	if date, ok := pressimport.PickContentDate(content, candidates); ok {
		return date, true
	}

	for _, candidate := range pressimport.InvalidCandidates(candidates) {
		answer, err := s.cleaner.RepairDate(ctx, candidate.Text, content)
		if err != nil {
			s.logger.Warn("Date repair failed for ", filename, ": ", err)
			continue
		}
		if date, ok := pressimport.ParseISODate(answer); ok {
			return date, true
		}
	}

	return time.Time{}, false
}

func (s *pressImportService) store(ctx context.Context, release *pressimport.Release) (bool, error) {
	published := release.PublishedAt(s.now())
	author := s.author

	post := &posts.BlogPost{
		Title:       release.Title,
		Slug:        release.Slug,
		Content:     release.Content,
		Excerpt:     strutil.Ptr(posts.DefaultExcerpt(release.Content)),
		Author:      &author,
		Published:   true,
		PublishedAt: &published,
	}

	return s.posts.UpsertBySlug(ctx, post)
}
