package extraction

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

const (
	tesseractBinary = "tesseract"
	magickBinary    = "magick"
	convertBinary   = "convert"
)

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Extractor implements pressimport.TextExtractor
type Extractor struct {
	logger   logger.Logger
	lookPath func(file string) (string, error)
	run      runFunc
	tempDir  string
}

// NewExtractor creates an extractor using the tools found on PATH
func NewExtractor(logger logger.Logger) *Extractor {
	return &Extractor{
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 -- binary names are constants and arguments are file paths
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s command failed: %w\nOutput: %s", name, err, stderr.String())
	}
	return output, nil
}

// PDFText returns the text layer of every page
func (e *Extractor) PDFText(_ context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse %s: %v", filepath.Base(path), r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", filepath.Base(path), err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", filepath.Base(path), err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// OCRAvailable reports whether tesseract is installed
func (e *Extractor) OCRAvailable() bool {
	_, err := e.lookPath(tesseractBinary)
	return err == nil
}

// OCRPDFPage renders one page at 300 dpi with ImageMagick and runs OCR on it
func (e *Extractor) OCRPDFPage(ctx context.Context, path string, page int) (string, error) {
	if page < 1 {
		return "", fmt.Errorf("page numbers start at 1, got %d", page)
	}

	converter, err := e.converter()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(e.tempDir, "pdf-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary image: %w", err)
	}
	imagePath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(imagePath)

	source := fmt.Sprintf("%s[%d]", path, page-1)
	if _, err := e.run(ctx, converter, "-density", "300", source, "-quality", "100", "-resize", "2000x2000>", imagePath); err != nil {
		return "", err
	}

	e.logger.Debug("Rendered page ", page, " of ", filepath.Base(path), " with ", converter)
	return e.OCRImage(ctx, imagePath)
}

// OCRImage runs tesseract on an image and returns the recognised text
func (e *Extractor) OCRImage(ctx context.Context, path string) (string, error) {
	if !e.OCRAvailable() {
		return "", fmt.Errorf("%s is not installed", tesseractBinary)
	}

	output, err := e.run(ctx, tesseractBinary, path, "stdout", "-l", "eng")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// converter prefers ImageMagick 7 and falls back to the v6 convert binary
func (e *Extractor) converter() (string, error) {
	if _, err := e.lookPath(magickBinary); err == nil {
		return magickBinary, nil
	}
	if _, err := e.lookPath(convertBinary); err == nil {
		return convertBinary, nil
	}
	return "", fmt.Errorf("neither %s nor %s is installed", magickBinary, convertBinary)
}
