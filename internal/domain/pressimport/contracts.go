package pressimport

import "context"

// ImportService imports a folder of press releases as published posts.
type ImportService interface {
	// Import processes every supported file in dir. Per-file failures are
	// counted in the report and do not stop the run.
	Import(ctx context.Context, dir string) (*Report, error)
}

// TextExtractor reads text out of press release files
type TextExtractor interface {
	// PDFText returns the embedded text layer of a PDF.
	PDFText(ctx context.Context, path string) (string, error)

	// OCRAvailable reports whether the OCR tools are installed.
	OCRAvailable() bool

	// OCRPDFPage rasterises page (1-based) of a PDF and runs OCR on it.
	OCRPDFPage(ctx context.Context, path string, page int) (string, error)

	// OCRImage runs OCR on an image file.
	OCRImage(ctx context.Context, path string) (string, error)
}

// ContentCleaner repairs OCR output and dates with a language model
type ContentCleaner interface {
	// CleanContent returns corrected text, or raw when nothing better is available.
	CleanContent(ctx context.Context, raw string) (string, error)

	// ExtractDate returns the publication date as YYYY-MM-DD, or "" when none is found.
	ExtractDate(ctx context.Context, content string) (string, error)

	// RepairDate turns a garbled date fragment into YYYY-MM-DD, or "".
	RepairDate(ctx context.Context, fragment, content string) (string, error)
}
