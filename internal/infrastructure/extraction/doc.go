// Package extraction reads the text of press release files: the embedded
// text layer of PDFs, and OCR through the tesseract and ImageMagick command
// line tools for scans and images.
package extraction
