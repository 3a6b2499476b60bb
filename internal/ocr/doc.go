// Package ocr recognizes words in images with Tesseract (via gosseract/v2)
// and breaks each word into its characters for text overlays.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng"). Other Tesseract language codes
// such as "deu" or "fra" work when their data files are installed.
//
// # Words and Symbols
//
// ExtractWords reads word boxes and symbol boxes from the same recognition
// pass. A symbol belongs to the word whose box contains the symbol's center.
// If Tesseract reports no symbol boxes for a word, the word's text is split
// into runes instead, so every Word has at least one symbol.
//
// If the layout cannot be read at all, the full text is still returned with
// an empty Words slice.
package ocr
