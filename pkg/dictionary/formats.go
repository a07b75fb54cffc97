package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents different dictionary file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatChunk              // Binary chunk format
	FormatText               // weight<TAB>word lines
)

// maxChunkEntries bounds the header count of a chunk file
const maxChunkEntries = 1 << 24

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatChunk: {
		Format:      FormatChunk,
		Description: "Binary Chunk Dictionary",
		Extensions:  []string{".bin"},
		MinSize:     4, // word count header
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ""},
		MinSize:     0,
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// isCompressed reports whether the file carries a zstd suffix
func isCompressed(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".zst")
}

// baseExt returns the extension under any compression suffix
func baseExt(filename string) string {
	if isCompressed(filename) {
		filename = filename[:len(filename)-len(".zst")]
	}
	return strings.ToLower(filepath.Ext(filename))
}

// DetectFileFormat picks a format from the file name.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := baseExt(filename)
	for _, format := range []FileFormat{FormatChunk, FormatText} {
		for _, valid := range supportedFormats[format].Extensions {
			if ext == valid {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	// Compressed sizes say nothing about the payload
	if !isCompressed(filename) && fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	if expectedFormat == FormatChunk {
		return validateChunkHeader(filename)
	}
	return nil
}

// validateChunkHeader reads the word count header of a chunk file
func validateChunkHeader(filename string) error {
	r, err := openFile(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	var wordCount int32
	if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", filename, err)
	}
	if wordCount < 0 {
		return fmt.Errorf("invalid word count in %s: %d (negative)", filename, wordCount)
	}
	if wordCount > maxChunkEntries {
		return fmt.Errorf("suspicious word count in %s: %d (too large)", filename, wordCount)
	}

	log.Debugf("Chunk file %s validated: %d words", filename, wordCount)
	return nil
}
