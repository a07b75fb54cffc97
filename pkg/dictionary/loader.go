package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

// ChunkInfo contains metadata about a chunk file
type ChunkInfo struct {
	ChunkID   int
	Filename  string
	WordCount int
}

// fileReader closes the decompressor before the file under it
type fileReader struct {
	io.Reader
	dec  *zstd.Decoder
	file *os.File
}

func (r *fileReader) Close() error {
	if r.dec != nil {
		r.dec.Close()
	}
	return r.file.Close()
}

// openFile opens a dictionary file, decompressing .zst files on the fly
func openFile(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	if !isCompressed(filename) {
		return &fileReader{Reader: bufio.NewReader(file), file: file}, nil
	}

	dec, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start zstd reader for %s: %w", filename, err)
	}
	return &fileReader{Reader: dec, dec: dec, file: file}, nil
}

// LoadFile reads a text or chunk dictionary, detected from its name.
func LoadFile(filename string) (*Vocabulary, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	if err := ValidateFileFormat(filename, format); err != nil {
		return nil, err
	}

	r, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var vocab *Vocabulary
	switch format {
	case FormatChunk:
		vocab, err = ReadChunk(r)
		if err != nil {
			err = fmt.Errorf("%s: %w", filename, err)
		}
	default:
		vocab, err = ReadText(r, filename)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %d words from %s (%s)", vocab.Len(), filename, format)
	return vocab, nil
}

// ReadChunk decodes the binary chunk format: a little-endian int32 entry
// count, then per entry a uint16 word length, the word bytes and a float64 weight.
func ReadChunk(r io.Reader) (*Vocabulary, error) {
	var totalEntries int32
	if err := binary.Read(r, binary.LittleEndian, &totalEntries); err != nil {
		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}
	if totalEntries < 0 || totalEntries > maxChunkEntries {
		return nil, fmt.Errorf("invalid chunk word count %d", totalEntries)
	}

	vocab := newVocabulary(int(totalEntries))
	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(r, binary.LittleEndian, &wordLen); err != nil {
			return nil, fmt.Errorf("failed to read word length of entry %d: %w", count, err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(r, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word of entry %d: %w", count, err)
		}

		var weight float64
		if err := binary.Read(r, binary.LittleEndian, &weight); err != nil {
			return nil, fmt.Errorf("failed to read weight of entry %d: %w", count, err)
		}
		if weight < 0 || math.IsNaN(weight) {
			return nil, fmt.Errorf("invalid weight %v for %q", weight, wordBytes)
		}
		vocab.Add(string(wordBytes), weight)
	}
	return vocab, nil
}

// WriteChunk encodes words and weights in the chunk format read by ReadChunk.
func WriteChunk(w io.Writer, vocab *Vocabulary) error {
	if len(vocab.Words) != len(vocab.Weights) {
		return fmt.Errorf("%d words but %d weights", len(vocab.Words), len(vocab.Weights))
	}
	if vocab.Len() > maxChunkEntries {
		return fmt.Errorf("too many entries for one chunk: %d", vocab.Len())
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(vocab.Len())); err != nil {
		return err
	}
	for i, word := range vocab.Words {
		if len(word) > math.MaxUint16 {
			return fmt.Errorf("word %d is too long (%d bytes)", i, len(word))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return err
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, vocab.Weights[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveChunk writes vocab to filename, compressing it when the name ends in .zst
func SaveChunk(filename string, vocab *Vocabulary) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if !isCompressed(filename) {
		if err := WriteChunk(file, vocab); err != nil {
			return err
		}
		return file.Close()
	}

	enc, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("failed to start zstd writer for %s: %w", filename, err)
	}
	if err := WriteChunk(enc, vocab); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return file.Close()
}

// chunkID extracts 7 from dict_0007.bin or dict_0007.bin.zst
func chunkID(basename string) (int, bool) {
	name := strings.TrimSuffix(basename, ".zst")
	if !strings.HasPrefix(name, "dict_") || !strings.HasSuffix(name, ".bin") {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "dict_"), ".bin"))
	return id, err == nil
}

// GetAvailableChunks scans dirPath for chunk files, sorted by chunk ID
func GetAvailableChunks(dirPath string) ([]ChunkInfo, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	var chunks []ChunkInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := chunkID(entry.Name())
		if !ok {
			continue
		}
		file := filepath.Join(dirPath, entry.Name())
		wordCount, err := chunkWordCount(file)
		if err != nil {
			log.Warnf("Failed to get word count for chunk %s: %v", file, err)
		}
		chunks = append(chunks, ChunkInfo{ChunkID: id, Filename: file, WordCount: wordCount})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ChunkID < chunks[j].ChunkID
	})
	return chunks, nil
}

// chunkWordCount reads the word count from a chunk file's header
func chunkWordCount(filename string) (int, error) {
	r, err := openFile(filename)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	var wordCount int32
	if err := binary.Read(r, binary.LittleEndian, &wordCount); err != nil {
		return 0, err
	}
	return int(wordCount), nil
}

// LoadDir loads the first maxChunks chunk files of dirPath, all of them
// when maxChunks is 0. Chunks are read concurrently and concatenated in
// chunk ID order.
func LoadDir(dirPath string, maxChunks int) (*Vocabulary, error) {
	chunks, err := GetAvailableChunks(dirPath)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunk files found in %s", dirPath)
	}
	if maxChunks > 0 && maxChunks < len(chunks) {
		chunks = chunks[:maxChunks]
	}
	log.Debugf("Loading %d chunk files from %s", len(chunks), dirPath)

	parts := make([]*Vocabulary, len(chunks))
	var g errgroup.Group
	g.SetLimit(4)
	for i, chunk := range chunks {
		g.Go(func() error {
			vocab, err := LoadFile(chunk.Filename)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", chunk.ChunkID, err)
			}
			parts[i] = vocab
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += part.Len()
	}
	vocab := newVocabulary(total)
	for _, part := range parts {
		vocab.Append(part)
	}
	return vocab, nil
}

// Load reads path as a chunk directory when it is one, otherwise as a single file
func Load(path string, maxChunks int) (*Vocabulary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(path, maxChunks)
	}
	return LoadFile(path)
}
