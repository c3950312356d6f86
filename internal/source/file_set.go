package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every source file seen during one formatter run and resolves
// byte offsets to line/column positions.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> latest id
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores already-normalized bytes under path, computes the line index and
// content hash, and returns a fresh FileID. Adding the same path twice keeps
// both entries; the index points at the newest one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	normalized := normalizePath(path)
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.index[normalized] = id
	return id
}

// Load reads path from disk, strips a UTF-8 BOM, honours a PEP 263 coding
// cookie, rewrites CRLF to LF, and registers the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the caller's command line
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}

	// A UTF-8 BOM settles the encoding; otherwise the coding cookie decides.
	encName := ""
	if !hadBOM {
		decoded, name, err := DecodeBytes(content)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		content = decoded
		encName = name
		if name != "" {
			flags |= FileRecoded
		}
	}

	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	id := fs.Add(path, content, flags)
	fs.files[id].Encoding = encName
	return id, nil
}

// AddVirtual registers an in-memory file (stdin or a test fixture).
// The content is normalized the same way Load normalizes disk files.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for id. The id must come from this FileSet.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// ByPath returns the most recently added file registered under path.
func (fs *FileSet) ByPath(path string) (*File, bool) {
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Len reports how many files have been added.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Resolve converts a span into start and end line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Position maps a byte offset inside the file to its line and column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// NumLines reports the number of physical lines in the file. A trailing
// newline does not open a new line: "a\n" is one line, "a\nb" is two.
func (f *File) NumLines() int {
	n := len(f.LineIdx)
	if len(f.Content) == 0 {
		return 0
	}
	last := f.Content[len(f.Content)-1]
	if last != '\n' {
		n++
	}
	return n
}

// Line returns the text of the 1-based line num without its newline.
// Out-of-range lines come back empty.
func (f *File) Line(num uint32) string {
	if num == 0 {
		return ""
	}

	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case num == 1:
		start = 0
	case (num - 2) < lenLineIdx:
		start = f.LineIdx[num-2] + 1
	default:
		return ""
	}

	if (num - 1) < lenLineIdx {
		end = f.LineIdx[num-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}
