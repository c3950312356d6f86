package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a source file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual marks a file added from memory (stdin, tests, generated input).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 BOM was stripped during load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
	// FileRecoded marks a file that was transcoded to UTF-8 from the encoding
	// named by its coding cookie.
	FileRecoded
)

// File captures the content and derived metadata of a single Python source file.
// Content is the normalized form (UTF-8, no BOM, LF endings); the original
// bytes are never kept, the printer reconstructs output from normalized lines.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n' in Content
	Hash    [32]byte // SHA-256 of normalized Content
	Flags   FileFlags
	// Encoding is the coding-cookie name the file was decoded from, or ""
	// for plain UTF-8 input. Write-back re-encodes with the same codec.
	Encoding string
}

// LineCol is a human-oriented position. Line is 1-based. Col is a 0-based
// byte column, matching the token columns the formatter works with; renderers
// add 1 for display.
type LineCol struct {
	Line uint32
	Col  uint32
}
