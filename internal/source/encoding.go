package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// codingCookie matches the encoding declaration from PEP 263, e.g.
// "# -*- coding: latin-1 -*-" or "# vim: set fileencoding=cp1251 :".
var codingCookie = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)

// DetectEncoding returns the declared source encoding of a Python file, or
// "" when no coding cookie is present and the file defaults to UTF-8.
// Per PEP 263 the cookie must appear on line one or two, and line two only
// counts when line one is blank or a comment.
func DetectEncoding(content []byte) string {
	rest := content
	for i := 0; i < 2 && rest != nil; i++ {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line = rest[:idx]
			rest = rest[idx+1:]
		} else {
			rest = nil
		}
		if m := codingCookie.FindSubmatch(line); m != nil {
			return string(m[1])
		}
		trimmed := bytes.TrimLeft(line, " \t\f")
		if len(trimmed) > 0 && trimmed[0] != '#' {
			break
		}
	}
	return ""
}

// DecodeBytes converts content to UTF-8 according to its coding cookie.
// It returns the decoded bytes and the cookie name, where "" means the
// content was already UTF-8 and is returned unchanged. Unknown encodings
// fail rather than mangle text.
func DecodeBytes(content []byte) ([]byte, string, error) {
	name := DetectEncoding(content)
	if name == "" || isUTF8Name(name) {
		return content, "", nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, "", fmt.Errorf("unknown source encoding %q", name)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, name, nil
}

// EncodeBytes converts UTF-8 output back into the named encoding for
// write-back. An empty name passes the bytes through.
func EncodeBytes(content []byte, name string) ([]byte, error) {
	if name == "" || isUTF8Name(name) {
		return content, nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown source encoding %q", name)
	}
	encoded, _, err := transform.Bytes(enc.NewEncoder(), content)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return encoded, nil
}

// lookupEncoding resolves a cookie name against the WHATWG index. Python
// codec names allow separators the index does not ("latin-1" for "latin1"),
// so a failed lookup retries with hyphens removed.
func lookupEncoding(name string) (encoding.Encoding, error) {
	normalized := normalizeEncodingName(name)
	enc, err := htmlindex.Get(normalized)
	if err == nil {
		return enc, nil
	}
	if enc, retryErr := htmlindex.Get(strings.ReplaceAll(normalized, "-", "")); retryErr == nil {
		return enc, nil
	}
	return nil, err
}

func normalizeEncodingName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}

func isUTF8Name(name string) bool {
	switch normalizeEncodingName(name) {
	case "utf-8", "utf8", "u8", "ascii", "us-ascii", "646":
		return true
	}
	return false
}
