package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [32]byte

// DiskCache remembers which files were already clean under which style, so
// repeated runs can skip parsing them. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the cached verdict for one source file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// StyleHash identifies the style configuration the verdict was made under.
	StyleHash string

	// SourceHash is the hash of the normalized source the verdict applies to.
	SourceHash Digest

	// CleanHash is the hash of the formatter output for that source. Equal
	// hashes mean the file needed no changes.
	CleanHash Digest
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// IsClean reports whether the cache holds a still-valid clean verdict for the
// file identified by key: same schema, same style, same source bytes, and a
// formatter run that changed nothing.
func (c *DiskCache) IsClean(key Digest, styleHash string, sourceHash Digest) bool {
	var p DiskPayload
	ok, err := c.Get(key, &p)
	if !ok || err != nil {
		return false
	}
	return p.Schema == diskCacheSchemaVersion &&
		p.StyleHash == styleHash &&
		p.SourceHash == sourceHash &&
		p.SourceHash == p.CleanHash
}

// MarkClean records that the file identified by key holds content with hash
// contentHash that the formatter leaves untouched under the given style.
func (c *DiskCache) MarkClean(key Digest, styleHash string, contentHash Digest) error {
	return c.Put(key, &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		StyleHash:  styleHash,
		SourceHash: contentHash,
		CleanHash:  contentHash,
	})
}

// Dir returns the cache root on disk.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the cache slot for a file from its absolute path, so the
// same file reached through different relative spellings shares one slot.
func cacheKey(path string) Digest {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return sha256.Sum256([]byte(filepath.ToSlash(abs)))
}
