package driver

import (
	"crypto/sha256"
	"testing"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenDiskCache("pyfmt-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return c
}

func TestDiskCachePutGetRoundTrip(t *testing.T) {
	c := openTestCache(t)
	key := Digest(sha256.Sum256([]byte("some/file.py")))
	in := &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		StyleHash:  "abcd1234",
		SourceHash: Digest(sha256.Sum256([]byte("source"))),
		CleanHash:  Digest(sha256.Sum256([]byte("clean"))),
	}
	if err := c.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out DiskPayload
	ok, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get missed a stored key")
	}
	if out != *in {
		t.Errorf("payload = %+v, want %+v", out, *in)
	}
}

func TestDiskCacheMissOnAbsentKey(t *testing.T) {
	c := openTestCache(t)
	var out DiskPayload
	ok, err := c.Get(Digest(sha256.Sum256([]byte("never stored"))), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get hit on an absent key")
	}
}

func TestDiskCacheIsClean(t *testing.T) {
	src := Digest(sha256.Sum256([]byte("source")))
	other := Digest(sha256.Sum256([]byte("edited")))

	tests := []struct {
		name    string
		payload DiskPayload
		style   string
		source  Digest
		want    bool
	}{
		{
			name: "match",
			payload: DiskPayload{
				Schema: diskCacheSchemaVersion, StyleHash: "s1",
				SourceHash: src, CleanHash: src,
			},
			style: "s1", source: src, want: true,
		},
		{
			name: "style changed",
			payload: DiskPayload{
				Schema: diskCacheSchemaVersion, StyleHash: "s1",
				SourceHash: src, CleanHash: src,
			},
			style: "s2", source: src, want: false,
		},
		{
			name: "source edited",
			payload: DiskPayload{
				Schema: diskCacheSchemaVersion, StyleHash: "s1",
				SourceHash: src, CleanHash: src,
			},
			style: "s1", source: other, want: false,
		},
		{
			name: "was dirty",
			payload: DiskPayload{
				Schema: diskCacheSchemaVersion, StyleHash: "s1",
				SourceHash: src, CleanHash: other,
			},
			style: "s1", source: src, want: false,
		},
		{
			name: "old schema",
			payload: DiskPayload{
				Schema: 0, StyleHash: "s1",
				SourceHash: src, CleanHash: src,
			},
			style: "s1", source: src, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openTestCache(t)
			key := Digest(sha256.Sum256([]byte(tt.name)))
			if err := c.Put(key, &tt.payload); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if got := c.IsClean(key, tt.style, tt.source); got != tt.want {
				t.Errorf("IsClean = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestDiskCacheMarkClean(t *testing.T) {
	c := openTestCache(t)
	key := Digest(sha256.Sum256([]byte("file")))
	hash := Digest(sha256.Sum256([]byte("content")))

	if err := c.MarkClean(key, "s1", hash); err != nil {
		t.Fatalf("MarkClean: %v", err)
	}
	if !c.IsClean(key, "s1", hash) {
		t.Error("IsClean = false right after MarkClean")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	c := openTestCache(t)
	key := Digest(sha256.Sum256([]byte("file")))
	if err := c.MarkClean(key, "s1", key); err != nil {
		t.Fatalf("MarkClean: %v", err)
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out DiskPayload
	if ok, _ := c.Get(key, &out); ok {
		t.Error("Get hit after DropAll")
	}

	// Dropping an already-missing cache directory is not an error.
	if err := c.DropAll(); err != nil {
		t.Fatalf("second DropAll: %v", err)
	}
}

func TestDiskCacheNilReceiver(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &DiskPayload{}); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	var out DiskPayload
	if ok, err := c.Get(Digest{}, &out); ok || err != nil {
		t.Errorf("nil Get = %t, %v", ok, err)
	}
	if c.IsClean(Digest{}, "s1", Digest{}) {
		t.Error("nil IsClean = true")
	}
	if err := c.MarkClean(Digest{}, "s1", Digest{}); err != nil {
		t.Errorf("nil MarkClean: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
	if dir := c.Dir(); dir != "" {
		t.Errorf("nil Dir = %q, want empty", dir)
	}
}

func TestCacheKeyNormalizesSpelling(t *testing.T) {
	a := cacheKey("pkg/mod.py")
	b := cacheKey("pkg/sub/../mod.py")
	if a != b {
		t.Error("equivalent paths produced different cache keys")
	}
	if a == cacheKey("pkg/other.py") {
		t.Error("distinct paths share a cache key")
	}
}
