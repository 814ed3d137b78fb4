package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/7even/clj-sculptor/internal/version"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([]byte("(def x 1)"))

	var got CacheEntry
	if ok, err := cache.Get(key, &got); ok || err != nil {
		t.Fatalf("empty cache Get = %v, %v", ok, err)
	}
	if err := cache.Put(key, &CacheEntry{Output: []byte("(def x\n  1)\n")}); err != nil {
		t.Fatal(err)
	}
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get after Put = %v, %v", ok, err)
	}
	if string(got.Output) != "(def x\n  1)\n" || got.Engine != version.Engine {
		t.Errorf("unexpected entry %+v", got)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := cache.Get(key, &got); ok {
		t.Error("entry survived DropAll")
	}
}

func TestDiskCacheIgnoresOtherEngines(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([]byte("x"))
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	stale, err := msgpack.Marshal(&CacheEntry{Schema: diskCacheSchemaVersion, Engine: "old-engine", Canonical: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, stale, 0o644); err != nil {
		t.Fatal(err)
	}
	var got CacheEntry
	if ok, err := cache.Get(key, &got); ok || err != nil {
		t.Errorf("stale entry Get = %v, %v; want miss", ok, err)
	}
}

func TestCacheKeyDependsOnContent(t *testing.T) {
	if CacheKey([]byte("a")) == CacheKey([]byte("b")) {
		t.Error("different content must not share a key")
	}
}

func TestFormatBytesUsesCache(t *testing.T) {
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Stdout: true, Cache: cache}
	src := []byte("(def x 1)")

	first := FormatBytes(context.Background(), "a.clj", src, opts)
	if first.Err != nil || first.Cached {
		t.Fatalf("first run: err=%v cached=%v", first.Err, first.Cached)
	}
	second := FormatBytes(context.Background(), "a.clj", src, opts)
	if second.Err != nil || !second.Cached {
		t.Fatalf("second run: err=%v cached=%v", second.Err, second.Cached)
	}
	if string(second.Formatted) != string(first.Formatted) || !second.Changed {
		t.Errorf("cached result differs: %q vs %q", second.Formatted, first.Formatted)
	}

	canonical := first.Formatted
	third := FormatBytes(context.Background(), "a.clj", canonical, opts)
	fourth := FormatBytes(context.Background(), "a.clj", canonical, opts)
	if third.Changed || fourth.Changed || !fourth.Cached {
		t.Errorf("canonical input: changed=%v/%v cached=%v", third.Changed, fourth.Changed, fourth.Cached)
	}
	if string(fourth.Formatted) != string(canonical) {
		t.Errorf("cached canonical output = %q", fourth.Formatted)
	}
}
