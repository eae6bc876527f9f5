package apikey

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"
)

func TestHashKey(t *testing.T) {
	hash := HashKey("test-key")
	if len(hash) != 64 {
		t.Errorf("len(HashKey(...)) = %d, want 64 hex chars", len(hash))
	}
	if hash != HashKey("test-key") {
		t.Error("HashKey is not deterministic")
	}
	if hash == HashKey("other-key") {
		t.Error("HashKey collided for distinct keys")
	}
	if _, err := hex.DecodeString(hash); err != nil {
		t.Errorf("HashKey output is not hex: %v", err)
	}
}

func TestGenerateRawKey(t *testing.T) {
	a := generateRawKey()
	b := generateRawKey()
	if len(a) != 64 {
		t.Errorf("len(generateRawKey()) = %d, want 64 hex chars", len(a))
	}
	if a == b {
		t.Error("generateRawKey returned the same key twice")
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Errorf("generated key is not hex: %v", err)
	}
}

// cacheValidator builds a Validator with no database. Any code path that
// reaches Postgres panics, so passing tests prove the cache answered.
func cacheValidator() *Validator {
	return &Validator{cache: make(map[string]cacheEntry)}
}

func TestValidateServesFromCache(t *testing.T) {
	v := cacheValidator()
	v.remember(HashKey("raw-key"), KeyInfo{ID: "1", Name: "ops", RateLimit: 100, IsActive: true})

	info, err := v.Validate(context.Background(), "raw-key")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if info.Name != "ops" || info.RateLimit != 100 {
		t.Errorf("cached info = %+v, want name ops with rate limit 100", info)
	}
}

func TestValidateExpiredCachedKey(t *testing.T) {
	v := cacheValidator()
	past := time.Now().Add(-time.Hour)
	v.remember(HashKey("raw-key"), KeyInfo{ID: "1", ExpiresAt: &past})

	if _, err := v.Validate(context.Background(), "raw-key"); !errors.Is(err, ErrExpiredKey) {
		t.Fatalf("Validate error = %v, want ErrExpiredKey", err)
	}
	if _, ok := v.cached(HashKey("raw-key")); ok {
		t.Error("expired key stayed in the cache")
	}
}

func TestCacheTTL(t *testing.T) {
	v := cacheValidator()
	hash := HashKey("raw-key")
	v.cache[hash] = cacheEntry{
		info:     KeyInfo{ID: "1"},
		cachedAt: time.Now().Add(-validationCacheTTL - time.Second),
	}
	if _, ok := v.cached(hash); ok {
		t.Error("stale cache entry was served")
	}
}

func TestForget(t *testing.T) {
	v := cacheValidator()
	hash := HashKey("raw-key")
	v.remember(hash, KeyInfo{ID: "1"})
	v.forget(hash)
	if _, ok := v.cached(hash); ok {
		t.Error("forgotten key still cached")
	}
}
