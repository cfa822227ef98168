package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(true)
	stored := c.Set("rankings", []byte(`{"a":1}`), "application/json", time.Minute)

	got, ok := c.Get("rankings")
	if !ok {
		t.Fatal("entry not found")
	}
	if string(got.Data) != `{"a":1}` || got.ContentType != "application/json" {
		t.Errorf("entry = %+v", got)
	}
	if got.ETag != stored.ETag || got.ETag != ComputeETag([]byte(`{"a":1}`)) {
		t.Errorf("etag = %q, want %q", got.ETag, stored.ETag)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(true)
	c.now = func() time.Time { return now }

	c.Set("k", []byte("v"), "text/plain", time.Minute)
	now = now.Add(2 * time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry returned")
	}
	if stats := c.Stats(); stats["expired_keys"] != 1 {
		t.Errorf("stats = %v, want 1 expired key", stats)
	}
	if n := c.Evict(); n != 1 {
		t.Errorf("Evict = %d, want 1", n)
	}
	if stats := c.Stats(); stats["total_keys"] != 0 {
		t.Errorf("stats after evict = %v", stats)
	}
}

func TestDisabled(t *testing.T) {
	c := New(false)
	e := c.Set("k", []byte("v"), "text/plain", time.Minute)
	if e.ETag == "" {
		t.Error("disabled cache returned no ETag")
	}
	if _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned an entry")
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{etag, true},
		{`W/"other"`, false},
	}
	for _, tt := range tests {
		if got := CheckETagMatch(tt.header, etag); got != tt.want {
			t.Errorf("CheckETagMatch(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
