package cache

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrComputeMemoizes(t *testing.T) {
	c := New[int]()

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrCompute("key", time.Minute, compute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 42 {
			t.Fatalf("got %d, want 42", got)
		}
	}

	if calls != 1 {
		t.Errorf("compute invoked %d times within TTL, want 1", calls)
	}
}

func TestGetOrComputeExpires(t *testing.T) {
	c := New[string]()

	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	if _, err := c.GetOrCompute("key", 10*time.Millisecond, compute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := c.GetOrCompute("key", 10*time.Millisecond, compute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("compute invoked %d times across TTL expiry, want 2", calls)
	}
}

func TestGetOrComputeErrorNotCached(t *testing.T) {
	c := New[int]()

	calls := 0
	failing := func() (int, error) {
		calls++
		return 0, errors.New("upstream down")
	}

	if _, err := c.GetOrCompute("key", time.Minute, failing); err == nil {
		t.Fatal("expected an error")
	}
	if c.Len() != 0 {
		t.Fatalf("failed compute was cached, Len = %d", c.Len())
	}

	// A later successful compute fills the entry.
	got, err := c.GetOrCompute("key", time.Minute, func() (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if calls != 1 {
		t.Errorf("failing compute invoked %d times, want 1", calls)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	c := New[int]()

	for i, key := range []string{"a", "b"} {
		v := i
		if _, err := c.GetOrCompute(key, time.Minute, func() (int, error) {
			return v, nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}
