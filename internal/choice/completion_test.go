package choice

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"
)

func TestCompletion_ResolvesOnce(t *testing.T) {
	t.Parallel()

	c := NewCompletion()
	if _, ok := c.Result(); ok {
		t.Fatal("Result reported resolved before Resolve")
	}

	if !c.Resolve([]string{"a"}) {
		t.Fatal("first Resolve returned false")
	}
	if c.Resolve([]string{"b"}) {
		t.Error("second Resolve returned true")
	}

	got, ok := c.Result()
	if !ok || !slices.Equal(got, []string{"a"}) {
		t.Errorf("Result = %v, %v; want [a], true", got, ok)
	}

	select {
	case <-c.Done():
	default:
		t.Error("Done not closed after Resolve")
	}
}

func TestCompletion_NilResultIsEmpty(t *testing.T) {
	t.Parallel()

	c := NewCompletion()
	c.Resolve(nil)

	got, ok := c.Result()
	if !ok || got == nil || len(got) != 0 {
		t.Errorf("Result = %#v, %v; want empty non-nil slice", got, ok)
	}
}

func TestCompletion_ResultIsACopy(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b"}
	c := NewCompletion()
	c.Resolve(in)
	in[0] = "x"

	got, _ := c.Result()
	got[1] = "y"

	again, _ := c.Result()
	if !slices.Equal(again, []string{"a", "b"}) {
		t.Errorf("stored result changed: %v", again)
	}
}

func TestCompletion_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	c := NewCompletion()
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Resolve([]string{string(rune('a' + i))}) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("%d resolutions succeeded, want 1", wins)
	}
}

func TestCompletion_Wait(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		c := NewCompletion()
		go c.Resolve([]string{"a"})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		got, err := c.Wait(ctx)
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
		if !slices.Equal(got, []string{"a"}) {
			t.Errorf("Wait = %v, want [a]", got)
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		t.Parallel()
		c := NewCompletion()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := c.Wait(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Wait error = %v, want context.Canceled", err)
		}
	})
}
