package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/solanera/ventaflow/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewRedisCache(srv.Addr(), time.Minute, testLogger())
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestRedisCacheDocumentsRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.GetDocuments(ctx, 31); ok {
		t.Fatal("expected miss on empty cache")
	}

	docs := []model.Document{
		{ID: 51, StepID: 31, DocumentType: "boleto_reserva", Status: model.DocumentStatusValidated},
	}
	c.SetDocuments(ctx, 31, docs)

	cached, ok := c.GetDocuments(ctx, 31)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if len(cached) != 1 || cached[0].ID != 51 || cached[0].Status != model.DocumentStatusValidated {
		t.Fatalf("unexpected cached documents: %+v", cached)
	}
}

func TestRedisCacheCommentsRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	comments := []model.Comment{
		{ID: 61, StepID: 31, AuthorName: "Ana", Content: "Enviado"},
	}
	c.SetComments(ctx, 31, comments)

	cached, ok := c.GetComments(ctx, 31)
	if !ok || len(cached) != 1 || cached[0].AuthorName != "Ana" {
		t.Fatalf("unexpected cached comments: %+v ok=%v", cached, ok)
	}
}

func TestRedisCacheInvalidateStep(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetDocuments(ctx, 31, []model.Document{{ID: 51, StepID: 31}})
	c.SetComments(ctx, 31, []model.Comment{{ID: 61, StepID: 31}})
	c.SetDocuments(ctx, 32, []model.Document{{ID: 52, StepID: 32}})

	c.InvalidateStep(ctx, 31)

	if _, ok := c.GetDocuments(ctx, 31); ok {
		t.Fatal("expected documents to be invalidated")
	}
	if _, ok := c.GetComments(ctx, 31); ok {
		t.Fatal("expected comments to be invalidated")
	}
	if _, ok := c.GetDocuments(ctx, 32); !ok {
		t.Fatal("other steps should be untouched")
	}
}

func TestRedisCacheExpiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	c.SetDocuments(ctx, 31, []model.Document{{ID: 51, StepID: 31}})
	srv.FastForward(2 * time.Minute)

	if _, ok := c.GetDocuments(ctx, 31); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisCacheDegradesToMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewRedisCache(srv.Addr(), time.Minute, testLogger())
	ctx := context.Background()

	c.SetDocuments(ctx, 31, []model.Document{{ID: 51, StepID: 31}})
	srv.Close()

	if _, ok := c.GetDocuments(ctx, 31); ok {
		t.Fatal("expected miss when backend is down")
	}
	// Writes and invalidations must not panic either.
	c.SetDocuments(ctx, 31, []model.Document{{ID: 51}})
	c.InvalidateStep(ctx, 31)
	_ = c.Close()
}

func TestRedisCacheCorruptEntry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	if err := srv.Set("step:31:documents", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, ok := c.GetDocuments(ctx, 31); ok {
		t.Fatal("expected miss for corrupt entry")
	}
}

func TestNewRedisCacheDefaultTTL(t *testing.T) {
	c := NewRedisCache("localhost:6379", 0, testLogger())
	defer c.Close()
	if c.ttl != defaultTTL {
		t.Fatalf("unexpected ttl: %s", c.ttl)
	}
}

func TestNoopCache(t *testing.T) {
	var c Noop
	ctx := context.Background()

	c.SetDocuments(ctx, 1, []model.Document{{ID: 1}})
	if _, ok := c.GetDocuments(ctx, 1); ok {
		t.Fatal("noop cache should always miss")
	}
	c.SetComments(ctx, 1, []model.Comment{{ID: 1}})
	if _, ok := c.GetComments(ctx, 1); ok {
		t.Fatal("noop cache should always miss")
	}
	c.InvalidateStep(ctx, 1)
}
