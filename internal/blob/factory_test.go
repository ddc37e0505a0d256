package blob

import (
	"context"
	"testing"

	appcfg "github.com/mealplanhq/mealplan-hub/internal/config"
)

func TestNewBlobStoreLocalMode(t *testing.T) {
	store, mode, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeLocal}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != appcfg.BlobModeLocal {
		t.Fatalf("expected local mode, got %q", mode)
	}
	if _, ok := store.(*LocalStore); !ok {
		t.Fatalf("expected *LocalStore, got %T", store)
	}
}

func TestNewBlobStoreAutoFallsBackToLocal(t *testing.T) {
	store, mode, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeAuto}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != appcfg.BlobModeLocal {
		t.Fatalf("expected fallback to local, got %q", mode)
	}
	if store == nil {
		t.Fatal("expected a usable store")
	}
}

func TestNewBlobStoreS3ModeRequiresConfig(t *testing.T) {
	_, _, err := NewBlobStore(appcfg.BlobConfig{Mode: appcfg.BlobModeS3}, nil)
	if err == nil {
		t.Fatal("expected error when BLOB_MODE=s3 without S3 config")
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore()
	ctx := context.Background()

	n, err := store.PutObject(ctx, "checkins/u1/x", []byte("data"), "image/jpeg")
	if err != nil || n != 4 {
		t.Fatalf("PutObject: n=%d err=%v", n, err)
	}

	data, err := store.GetObject(ctx, "checkins/u1/x")
	if err != nil || string(data) != "data" {
		t.Fatalf("GetObject: %q err=%v", data, err)
	}

	if err := store.DeleteObject(ctx, "checkins/u1/x"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetObject(ctx, "checkins/u1/x"); err != ErrObjectNotFound {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}
