package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchWritesBodyToDest(t *testing.T) {
	payload := bytes.Repeat([]byte("logo-bytes-"), 2000) // larger than one copy buffer
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "logo.png")
	downloader := New(server.Client())

	if err := downloader.Fetch(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("expected download to succeed, got %v", err)
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("expected dest file, got %v", err)
	}
	if !bytes.Equal(written, payload) {
		t.Fatalf("expected %d bytes written, got %d", len(payload), len(written))
	}
}

func TestFetchRejectsNon2xxWithoutCreatingFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "logo.png")
	downloader := New(server.Client())

	err := downloader.Fetch(context.Background(), server.URL, dest)
	if err == nil {
		t.Fatal("expected error on 404 response")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file on status failure, stat err %v", statErr)
	}
}

func TestFetchSurfacesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	dest := filepath.Join(t.TempDir(), "logo.png")
	downloader := New(nil)

	if err := downloader.Fetch(context.Background(), url, dest); err == nil {
		t.Fatal("expected error reaching closed server")
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "logo.png")
	downloader := New(server.Client())

	if err := downloader.Fetch(ctx, server.URL, dest); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
