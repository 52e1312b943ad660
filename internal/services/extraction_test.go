package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/studygenius/backend/internal/types"
)

type fakeBucket struct {
	files map[string][]byte
}

func (f *fakeBucket) UploadFile(ctx context.Context, key string, file io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return err
	}
	f.files[key] = buf.Bytes()
	return nil
}

func (f *fakeBucket) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.files[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeBucket) DeleteFile(ctx context.Context, key string) error {
	delete(f.files, key)
	return nil
}

func (f *fakeBucket) GetPublicURL(key string) string {
	return "https://storage.example.com/" + key
}

func TestExtractReturnsSentinelOnFetchFailure(t *testing.T) {
	es := NewExtractionService(testLogger(t), &fakeBucket{files: map[string][]byte{}})
	file := &types.CourseFile{
		ID:           uuid.New(),
		OriginalName: "missing.txt",
		StorageKey:   "courses/x/missing.txt",
	}

	doc := es.Extract(context.Background(), file)
	if !doc.Degraded {
		t.Fatalf("expected degraded document")
	}
	if !strings.HasPrefix(doc.Text, "[Unable to extract content from missing.txt:") {
		t.Fatalf("text=%q, want bracketed diagnostic", doc.Text)
	}
}

func TestExtractTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 50000)
	bucket := &fakeBucket{files: map[string][]byte{"courses/x/big.txt": []byte(long)}}
	es := NewExtractionService(testLogger(t), bucket)
	file := &types.CourseFile{
		ID:           uuid.New(),
		OriginalName: "big.txt",
		StorageKey:   "courses/x/big.txt",
	}

	doc := es.Extract(context.Background(), file)
	if doc.Degraded {
		t.Fatalf("unexpected degraded document: %s", doc.Reason)
	}
	if len([]rune(doc.Text)) != maxExtractChars {
		t.Fatalf("len=%d, want exactly %d", len([]rune(doc.Text)), maxExtractChars)
	}
}

func TestExtractRejectsBinaryContent(t *testing.T) {
	bucket := &fakeBucket{files: map[string][]byte{"courses/x/bin.pdf": {0xff, 0xfe, 0x00, 0x01}}}
	es := NewExtractionService(testLogger(t), bucket)
	file := &types.CourseFile{
		ID:           uuid.New(),
		OriginalName: "bin.pdf",
		StorageKey:   "courses/x/bin.pdf",
		MimeType:     "application/pdf",
	}

	doc := es.Extract(context.Background(), file)
	if !doc.Degraded {
		t.Fatalf("expected degraded document for binary content")
	}
	want := fmt.Sprintf("[Unable to extract content from bin.pdf: unsupported format %q]", "application/pdf")
	if doc.Text != want {
		t.Fatalf("text=%q, want %q", doc.Text, want)
	}
}

func TestExtractShortTextPassesThrough(t *testing.T) {
	bucket := &fakeBucket{files: map[string][]byte{"courses/x/notes.txt": []byte("  hello world  ")}}
	es := NewExtractionService(testLogger(t), bucket)
	file := &types.CourseFile{
		ID:           uuid.New(),
		OriginalName: "notes.txt",
		StorageKey:   "courses/x/notes.txt",
	}

	doc := es.Extract(context.Background(), file)
	if doc.Degraded {
		t.Fatalf("unexpected degraded document")
	}
	if doc.Text != "hello world" {
		t.Fatalf("text=%q", doc.Text)
	}
}
