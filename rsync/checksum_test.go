package rsync

import (
	"errors"
	"testing"
)

func TestSignChunkCount(t *testing.T) {
	data := []byte("hello world I am testing index creation")
	store, err := Sign(data, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := (len(data) + 3) / 4
	if len(store) != want {
		t.Fatalf("got %d checksums, want %d", len(store), want)
	}
}

func TestSignRejectsShortInput(t *testing.T) {
	data := make([]byte, 10)
	_, err := Sign(data, 16)
	if err == nil {
		t.Fatal("expected error for undersized input")
	}

	var rsErr *Error
	if !errors.As(err, &rsErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rsErr.Kind != KindIncompatibleDataSize {
		t.Fatalf("got kind %v, want IncompatibleDataSize", rsErr.Kind)
	}
}
