package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestRunCalc(t *testing.T) {
	cases := []struct {
		name    string
		price   string
		wantErr bool
		wantOut string
	}{
		{name: "valid price", price: "5.00", wantOut: "lower=4.99 upper=5.01"},
		{name: "band boundary", price: "10", wantOut: "lower=9.99 upper=10.05"},
		{name: "tick violation", price: "10.03", wantErr: true},
		{name: "not a number", price: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			err := runCalc(tc.price, &sb)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output %q", sb.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(sb.String(), tc.wantOut) {
				t.Fatalf("output %q missing %q", sb.String(), tc.wantOut)
			}
		})
	}
}

type dummyHandler struct{}

func (dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestRunServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cleaned := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, dummyHandler{}, "0", func() { close(cleaned) })
	}()

	// Give the listener a moment to start, then trigger shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServer returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}

	select {
	case <-cleaned:
	default:
		t.Fatalf("cleanup was not called")
	}
}
