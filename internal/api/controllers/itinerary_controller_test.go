package controllers

import (
	"bytes"
	"encoding/base64"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"itinera/internal/models/request_models"
)

func newTestController() (*ItineraryController, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return &ItineraryController{logger: zap.New(core)}, logs
}

func TestDecodeLogo_BareBase64(t *testing.T) {
	ic, logs := newTestController()
	payload := []byte{0x89, 'P', 'N', 'G'}

	got := ic.decodeLogo(base64.StdEncoding.EncodeToString(payload))
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded = %v, want %v", got, payload)
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected log entries: %v", logs.All())
	}
}

func TestDecodeLogo_DataURI(t *testing.T) {
	ic, _ := newTestController()
	payload := []byte("logo-bytes")

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
	if got := ic.decodeLogo(encoded); !bytes.Equal(got, payload) {
		t.Fatalf("decoded = %v, want %v", got, payload)
	}
}

func TestDecodeLogo_InvalidBase64LogsWarning(t *testing.T) {
	ic, logs := newTestController()

	if got := ic.decodeLogo("%%% not base64 %%%"); got != nil {
		t.Fatalf("invalid payload decoded to %v, want nil", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("log entries = %d, want 1 warning", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zap.WarnLevel {
		t.Fatalf("log level = %v, want warn", entry.Level)
	}
}

func TestDecodeLogo_Empty(t *testing.T) {
	ic, logs := newTestController()

	if got := ic.decodeLogo(""); got != nil {
		t.Fatalf("empty payload decoded to %v, want nil", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected log entries: %v", logs.All())
	}
}

func TestPdfOptionsFrom(t *testing.T) {
	ic, _ := newTestController()

	if opts := ic.pdfOptionsFrom(nil); opts != nil {
		t.Fatalf("nil request mapped to %+v", opts)
	}

	opts := ic.pdfOptionsFrom(&request_models.PdfOptionsRequest{
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#b91c1c",
		Font:           "times",
		LogoBase64:     base64.StdEncoding.EncodeToString([]byte("x")),
	})
	if opts == nil || opts.PrimaryColor != "#1e3a8a" || opts.Font != "times" || len(opts.Logo) != 1 {
		t.Fatalf("mapped options = %+v", opts)
	}
}
