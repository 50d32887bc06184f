package radarr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

func TestGetDownloadClientsSkipsUnknownImplementations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v3/downloadclient":
			_, _ = w.Write([]byte(`[
				{"id": 1, "name": "transmission", "implementation": "Transmission", "configContract": "TransmissionSettings", "protocol": "torrent", "enable": true, "tags": [], "fields": []},
				{"id": 2, "name": "mystery", "implementation": "SomeFutureClient", "configContract": "FutureSettings", "protocol": "torrent", "enable": true, "tags": [], "fields": []}
			]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	a := &Adapter{}
	c := httpclient.New(httpclient.Config{BaseURL: srv.URL, APIKey: "k"})
	rt := testRefTable()
	ir := &irv1.IR{}

	clients, ids, err := a.getDownloadClients(context.Background(), c, rt, ir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clients.Definitions) != 1 {
		t.Fatalf("expected 1 decoded client, got %d", len(clients.Definitions))
	}
	if clients.Definitions[0].Name != "transmission" {
		t.Errorf("expected transmission, got %q", clients.Definitions[0].Name)
	}
	if _, ok := ids["transmission"]; !ok {
		t.Error("expected ID entry for transmission")
	}
	if _, ok := ids["mystery"]; ok {
		t.Error("skipped client must not appear in the ID map")
	}

	if len(ir.Skipped) != 1 {
		t.Fatalf("expected 1 skipped resource, got %d", len(ir.Skipped))
	}
	skipped := ir.Skipped[0]
	if skipped.Name != "mystery" || skipped.Implementation != "SomeFutureClient" {
		t.Errorf("unexpected skipped entry: %+v", skipped)
	}
}

func TestDownloadClientsEqual(t *testing.T) {
	base := irv1.DownloadClientIR{
		Name:           "transmission",
		Implementation: "Transmission",
		Protocol:       irv1.ProtocolTorrent,
		Enable:         true,
		Priority:       1,
		Tags:           []string{"anime"},
		Fields: []irv1.FieldIR{
			{Name: "host", Value: "transmission"},
			{Name: "port", Value: 9091},
		},
	}

	tests := []struct {
		name     string
		mutate   func(dc *irv1.DownloadClientIR)
		expected bool
	}{
		{"identical", func(dc *irv1.DownloadClientIR) {}, true},
		{"different priority", func(dc *irv1.DownloadClientIR) { dc.Priority = 5 }, false},
		{"different field", func(dc *irv1.DownloadClientIR) {
			dc.Fields = []irv1.FieldIR{{Name: "host", Value: "other"}}
		}, false},
		{"secret field forces update", func(dc *irv1.DownloadClientIR) {
			dc.Fields = append(dc.Fields, irv1.FieldIR{Name: "password", Value: "s3cret", Secret: true})
		}, false},
		{"different tags", func(dc *irv1.DownloadClientIR) { dc.Tags = []string{"uhd"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := base
			desired := base
			tt.mutate(&desired)
			if got := downloadClientsEqual(current, desired); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
