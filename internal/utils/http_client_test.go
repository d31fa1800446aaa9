package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Two clients must not share the same underlying resty.Client:
	// the adapter configures base URL and timeout per instance.
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}

	client1.SetTimeout(5 * time.Second)
	if client2.GetClient().Timeout == 5*time.Second {
		t.Fatal("expected timeout configuration to stay per-instance")
	}
}

func TestHTTPClient_EmbeddedClientUsable(t *testing.T) {
	client := NewHTTPClient()

	var req *resty.Request = client.R()
	if req == nil {
		t.Fatal("expected non-nil request from embedded resty client")
	}
}
