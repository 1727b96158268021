package manage

import (
	"testing"
)

func TestConvertSharedModule(t *testing.T) {
	if ExchangeConvertShared == nil {
		t.Fatal("ExchangeConvertShared module is nil")
	}

	metadata := ExchangeConvertShared.Metadata()
	if metadata == nil {
		t.Fatal("Module metadata is nil")
	}

	props := metadata.Properties()
	if props["id"] != "convert-shared" {
		t.Errorf("Expected id 'convert-shared', got %v", props["id"])
	}

	if props["platform"] != "exchange" {
		t.Errorf("Expected platform 'exchange', got %v", props["platform"])
	}

	authors, ok := props["authors"].([]string)
	if !ok || len(authors) == 0 {
		t.Error("Module authors not properly set")
	}
}

func TestSetAutoReplyModule(t *testing.T) {
	if ExchangeSetAutoReply == nil {
		t.Fatal("ExchangeSetAutoReply module is nil")
	}

	props := ExchangeSetAutoReply.Metadata().Properties()
	if props["id"] != "set-autoreply" {
		t.Errorf("Expected id 'set-autoreply', got %v", props["id"])
	}
}
