package imap

import (
	"bytes"
	"strings"
	"testing"
)

func TestFolderNameRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "ASCII", input: "INBOX"},
		{name: "ASCII with space", input: "Sent Items"},
		{name: "Latin accents", input: "Entwürfe"},
		{name: "French", input: "Éléments envoyés"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeFolderName(tt.input)
			if err != nil {
				t.Fatalf("EncodeFolderName() error: %v", err)
			}

			decoded, err := DecodeFolderName(encoded)
			if err != nil {
				t.Fatalf("DecodeFolderName() error: %v", err)
			}

			if decoded != tt.input {
				t.Errorf("Round trip = %q, want %q", decoded, tt.input)
			}
		})
	}
}

func TestEncodeFolderNameASCIIUnchanged(t *testing.T) {
	encoded, err := EncodeFolderName("INBOX")
	if err != nil {
		t.Fatalf("EncodeFolderName() error: %v", err)
	}
	if encoded != "INBOX" {
		t.Errorf("Expected 'INBOX' unchanged, got %q", encoded)
	}
}

func TestEncodeFolderNameEscapesAmpersand(t *testing.T) {
	encoded, err := EncodeFolderName("A&B")
	if err != nil {
		t.Fatalf("EncodeFolderName() error: %v", err)
	}
	if encoded != "A&-B" {
		t.Errorf("Expected 'A&-B', got %q", encoded)
	}
}

func TestPickFolder(t *testing.T) {
	folders := []string{"INBOX", "Sent", "Drafts"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Valid selection", input: "2\n", expected: "Sent"},
		{name: "First folder", input: "1\n", expected: "INBOX"},
		{name: "Out of range high", input: "9\n", expected: DefaultFolder},
		{name: "Out of range zero", input: "0\n", expected: DefaultFolder},
		{name: "Not a number", input: "abc\n", expected: DefaultFolder},
		{name: "Empty input", input: "", expected: DefaultFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := PickFolder(folders, strings.NewReader(tt.input), &out)
			if got != tt.expected {
				t.Errorf("PickFolder() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPickFolderListsNumberedFromOne(t *testing.T) {
	var out bytes.Buffer
	PickFolder([]string{"INBOX", "Sent"}, strings.NewReader("1\n"), &out)

	listing := out.String()
	if !strings.Contains(listing, "1. INBOX") {
		t.Errorf("Expected listing to contain '1. INBOX', got %q", listing)
	}
	if !strings.Contains(listing, "2. Sent") {
		t.Errorf("Expected listing to contain '2. Sent', got %q", listing)
	}
}

func TestPickFolderDisplaysDecodedNames(t *testing.T) {
	encoded, err := EncodeFolderName("Entwürfe")
	if err != nil {
		t.Fatalf("EncodeFolderName() error: %v", err)
	}

	var out bytes.Buffer
	got := PickFolder([]string{encoded}, strings.NewReader("1\n"), &out)

	if !strings.Contains(out.String(), "1. Entwürfe") {
		t.Errorf("Expected decoded display name, got %q", out.String())
	}
	// the returned name keeps its wire form
	if got != encoded {
		t.Errorf("PickFolder() = %q, want %q", got, encoded)
	}
}
