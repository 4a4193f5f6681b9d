package imap

import (
	"fmt"
	"io"

	"github.com/emersion/go-imap/utf7"
)

// DefaultFolder is selected when the interactive prompt gets no usable answer.
const DefaultFolder = "INBOX"

// EncodeFolderName converts a human-readable folder name to the modified
// UTF-7 form IMAP uses on the wire (RFC 3501 section 5.1.3).
func EncodeFolderName(name string) (string, error) {
	return utf7.Encoding.NewEncoder().String(name)
}

// DecodeFolderName converts a wire-form folder name back to human-readable
// text, for display only.
func DecodeFolderName(encoded string) (string, error) {
	return utf7.Encoding.NewDecoder().String(encoded)
}

// PickFolder prints the folders numbered from 1 (decoded for display) and
// reads a selection from r. Invalid or out-of-range input falls back to
// DefaultFolder. The returned name keeps its wire form.
func PickFolder(folders []string, r io.Reader, w io.Writer) string {
	for i, f := range folders {
		display, err := DecodeFolderName(f)
		if err != nil {
			display = f
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, display)
	}
	fmt.Fprint(w, "Select number of folder: ")

	var choice int
	if _, err := fmt.Fscanln(r, &choice); err != nil {
		return DefaultFolder
	}
	if choice < 1 || choice > len(folders) {
		return DefaultFolder
	}
	return folders[choice-1]
}
