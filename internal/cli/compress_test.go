package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLinesPreservesBlankLines(t *testing.T) {
	input := "first\n\nthird\n"
	lines, err := readLines(strings.NewReader(input), 100, 4096)
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	want := []string{"first", "", "third"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesEmptyInput(t *testing.T) {
	lines, err := readLines(strings.NewReader(""), 100, 4096)
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestReadLinesMaxLinesCap(t *testing.T) {
	input := strings.Repeat("line\n", 10)
	lines, err := readLines(strings.NewReader(input), 3, 4096)
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
}

func TestReadLinesRejectsInvalidUTF8(t *testing.T) {
	input := "good line\n" + string([]byte{0xff, 0xfe, 0xfd}) + "\n"
	_, err := readLines(strings.NewReader(input), 100, 4096)
	if err == nil || !strings.Contains(err.Error(), "not valid UTF-8 at line 2") {
		t.Errorf("readLines() = %v, want UTF-8 error for line 2", err)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"xml", true},
	}
	for _, tt := range tests {
		f, err := getFormatter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("getFormatter(%q) succeeded, want error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("getFormatter(%q) error = %v", tt.format, err)
		}
		if f == nil {
			t.Errorf("getFormatter(%q) returned nil formatter", tt.format)
		}
	}
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "input.log")
	if err := os.WriteFile(existing, []byte("line\n"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"existing file", existing, ""},
		{"empty path", "", "empty file path"},
		{"missing file", filepath.Join(dir, "missing.log"), "does not exist"},
		{"directory", dir, "directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePath(tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateFilePath(%q) = %v, want nil", tt.path, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateFilePath(%q) = %v, want error containing %q", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSetupInputReaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.log")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	reader, cleanup, err := setupInputReader([]string{path})
	if err != nil {
		t.Fatalf("setupInputReader() error = %v", err)
	}
	if cleanup == nil {
		t.Fatal("setupInputReader() returned nil cleanup for file input")
	}
	defer cleanup()

	lines, err := readLines(reader, 100, 4096)
	if err != nil {
		t.Fatalf("readLines() error = %v", err)
	}
	if len(lines) != 2 || lines[0] != "alpha" {
		t.Errorf("read %v, want [alpha beta]", lines)
	}
}

func TestWriteOutputBytesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	content := []byte("[3x] compressed\n")

	if err := writeOutputBytesToFile(content, path); err != nil {
		t.Fatalf("writeOutputBytesToFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back output: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("file content = %q, want %q", got, content)
	}
}
