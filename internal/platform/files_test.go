package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "Dogs")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_FileInTheWay(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Join(blocker, "Dogs")); err == nil {
		t.Error("Expected error when a file blocks the directory path, got nil")
	}
}

func TestCreateDirectoryIfNotExists_PathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "Dogs")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	err := CreateDirectoryIfNotExists(file)
	if err == nil {
		t.Fatal("Expected error when the path is a regular file, got nil")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Error should say the path is not a directory, got: %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "dog.jpeg")

	err := WriteFileAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err = WriteFileAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "second")
		return err
	})
	if err != nil {
		t.Fatalf("Expected no error on overwrite, got %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read target: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected last write to win, got %q", string(data))
	}

	entries, _ := os.ReadDir(tempDir)
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file in directory, got %d", len(entries))
	}
}

func TestWriteFileAtomic_FailureLeavesNothing(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "dog.jpeg")
	writeErr := errors.New("encoder exploded")

	err := WriteFileAtomic(target, func(w io.Writer) error {
		io.WriteString(w, "half a pic")
		return writeErr
	})
	if !errors.Is(err, writeErr) {
		t.Fatalf("Expected write error to propagate, got %v", err)
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("Expected target to not exist after failed write")
	}

	entries, _ := os.ReadDir(tempDir)
	if len(entries) != 0 {
		t.Errorf("Expected temp file to be removed, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "dog.jpeg")

	err := WriteFileAtomic(target, func(w io.Writer) error { return nil })
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"n02110185_1469.jpg", "n02110185_1469.jpg"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{`a\b`, "a_b"},
		{"  spaced.png ", "spaced.png"},
		{"", "_"},
		{"..", "_"},
	}

	for _, test := range tests {
		result := SanitizeFileName(test.input)
		if result != test.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.jpeg")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
