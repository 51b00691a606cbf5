package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the transcript formats the pipeline accepts
var SupportedExtensions = []string{".txt", ".docx"}

// IsTranscriptFile checks if the path has a supported transcript extension
func IsTranscriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Load reads transcript text from a .txt or .docx file
func Load(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("transcript file not found: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return strings.TrimSpace(string(data)), nil

	case ".docx":
		paragraphs, err := readDocxParagraphs(path)
		if err != nil {
			return "", fmt.Errorf("read docx transcript: %w", err)
		}
		return strings.Join(paragraphs, "\n\n"), nil

	default:
		return "", fmt.Errorf("unsupported transcript format: %s", filepath.Ext(path))
	}
}

// LoadQuestions reads a questions file, one question per non-blank line
func LoadQuestions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var questions []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}

	return questions, nil
}
