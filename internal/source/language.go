package source

import (
	"errors"
	"path/filepath"
	"strings"
)

// Language identifies a source language by file extension.
type Language string

// Supported languages.
const (
	LanguageJava   Language = "java"
	LanguagePython Language = "python"
)

// ErrUnsupportedLanguage is returned when no grammar exists for a file.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// DetectLanguage returns the language of filePath, or "" when the extension is unknown.
func DetectLanguage(filePath string) Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".java":
		return LanguageJava
	case ".py":
		return LanguagePython
	default:
		return ""
	}
}

// CommentPrefix is the line comment marker of lang.
func (l Language) CommentPrefix() string {
	if l == LanguagePython {
		return "#"
	}

	return "//"
}
