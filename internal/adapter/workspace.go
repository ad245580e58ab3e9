// Package adapter contains the infrastructure the repair pipeline talks to: processes,
// the filesystem, record stores, the evaluation cache, the LLM endpoint and benchmarks.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// TextEncoding names the encoding a source file was decoded with.
type TextEncoding string

// Encodings ReadText can detect.
const (
	EncodingUTF8   TextEncoding = "utf-8"
	EncodingLatin1 TextEncoding = "iso-8859-1"
)

// Workspace abstracts the filesystem operations of the pipeline so the domain layer can
// be tested without touching the disk.
type Workspace interface {
	// CreateTempDir creates a uniquely named directory under the workspace root.
	CreateTempDir(ctx context.Context, prefix string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// ReadText decodes a file as UTF-8, or as ISO-8859-1 when it is not valid UTF-8.
	ReadText(ctx context.Context, path m.Path) (string, TextEncoding, error)

	// WriteText encodes text with enc, replacing characters enc cannot represent.
	WriteText(ctx context.Context, path m.Path, text string, enc TextEncoding) error

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalWorkspace is the os-backed Workspace.
type LocalWorkspace struct {
	root string
}

// NewLocalWorkspace constructs a LocalWorkspace creating temp dirs under root, or under
// the OS temp dir when root is empty.
func NewLocalWorkspace(root string) *LocalWorkspace {
	return &LocalWorkspace{root: root}
}

// CreateTempDir creates <root>/<prefix>-<uuid>.
func (a *LocalWorkspace) CreateTempDir(ctx context.Context, prefix string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root := a.root
	if root == "" {
		root = os.TempDir()
	}

	if err := os.MkdirAll(root, 0o750); err != nil {
		return "", fmt.Errorf("create workspace root: %w", err)
	}

	dir := filepath.Join(root, prefix+"-"+uuid.New().String())
	if err := os.Mkdir(dir, 0o750); err != nil {
		return "", err
	}

	return m.Path(dir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalWorkspace) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// ReadText implements Workspace.
func (a *LocalWorkspace) ReadText(_ context.Context, path m.Path) (string, TextEncoding, error) {
	// #nosec G304 - path points into a checked-out benchmark tree
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return "", "", err
	}

	text, enc := DecodeText(raw)

	return text, enc, nil
}

// WriteText implements Workspace.
func (a *LocalWorkspace) WriteText(_ context.Context, path m.Path, text string, enc TextEncoding) error {
	return os.WriteFile(string(path), EncodeText(text, enc), 0o600)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalWorkspace) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalWorkspace) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalWorkspace) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// DecodeText decodes raw bytes as UTF-8 when valid and as ISO-8859-1 otherwise. Latin-1
// maps every byte, so decoding never fails.
func DecodeText(raw []byte) (string, TextEncoding) {
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8
	}

	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�"), EncodingUTF8
	}

	return string(text), EncodingLatin1
}

// EncodeText encodes text with enc. Characters enc cannot represent are substituted
// rather than reported.
func EncodeText(text string, enc TextEncoding) []byte {
	var encoder *encoding.Encoder

	switch enc {
	case EncodingLatin1:
		encoder = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	default:
		encoder = unicode.UTF8.NewEncoder()
	}

	out, _, err := transform.Bytes(encoder, []byte(text))
	if err != nil {
		return []byte(strings.ToValidUTF8(text, "�"))
	}

	return out
}
