// Package attachments keeps uploaded files on disk in sync with attachment
// rows: one directory per employee file number under a common root.
package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"

	"masar/internal/domain/records"
)

var ErrMissingFileNo = errors.New("file number is required before uploading attachments")

type Manager struct {
	root  string
	store *records.Store
	log   *logrus.Logger
}

func NewManager(root string, store *records.Store, log *logrus.Logger) *Manager {
	return &Manager{root: root, store: store, log: log}
}

// Folder returns the employee's attachment directory, creating it when
// absent. The directory outlives the database rows: files stay on disk even
// when rows are replaced.
func (m *Manager) Folder(fileNo string) (string, error) {
	if fileNo == "" {
		return "", ErrMissingFileNo
	}
	folder := filepath.Join(m.root, fileNo)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create employee folder: %w", err)
	}
	return folder, nil
}

// Save copies source into the employee folder and builds the attachment
// record. A same-named destination is left untouched, so the first upload of
// a filename wins and later ones are treated as duplicates. When employeeID
// is known the row is inserted immediately; in the new-record flow the caller
// keeps the returned attachment in its pending list and persists the whole
// list once the employee id exists.
func (m *Manager) Save(ctx context.Context, employeeID *int64, source, fileNo string, isPhoto bool) (records.Attachment, error) {
	folder, err := m.Folder(fileNo)
	if err != nil {
		return records.Attachment{}, err
	}

	filename := filepath.Base(source)
	if isPhoto {
		filename = "photo_" + filename
	}
	dest := filepath.Join(folder, filename)

	if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
		if err := copyFile(source, dest); err != nil {
			return records.Attachment{}, err
		}
	} else {
		m.log.WithFields(logrus.Fields{"file": filename, "fileNo": fileNo}).
			Debug("attachment already present, copy skipped")
	}

	var ownerID int64
	if employeeID != nil {
		ownerID = *employeeID
	}
	att := records.NewAttachment(ownerID, filename, dest, mediaType(dest), isPhoto)

	if employeeID != nil {
		if err := m.store.InsertAttachment(ctx, att); err != nil {
			return records.Attachment{}, err
		}
	}
	return att, nil
}

// Open hands the file to the operating system's default handler. A path that
// no longer exists is silently ignored.
func (m *Manager) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}

func copyFile(source, dest string) error {
	src, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy attachment: %w", err)
	}
	return dst.Close()
}

func mediaType(path string) string {
	return mime.TypeByExtension(filepath.Ext(path))
}
