package attachments

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"masar/internal/db"
	"masar/internal/domain/records"
)

func newTestManager(t *testing.T) (*Manager, *records.Store) {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "masar.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.Migrate(ctx, conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := records.NewStore(conn)
	return NewManager(filepath.Join(t.TempDir(), "attachments"), store, log), store
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

func TestFolderCreatesPerFileNo(t *testing.T) {
	mgr, _ := newTestManager(t)

	folder, err := mgr.Folder("100")
	if err != nil {
		t.Fatalf("folder: %v", err)
	}
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, got %v", folder, err)
	}
	if filepath.Base(folder) != "100" {
		t.Fatalf("expected folder named after file_no, got %s", folder)
	}
}

func TestFolderRequiresFileNo(t *testing.T) {
	mgr, _ := newTestManager(t)

	if _, err := mgr.Folder(""); err != ErrMissingFileNo {
		t.Fatalf("expected ErrMissingFileNo, got %v", err)
	}
}

func TestSaveDoesNotOverwriteExistingFile(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	first := writeSource(t, t.TempDir(), "contract.pdf", "first upload")
	if _, err := mgr.Save(ctx, nil, first, "100", false); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// A later upload with the same filename is a silent duplicate.
	second := writeSource(t, t.TempDir(), "contract.pdf", "second upload")
	att, err := mgr.Save(ctx, nil, second, "100", false)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	content, err := os.ReadFile(att.Path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "first upload" {
		t.Fatalf("first copy was overwritten: %q", content)
	}
}

func TestSavePendingFlow(t *testing.T) {
	mgr, store := newTestManager(t)
	ctx := context.Background()

	source := writeSource(t, t.TempDir(), "cv.pdf", "data")
	att, err := mgr.Save(ctx, nil, source, "100", false)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// No employee id yet: the file is on disk but no row exists until the
	// caller flushes the pending list.
	if _, err := os.Stat(att.Path); err != nil {
		t.Fatalf("expected copied file: %v", err)
	}
	count, err := store.CountAttachments(ctx)
	if err != nil {
		t.Fatalf("count attachments: %v", err)
	}
	if count != 0 {
		t.Fatalf("pending save must not insert rows, got %d", count)
	}
	if att.ContentType != "application/pdf" {
		t.Fatalf("expected inferred media type, got %q", att.ContentType)
	}
	if att.UploadedAt.IsZero() {
		t.Fatal("expected upload timestamp")
	}
}

func TestSaveInsertsRowForKnownEmployee(t *testing.T) {
	mgr, store := newTestManager(t)
	ctx := context.Background()
	svc := records.NewService(store)

	emp := records.Employee{Name: "احمد", FileNo: "100", NationalID: "12345678901234"}
	id, err := svc.AddEmployee(ctx, emp, nil)
	if err != nil {
		t.Fatalf("add employee: %v", err)
	}

	source := writeSource(t, t.TempDir(), "me.jpg", "jpegdata")
	att, err := mgr.Save(ctx, &id, source, "100", true)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if att.Filename != "photo_me.jpg" {
		t.Fatalf("expected photo_ prefix, got %q", att.Filename)
	}

	atts, err := store.ListAttachments(ctx, id)
	if err != nil {
		t.Fatalf("list attachments: %v", err)
	}
	if len(atts) != 1 || !atts[0].IsPhoto {
		t.Fatalf("expected one photo row, got %+v", atts)
	}
}

func TestOpenMissingPathIsSilent(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := mgr.Open(filepath.Join(t.TempDir(), "gone.pdf")); err != nil {
		t.Fatalf("expected silent no-op for missing path, got %v", err)
	}
}
