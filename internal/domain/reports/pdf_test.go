package reports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"masar/internal/domain/records"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return parsed
}

func exportToTemp(t *testing.T, employees []records.Employee) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	exporter := &Exporter{Title: "تقرير الموظفين", FontFile: "missing-font.ttf"}
	if err := exporter.Export(path, employees, records.Fields); err != nil {
		t.Fatalf("export: %v", err)
	}
	return path
}

func TestExportNoRecords(t *testing.T) {
	path := exportToTemp(t, nil)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Fatal("expected a PDF document")
	}
}

func TestExportWithRecords(t *testing.T) {
	employees := []records.Employee{
		{Name: "Ahmed", FileNo: "100", Department: "Accounts", Notes: strings.Repeat("long note ", 30)},
		{Name: "Mona", FileNo: "200"},
	}
	path := exportToTemp(t, employees)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat export: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty export")
	}
}

func TestExportArabicWithoutConfiguredFont(t *testing.T) {
	// The column headers and title are Arabic, so even this data used to
	// crash the built-in-font path inside SplitText.
	employees := []records.Employee{
		{Name: "أحمد محمد", FileNo: "100", Department: "الحسابات", Notes: "ملاحظة طويلة جدًا " + strings.Repeat("نص ", 40)},
	}
	path := exportToTemp(t, employees)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Fatal("expected a PDF document")
	}
}

func TestLatinOnly(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"أحمد محمد", ""},
		{"ملف 100", "100"},
		{"Ahmed 100", "Ahmed 100"},
		{"département", "département"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := latinOnly(tc.in); got != tc.want {
			t.Fatalf("latinOnly(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRTLShapingLeavesLatinAlone(t *testing.T) {
	if got := rtl("2015-03-01"); got != "2015-03-01" {
		t.Fatalf("latin text must pass through untouched, got %q", got)
	}
	if got := rtl(""); got != "" {
		t.Fatalf("empty text must pass through, got %q", got)
	}
}

func TestRTLReversesArabic(t *testing.T) {
	shaped := rtl("محمد")
	if shaped == "محمد" {
		t.Fatal("expected shaped and reversed output for Arabic input")
	}
	if shaped == "" {
		t.Fatal("expected non-empty output")
	}
}
