package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsBreak(t *testing.T) {
	l := DefaultLayout()
	tests := []struct {
		name  string
		y     float64
		block float64
		want  bool
	}{
		{"EmployeeFitsAtThreshold", 680, l.EmployeeMinRoom, false},
		{"EmployeePastThreshold", 680.5, l.EmployeeMinRoom, true},
		{"InvoiceFitsAtThreshold", 550, l.InvoiceMinRoom, false},
		{"InvoicePastThreshold", 551, l.InvoiceMinRoom, true},
		{"EmptyBlockAtBottom", l.PageBottom, 0, false},
		{"TopOfPage", l.Margin, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsBreak(tt.y, tt.block, l.PageBottom))
		})
	}
}

func TestLoadLayout(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("REPORT_EMPLOYEE_MIN_ROOM", "80")
		t.Setenv("REPORT_INVOICE_MIN_ROOM", "200")
		t.Setenv("REPORT_PAGE_BOTTOM", "700")
		l := LoadLayout()
		assert.Equal(t, 80.0, l.EmployeeMinRoom)
		assert.Equal(t, 200.0, l.InvoiceMinRoom)
		assert.Equal(t, 700.0, l.PageBottom)
	})

	t.Run("BottomOutsidePage", func(t *testing.T) {
		t.Setenv("REPORT_PAGE_BOTTOM", "5000")
		assert.Equal(t, DefaultLayout().PageBottom, LoadLayout().PageBottom)
	})
}

func TestCursor(t *testing.T) {
	c := NewCursor(DefaultLayout())
	assert.Equal(t, 50.0, c.Y)

	c.Advance(100)
	assert.Equal(t, 150.0, c.Y)
	assert.Equal(t, 592.0, c.Remaining())

	c.MoveTo(700)
	c.Reset()
	assert.Equal(t, c.Top, c.Y)
}

func TestDocumentWriteBreaksPage(t *testing.T) {
	rec := NewRecorder()
	doc := NewDocument(rec, DefaultLayout())
	doc.Cursor().MoveTo(735)

	doc.Write("last line", bodyStyle)

	op, ok := rec.Find("last line")
	assert.True(t, ok)
	assert.Equal(t, 2, op.Page)
	assert.Equal(t, 50.0, op.Y)
}

func TestFontAvailable(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "font.ttf")
	assert.NoError(t, os.WriteFile(font, []byte("ttf"), 0o600))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"Present", font, true},
		{"Missing", filepath.Join(dir, "missing.ttf"), false},
		{"Directory", dir, false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			l.FontPath = tt.path
			assert.Equal(t, tt.want, l.FontAvailable())
		})
	}

	t.Run("LoadLayoutKeepsMissingPath", func(t *testing.T) {
		t.Setenv("REPORT_FONT_PATH", filepath.Join(dir, "missing.ttf"))
		l := LoadLayout()
		assert.False(t, l.FontAvailable())
		assert.Equal(t, filepath.Join(dir, "missing.ttf"), l.FontPath)
	})
}
