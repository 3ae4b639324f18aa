package checkpage

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"starbarcode/internal/edition"
)

// FileName is the name Write gives the page inside its directory.
const FileName = "index.html"

//go:embed templates/index.html
var templates embed.FS

var templateSet = pongo2.NewSet("checkpage", pongo2.NewFSLoader(templates))

// Page is the view the template renders. Every field is preformatted.
type Page struct {
	Date     string
	Barcode  string
	Sequence string
	Week     string
	Header   string
	Weeks    []WeekRow
}

// WeekRow is one line of the week table. Current marks the edition's week.
type WeekRow struct {
	Week    string
	Monday  string
	Current bool
}

// New builds the page for ed. The barcode link points at the generator's file
// name for the edition, relative to the page.
func New(ed edition.Edition, weeks []edition.Week) Page {
	page := Page{
		Date:     ed.Date.Format("Monday 2 January 2006"),
		Barcode:  ed.Filename,
		Sequence: fmt.Sprintf("%02d", ed.Sequence),
		Week:     fmt.Sprintf("%02d", ed.ISOWeek),
		Header:   ed.Header,
	}
	year, week := ed.Date.ISOWeek()
	for _, w := range weeks {
		wy, ww := w.Monday.ISOWeek()
		page.Weeks = append(page.Weeks, WeekRow{
			Week:    fmt.Sprintf("%02d", w.ISOWeek),
			Monday:  w.Label,
			Current: wy == year && ww == week,
		})
	}
	return page
}

// Render writes the page as HTML to w.
func Render(w io.Writer, page Page) error {
	tpl, err := templateSet.FromFile("templates/index.html")
	if err != nil {
		return fmt.Errorf("load check page template: %w", err)
	}
	if err := tpl.ExecuteWriter(pongo2.Context{"page": page}, w); err != nil {
		return fmt.Errorf("render check page: %w", err)
	}
	return nil
}

// Write renders the page into dir/index.html, replacing any previous page,
// and returns the file path.
func Write(dir string, page Page) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write check page: %w", err)
	}
	return path, nil
}
