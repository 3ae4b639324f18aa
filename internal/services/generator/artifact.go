package generator

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// ArtifactName is the information encoded in a generated file name of the form
// Barcode_<ISO year>-W<ISO week>-<ISO weekday>_<sequence>.pdf.
type ArtifactName struct {
	ISOYear    int
	ISOWeek    int
	ISOWeekday int
	Sequence   int
}

// Label renders the name fields the way operators quote them, e.g. "W45 seq 36".
func (n ArtifactName) Label() string {
	return fmt.Sprintf("W%02d seq %02d", n.ISOWeek, n.Sequence)
}

var artifactNamePattern = regexp.MustCompile(`^Barcode_(\d{4})-W(\d{2})-(\d)_(\d{2})\.pdf$`)

// ParseArtifactName extracts the edition fields from path's base name.
func ParseArtifactName(path string) (ArtifactName, bool) {
	m := artifactNamePattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return ArtifactName{}, false
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	weekday, _ := strconv.Atoi(m[3])
	seq, _ := strconv.Atoi(m[4])
	return ArtifactName{ISOYear: year, ISOWeek: week, ISOWeekday: weekday, Sequence: seq}, true
}
