package barcode_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"starbarcode/internal/barcode"
)

var settings = barcode.Settings{GeneratorPath: "/usr/local/bin/star-barcode", OutputDir: "/srv/barcodes"}

func TestBuildInvocationSpecialSequenceExactArgv(t *testing.T) {
	req := barcode.SpecialSequence{Sequence: "042", Week: "17", Header: "EDITION ONE"}

	inv, err := barcode.BuildInvocation(req, settings, time.Now())
	if err != nil {
		t.Fatalf("BuildInvocation returned error: %v", err)
	}
	want := []string{
		"/usr/local/bin/star-barcode", "direct",
		"--seq", "042",
		"--week", "17",
		"--header", "EDITION ONE",
		"--directory=/srv/barcodes",
	}
	if diff := cmp.Diff(want, inv.Argv()); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInvocationExplicitDateIsVerbatim(t *testing.T) {
	for _, raw := range []string{"2024-03-01", "not a date", " 2024-3-1 ", `"; rm -rf /`} {
		inv, err := barcode.BuildInvocation(barcode.ExplicitDate{Date: raw}, settings, time.Now())
		if err != nil {
			t.Fatalf("BuildInvocation(%q) returned error: %v", raw, err)
		}
		want := []string{settings.GeneratorPath, raw, "--directory=/srv/barcodes"}
		if diff := cmp.Diff(want, inv.Argv()); diff != "" {
			t.Fatalf("argv mismatch for %q (-want +got):\n%s", raw, diff)
		}
	}
}

func TestBuildInvocationTomorrowAcrossBoundaries(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, 2, 28, 9, 0, 0, 0, time.Local), "2024-02-29"},
		{time.Date(2023, 2, 28, 9, 0, 0, 0, time.Local), "2023-03-01"},
		{time.Date(2024, 2, 29, 23, 59, 0, 0, time.Local), "2024-03-01"},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local), "2024-01-01"},
		{time.Date(2024, 4, 30, 12, 0, 0, 0, time.Local), "2024-05-01"},
		{time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local), "2024-06-10"}, // Sunday to Monday
	}
	for _, tc := range cases {
		inv, err := barcode.BuildInvocation(barcode.Tomorrow{}, settings, tc.now)
		if err != nil {
			t.Fatalf("BuildInvocation returned error: %v", err)
		}
		want := []string{settings.GeneratorPath, tc.want, "--directory=/srv/barcodes"}
		if diff := cmp.Diff(want, inv.Argv()); diff != "" {
			t.Fatalf("now=%s (-want +got):\n%s", tc.now.Format(time.DateOnly), diff)
		}
	}
}

func TestBuildInvocationIsDeterministic(t *testing.T) {
	now := time.Date(2024, 11, 12, 8, 0, 0, 0, time.Local)
	requests := []barcode.Request{
		barcode.Tomorrow{},
		barcode.ExplicitDate{Date: "2024-11-20"},
		barcode.SpecialSequence{Sequence: "36", Week: "45", Header: "MSTAR 2016-11-12 SAT 1.2"},
	}
	for _, req := range requests {
		first, err := barcode.BuildInvocation(req, settings, now)
		if err != nil {
			t.Fatalf("BuildInvocation(%v) returned error: %v", req.Mode(), err)
		}
		for i := 0; i < 3; i++ {
			again, err := barcode.BuildInvocation(req, settings, now)
			if err != nil {
				t.Fatalf("BuildInvocation(%v) returned error: %v", req.Mode(), err)
			}
			if diff := cmp.Diff(first, again); diff != "" {
				t.Fatalf("%v produced different invocations (-first +again):\n%s", req.Mode(), diff)
			}
		}
	}
}

func TestBuildInvocationHeaderIsNotTruncated(t *testing.T) {
	header := "A HEADER THAT IS LONGER THAN TWENTY FOUR CHARACTERS"
	inv, err := barcode.BuildInvocation(barcode.SpecialSequence{Sequence: "1", Week: "2", Header: header}, settings, time.Now())
	if err != nil {
		t.Fatalf("BuildInvocation returned error: %v", err)
	}
	if got := inv.Args[6]; got != header {
		t.Fatalf("expected header passed through untouched, got %q", got)
	}
}

func TestBuildInvocationRejectsMissingSettingsAndNil(t *testing.T) {
	if _, err := barcode.BuildInvocation(barcode.Tomorrow{}, barcode.Settings{OutputDir: "/x"}, time.Now()); err == nil {
		t.Fatal("expected error without generator path")
	}
	if _, err := barcode.BuildInvocation(barcode.Tomorrow{}, barcode.Settings{GeneratorPath: "/x"}, time.Now()); err == nil {
		t.Fatal("expected error without output dir")
	}
	if _, err := barcode.BuildInvocation(nil, settings, time.Now()); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestModeLabelsAndOrder(t *testing.T) {
	var labels []string
	for _, m := range barcode.Modes() {
		labels = append(labels, m.String())
	}
	want := []string{"Tomorrow", "Another date", "Special sequence"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("mode labels (-want +got):\n%s", diff)
	}
	if (barcode.SpecialSequence{}).Mode() != barcode.ModeSpecialSequence {
		t.Fatal("special sequence reports wrong mode")
	}
}
