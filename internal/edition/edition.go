package edition

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ISSN of the title the barcodes are issued for.
const ISSN = "0307-1758"

// ErrNoEdition is returned for days without a printed edition.
var ErrNoEdition = errors.New("no edition is published on this day")

// priceCodes is indexed by ISO weekday (1 = Monday). Zero means no edition.
var priceCodes = [8]int{0, 2, 2, 2, 2, 2, 3, 0}

// prices is indexed by price code.
var prices = map[int]float64{2: 1.0, 3: 1.2}

var upper = cases.Upper(language.English)

// Edition holds every value derived from a publication date.
type Edition struct {
	Date       time.Time `json:"-" yaml:"-"`
	DateString string    `json:"date" yaml:"date"`
	ISOYear    int       `json:"iso_year" yaml:"iso_year"`
	ISOWeek    int       `json:"iso_week" yaml:"iso_week"`
	ISOWeekday int       `json:"iso_weekday" yaml:"iso_weekday"`
	PriceCode  int       `json:"price_code" yaml:"price_code"`
	Price      float64   `json:"price" yaml:"price"`
	Sequence   int       `json:"sequence" yaml:"sequence"`
	Header     string    `json:"header" yaml:"header"`
	Filename   string    `json:"filename" yaml:"filename"`
	ISSNData   string    `json:"issn_data" yaml:"issn_data"`
}

// For derives the edition published on date.
func For(date time.Time) (Edition, error) {
	weekday := ISOWeekday(date)
	code := priceCodes[weekday]
	if code == 0 {
		return Edition{}, fmt.Errorf("%s (%s): %w", date.Format("2006-01-02"), date.Weekday(), ErrNoEdition)
	}
	price := prices[code]
	seq := code*10 + weekday

	filename, err := Filename(date, seq)
	if err != nil {
		return Edition{}, err
	}
	year, week := date.ISOWeek()

	return Edition{
		Date:       date,
		DateString: date.Format("2006-01-02"),
		ISOYear:    year,
		ISOWeek:    week,
		ISOWeekday: weekday,
		PriceCode:  code,
		Price:      price,
		Sequence:   seq,
		Header:     Header(date, price),
		Filename:   filename,
		ISSNData:   fmt.Sprintf("%s %02d %02d", ISSN, seq, week),
	}, nil
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(date time.Time) int {
	if wd := int(date.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// Header formats the line printed above the barcode, e.g.
// "MSTAR 2016-11-12 SAT 1.2".
func Header(date time.Time, price float64) string {
	return upper.String(fmt.Sprintf("MSTAR %s %s %.1f", date.Format("2006-01-02"), date.Format("Mon"), price))
}

// Filename returns the generator's file name for an edition. The last digit of
// seq must equal the ISO weekday of date.
func Filename(date time.Time, seq int) (string, error) {
	weekday := ISOWeekday(date)
	if seq%10 != weekday {
		return "", fmt.Errorf("sequence %02d does not match ISO weekday %d of %s", seq, weekday, date.Format("2006-01-02"))
	}
	year, week := date.ISOWeek()
	return fmt.Sprintf("Barcode_%d-W%02d-%d_%02d.pdf", year, week, weekday, seq), nil
}

// Week is one row of the check-page table.
type Week struct {
	ISOWeek int       `json:"iso_week" yaml:"iso_week"`
	Monday  time.Time `json:"-" yaml:"-"`
	Label   string    `json:"monday" yaml:"monday"`
}

// CheckWeeks returns n consecutive weeks starting with the week before the
// one containing date. It returns nil when n is not positive.
func CheckWeeks(date time.Time, n int) []Week {
	if n <= 0 {
		return nil
	}
	monday := date.AddDate(0, 0, -(ISOWeekday(date) - 1))
	start := monday.AddDate(0, 0, -7)
	weeks := make([]Week, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, 7*i)
		_, week := d.ISOWeek()
		weeks = append(weeks, Week{ISOWeek: week, Monday: d, Label: d.Format("January 2 2006")})
	}
	return weeks
}

// Tomorrow returns local midnight of the day after now.
func Tomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
