package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"starbarcode/internal/barcode"
	"starbarcode/internal/checkpage"
	"starbarcode/internal/edition"
)

const formatHTML = "html"

type editionReport struct {
	Edition edition.Edition `json:"edition" yaml:"edition"`
	Weeks   []edition.Week  `json:"weeks" yaml:"weeks"`
}

func newEditionCommand() *cobra.Command {
	var dateFlag string
	var formatFlag string
	var weeks int
	var pageDir string

	cmd := &cobra.Command{
		Use:         "edition",
		Short:       "Show sequence, week and header for an edition date",
		Long:        "Show the values the generator derives for an edition date. Use them when a Special sequence request is needed. Defaults to tomorrow.\n\nWith --format html the check page is printed instead; --check-page writes it to index.html in a directory, usually the barcode output directory.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseEditionFormat(formatFlag)
			if err != nil {
				return err
			}
			if weeks < 0 {
				return fmt.Errorf("invalid --weeks %d: must be zero or more", weeks)
			}
			date, err := resolveEditionDate(dateFlag, time.Now())
			if err != nil {
				return err
			}
			ed, err := edition.For(date)
			if err != nil {
				return err
			}
			report := editionReport{Edition: ed, Weeks: edition.CheckWeeks(date, weeks)}

			if pageDir != "" {
				path, err := checkpage.Write(pageDir, checkpage.New(ed, report.Weeks))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			switch format {
			case formatHTML:
				return checkpage.Render(cmd.OutOrStdout(), checkpage.New(ed, report.Weeks))
			case formatJSON:
				return writeJSON(cmd, report)
			case formatYAML:
				return writeYAML(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderEdition(ed))
			if len(report.Weeks) > 0 {
				fmt.Fprintln(out, renderWeeks(report.Weeks))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Edition date (YYYY-MM-DD); defaults to tomorrow")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", formatTable, "Output format: table, json, yaml, or html")
	cmd.Flags().StringVar(&pageDir, "check-page", "", "Write the HTML check page to index.html in this directory")
	cmd.Flags().IntVar(&weeks, "weeks", 4, "Number of weeks in the check table, starting the week before")
	return cmd
}

func parseEditionFormat(value string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(value), formatHTML) {
		return formatHTML, nil
	}
	return parseFormat(value)
}

func resolveEditionDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return edition.Tomorrow(now), nil
	}
	date, err := time.ParseInLocation(barcode.DateLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", value)
	}
	return date, nil
}

func renderEdition(ed edition.Edition) string {
	rows := [][]string{
		{"Date", fmt.Sprintf("%s (%s)", ed.DateString, ed.Date.Weekday())},
		{"ISO week", fmt.Sprintf("%d-W%02d-%d", ed.ISOYear, ed.ISOWeek, ed.ISOWeekday)},
		{"Price", fmt.Sprintf("%.2f (code %d)", ed.Price, ed.PriceCode)},
		{"Sequence", fmt.Sprintf("%02d", ed.Sequence)},
		{"Header", ed.Header},
		{"Header length", strconv.Itoa(len(ed.Header))},
		{"Filename", ed.Filename},
		{"ISSN", ed.ISSNData},
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

func renderWeeks(weeks []edition.Week) string {
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, []string{fmt.Sprintf("%02d", w.ISOWeek), w.Label})
	}
	return renderTable([]string{"Week", "Monday"}, rows, 0)
}
