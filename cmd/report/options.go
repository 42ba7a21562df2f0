package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"weatherstats.app/internal/core/report"
)

var errUsage = errors.New("usage error")

type options struct {
	query report.Query
	json  bool
}

// parseOptions reads the command line. When the selected_hour filter is used without
// --hour and prompt is non-nil, the hour is read from prompt.
func parseOptions(args []string, prompt io.Reader, out io.Writer) (options, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(out)

	countries := fs.Bool("countries", false, "max, min and standard deviation of temperature per country")
	cities := fs.Bool("cities", false, "max, min and standard deviation of temperature per city")
	extremes := fs.Bool("extremes", false, "city with the highest or lowest temperature")
	rain := fs.Bool("rain", false, "number of hours with rain")
	dateFilter := fs.String("date_filter", string(report.DefaultDateFilter),
		"one of selected_hour, today, yesterday, current_week, last_seven_days")
	tempExtreme := fs.String("temp_extreme", string(report.DefaultTempExtreme), "max or min, used with --extremes")
	hour := fs.String("hour", "", `hour for selected_hour, formatted "YYYY-MM-DD HH"`)
	asJSON := fs.Bool("json", false, "print the result as JSON")

	if err := fs.Parse(args); err != nil {
		return options{}, errUsage
	}

	var selected []report.DataType
	for _, candidate := range []struct {
		set      bool
		dataType report.DataType
	}{
		{*countries, report.Countries},
		{*cities, report.Cities},
		{*extremes, report.Extremes},
		{*rain, report.Rain},
	} {
		if candidate.set {
			selected = append(selected, candidate.dataType)
		}
	}
	if len(selected) != 1 {
		fmt.Fprintln(out, "exactly one of --countries, --cities, --extremes or --rain is required")
		fs.Usage()
		return options{}, errUsage
	}

	filter, err := report.ParseDateFilter(*dateFilter)
	if err != nil {
		return options{}, err
	}
	extreme, err := report.ParseTempExtreme(*tempExtreme)
	if err != nil {
		return options{}, err
	}

	selectedHour := strings.TrimSpace(*hour)
	if filter == report.SelectedHour && selectedHour == "" && prompt != nil {
		fmt.Fprint(out, "Enter the hour (YYYY-MM-DD HH): ")
		line, err := bufio.NewReader(prompt).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return options{}, fmt.Errorf("read selected hour: %w", err)
		}
		selectedHour = strings.TrimSpace(line)
	}

	return options{
		query: report.Query{
			DataType:     selected[0],
			DateFilter:   filter,
			TempExtreme:  extreme,
			SelectedHour: selectedHour,
		},
		json: *asJSON,
	}, nil
}
