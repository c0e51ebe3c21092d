package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rhyrak/go-timetable/internal/csvio"
	"github.com/rhyrak/go-timetable/internal/pipeline"
	"github.com/rhyrak/go-timetable/internal/timetable"
)

var version = "dev"

func main() {
	out := flag.String("o", "", "output workbook (default: <input>_timetable.xlsx)")
	configPath := flag.String("config", "", "YAML configuration file (env TIMETABLE_CONFIG)")
	delim := flag.String("delim", ",", "CSV delimiter of the input")
	normalized := flag.Bool("normalized", false, "input is a record CSV written by -export-csv")
	rerender := flag.Bool("rerender", false, "input is a workbook from an earlier run; rebuild its timetables")
	exportCSV := flag.String("export-csv", "", "also write the normalized records to this CSV file")
	parallel := flag.Bool("parallel", false, "build the weekdays concurrently")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	quiet := flag.Bool("quiet", false, "only print errors")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("timetable", version)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := args[0]

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	} else if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *configPath == "" {
		*configPath = os.Getenv("TIMETABLE_CONFIG")
	}
	cfg, err := timetable.LoadConfiguration(*configPath)
	if err != nil {
		fail(err)
	}
	if *parallel {
		cfg.Parallel = true
	}

	in, err := readInput(input, *delim, *normalized, *rerender)
	if err != nil {
		fail(err)
	}
	if *out == "" {
		*out = defaultOutput(input)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := pipeline.Process(ctx, in, pipeline.Options{Config: cfg, Logger: logger})
	if err != nil {
		fail(err)
	}

	if err := os.WriteFile(*out, res.Output, 0o644); err != nil {
		fail(fmt.Errorf("writing %s: %w", *out, err))
	}
	if *exportCSV != "" {
		if res.Records == nil {
			color.Yellow("-export-csv ignored: no records when re-rendering")
		} else if err := csvio.ExportRecords(res.Records, *exportCSV); err != nil {
			fail(err)
		}
	}

	if *quiet {
		if !res.OK {
			os.Exit(1)
		}
		return
	}
	csvio.PrintSummary(os.Stdout, res.Reports)
	for _, line := range strings.Split(strings.TrimRight(res.Status, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "[  OK]"):
			color.Green("%s", line)
		case strings.HasPrefix(line, "[SKIP]"):
			color.Yellow("%s", line)
		default:
			color.Red("%s", line)
		}
	}
	if res.NoteErrors > 0 {
		color.Yellow("%d cell notes could not be attached", res.NoteErrors)
	}
	fmt.Printf("Timer: %.1f ms\n", float64(time.Since(start).Microseconds())/1000)
	fmt.Println("Exported output to: " + *out)
	if !res.OK {
		os.Exit(1)
	}
}

func readInput(path, delim string, normalized, rerender bool) (pipeline.Input, error) {
	if normalized && rerender {
		return pipeline.Input{}, fmt.Errorf("-normalized and -rerender are mutually exclusive")
	}
	d := []rune(delim)
	if len(d) != 1 {
		return pipeline.Input{}, fmt.Errorf("-delim must be a single character, got %q", delim)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	in := pipeline.Input{Name: filepath.Base(path), Data: data, Delim: d[0]}
	switch {
	case normalized:
		in.Mode = pipeline.ModeRecords
	case rerender:
		in.Mode = pipeline.ModeRerender
	}
	return in, nil
}

func defaultOutput(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_timetable.xlsx"
}

func fail(err error) {
	color.Red("[FAIL]: %v", err)
	os.Exit(1)
}
