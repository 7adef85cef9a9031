// Command-line tool for checking RINEX3 file archives.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gnsslab/rnxcheck/pkg/archive"
	"github.com/gnsslab/rnxcheck/pkg/rinex"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "rnxcheck",
		Usage:   "check RINEX3 long filenames and archive locations",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Check all files below an archive root",
				ArgsUsage: "[ROOT]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load settings from YAML `FILE`"},
					&cli.IntFlag{Name: "workers", Usage: "number of concurrent checks"},
					&cli.StringFlag{Name: "report", Usage: "write the report to `FILE` instead of stdout"},
					&cli.StringFlag{Name: "format", Usage: "report format: column, csv or json"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "suppress the summary"},
				},
				Action: scan,
			},
			{
				Name:      "name",
				Usage:     "Check RINEX3 filenames given as arguments",
				ArgsUsage: "NAME...",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print the decoded fields"},
				},
				Action: checkNames,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scan(c *cli.Context) error {
	cfg := archive.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = archive.LoadConfig(path); err != nil {
			return cli.Exit(err, 2)
		}
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("report") {
		cfg.Report = c.String("report")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = true
	}
	if c.NArg() > 0 {
		cfg.Root = c.Args().First()
	}
	if cfg.Root == "" {
		return cli.Exit("scan needs an archive root, as argument or in the config", 2)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 2)
	}

	runner := &archive.Runner{Workers: cfg.Workers}
	sum, results, err := runner.Run(c.Context, cfg.Root)
	if err != nil {
		return cli.Exit(err, 2)
	}

	out := io.Writer(os.Stdout)
	if cfg.Report != "" {
		f, err := os.Create(cfg.Report)
		if err != nil {
			return cli.Exit(err, 2)
		}
		defer f.Close()
		out = f
	}
	if err := writeReport(out, cfg.Format, results); err != nil {
		return cli.Exit(err, 2)
	}

	if !cfg.Quiet {
		log.Printf("checked %d files: %d valid, %d invalid, %d misplaced, %d warnings",
			sum.Checked, sum.Valid, sum.Invalid, sum.Misplaced, sum.Warnings)
	}
	if sum.Invalid > 0 || sum.Misplaced > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func writeReport(w io.Writer, format string, results []archive.Result) error {
	switch format {
	case "csv":
		return archive.WriteCSV(w, results)
	case "json":
		return json.NewEncoder(w).Encode(results)
	default:
		return archive.WriteColumns(w, results)
	}
}

func checkNames(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("name needs at least one filename", 2)
	}
	invalid := 0
	for _, name := range c.Args().Slice() {
		rnx, err := rinex.ParseName(name)
		if err != nil {
			invalid++
			fmt.Printf("%s: invalid\n", name)
			var nameErr *rinex.InvalidNameError
			if errors.As(err, &nameErr) {
				for _, v := range nameErr.Violations {
					fmt.Printf("  %s\n", v)
				}
			}
			continue
		}
		fmt.Printf("%s: valid\n", name)
		for _, warn := range rnx.Warnings() {
			fmt.Printf("  warning: %s\n", warn)
		}
		if c.Bool("verbose") {
			printFields(rnx)
		}
	}
	if invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func printFields(rnx *rinex.ParsedName) {
	fmt.Printf("  %-12s %s\n", "station", rnx.NineCharID())
	fmt.Printf("  %-12s %s\n", "source", rnx.DataSource)
	fmt.Printf("  %-12s %s\n", "start", rnx.StartTime.Time().Format(time.RFC3339))
	fmt.Printf("  %-12s %s\n", "period", rnx.FilePeriod)
	if rnx.DataFreq != nil {
		fmt.Printf("  %-12s %s\n", "frequency", rnx.DataFreq)
	}
	if sys, ok := rnx.DataType.System(); ok {
		fmt.Printf("  %-12s %s (%s %s data)\n", "type", rnx.DataType, sys, rnx.DataType.Kind())
	} else {
		fmt.Printf("  %-12s %s (%s data)\n", "type", rnx.DataType, rnx.DataType.Kind())
	}
	fmt.Printf("  %-12s %s\n", "format", rnx.Format)
	if rnx.Compression != rinex.CompressionNone {
		fmt.Printf("  %-12s %s\n", "compression", rnx.Compression)
	}
	fmt.Printf("  %-12s %s\n", "location", rinex.ExpectedLocation(rnx.StartTime))
}
