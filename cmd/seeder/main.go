package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/poiesic/polingest"
	"github.com/poiesic/polingest/ingestion"
	"github.com/poiesic/polingest/tabular"
)

var (
	outFileName = flag.String("out", "policies.csv", "file to write, .csv or .xlsx")
	rowCount    = flag.Int("rows", 500, "number of policy rows")
	userCount   = flag.Int("users", 100, "number of distinct users")
	seed        = flag.Uint64("seed", 1, "random seed")
	ingestDB    = flag.String("ingest", "", "ingest the file into this database directory")
)

var (
	agents     = []string{"Alex Watson", "Jordan Blake", "Sam Ortiz", "Riley Chen", "Casey Morgan"}
	carriers   = []string{"Integon Gen Ins Corp", "Nationwide", "Travelers", "Progressive", "Hartford"}
	categories = []string{"Commercial Auto", "Personal Auto", "Homeowners", "General Liability", "Workers Comp", "Umbrella"}
	firstNames = []string{"Lura", "Dean", "Maya", "Tom", "Iris", "Omar", "Nina", "Hugo", "Ada", "Luis"}
	lastNames  = []string{"Lucas", "Hayes", "Patel", "Kim", "Novak", "Reyes", "Shaw", "Ito"}
	states     = []string{"CA", "NY", "TX", "WA", "FL", "IL"}
	userTypes  = []string{"Active Client", "Prospect"}
	accounts   = []string{"Personal", "Commercial"}
)

var header = []string{
	ingestion.ColAgent, ingestion.ColUserType, ingestion.ColPolicyNumber, ingestion.ColPolicyStartDate,
	ingestion.ColPolicyEndDate, ingestion.ColAccountName, ingestion.ColEmail, ingestion.ColGender,
	ingestion.ColFirstName, ingestion.ColCategoryName, ingestion.ColCompanyName, ingestion.ColAccountType,
	ingestion.ColAddress, ingestion.ColPhone, ingestion.ColState, ingestion.ColZip,
	ingestion.ColDOB, ingestion.ColUserName,
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// policyRows returns an iterator over generated rows in header order.
func policyRows(rng *rand.Rand, rows, users int) iter.Seq[[]string] {
	pick := func(values []string) string { return values[rng.IntN(len(values))] }
	return func(yield func([]string) bool) {
		for i := range rows {
			u := rng.IntN(max(users, 1))
			first := firstNames[u%len(firstNames)]
			last := lastNames[(u/len(firstNames))%len(lastNames)]
			userName := fmt.Sprintf("%s%s%d", first, last, u)
			start := 2018 + rng.IntN(7)
			month := 1 + rng.IntN(12)
			row := []string{
				pick(agents),
				pick(userTypes),
				fmt.Sprintf("POL%06d", i+1),
				fmt.Sprintf("%02d/%02d/%d", month, 1+rng.IntN(28), start),
				fmt.Sprintf("%02d/%02d/%d", month, 1+rng.IntN(28), start+1),
				first + " " + last,
				fmt.Sprintf("%s.%s%d@example.com", first, last, u),
				[]string{"Male", "Female"}[u%2],
				first,
				pick(categories),
				pick(carriers),
				pick(accounts),
				fmt.Sprintf("%d Main Street", 10+u),
				fmt.Sprintf("555%07d", u),
				states[u%len(states)],
				fmt.Sprintf("%05d", 10000+u*7),
				fmt.Sprintf("%d-%02d-%02d", 1950+u%50, 1+u%12, 1+u%28),
				userName,
			}
			if !yield(row) {
				return
			}
		}
	}
}

func writeCSV(path string, rows iter.Seq[[]string]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeXLSX(path string, rows iter.Seq[[]string]) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter("Sheet1")
	if err != nil {
		return err
	}
	setRow := func(n int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return sw.SetRow(cell, row)
	}

	if err := setRow(1, header); err != nil {
		return err
	}
	n := 2
	for row := range rows {
		if err := setRow(n, row); err != nil {
			return err
		}
		n++
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func main() {
	format, err := tabular.FormatFromPath(*outFileName)
	if err != nil {
		panic(err)
	}

	rows := policyRows(rand.New(rand.NewPCG(*seed, *seed)), *rowCount, *userCount)
	switch format {
	case tabular.FormatXLSX:
		err = writeXLSX(*outFileName, rows)
	default:
		err = writeCSV(*outFileName, rows)
	}
	if err != nil {
		panic(err)
	}
	slog.Info("wrote sample file", "path", *outFileName, "rows", *rowCount)

	if *ingestDB == "" {
		return
	}

	db, err := polingest.NewDatabase(*ingestDB)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}

	result, err := pipeline.IngestFile(context.Background(), db.Store(), *outFileName, format)
	if err != nil {
		panic(err)
	}
	counts := result.Counts()
	slog.Info("ingested sample file",
		"rows", counts.Rows,
		"agents", counts.Agents,
		"users", counts.Users,
		"carriers", counts.Carriers,
		"lobs", counts.Lobs,
		"accounts", counts.Accounts,
		"policies", counts.Policies,
		"gaps", len(result.Gaps),
	)
}
