// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/polingest"
	"github.com/poiesic/polingest/config"
	"github.com/poiesic/polingest/httpapi"
	"github.com/poiesic/polingest/ingestion"
	"github.com/poiesic/polingest/jobs"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	dbFlag := &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB database directory",
		Value:   "./data",
	}

	return &cli.App{
		Name:  "polingest",
		Usage: "Bulk policy file ingestion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API and background ingestion workers",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to YAML config file (environment only if empty)",
					},
					&cli.StringFlag{
						Name:  "data-dir",
						Usage: "Override the BadgerDB database directory",
					},
					&cli.StringFlag{
						Name:  "port",
						Usage: "Override the HTTP port",
					},
					&cli.BoolFlag{
						Name:  "upsert",
						Usage: "Override the upsert mode",
					},
				},
			},
			{
				Name:      "ingest",
				Usage:     "Ingest csv or xlsx files and wait for each to finish",
				ArgsUsage: "FILE...",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.BoolFlag{
						Name:  "upsert",
						Usage: "Reuse stored agents, users, carriers and lines of business with the same name",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files ingested concurrently",
						Value: 1,
					},
				},
			},
			{
				Name:      "policies",
				Usage:     "List the policies of a user",
				ArgsUsage: "USERNAME",
				Action:    policiesCommand,
				Flags:     []cli.Flag{dbFlag},
			},
			{
				Name:      "job",
				Usage:     "Show the status of an ingestion job",
				ArgsUsage: "JOB_ID",
				Action:    jobCommand,
				Flags:     []cli.Flag{dbFlag},
			},
		},
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("upsert") {
		cfg.Ingest.Upsert = c.Bool("upsert")
	}
	if !c.IsSet("log-level") {
		if err := installLogger(cfg.LogLevel); err != nil {
			return err
		}
	}

	db, err := polingest.NewDatabase(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(ingestion.WithUpsert(cfg.Ingest.Upsert))
	if err != nil {
		return err
	}
	exec, err := db.NewExecutor(
		jobs.WithPipeline(pipeline),
		jobs.WithWorkers(cfg.Ingest.Workers),
		jobs.WithQueueSize(cfg.Ingest.QueueSize),
		jobs.WithRemoveFile(cfg.Upload.Remove),
	)
	if err != nil {
		return err
	}
	defer exec.Release()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(exec, searcher,
		httpapi.WithUploadDir(cfg.Upload.Dir),
		httpapi.WithMaxUploadBytes(cfg.MaxUploadBytes()),
	)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr, "data_dir", cfg.DataDir, "workers", cfg.Ingest.Workers)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	// Queued uploads are finished before the database closes.
	return nil
}

func ingestCommand(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("at least one file is required")
	}

	db, err := polingest.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(ingestion.WithUpsert(c.Bool("upsert")))
	if err != nil {
		return err
	}

	messages := make(chan jobs.Message, len(files))
	exec, err := db.NewExecutor(
		jobs.WithPipeline(pipeline),
		jobs.WithWorkers(c.Int("workers")),
		jobs.WithQueueSize(len(files)),
		jobs.WithNotify(func(m jobs.Message) { messages <- m }),
	)
	if err != nil {
		return err
	}

	submitted := 0
	for _, file := range files {
		job, err := exec.Submit(file)
		if err != nil {
			slog.Error("unable to submit file", "path", file, "err", err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "submitted %s as job %s\n", file, job.Id)
		submitted++
	}
	exec.Release()

	failed := 0
	ctx := context.Background()
	for range submitted {
		msg := <-messages
		job, err := db.Store().Jobs().LoadJob(ctx, msg.JobID)
		if err != nil {
			return err
		}
		printJob(c, job.Id, job.FilePath, msg.Text, job.Error, job.Counts.Rows, len(job.Gaps))
		if !msg.OK {
			failed++
		}
	}

	if failed > 0 || submitted < len(files) {
		return fmt.Errorf("%d of %d files failed", failed+len(files)-submitted, len(files))
	}
	return nil
}

func printJob(c *cli.Context, id, path, text, errText string, rows, gaps int) {
	fmt.Fprintf(c.App.Writer, "%s %s: %s (rows=%d gaps=%d)", id, path, text, rows, gaps)
	if errText != "" {
		fmt.Fprintf(c.App.Writer, ": %s", errText)
	}
	fmt.Fprintln(c.App.Writer)
}

func policiesCommand(c *cli.Context) error {
	userName := strings.TrimSpace(c.Args().First())
	if userName == "" {
		return fmt.Errorf("user name is required")
	}

	db, err := polingest.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	found, err := searcher.PoliciesByUserName(c.Context, userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s (%s): %d policies\n", found.User.UserName, found.User.FirstName, len(found.Policies))
	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POLICY\tCARRIER\tLOB\tSTART\tEND")
	for _, p := range found.Policies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.PolicyNumber, p.CarrierName, p.LobName, formatDate(p.StartDate), formatDate(p.EndDate))
	}
	return w.Flush()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func jobCommand(c *cli.Context) error {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return fmt.Errorf("job id is required")
	}

	db, err := polingest.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	job, err := db.Store().Jobs().LoadJob(c.Context, id)
	if err != nil {
		return fmt.Errorf("job %s: %w", id, err)
	}

	fmt.Fprintf(c.App.Writer, "job:      %s\n", job.Id)
	fmt.Fprintf(c.App.Writer, "file:     %s\n", job.FilePath)
	fmt.Fprintf(c.App.Writer, "status:   %s\n", job.Status)
	if job.Checksum != 0 {
		fmt.Fprintf(c.App.Writer, "checksum: %016x\n", uint64(job.Checksum))
	}
	if job.Message != "" {
		fmt.Fprintf(c.App.Writer, "message:  %s\n", job.Message)
	}
	if job.Error != "" {
		fmt.Fprintf(c.App.Writer, "error:    %s\n", job.Error)
	}
	n := job.Counts
	fmt.Fprintf(c.App.Writer, "counts:   rows=%d agents=%d users=%d carriers=%d lobs=%d accounts=%d policies=%d\n",
		n.Rows, n.Agents, n.Users, n.Carriers, n.Lobs, n.Accounts, n.Policies)
	for _, g := range job.Gaps {
		fmt.Fprintf(c.App.Writer, "gap:      row %d %s %q: %s\n", g.Row, g.Field, g.Key, g.Reason)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	return installLogger(c.String("log-level"))
}

func installLogger(levelStr string) error {
	levelStr = strings.ToLower(levelStr)

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
