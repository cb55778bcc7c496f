// Command profile runs a single profiling pass over a CSV/Excel file or
// a Postgres table and writes the rendered report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"dataprof/adapters/file"
	"dataprof/adapters/postgres"
	"dataprof/domain/core"
	"dataprof/internal"
	"dataprof/internal/config"
	"dataprof/internal/engine"
	"dataprof/ports"
	"dataprof/render"
)

func main() {
	var (
		input    = flag.String("input", "", "CSV or Excel file to profile")
		dbTable  = flag.String("table", "", "Postgres table to profile (needs DATABASE_URL)")
		out      = flag.String("out", "", "output file (default stdout)")
		format   = flag.String("format", "html", "output format: html, md or json")
		workers  = flag.Int("workers", 0, "engine worker count (default from env/CPU count)")
		timeout  = flag.Duration("timeout", 0, "overall run budget, e.g. 30s (default from env)")
		saveToDB = flag.Bool("save", false, "also persist the report to Postgres")
	)
	flag.Parse()

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()
	if err := run(*input, *dbTable, *out, *format, *workers, *timeout, *saveToDB, logger); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(input, dbTable, out, format string, workers int, timeout time.Duration, saveToDB bool, logger *internal.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	engineCfg := cfg.EngineConfig()
	if workers > 0 {
		engineCfg.Workers = workers
	}
	if timeout > 0 {
		engineCfg.Timeout = timeout
	}

	var db *sqlx.DB
	if dbTable != "" || saveToDB {
		if cfg.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for -table and -save")
		}
		db, err = sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
	}

	source, err := pickSource(input, dbTable, db)
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger.Info("loading dataset from %s", source.Name())
	ds, err := source.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info("loaded %d rows × %d columns", ds.NumRows(), ds.NumColumns())

	started := time.Now()
	report, err := engine.New(engineCfg).Run(ctx, ds)
	if err != nil {
		return err
	}
	logger.Info("profiled in %s (fingerprint %s)", time.Since(started).Round(time.Millisecond), report.Fingerprint)

	renderer, err := pickRenderer(format)
	if err != nil {
		return err
	}
	body, err := renderer.Render(report)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(body)
	} else {
		err = os.WriteFile(out, body, 0o644)
		if err == nil {
			logger.Info("report written to %s", out)
		}
	}
	if err != nil {
		return err
	}

	if saveToDB {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		rec := &ports.StoredReport{
			ID:        core.ReportID(core.NewID()),
			Name:      source.Name(),
			CreatedAt: core.Now(),
			Report:    report,
		}
		if err := postgres.NewReportStore(db).Save(ctx, rec); err != nil {
			return err
		}
		logger.Info("report saved as %s", rec.ID)
	}

	return nil
}

func pickSource(input, dbTable string, db *sqlx.DB) (ports.DatasetSource, error) {
	switch {
	case input != "" && dbTable != "":
		return nil, fmt.Errorf("use either -input or -table, not both")
	case input != "":
		return file.NewDataReader(input), nil
	case dbTable != "":
		return postgres.NewTableSource(db, dbTable)
	default:
		return nil, fmt.Errorf("one of -input or -table is required")
	}
}

func pickRenderer(format string) (ports.ReportRenderer, error) {
	switch format {
	case "html":
		return render.NewHTMLRenderer(), nil
	case "md", "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html, md or json)", format)
	}
}
