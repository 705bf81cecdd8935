package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/TFMV/codegauge"
	"github.com/TFMV/codegauge/analysis"
	"github.com/TFMV/codegauge/db"
)

const usage = `codegauge - JavaScript/TypeScript complexity analysis and build gate.

Usage:
  codegauge analyze [--dir=<dir>] [--config=<path>]
  codegauge check [--dir=<dir>] [--config=<path>]
  codegauge report [--dir=<dir>] [--config=<path>] [--out=<file>]
  codegauge store [--dir=<dir>] [--config=<path>] [--db=<url>] [--namespace=<ns>] [--database=<name>] [--db-user=<user>] [--db-pass=<pass>]
  codegauge -h | --help

Options:
  -h --help           Show this screen.
  --dir=<dir>         Directory to analyze [default: .]
  --config=<path>     Project configuration file (defaults to codegauge.yaml if present).
  --out=<file>        Write the report to a file instead of stdout.
  --db=<url>          SurrealDB connection URL [default: ws://localhost:8000/rpc]
  --namespace=<ns>    SurrealDB namespace [default: codegauge]
  --database=<name>   SurrealDB database [default: codegauge]
  --db-user=<user>    SurrealDB username [default: root]
  --db-pass=<pass>    SurrealDB password [default: root]`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	dir, _ := opts.String("--dir")
	configPath, _ := opts.String("--config")
	ctx := context.Background()

	switch {
	case boolOpt(opts, "analyze"):
		analyzer := newAnalyzer(configPath)
		metrics, err := analyzer.Analyze(ctx, dir)
		if err != nil {
			log.Fatalf("Failed to analyze %s: %v", dir, err)
		}
		fmt.Println(metrics.PrettyPrint())

	case boolOpt(opts, "check"):
		analyzer := newAnalyzer(configPath)
		_, err := analyzer.Check(ctx, dir)
		var terr *analysis.ThresholdError
		if errors.As(err, &terr) {
			fmt.Fprintln(os.Stderr, terr.Error())
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Failed to check %s: %v", dir, err)
		}
		fmt.Println("Complexity check passed")

	case boolOpt(opts, "report"):
		analyzer := newAnalyzer(configPath)
		report, err := analyzer.Report(ctx, dir)
		if err != nil {
			log.Fatalf("Failed to generate report: %v", err)
		}
		if out, _ := opts.String("--out"); out != "" {
			if err := os.WriteFile(out, []byte(report), 0644); err != nil {
				log.Fatalf("Failed to write report file: %v", err)
			}
			fmt.Printf("Report written to %s\n", out)
		} else {
			fmt.Println(report)
		}

	case boolOpt(opts, "store"):
		dbURL, _ := opts.String("--db")
		namespace, _ := opts.String("--namespace")
		database, _ := opts.String("--database")
		dbUser, _ := opts.String("--db-user")
		dbPass, _ := opts.String("--db-pass")

		analyzer, err := codegauge.NewAnalyzerWithDB(configPath, db.Config{
			URL:       dbURL,
			Namespace: namespace,
			Database:  database,
			Username:  dbUser,
			Password:  dbPass,
		})
		if err != nil {
			log.Fatalf("Failed to create analyzer: %v", err)
		}
		if err := analyzer.Initialize(ctx); err != nil {
			log.Fatalf("Failed to initialize metrics store: %v", err)
		}
		if _, err := analyzer.AnalyzeAndStore(ctx, dir); err != nil {
			log.Fatalf("Failed to store analysis: %v", err)
		}
		fmt.Println("Analysis stored successfully")
	}
}

func newAnalyzer(configPath string) *codegauge.Analyzer {
	analyzer, err := codegauge.NewAnalyzer(configPath)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	return analyzer
}

func boolOpt(opts docopt.Opts, name string) bool {
	v, _ := opts.Bool(name)
	return v
}
