// redfort-import loads the corpus CSV into a SQLite database so the server
// can start from the database instead of reparsing the CSV.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/store/sqlite"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "Path to corpus CSV (required)")
		dbPath  = flag.String("db", "corpus.db", "Path to SQLite database to write")
	)
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("--csv required")
	}

	c, err := corpus.Load(*csvPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open db %s: %v", *dbPath, err)
	}
	defer st.Close()

	if err := st.Import(ctx, c.Speeches()); err != nil {
		log.Fatalf("import: %v", err)
	}

	n, err := st.Count(ctx)
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	log.Printf("imported %d speeches into %s", n, *dbPath)
}
