// redfort-server serves the speech dashboard API. It loads the corpus and
// lexicon resources once at startup and then answers session and plot
// requests over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/corpuslab/redfort/internal/httpapi"
	"github.com/corpuslab/redfort/pkg/redfort"
	"github.com/corpuslab/redfort/pkg/redfort/config"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/session"
	"github.com/corpuslab/redfort/pkg/redfort/store"
	"github.com/corpuslab/redfort/pkg/redfort/store/csvfile"
	"github.com/corpuslab/redfort/pkg/redfort/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "configs/redfort.yaml", "Path to application config")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	ctx := context.Background()

	var src store.Store
	if cfg.CorpusDB != "" {
		s, err := sqlite.Open(ctx, cfg.CorpusDB)
		if err != nil {
			log.Fatalf("open corpus db %s: %v", cfg.CorpusDB, err)
		}
		src = s
	} else {
		src = csvfile.Open(cfg.CorpusPath)
	}
	defer src.Close()

	speeches, err := src.Speeches(ctx)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	c := corpus.New(speeches)

	loader := config.Loader{
		StoplistPath: cfg.StoplistPath,
		LexiconPath:  cfg.LexiconPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load lexicons: %v", err)
	}

	engine := redfort.New(redfort.Options{
		Corpus:   c,
		Stoplist: components.Stoplist,
		Lexicon:  components.Lexicon,
	})

	handler := httpapi.NewHandler(engine, session.NewManager(), log.Default())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	log.Printf("corpus loaded: %d rows, %d speeches with text", c.Len(), c.SpeechCount())
	log.Printf("stoplist: %d terms, opinion lexicon: %d positive / %d negative",
		components.Stoplist.Len(), components.Lexicon.PositiveCount(), components.Lexicon.NegativeCount())
	log.Printf("listening on %s", cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatal(err)
	}
}
