// download-speeches fetches speech transcripts from the source URLs in the
// corpus CSV and writes one plain-text file per year. Useful when rebuilding
// the corpus from scratch; the checked-in CSV already carries the text.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "Path to corpus CSV (required)")
		outDir  = flag.String("out", "testdata/speeches", "Directory for downloaded transcripts")
		delay   = flag.Duration("delay", 500*time.Millisecond, "Pause between requests")
	)
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("--csv required")
	}

	c, err := corpus.Load(*csvPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	downloaded := 0
	for _, sp := range c.Speeches() {
		if sp.URL == "" {
			continue
		}

		text, err := fetchText(sp.URL)
		if err != nil {
			log.Printf("fetch %d (%s): %v", sp.Year, sp.URL, err)
			continue
		}

		path := filepath.Join(*outDir, fmt.Sprintf("%d.txt", sp.Year))
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}

		downloaded++
		time.Sleep(*delay)
	}

	log.Printf("downloaded %d transcripts to %s", downloaded, *outDir)
}

func fetchText(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return extractParagraphs(string(body))
}

// extractParagraphs pulls the text of every <p> element, which is where the
// transcript archives keep the speech body.
func extractParagraphs(page string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var buf strings.Builder
			var text func(*html.Node)
			text = func(c *html.Node) {
				if c.Type == html.TextNode {
					buf.WriteString(c.Data)
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					text(child)
				}
			}
			text(n)
			if p := strings.TrimSpace(buf.String()); p != "" {
				paragraphs = append(paragraphs, p)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(paragraphs, "\n\n"), nil
}
