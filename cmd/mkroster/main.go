// Command mkroster writes a synthetic roster document for local
// development, standing in for the offline spreadsheet pipeline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"

	"github.com/jmspence/slateview/internal/domain/model"
)

var defaultTitles = []string{
	"President",
	"Vice President of Internal Affairs",
	"Vice President of External Affairs",
	"Treasurer",
	"Secretary",
	"International Student Affairs Officer",
	"Sustainability Officer",
}

var sampleNames = []string{
	"A. Lee", "B. Chen", "C. Okafor", "D. Martinez", "E. Novak",
	"F. Haddad", "G. Kowalski", "H. Tanaka", "I. Osei", "J. Lindgren",
}

var sampleStatements = []string{
	"I want to make our programs more accessible.\n\nAsk me about office hours.",
	"Transparency first.\nBudget reports every month.",
	"",
	"Three priorities:\nhousing,\nfunding,\ncommunity.\n\nLet's talk.",
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify mirrors the identifier scheme of the roster generator: lowercase,
// non-alphanumerics collapsed to single dashes, trimmed.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func main() {
	var (
		numPositions  = flag.Int("positions", len(defaultTitles), "Number of positions to generate")
		maxCandidates = flag.Int("max-candidates", 4, "Maximum candidates per position")
		seed          = flag.Int64("seed", 1, "Random seed")
		output        = flag.String("output", "candidates.json", "Output file path")
	)
	flag.Parse()

	if *numPositions <= 0 || *maxCandidates <= 0 {
		os.Stderr.WriteString("positions and max-candidates must be positive\n")
		os.Exit(1)
	}

	doc := generate(rand.New(rand.NewSource(*seed)), *numPositions, *maxCandidates)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		os.Stderr.WriteString("marshal roster: " + err.Error() + "\n")
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		os.Stderr.WriteString("write roster: " + err.Error() + "\n")
		os.Exit(1)
	}

	fmt.Printf("wrote %d positions (%d candidates) to %s\n",
		len(doc.Positions), doc.CandidateCount(), *output)
}

func generate(rng *rand.Rand, numPositions, maxCandidates int) model.Document {
	doc := model.Document{}
	for i := 0; i < numPositions; i++ {
		title := defaultTitles[i%len(defaultTitles)]
		if i >= len(defaultTitles) {
			title = fmt.Sprintf("%s %d", title, i/len(defaultTitles)+1)
		}

		p := model.Position{
			Slug:  slugify(title),
			Title: title,
			Sheet: title,
		}

		for j := 0; j < 1+rng.Intn(maxCandidates); j++ {
			c := model.Candidate{
				Name:      sampleNames[rng.Intn(len(sampleNames))],
				Statement: sampleStatements[rng.Intn(len(sampleStatements))],
			}
			// Roughly half the candidates get a headshot reference.
			if rng.Intn(2) == 0 {
				c.Headshot = fmt.Sprintf("headshots/%s-%d.png", p.Slug, j+1)
			}
			p.Candidates = append(p.Candidates, c)
		}
		doc.Positions = append(doc.Positions, p)
	}
	return doc
}
