package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/spellkit-go/spellkit/pkg/corrector"
	"github.com/spellkit-go/spellkit/pkg/kvdb"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	corpusFile = flag.String("f", "corpus.txt", "training corpus, one sentence per line")
	outputDir  = flag.String("o", "spellkit", "output directory for the trained model")
	language   = flag.String("lang", "en", "model language")
)

const (
	// sentences longer than this are almost certainly not natural text
	maxLineBytes = 1 << 20
)

func main() {
	flag.Parse()

	bar := progressbar.NewOptions(4,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/4]Reading corpus..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	bar.Add(1)

	sentences, err := readCorpus(*corpusFile)
	if err != nil {
		log.Fatal(err)
	}
	if len(sentences) == 0 {
		log.Fatalf("corpus %s contains no sentences", *corpusFile)
	}

	bar.Describe("[cyan][2/4]Training language model...")
	sc, err := corrector.NewSpellCorrector(*language, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := sc.Train(sentences); err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][3/4]Building indexes...")
	if err := sc.Freeze(); err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][4/4]Saving model...")
	path, err := kvdb.SaveToDir(*outputDir, sc.GetState())
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	log.Printf("trained on %d sentences, model saved to %s", len(sentences), path)
}

func readCorpus(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sentences, nil
}
