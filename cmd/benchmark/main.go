package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/text-transformer/pkg/analysis"
	"github.com/kerem-kaynak/text-transformer/pkg/breaker"
	"github.com/kerem-kaynak/text-transformer/pkg/casemap"
	"github.com/kerem-kaynak/text-transformer/pkg/textrun"
	"github.com/kerem-kaynak/text-transformer/pkg/tokenizer"
	"golang.org/x/text/language"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "dictionaries/german_compound_word_components.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}

	fmt.Print("Loading compound word components dictionary... ")
	start := time.Now()
	dict, err := breaker.NewDictionary(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer dict.Close()
	fmt.Printf("done (%d words in %v)\n", dict.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	sentence := "Der Brandschutzkonzept und die Wärmedämmung der Stahlbetondecke"
	narrow := textrun.New("Der Brandschutz und die Daemmung der Betondecke")
	wide := textrun.NewWide([]rune(sentence))

	word := breaker.NewWord()
	compound := breaker.NewCompound(breaker.NewWord(), dict)
	tok := tokenizer.New(word, breaker.NewLine(), casemap.New(language.German))
	compoundTok := tokenizer.New(compound, nil, nil)

	printHeader("SCANNING THROUGHPUT")
	bench("Forward, narrow", func() { scan(tok, narrow, tokenizer.ModeNormal, false, false) })
	bench("Forward, wide", func() { scan(tok, wide, tokenizer.ModeNormal, false, false) })
	bench("Backward, wide", func() { scan(tok, wide, tokenizer.ModeNormal, true, false) })
	bench("Forward, line breaks", func() { scan(tok, wide, tokenizer.ModeNormal, false, true) })
	bench("Forward, preformatted", func() { scan(tok, wide, tokenizer.ModePreformatted, false, false) })
	bench("Forward, compounds", func() { scan(compoundTok, wide, tokenizer.ModeNormal, false, false) })
	printFooter()
	fmt.Println()

	n, err := analysis.NewNormalizer("german")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	analyzer := analysis.New(n, analysis.WithCompounds(dict, true))

	printHeader("ANALYSIS THROUGHPUT")
	bench("Single word", func() { analyzer.Terms("Wärmedämmung") })
	bench("Long compound", func() { analyzer.Terms("Wärmedämmverbundsystem") })
	bench("Sentence (8 words)", func() { analyzer.Terms(sentence) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Dictionary lookup", func() { dict.Contains("beton") })
	bench("Word oracle Next", func() { word.Next(wide.Wide(), 5) })
	bench("Split (cache hit)", func() { compound.Split([]rune("Stahlbetondecke")) })
	bench("Split (cache miss)", func() {
		compound.ClearCache()
		compound.Split([]rune("Stahlbetondecke"))
	})
	upper := casemap.New(language.German)
	span := []rune("Wärmedämmung")
	bench("Uppercase span", func() { upper.ToUpper(span) })
	bench("Normalizer (full)", func() { n.Normalize("Wärmedämmung") })
	printFooter()
	fmt.Println()

	stem, err := analysis.Stemmer("german")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printHeader("NORMALIZER STEPS BREAKDOWN")
	bench("Strip diacritics", func() { analysis.StripDiacritics("Wärmedämmung") })
	bench("Lowercase", func() { analysis.Lowercase("Wärmedämmung") })
	bench("Fold characters", func() { analysis.FoldCharacters("\u201EGrößenmaß\u201C") })
	bench("Stem (german)", func() { stem("wärmedämmungen") })
	printFooter()
}

// scan runs the tokenizer over the whole run.
func scan(tok *tokenizer.Tokenizer, run *textrun.Run, mode tokenizer.Mode, backward, lineBreak bool) {
	start := 0
	if backward {
		start = run.Len()
	}
	tok.Init(run, start, mode, tokenizer.TransformNone)
	for {
		var ok bool
		if backward {
			_, ok = tok.PrevWord(false, lineBreak)
		} else {
			_, ok = tok.NextWord(false, lineBreak)
		}
		if !ok {
			return
		}
	}
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
