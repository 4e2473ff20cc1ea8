package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kerem-kaynak/text-transformer/pkg/breaker"
)

func main() {
	if len(os.Args) < 3 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Args[1], os.Args[2], os.Args[3:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one dictionary command against the word list at dictPath.
func run(w io.Writer, dictPath, command string, args []string) error {
	dict, err := breaker.NewDictionary(dictPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	defer dict.Close()

	switch command {
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("add requires at least one word")
		}
		for _, word := range args {
			if err := dict.AddWord(word); err != nil {
				return fmt.Errorf("adding word '%s': %w", word, err)
			}
			fmt.Fprintf(w, "Added: %s\n", word)
		}
		fmt.Fprintf(w, "Total words: %d\n", dict.WordCount())

	case "remove":
		if len(args) == 0 {
			return fmt.Errorf("remove requires at least one word")
		}
		for _, word := range args {
			if err := dict.RemoveWord(word); err != nil {
				return fmt.Errorf("removing word '%s': %w", word, err)
			}
			fmt.Fprintf(w, "Removed: %s\n", word)
		}
		fmt.Fprintf(w, "Total words: %d\n", dict.WordCount())

	case "contains":
		if len(args) == 0 {
			return fmt.Errorf("contains requires a word")
		}
		word := args[0]
		if !dict.Contains(word) {
			return fmt.Errorf("'%s' NOT in dictionary", word)
		}
		fmt.Fprintf(w, "'%s' exists in dictionary\n", word)

	case "split":
		if len(args) == 0 {
			return fmt.Errorf("split requires a word")
		}
		c := breaker.NewCompoundNoCache(breaker.NewWord(), dict)
		for _, word := range args {
			fmt.Fprintf(w, "%s: %s\n", word, strings.Join(splitParts(c, word), " + "))
		}

	case "rebuild":
		if err := dict.Rebuild(); err != nil {
			return fmt.Errorf("rebuilding FST: %w", err)
		}
		fmt.Fprintf(w, "FST rebuilt. Total words: %d\n", dict.WordCount())

	case "stats":
		fmt.Fprintf(w, "Dictionary: %s\n", dictPath)
		fmt.Fprintf(w, "Word count: %d\n", dict.WordCount())

	default:
		printUsage(w)
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

func splitParts(c *breaker.Compound, word string) []string {
	runes := []rune(word)
	var parts []string
	start := 0
	for _, s := range c.Split(runes) {
		parts = append(parts, string(runes[start:s]))
		start = s
	}
	return append(parts, string(runes[start:]))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dictmgr <dictionary.txt> <command> [args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <word> [word...]    Add words to dictionary")
	fmt.Fprintln(w, "  remove <word> [word...] Remove words from dictionary")
	fmt.Fprintln(w, "  contains <word>         Check if word exists")
	fmt.Fprintln(w, "  split <word> [word...]  Show the components a word splits into")
	fmt.Fprintln(w, "  rebuild                 Rebuild FST from text file")
	fmt.Fprintln(w, "  stats                   Show dictionary statistics")
}
