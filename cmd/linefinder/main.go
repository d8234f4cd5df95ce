package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/linefinder/internal/config"
	"github.com/knowledge-engine/linefinder/internal/document"
	"github.com/knowledge-engine/linefinder/internal/finder"
)

func main() {
	docPath := flag.String("d", "", "path to the document to search")
	inputPath := flag.String("i", "", "file with one word set per line")
	cliSets := flag.Bool("c", false, "read word sets from the remaining arguments")
	flag.Usage = printUsage
	flag.Parse()

	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "linefinder")

	// 1. Config
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// If no arguments, use the default document and wait for a query
	if *docPath == "" && *inputPath == "" && !*cliSets && flag.NArg() == 0 {
		if err := runInteractive(cfg, entry); err != nil {
			entry.Error(err)
			printUsage()
			os.Exit(1)
		}
		return
	}

	if *docPath == "" {
		fmt.Fprintln(os.Stderr, "Missing \"-d\" flag.")
		printUsage()
		os.Exit(1)
	}

	// 2. Word sets, from a file or from the command line
	var wordSets []string
	switch {
	case *inputPath != "":
		lines, err := document.LoadLines(*inputPath)
		if err != nil {
			entry.Errorf("Could not read word set file: %v", err)
			printUsage()
			os.Exit(1)
		}
		wordSets = lines
	case *cliSets:
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "Flag \"-c\" expects at least one word set.")
			printUsage()
			os.Exit(1)
		}
		wordSets = flag.Args()
	default:
		fmt.Fprintln(os.Stderr, "Missing \"-i\" or \"-c\" flag.")
		printUsage()
		os.Exit(1)
	}

	// 3. Document + Engine
	eng, err := loadEngine(cfg, entry, *docPath)
	if err != nil {
		entry.Error(err)
		printUsage()
		os.Exit(1)
	}

	// 4. Resolve each word set against the document
	ctx := context.Background()
	for _, wordSet := range wordSets {
		fmt.Printf("Searching for word set: %q\n", wordSet)
		result, err := eng.Lookup(ctx, wordSet)
		if err != nil {
			entry.Fatalf("Search failed: %v", err)
		}
		fmt.Printf("Found line %d: %q\n", result.Line, result.Text)
		if !result.Exact {
			fmt.Printf("Best score: %.4f\n", result.Score)
		}
	}
}

// runInteractive prompts immediately, loads the default document while the
// user types, and answers a single query from stdin.
func runInteractive(cfg *config.Config, entry *logrus.Entry) error {
	fmt.Print(">")

	eng, err := loadEngine(cfg, entry, cfg.Document.DefaultPath)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read word set: %w", err)
		}
		return fmt.Errorf("no word set given")
	}

	result, err := eng.Lookup(context.Background(), scanner.Text())
	if err != nil {
		return err
	}
	fmt.Println(result.Text)
	return nil
}

func loadEngine(cfg *config.Config, entry *logrus.Entry, path string) (*finder.Engine, error) {
	lines, err := document.LoadLines(path)
	if err != nil {
		return nil, fmt.Errorf("could not open source file: %w", err)
	}
	return finder.NewEngine(cfg, entry, lines)
}

func printUsage() {
	fmt.Fprint(os.Stderr,
		"linefinder\n"+
			"\n"+
			"NAME\n"+
			"\tlinefinder - finds a line similar to input words\n"+
			"\n"+
			"SYNOPSIS\n"+
			"\tUsage: linefinder [-d documentFilepath] [-i wordSetFilepath]\n"+
			"\tUsage: linefinder [-d documentFilepath] [-c ...]\n"+
			"\n"+
			"DESCRIPTION\n"+
			"\tlinefinder is a pattern matcher that finds the most similar line "+
			"of text from a document to a set of words. The set of words can be "+
			"provided as a file with each set on its own line, or as quoted sets "+
			"of words on the command line. With no arguments, the default "+
			"document is searched for a single word set read from stdin.\n"+
			"\n"+
			"EXAMPLES\n"+
			"\tlinefinder -d ./lepanto.txt -i ./testInputs.txt\n"+
			"\t\tFinds the closest matching lines in \"./lepanto.txt\" to each "+
			"set of words on each line of \"./testInputs.txt\".\n"+
			"\n"+
			"\tlinefinder -d ./lepanto.txt -c \"his head a flag\" \"test word "+
			"set two\" \"set three\"\n"+
			"\t\tFinds the closest matching lines in \"./lepanto.txt\" to each "+
			"set of words given in quotes.\n")
}
