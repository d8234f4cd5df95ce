package finder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/linefinder/internal/config"
	"github.com/knowledge-engine/linefinder/internal/search"
)

// Engine ties a loaded document to the search index and answers queries
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry

	lines []string
	index *search.Index
}

// Result is one answered query: the matched line's position, its original
// raw text, the score it earned, and whether the match was exact.
type Result struct {
	Line  int
	Text  string
	Score float64
	Exact bool
}

// NewEngine indexes the document's raw lines. The lines are kept as-is so
// results can report the original text, not the normalized form.
func NewEngine(cfg *config.Config, logger *logrus.Entry, lines []string) (*Engine, error) {
	index := search.NewIndex(lines)
	if index.Len() == 0 {
		return nil, fmt.Errorf("document has no searchable lines")
	}
	logger.Infof("Indexed %d searchable lines (%d total)", index.Len(), len(lines))
	return &Engine{
		Config: cfg,
		Logger: logger,
		lines:  lines,
		index:  index,
	}, nil
}

// Lookup finds the document line most similar to the raw query
func (e *Engine) Lookup(ctx context.Context, rawQuery string) (Result, error) {
	query := search.NewProfile(rawQuery)

	var match search.Match
	var err error
	if e.Config.Search.EnableParallel && e.Config.Search.Workers > 1 && e.index.Len() >= e.Config.Search.ParallelThreshold {
		match, err = e.index.FuzzyFindParallel(ctx, query, e.Config.Search.Workers)
	} else {
		match, err = e.index.FuzzyFind(query)
	}
	if err != nil {
		return Result{}, fmt.Errorf("search failed: %w", err)
	}

	result := Result{
		Line:  match.Line,
		Text:  e.lines[match.Line],
		Score: match.Score,
		Exact: match.Score == 1.0,
	}
	e.Logger.WithFields(logrus.Fields{
		"query": rawQuery,
		"line":  result.Line,
		"score": result.Score,
	}).Debug("Resolved query")
	return result, nil
}
