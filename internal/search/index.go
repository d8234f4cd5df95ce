package search

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyIndex is returned when a search runs against an index with no
// searchable lines. Returning line 0 instead would be indistinguishable
// from a real match on the first line.
var ErrEmptyIndex = errors.New("search: index contains no searchable lines")

// Match is the outcome of a search: the matched line's position in the
// original document and the score it earned.
type Match struct {
	Line  int
	Score float64
}

type entry struct {
	line    int
	profile *Profile
}

// Index holds one Profile per non-empty line of a document, in document
// order, with original line numbers preserved. It is built once and only
// read afterwards, so it may be searched concurrently.
type Index struct {
	entries []entry
}

// NewIndex profiles every non-empty raw line. Empty lines are skipped but
// keep their line numbers reserved, so a match always reports the position
// in the source document.
func NewIndex(lines []string) *Index {
	ix := &Index{}
	for i, line := range lines {
		if len(line) > 0 {
			ix.entries = append(ix.entries, entry{line: i, profile: NewProfile(line)})
		}
	}
	return ix
}

// Len returns the number of searchable lines.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// FuzzyFind scans every indexed line for the one most similar to the query
// and returns its original line number with the winning score. Ties keep
// the earliest line. A perfect score stops the scan immediately.
func (ix *Index) FuzzyFind(query *Profile) (Match, error) {
	if len(ix.entries) == 0 {
		return Match{}, ErrEmptyIndex
	}

	best := Match{Line: ix.entries[0].line, Score: math.Inf(-1)}
	for _, e := range ix.entries {
		score := Similarity(e.profile, query)
		if score == 1.0 {
			return Match{Line: e.line, Score: score}, nil
		}
		if score > best.Score {
			best = Match{Line: e.line, Score: score}
		}
	}
	return best, nil
}

// checkEvery is how many entries a parallel worker scores between context
// checks.
const checkEvery = 64

// FuzzyFindParallel is FuzzyFind sharded across workers. Each worker scans
// a contiguous slice of the index; shard bests are merged with ties broken
// by lowest line number, which is exactly the sequential scan's
// earliest-line-wins rule since entries are stored in line order. A worker
// that hits a perfect score stops its own shard early; any entry it skips
// is a later line in the same shard and cannot outrank that match.
func (ix *Index) FuzzyFindParallel(ctx context.Context, query *Profile, workers int) (Match, error) {
	if len(ix.entries) == 0 {
		return Match{}, ErrEmptyIndex
	}
	if workers > len(ix.entries) {
		workers = len(ix.entries)
	}
	if workers <= 1 {
		return ix.FuzzyFind(query)
	}

	bests := make([]Match, workers)
	g, ctx := errgroup.WithContext(ctx)
	shardSize := (len(ix.entries) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		w := w
		// With a rounded-up shard size the last shards can start past the
		// end; clamp both bounds so they stay empty instead of panicking
		begin := min(w*shardSize, len(ix.entries))
		end := min(begin+shardSize, len(ix.entries))
		g.Go(func() error {
			best := Match{Score: math.Inf(-1)}
			for i, e := range ix.entries[begin:end] {
				if i%checkEvery == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				score := Similarity(e.profile, query)
				if score == 1.0 {
					best = Match{Line: e.line, Score: score}
					break
				}
				if score > best.Score {
					best = Match{Line: e.line, Score: score}
				}
			}
			bests[w] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Match{}, err
	}

	best := bests[0]
	for _, b := range bests[1:] {
		if b.Score > best.Score || (b.Score == best.Score && b.Line < best.Line) {
			best = b
		}
	}
	return best, nil
}
