package search

// Similarity scores how well query is contained in candidate, returning a
// value in [-1, 1] where 1 is a perfect match. Word ordering is deliberately
// ignored: matching should survive human paraphrasing and reordering, at the
// cost of not distinguishing "he is" from "is he". The two sequence metrics
// operate at the character level so that inflected forms ("make" vs
// "making") still earn credit without any stemming.
//
// The metric is asymmetric: it treats query as the thing being searched for
// within candidate, so Similarity(a, b) and Similarity(b, a) can differ.
func Similarity(candidate, query *Profile) float64 {
	// Early out for perfect matches
	if candidate.text == query.text {
		return 1.0
	}

	// Order-free containment of the query's words and runes
	words := containment(candidate.words, query.words)
	runes := containment(candidate.runes, query.runes)

	// Longest shared character run of the whole lines, rescaled to [-1, 1]
	fullShared := measureShared(candidate.text, query.text)*2 - 1
	// Average best shared run per query word, rescaled to [-1, 1]
	wordShared := bestSharedPerWord(candidate.words, query.words)*2 - 1

	return (words + runes + fullShared + wordShared) / 4
}

// containment measures how well the want table is found inside the have
// table, in roughly [-1, 1]. Matching an item's count exactly is best;
// undershooting and overshooting are still OK, with overshooting penalized
// slightly harder; an item missing entirely counts strongly against. The
// +1 starting constants keep the denominator non-zero and dampen the noise
// of very small tables.
func containment[K comparable](have, want map[K]int) float64 {
	found, possible := 1.0, 1.0
	for item, wanted := range want {
		held, ok := have[item]
		switch {
		case !ok:
			found -= float64(wanted)
			possible += float64(wanted)
		case wanted <= held:
			found += float64(wanted)
			possible += float64(held)
		default:
			// Reverse the ratio so overshooting stays below a clean find
			found += float64(held)
			possible += float64(wanted)
		}
	}
	return found / possible
}

// longestSharedRun returns the length of the longest run of consecutive
// equal characters obtainable by aligning any offset of a with any offset
// of b (the longest common substring, not subsequence). The scan is
// symmetric in its arguments.
func longestSharedRun(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	longest := 0
	for i := range ra {
		for j := range rb {
			length := 0
			for i+length < len(ra) && j+length < len(rb) && ra[i+length] == rb[j+length] {
				length++
			}
			if length > longest {
				longest = length
			}
		}
	}
	return longest
}

// measureShared returns the longest shared run divided by the average
// length of the two strings, in [0, 1]. Dividing by the average rather than
// the shorter length keeps one string being a tiny substring of a much
// longer one from looking like a perfect match.
func measureShared(a, b string) float64 {
	sizeSum := len([]rune(a)) + len([]rune(b))
	if sizeSum == 0 {
		return 0
	}
	return float64(2*longestSharedRun(a, b)) / float64(sizeSum)
}

// bestSharedPerWord finds, for each distinct query word, the best
// measureShared against any single candidate word, and averages those best
// matches over the query words. With no query words there is nothing to
// average, so it returns the neutral 0.5 (0 once rescaled to [-1, 1]).
func bestSharedPerWord(candidate, query map[string]int) float64 {
	if len(query) == 0 {
		return 0.5
	}
	sum := 0.0
	for queryWord := range query {
		best := 0.0
		for candidateWord := range candidate {
			if shared := measureShared(candidateWord, queryWord); shared > best {
				best = shared
			}
		}
		sum += best
	}
	return sum / float64(len(query))
}
