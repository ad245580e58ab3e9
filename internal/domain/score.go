package domain

import (
	"fmt"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// DefaultPassAtK are the k values reported by ComputeStatistics.
var DefaultPassAtK = []int{1, 5, 10}

// PassAtK is the unbiased estimator 1 - C(n-c, k) / C(n, k) of drawing at least one correct
// candidate among k, computed as 1 - prod_{i=n-c+1}^{n} (1 - k/i).
func PassAtK(n, c, k int) float64 {
	if n-c < k {
		return 1.0
	}

	product := 1.0
	for i := n - c + 1; i <= n; i++ {
		product *= 1.0 - float64(k)/float64(i)
	}

	return 1.0 - product
}

// ComputeStatistics aggregates evaluated samples. A bug counts for a criterion when ANY of
// its candidates meets it. pass@k is averaged over the bugs with at least k evaluated
// candidates, counting plausible candidates as correct.
func ComputeStatistics(benchmark, strategy string, samples []m.Sample, ks []int) m.Statistics {
	stats := m.Statistics{
		Benchmark:      benchmark,
		PromptStrategy: strategy,
		NumBugs:        len(samples),
		PassAtK:        make(map[string]float64, len(ks)),
	}

	sums := make(map[int]float64, len(ks))
	counts := make(map[int]int, len(ks))

	for _, sample := range samples {
		if sample.Prompt != nil {
			stats.NumBugsWithPrompt++
		}

		if hasGeneration(sample) {
			stats.NumBugsWithGeneration++
		}

		var exact, ast, compilable, plausible bool

		correct := 0

		for _, evaluation := range sample.Evaluation {
			exact = exact || evaluation.ExactMatch
			ast = ast || evaluation.ASTMatch
			compilable = compilable || evaluation.IsCompilable()

			if evaluation.IsPlausible() {
				plausible = true
				correct++
			}
		}

		stats.NumCandidates += len(sample.Evaluation)
		stats.NumBugsWithExactMatch += boolToInt(exact)
		stats.NumBugsWithASTMatch += boolToInt(ast)
		stats.NumBugsCompilable += boolToInt(compilable)
		stats.NumBugsPlausible += boolToInt(plausible)

		n := len(sample.Evaluation)
		for _, k := range ks {
			if k <= 0 || n < k {
				continue
			}

			sums[k] += PassAtK(n, correct, k)
			counts[k]++
		}
	}

	for _, k := range ks {
		if counts[k] == 0 {
			continue
		}

		stats.PassAtK[fmt.Sprintf("pass@%d", k)] = sums[k] / float64(counts[k])
	}

	return stats
}

func hasGeneration(sample m.Sample) bool {
	for _, generation := range sample.Generation {
		if generation != nil {
			return true
		}
	}

	return false
}

func boolToInt(v bool) int {
	if v {
		return 1
	}

	return 0
}
