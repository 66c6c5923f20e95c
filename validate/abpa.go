package validate

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/splitcut/dataset"
)

// Trials is the number of random re-partitions the null model averages
// over, matching the source project's calc_abpa/calc_abpc constant.
const Trials = 5000

// Result holds one metric's real value against its null-model average,
// plus the ratio of the two (lower means the real clustering groups
// co-edited entities together more tightly than chance).
type Result struct {
	Real  float64
	Null  float64
	Ratio float64
}

func newResult(real, null float64) Result {
	r := Result{Real: real, Null: null}
	if null != 0 {
		r.Ratio = real / null
	}
	return r
}

// CountBlocksTouched returns the number of distinct blocks among the
// entities in touched, under partition (entity id -> block id).
func CountBlocksTouched(partition map[int]int, touched map[int]struct{}) int {
	seen := make(map[int]struct{}, len(touched))
	for id := range touched {
		seen[partition[id]] = struct{}{}
	}
	return len(seen)
}

// AvgBlocksTouched averages CountBlocksTouched over every group in
// touches (one group per author, or per commit).
func AvgBlocksTouched(partition map[int]int, touches map[string]map[int]struct{}) float64 {
	if len(touches) == 0 {
		return 0
	}
	total := 0
	for _, t := range touches {
		total += CountBlocksTouched(partition, t)
	}
	return float64(total) / float64(len(touches))
}

// BlockSizes returns the sizes of every block in partition, largest
// first.
func BlockSizes(partition map[int]int) []int {
	counts := make(map[int]int)
	for _, block := range partition {
		counts[block]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// RandPartition assigns entities to len(sizes) blocks of exactly the
// given sizes, in a uniformly random order — the null model's
// re-partition, preserving the real clustering's block-size
// distribution while discarding which entity landed where.
func RandPartition(rng *rand.Rand, sizes []int, entities []int) map[int]int {
	order := append([]int(nil), entities...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	partition := make(map[int]int, len(order))
	cur := 0
	for block, size := range sizes {
		for _, e := range order[cur : cur+size] {
			partition[e] = block
		}
		cur += size
	}
	return partition
}

// groupByAuthor and groupByCommit adapt dataset.Touch rows into the
// (group key -> touched entity set) shape AvgBlocksTouched expects.
func groupByAuthor(touches []dataset.Touch) map[string]map[int]struct{} {
	out := make(map[string]map[int]struct{})
	for _, t := range touches {
		if out[t.AuthorEmail] == nil {
			out[t.AuthorEmail] = make(map[int]struct{})
		}
		out[t.AuthorEmail][t.EntityID] = struct{}{}
	}
	return out
}

func groupByCommit(touches []dataset.Touch) map[string]map[int]struct{} {
	out := make(map[string]map[int]struct{})
	for _, t := range touches {
		if out[t.SHA1] == nil {
			out[t.SHA1] = make(map[int]struct{})
		}
		out[t.SHA1][t.EntityID] = struct{}{}
	}
	return out
}

// CalcABPA computes the real and null-model average-blocks-touched-per-author.
func CalcABPA(rng *rand.Rand, partition map[int]int, touches []dataset.Touch) Result {
	return calc(rng, partition, groupByAuthor(touches))
}

// CalcABPC computes the real and null-model average-blocks-touched-per-commit.
func CalcABPC(rng *rand.Rand, partition map[int]int, touches []dataset.Touch) Result {
	return calc(rng, partition, groupByCommit(touches))
}

func calc(rng *rand.Rand, partition map[int]int, touches map[string]map[int]struct{}) Result {
	real := AvgBlocksTouched(partition, touches)

	sizes := BlockSizes(partition)
	entities := make([]int, 0, len(partition))
	for id := range partition {
		entities = append(entities, id)
	}
	sort.Ints(entities)

	nullSum := 0.0
	for i := 0; i < Trials; i++ {
		nullSum += AvgBlocksTouched(RandPartition(rng, sizes, entities), touches)
	}
	return newResult(real, nullSum/float64(Trials))
}
