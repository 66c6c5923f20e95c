package similarity

// NoiseLabel is the DBSCAN cluster label assigned to points that belong
// to no dense region.
const NoiseLabel = -1

// DBSCAN clusters the n points described by dist (an n x n symmetric
// distance matrix) using neighborhood radius eps and density threshold
// minPts, per the standard DBSCAN algorithm. It returns one label per
// point, in [0, n) order; labels are dense non-negative cluster ids
// except for NoiseLabel.
//
// No DBSCAN implementation appears anywhere in the reference corpus
// this package draws on, so this is a direct, dependency-free
// implementation of the textbook algorithm (Ester et al. 1996) rather
// than an adapted one.
func DBSCAN(dist *Dense, eps float64, minPts int) []int {
	n := dist.Rows()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = NoiseLabel
	}
	visited := make([]bool, n)

	regionQuery := func(p int) []int {
		var neighbors []int
		for q := 0; q < n; q++ {
			if q != p && dist.At(p, q) <= eps {
				neighbors = append(neighbors, q)
			}
		}
		return neighbors
	}

	nextCluster := 0
	for p := 0; p < n; p++ {
		if visited[p] {
			continue
		}
		visited[p] = true

		neighbors := regionQuery(p)
		if len(neighbors)+1 < minPts {
			continue
		}

		cluster := nextCluster
		nextCluster++
		labels[p] = cluster

		seeds := append([]int{}, neighbors...)
		for i := 0; i < len(seeds); i++ {
			q := seeds[i]
			if !visited[q] {
				visited[q] = true
				qNeighbors := regionQuery(q)
				if len(qNeighbors)+1 >= minPts {
					seeds = append(seeds, qNeighbors...)
				}
			}
			if labels[q] == NoiseLabel {
				labels[q] = cluster
			}
		}
	}

	return labels
}
