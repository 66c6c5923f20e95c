package validate

import (
	"math/rand"

	"github.com/katalvlaran/splitcut/dataset"
	"github.com/katalvlaran/splitcut/entity"
)

// Summary is one subject's full validation result: its block count
// plus both ABPA and ABPC results, mirroring the columns
// validate_subjects appends to its subjects dataframe.
type Summary struct {
	SubjectName string
	NBlocks      int
	ABPA         Result
	ABPC         Result
}

// RunOne validates one clustered table against its touch history.
// Only non-file entities carry a block assignment worth validating,
// matching calc_abpa/calc_abpc's targets_df filter.
func RunOne(rng *rand.Rand, subjectName string, table *entity.Table, touches []dataset.Touch) Summary {
	partition := make(map[int]int)
	blocks := make(map[int]struct{})
	for _, e := range table.Entities {
		if e.IsFile() {
			continue
		}
		blockID := table.BlockID[e.ID]
		partition[e.ID] = blockID
		blocks[blockID] = struct{}{}
	}

	return Summary{
		SubjectName: subjectName,
		NBlocks:     len(blocks),
		ABPA:        CalcABPA(rng, partition, touches),
		ABPC:        CalcABPC(rng, partition, touches),
	}
}
