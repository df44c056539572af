package chain

import (
	"context"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
)

// StageMessage is the queue payload that moves a chain from stage to
// stage. Attempt starts at 1 and grows on transient retries of the same
// stage; TaskID changes per dispatch/restart while ChainID stays stable
// for the life of the file's processing.
type StageMessage struct {
	ChainID  string                 `json:"chain_id"`
	TaskID   string                 `json:"task_id"`
	FileID   uuid.UUID              `json:"file_id"`
	Category constants.FileCategory `json:"category"`
	Stage    string                 `json:"stage"`
	Attempt  int                    `json:"attempt"`
}

// Stage is one unit of chained work. Run reads and mutates the shared
// chain metadata; the orchestrator owns persistence of the metadata,
// progress advancement between stages and the retry policy.
type Stage interface {
	Name() string
	Run(ctx context.Context, meta *Metadata) error
}

// stage topology per category. Fixed and small; this is not a workflow
// engine.
var topologies = map[constants.FileCategory][]string{
	constants.CategoryReceipt:  {constants.StageClassify, constants.StageExtract, constants.StageFinalize},
	constants.CategoryDocument: {constants.StageClassify, constants.StageExtract, constants.StageFinalize},
}

// Topology returns the ordered stage names for a category.
func Topology(category constants.FileCategory) []string {
	if stages, ok := topologies[category]; ok {
		return stages
	}
	return topologies[constants.CategoryDocument]
}

// stageIndex locates a stage within its category topology, -1 if absent.
func stageIndex(category constants.FileCategory, stage string) int {
	for i, name := range Topology(category) {
		if name == stage {
			return i
		}
	}
	return -1
}

// progressAfter is the chain progress once the stage at index i finished,
// distributed evenly across the topology.
func progressAfter(category constants.FileCategory, i int) int {
	n := len(Topology(category))
	if n == 0 {
		return 100
	}
	return ((i + 1) * 100) / n
}
