package service

import (
	"fmt"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

// Stage names the steps of a matching run.
type Stage string

const (
	StageStart           Stage = "start"
	StageFetchFarmerData Stage = "fetch-farmer-data"
	StageMatchSchemes    Stage = "match-schemes"
	StagePersistResults  Stage = "persist-results"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// ErrorKind tags a stage failure for callers.
type ErrorKind string

const (
	ErrorKindMissingInput      ErrorKind = "MissingInput"
	ErrorKindDataFetchFailed   ErrorKind = "DataFetchFailed"
	ErrorKindMatchingFailed    ErrorKind = "MatchingFailed"
	ErrorKindPersistenceFailed ErrorKind = "PersistenceFailed"
	ErrorKindValidationFailed  ErrorKind = "ValidationFailed"
)

type StageError struct {
	Stage Stage
	Kind  ErrorKind
	Err   error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("stage %s failed: %s", e.Stage, e.Kind)
	}
	return fmt.Sprintf("stage %s failed: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// WorkflowState is the immutable snapshot passed between stages. Each
// stage receives a copy and returns a new one; a non-nil Err
// short-circuits the run to StageFailed.
type WorkflowState struct {
	FarmerId  string
	Aggregate *entity.FarmerAggregate
	Matches   []*entity.SchemeMatch
	Stage     Stage
	Err       *StageError
}

func (s WorkflowState) failed(stage Stage, kind ErrorKind, err error) WorkflowState {
	s.Stage = StageFailed
	s.Err = &StageError{Stage: stage, Kind: kind, Err: err}
	return s
}
