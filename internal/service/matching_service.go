package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/pkg/logger"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"
	"github.com/TanaySingh02/Farmwise2.0/pkg/events"
	"github.com/TanaySingh02/Farmwise2.0/pkg/matching"
	pktNats "github.com/TanaySingh02/Farmwise2.0/pkg/nats"
)

type IMatchingService interface {
	Run(ctx context.Context, farmerId string) (WorkflowState, error)
	ListMatches(ctx context.Context, farmerId string) ([]*entity.SchemeMatch, error)
}

// SchemeReasoner is the reasoning engine contract the run depends on.
type SchemeReasoner interface {
	Match(ctx context.Context, aggregate *entity.FarmerAggregate) ([]matching.MatchProposal, error)
}

// matchingService drives one farmer's matching run through its stages:
// fetch-farmer-data, match-schemes, persist-results. Stages run
// strictly in order and any stage error short-circuits the run to
// failed. There are no internal retries; a retry is a fresh Run.
type matchingService struct {
	uowFactory     unitofwork.RepositoryFactory
	reasoner       SchemeReasoner
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewMatchingService(
	uowFactory unitofwork.RepositoryFactory,
	reasoner SchemeReasoner,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IMatchingService {
	return &matchingService{
		uowFactory:     uowFactory,
		reasoner:       reasoner,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *matchingService) Run(ctx context.Context, farmerId string) (WorkflowState, error) {
	state := WorkflowState{
		FarmerId: farmerId,
		Stage:    StageStart,
	}

	state = s.fetchFarmerData(ctx, state)
	if state.Err == nil {
		state = s.matchSchemes(ctx, state)
	}
	if state.Err == nil {
		state = s.persistResults(ctx, state)
	}

	if state.Err != nil {
		s.log.Error("matching_service", "matching run failed", map[string]interface{}{
			"farmer_id": farmerId,
			"stage":     string(state.Err.Stage),
			"kind":      string(state.Err.Kind),
			"error":     state.Err.Error(),
		})
		s.publishFailed(ctx, state)
		return state, state.Err
	}

	state.Stage = StageDone
	s.log.Info("matching_service", "matching run completed", map[string]interface{}{
		"farmer_id": farmerId,
		"matches":   len(state.Matches),
	})
	s.publishCompleted(ctx, state)
	return state, nil
}

func (s *matchingService) ListMatches(ctx context.Context, farmerId string) ([]*entity.SchemeMatch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SchemeMatchRepository().FindByFarmerId(ctx, farmerId)
}

func (s *matchingService) fetchFarmerData(ctx context.Context, state WorkflowState) WorkflowState {
	state.Stage = StageFetchFarmerData

	if state.FarmerId == "" {
		return state.failed(StageFetchFarmerData, ErrorKindMissingInput, fmt.Errorf("farmer id is required"))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	aggregate, err := matching.BuildFarmerAggregate(ctx, uow, state.FarmerId)
	if err != nil {
		return state.failed(StageFetchFarmerData, ErrorKindDataFetchFailed, err)
	}
	if aggregate.Empty() {
		// Matching must never run against an empty aggregate.
		return state.failed(StageFetchFarmerData, ErrorKindDataFetchFailed, fmt.Errorf("farmer %s not found", state.FarmerId))
	}

	state.Aggregate = aggregate
	return state
}

func (s *matchingService) matchSchemes(ctx context.Context, state WorkflowState) WorkflowState {
	state.Stage = StageMatchSchemes

	proposals, err := s.reasoner.Match(ctx, state.Aggregate)
	if err != nil {
		return state.failed(StageMatchSchemes, ErrorKindMatchingFailed, err)
	}

	matches := make([]*entity.SchemeMatch, 0, len(proposals))
	for _, proposal := range proposals {
		schemeId, err := uuid.Parse(proposal.SchemeId)
		if err != nil {
			return state.failed(StageMatchSchemes, ErrorKindMatchingFailed, fmt.Errorf("invalid scheme id %q: %w", proposal.SchemeId, err))
		}
		matches = append(matches, &entity.SchemeMatch{
			Id:         uuid.New(),
			FarmerId:   state.FarmerId,
			SchemeId:   schemeId,
			SchemeName: proposal.SchemeName,
			Reason:     proposal.Reason,
			IsEligible: true,
			CreatedAt:  time.Now(),
		})
	}

	// An empty list is a valid outcome: no scheme fits this farmer.
	state.Matches = matches
	return state
}

// persistResults writes all matches in one transaction. A failed write
// rolls back the earlier ones, so a run either stores its full result
// set or nothing.
func (s *matchingService) persistResults(ctx context.Context, state WorkflowState) WorkflowState {
	state.Stage = StagePersistResults

	if len(state.Matches) == 0 {
		return state
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return state.failed(StagePersistResults, ErrorKindPersistenceFailed, err)
	}

	for _, match := range state.Matches {
		if err := uow.SchemeMatchRepository().Insert(ctx, match); err != nil {
			if rbErr := uow.Rollback(); rbErr != nil {
				s.log.Error("matching_service", "rollback failed", map[string]interface{}{"error": rbErr.Error()})
			}
			return state.failed(StagePersistResults, ErrorKindPersistenceFailed, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return state.failed(StagePersistResults, ErrorKindPersistenceFailed, err)
	}
	return state
}

func (s *matchingService) publishCompleted(ctx context.Context, state WorkflowState) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewMatchRunCompleted(state.FarmerId, len(state.Matches))
	// The run already succeeded, the event is auxiliary.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("matching_service", "failed to publish MATCH_RUN_COMPLETED event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *matchingService) publishFailed(ctx context.Context, state WorkflowState) {
	if s.eventPublisher == nil || state.Err == nil {
		return
	}
	evt := events.NewMatchRunFailed(state.FarmerId, string(state.Err.Stage), string(state.Err.Kind), state.Err.Error())
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("matching_service", "failed to publish MATCH_RUN_FAILED event", map[string]interface{}{"error": err.Error()})
	}
}
