package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

type MatchResultResponse struct {
	Id         uuid.UUID `json:"id"`
	FarmerId   string    `json:"farmer_id"`
	SchemeId   uuid.UUID `json:"scheme_id"`
	SchemeName string    `json:"scheme_name"`
	Reason     string    `json:"reason"`
	IsEligible bool      `json:"is_eligible"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMatchResultResponse(match *entity.SchemeMatch) MatchResultResponse {
	return MatchResultResponse{
		Id:         match.Id,
		FarmerId:   match.FarmerId,
		SchemeId:   match.SchemeId,
		SchemeName: match.SchemeName,
		Reason:     match.Reason,
		IsEligible: match.IsEligible,
		CreatedAt:  match.CreatedAt,
	}
}

type MatchRunResponse struct {
	FarmerId string                `json:"farmer_id"`
	State    string                `json:"state"`
	Matches  []MatchResultResponse `json:"matches"`
}
