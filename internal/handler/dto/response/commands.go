package response

import (
	"stay-command-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type AcceptedResponse struct {
	EventID       uuid.UUID `json:"eventId"`
	EntityID      uuid.UUID `json:"entityId"`
	CorrelationID string    `json:"correlationId"`
	Status        string    `json:"status"`
}

func FromAccepted(a *commands.Accepted) *AcceptedResponse {
	return &AcceptedResponse{
		EventID:       a.EventID,
		EntityID:      a.EntityID,
		CorrelationID: a.CorrelationID,
		Status:        a.Status,
	}
}

type SweepResponse struct {
	PropertyID   uuid.UUID               `json:"propertyId"`
	BusinessDate string                  `json:"businessDate"`
	DryRun       bool                    `json:"dryRun"`
	Candidates   []uuid.UUID             `json:"candidates"`
	Processed    []commands.SweepSuccess `json:"processed"`
	Failed       []commands.SweepFailure `json:"failed"`
}

func FromSweepReport(r *commands.SweepReport) *SweepResponse {
	resp := &SweepResponse{
		PropertyID:   r.PropertyID,
		BusinessDate: r.BusinessDate,
		DryRun:       r.DryRun,
		Candidates:   r.Candidates,
		Processed:    r.Processed,
		Failed:       r.Failed,
	}
	if resp.Candidates == nil {
		resp.Candidates = []uuid.UUID{}
	}
	if resp.Processed == nil {
		resp.Processed = []commands.SweepSuccess{}
	}
	if resp.Failed == nil {
		resp.Failed = []commands.SweepFailure{}
	}
	return resp
}
