package service

import (
	"context"

	"tambula/internal/model"
	"tambula/internal/pkg/timeutil"
	"tambula/internal/ticket"
)

const defaultPageSize = 10

// TicketStore persists generated tickets and pages through them by id.
type TicketStore interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	ListByTicketID(ctx context.Context, ticketID string, limit, offset uint) ([]*model.Ticket, error)
}

type TicketService struct {
	tickets TicketStore
}

func NewTicketService(tickets TicketStore) *TicketService {
	return &TicketService{tickets: tickets}
}

// Create generates and persists count tickets one by one. Tickets are
// independent, so a failure mid-batch just stops the batch; already
// persisted tickets stay.
func (s *TicketService) Create(ctx context.Context, count int) ([]*model.Ticket, error) {
	out := make([]*model.Ticket, 0, count)
	for i := 0; i < count; i++ {
		t := &model.Ticket{
			TicketID: ticket.NewID(),
			Grid:     ticket.Generate(),
			Ctime:    timeutil.NowUnix(),
		}
		if err := s.tickets.Create(ctx, t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TicketService) List(ctx context.Context, ticketID string, page, limit int) ([]*model.Ticket, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit
	return s.tickets.ListByTicketID(ctx, ticketID, uint(limit), uint(offset))
}
