package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/didi/gendry/builder"

	"tambula/internal/model"
	"tambula/internal/pkg/dbutil"
	appErr "tambula/internal/pkg/errors"
)

type TicketRepo struct {
	db *sql.DB
}

func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// Create persists one generated ticket. The ticket id is only
// advisory-unique at generation time; the primary key here is the real
// arbiter, and a clash surfaces as ErrConflict.
func (r *TicketRepo) Create(ctx context.Context, ticket *model.Ticket) error {
	grid, err := json.Marshal(ticket.Grid)
	if err != nil {
		return err
	}
	data := map[string]interface{}{
		"ticket_id": ticket.TicketID,
		"grid":      string(grid),
		"ctime":     ticket.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("tickets", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *TicketRepo) ListByTicketID(ctx context.Context, ticketID string, limit, offset uint) ([]*model.Ticket, error) {
	where := map[string]interface{}{
		"ticket_id": ticketID,
		"_orderby":  "ctime desc",
	}
	if limit > 0 {
		where["_limit"] = []uint{offset, limit}
	}
	sqlStr, args, err := builder.BuildSelect("tickets", where, []string{"ticket_id", "grid", "ctime"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		var ticket model.Ticket
		var grid []byte
		if err := rows.Scan(&ticket.TicketID, &grid, &ticket.Ctime); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(grid, &ticket.Grid); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}
	return tickets, rows.Err()
}
