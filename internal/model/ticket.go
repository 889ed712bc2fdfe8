package model

// Grid is a 3x9 tambula ticket layout. A nil cell is a blank; it renders
// as null in JSON. Column ranges and draw rules live in internal/ticket.
type Grid [3][9]*int

type Ticket struct {
	TicketID string `json:"ticketId"`
	Grid     Grid   `json:"ticketData"`
	Ctime    int64  `json:"-"`
}
