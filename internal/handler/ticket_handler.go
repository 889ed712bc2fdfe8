package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tambula/internal/pkg/response"
	"tambula/internal/service"
)

type TicketHandler struct {
	tickets *service.TicketService
}

func NewTicketHandler(tickets *service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

type createTicketsRequest struct {
	NumTickets int `json:"numTickets" binding:"required,gt=0"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, bindErrors(err))
		return
	}
	tickets, err := h.tickets.Create(c.Request.Context(), req.NumTickets)
	if err != nil {
		// Any persistence failure, including a freak ticket-id clash on
		// the unique constraint, is a store failure.
		logError(c, err)
		response.Error(c, http.StatusInternalServerError, "failed to create tickets")
		return
	}
	response.Success(c, tickets)
}

func (h *TicketHandler) List(c *gin.Context) {
	ticketID := c.Param("id")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	tickets, err := h.tickets.List(c.Request.Context(), ticketID, page, limit)
	if err != nil {
		logError(c, err)
		response.Error(c, http.StatusInternalServerError, "failed to fetch tickets")
		return
	}
	response.Success(c, tickets)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return value
}
