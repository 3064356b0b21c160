package api

import (
	"net/http"
	"time"

	reqdto "stay-command-core/internal/handler/dto/request"
	resdto "stay-command-core/internal/handler/dto/response"
	"stay-command-core/internal/handler/httperr"
	"stay-command-core/internal/handler/middleware"
	"stay-command-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type commandFunc func(c *gin.Context, meta commands.Meta) (*commands.Accepted, error)

// CommandHandler is the thin HTTP adapter in front of the command use cases.
// Authentication and authorization happen upstream.
type CommandHandler struct {
	reservations commands.ReservationCommands
	groups       commands.GroupCommands
	routes       map[string]commandFunc
}

func NewCommandHandler(reservations commands.ReservationCommands, groups commands.GroupCommands) *CommandHandler {
	h := &CommandHandler{
		reservations: reservations,
		groups:       groups,
	}
	h.routes = map[string]commandFunc{
		"reservation.create":      h.create,
		"reservation.modify":      h.modify,
		"reservation.cancel":      h.cancel,
		"reservation.no_show":     h.noShow,
		"reservation.walk_guest":  h.walkGuest,
		"reservation.extend_stay": h.extendStay,
		"reservation.assign_room": h.assignRoom,
		"reservation.check_in":    h.checkIn,
		"reservation.check_out":   h.checkOut,
		"group.create_block":      h.createBlock,
		"group.pickup_room":       h.pickupRoom,
		"group.cancel_block":      h.cancelBlock,
	}
	return h
}

// Commands lists the command names Dispatch accepts.
func (h *CommandHandler) Commands() []string {
	names := make([]string, 0, len(h.routes))
	for name := range h.routes {
		names = append(names, name)
	}
	return names
}

// @Summary Submit a command
// @Tags commands
// @Accept json
// @Produce json
// @Param command path string true "Command name, e.g. reservation.create"
// @Param X-Tenant-ID header string true "Tenant id"
// @Param X-Correlation-ID header string false "Correlation id"
// @Param X-Actor-ID header string false "Acting user id"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/commands/{command} [post]
func (h *CommandHandler) Dispatch(c *gin.Context) {
	name := c.Param("command")
	fn, ok := h.routes[name]
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, commands.ErrUnknownCommand, commands.CodeUnknownCommand, "Unknown command "+name, nil)
		return
	}

	meta, ok := commandMeta(c)
	if !ok {
		return
	}

	accepted, err := fn(c, meta)
	if err != nil {
		httperr.AbortWithCommandError(c, err)
		return
	}
	if accepted == nil {
		// binding already aborted the request
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromAccepted(accepted))
}

// @Summary Run the no-show sweep for a property
// @Tags commands
// @Accept json
// @Produce json
// @Param propertyId path string true "Property id"
// @Param X-Tenant-ID header string true "Tenant id"
// @Success 200 {object} resdto.SweepResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /v1/properties/{propertyId}/no-show-sweep [post]
func (h *CommandHandler) NoShowSweep(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.CodeValidation, "Invalid property ID format", nil)
		return
	}
	meta, ok := commandMeta(c)
	if !ok {
		return
	}

	var req reqdto.NoShowSweepRequest
	if c.Request.ContentLength != 0 {
		if !bind(c, &req) {
			return
		}
	}
	businessDate := req.BusinessDate.Time
	if businessDate.IsZero() {
		businessDate = time.Now().UTC()
	}

	report, err := h.reservations.NoShowSweep(c.Request.Context(), meta, commands.NoShowSweep{
		PropertyID:   propertyID,
		BusinessDate: businessDate,
		DryRun:       req.DryRun,
	})
	if err != nil {
		httperr.AbortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReport(report))
}

func commandMeta(c *gin.Context) (commands.Meta, bool) {
	tenantID, err := uuid.Parse(c.GetHeader(middleware.HeaderTenantID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.CodeValidation, "X-Tenant-ID header must be a UUID", nil)
		return commands.Meta{}, false
	}
	meta := commands.Meta{
		TenantID:      tenantID,
		CorrelationID: middleware.GetCorrelationID(c),
	}
	if raw := c.GetHeader(middleware.HeaderActorID); raw != "" {
		actorID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, commands.CodeValidation, "X-Actor-ID header must be a UUID", nil)
			return commands.Meta{}, false
		}
		meta.ActorID = actorID
	}
	return meta, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.CodeValidation, "Invalid request format", err.Error())
		return false
	}
	return true
}

// decode binds the body and copies it into the command type T.
func decode[T any](c *gin.Context, req any) (T, bool) {
	var zero T
	if !bind(c, req) {
		return zero, false
	}
	cmd, err := reqdto.ToCommand[T](req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.CodeValidation, "Invalid request format", nil)
		return zero, false
	}
	return cmd, true
}

func (h *CommandHandler) create(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CreateReservation](c, &reqdto.CreateReservationRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.Create(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) modify(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.ModifyReservation](c, &reqdto.ModifyReservationRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.Modify(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) cancel(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CancelReservation](c, &reqdto.CancelReservationRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.Cancel(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) noShow(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.MarkNoShow](c, &reqdto.MarkNoShowRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.NoShow(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) walkGuest(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.WalkGuest](c, &reqdto.WalkGuestRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.WalkGuest(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) extendStay(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.ExtendStay](c, &reqdto.ExtendStayRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.ExtendStay(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) assignRoom(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.AssignRoom](c, &reqdto.AssignRoomRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.AssignRoom(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) checkIn(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CheckIn](c, &reqdto.StatusChangeRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.CheckIn(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) checkOut(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CheckOut](c, &reqdto.StatusChangeRequest{})
	if !ok {
		return nil, nil
	}
	return h.reservations.CheckOut(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) createBlock(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CreateGroupBlock](c, &reqdto.CreateGroupBlockRequest{})
	if !ok {
		return nil, nil
	}
	return h.groups.CreateBlock(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) pickupRoom(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.PickupGroupRoom](c, &reqdto.PickupGroupRoomRequest{})
	if !ok {
		return nil, nil
	}
	return h.groups.PickupRoom(c.Request.Context(), meta, cmd)
}

func (h *CommandHandler) cancelBlock(c *gin.Context, meta commands.Meta) (*commands.Accepted, error) {
	cmd, ok := decode[commands.CancelGroupBlock](c, &reqdto.CancelGroupBlockRequest{})
	if !ok {
		return nil, nil
	}
	return h.groups.CancelBlock(c.Request.Context(), meta, cmd)
}
