package handler

import (
	"context"
	"fmt"
	"net/http"

	"auction-board/internal/dashboard"
	model "auction-board/internal/models"
	"auction-board/services/board/helpers"
	"auction-board/utils"

	"github.com/gin-gonic/gin"
)

type BoardServiceInterface interface {
	Dashboard(ctx context.Context) (dashboard.View, error)
	Auctions(ctx context.Context, status string) ([]model.Auction, error)
	Auction(ctx context.Context, auctionID string) (model.Auction, error)
	Activities(ctx context.Context) ([]model.AuctionActivity, error)
	Counter(ctx context.Context) (model.CounterState, error)
	IncrementCounter(ctx context.Context) (model.CounterState, error)
	DecrementCounter(ctx context.Context) (model.CounterState, error)
	ResetCounter(ctx context.Context) (model.CounterState, error)
	Users(ctx context.Context) (model.UsersState, error)
	AddUser(ctx context.Context, user model.User) (model.User, model.UsersState, error)
	AddAuctioneer(ctx context.Context) (model.User, model.UsersState, error)
}

type BoardHandler struct {
	service BoardServiceInterface
}

func NewBoardHandler(service BoardServiceInterface) *BoardHandler {
	return &BoardHandler{service: service}
}

// respondError maps err to a status, writes the error envelope and logs it
func respondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// DashboardPageHandler handles GET /
func (h *BoardHandler) DashboardPageHandler(c *gin.Context) {
	view, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		c.String(status, message)
		utils.Error("DashboardPageHandler: failed to build dashboard", map[string]any{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, dashboard.PageTemplate, view)
}

// DashboardHandler handles GET /api/dashboard
func (h *BoardHandler) DashboardHandler(c *gin.Context) {
	view, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, "DashboardHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "dashboard retrieved successfully")
}

// ListAuctionsHandler handles GET /api/auctions?status=
func (h *BoardHandler) ListAuctionsHandler(c *gin.Context) {
	var query helpers.AuctionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		helpers.HandleBindError(c, "ListAuctionsHandler", err)
		return
	}

	auctions, err := h.service.Auctions(c.Request.Context(), query.Status)
	if err != nil {
		respondError(c, "ListAuctionsHandler", err, map[string]any{"status_filter": query.Status})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status_filter": query.Status,
		"count":         len(auctions),
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *BoardHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.Auction(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// ListActivitiesHandler handles GET /api/activities
func (h *BoardHandler) ListActivitiesHandler(c *gin.Context) {
	activities, err := h.service.Activities(c.Request.Context())
	if err != nil {
		respondError(c, "ListActivitiesHandler", err, nil)
		return
	}

	if activities == nil {
		activities = []model.AuctionActivity{}
	}

	utils.JSONResponse(c, http.StatusOK, activities, "activities retrieved successfully")
}

// GetCounterHandler handles GET /api/counter
func (h *BoardHandler) GetCounterHandler(c *gin.Context) {
	counter, err := h.service.Counter(c.Request.Context())
	if err != nil {
		respondError(c, "GetCounterHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, counter, "counter retrieved successfully")
}

// IncrementCounterHandler handles POST /api/counter/increment
func (h *BoardHandler) IncrementCounterHandler(c *gin.Context) {
	h.counterAction(c, "IncrementCounterHandler", "counter incremented", h.service.IncrementCounter)
}

// DecrementCounterHandler handles POST /api/counter/decrement
func (h *BoardHandler) DecrementCounterHandler(c *gin.Context) {
	h.counterAction(c, "DecrementCounterHandler", "counter decremented", h.service.DecrementCounter)
}

// ResetCounterHandler handles POST /api/counter/reset
func (h *BoardHandler) ResetCounterHandler(c *gin.Context) {
	h.counterAction(c, "ResetCounterHandler", "counter reset", h.service.ResetCounter)
}

func (h *BoardHandler) counterAction(c *gin.Context, handlerName, message string, action func(context.Context) (model.CounterState, error)) {
	counter, err := action(c.Request.Context())
	if err != nil {
		respondError(c, handlerName, err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, counter, message)
	helpers.LogSuccess(handlerName, message, map[string]any{"value": counter.Value})
}

// GetUsersHandler handles GET /api/users
func (h *BoardHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		respondError(c, "GetUsersHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUsersResponse(users), "users retrieved successfully")
}

// AddUserHandler handles POST /api/users
func (h *BoardHandler) AddUserHandler(c *gin.Context) {
	var req helpers.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddUserHandler", err)
		return
	}

	user, users, err := h.service.AddUser(c.Request.Context(), model.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, "AddUserHandler", err, map[string]any{"email": req.Email, "role": req.Role})
		return
	}

	h.respondUserAdded(c, "AddUserHandler", user, users)
}

// AddAuctioneerHandler handles POST /api/users/auctioneer
func (h *BoardHandler) AddAuctioneerHandler(c *gin.Context) {
	user, users, err := h.service.AddAuctioneer(c.Request.Context())
	if err != nil {
		respondError(c, "AddAuctioneerHandler", err, nil)
		return
	}

	h.respondUserAdded(c, "AddAuctioneerHandler", user, users)
}

func (h *BoardHandler) respondUserAdded(c *gin.Context, handlerName string, user model.User, users model.UsersState) {
	resp := helpers.AddUserResponse{
		User:       helpers.ToUserResponse(user),
		TotalCount: users.TotalCount,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user added successfully")
	helpers.LogSuccess(handlerName, "user added successfully", map[string]any{
		"user_id":     user.ID,
		"role":        user.Role,
		"total_count": users.TotalCount,
	})
}

// HealthHandler handles GET /healthz
func (h *BoardHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
