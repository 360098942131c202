package handler

import (
	"net/http"

	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/navigation"
	sharing "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingService"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/services/sharing/helpers"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/utils"

	"github.com/gin-gonic/gin"
)

type SharingServiceInterface interface {
	Login(username, password, pincode string) (model.User, error)
	Logout()
	ActiveUser() (model.User, bool)
	Posts() []model.Post
	AddPost(text, image string) (model.Post, error)
	Items() []model.Item
	AddItem(input sharing.ItemInput) (model.Item, error)
	RequestItem(itemID string) (model.Item, error)
	ConfirmReturn(itemID string, isOwner bool) (model.Item, error)
	Requests() []model.Request
	AddRequest(input sharing.RequestInput) (model.Request, error)
	Profile() (sharing.Profile, error)
	ImpactSummary() sharing.ImpactSummary
}

type SharingHandler struct {
	service SharingServiceInterface
	nav     *navigation.Navigator
}

func NewSharingHandler(service SharingServiceInterface, nav *navigation.Navigator) *SharingHandler {
	return &SharingHandler{service: service, nav: nav}
}

// LoginHandler handles POST /session
func (h *SharingHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Username, req.Password, req.Pincode)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("LoginHandler: login rejected", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	// Login is the one operation that navigates programmatically
	_ = h.nav.Navigate(navigation.PageDashboard)

	utils.JSONResponse(c, http.StatusCreated, helpers.NewUserResponse(user), "session started")
	helpers.LogSuccess("LoginHandler", "session started", map[string]any{
		"username": user.Username,
		"medals":   user.Medals,
	})
}

// LogoutHandler handles DELETE /session
func (h *SharingHandler) LogoutHandler(c *gin.Context) {
	h.service.Logout()
	_ = h.nav.Navigate(navigation.PageLogin)

	utils.JSONResponse(c, http.StatusOK, nil, "session ended")
	helpers.LogSuccess("LogoutHandler", "session ended", nil)
}

// GetSessionHandler handles GET /session
func (h *SharingHandler) GetSessionHandler(c *gin.Context) {
	user, ok := h.service.ActiveUser()
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, sharingerrors.ErrNoActiveUser, "no active session")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "session retrieved")
}

// ListPostsHandler handles GET /posts
func (h *SharingHandler) ListPostsHandler(c *gin.Context) {
	posts := h.service.Posts()
	if posts == nil {
		posts = []model.Post{}
	}

	utils.JSONResponse(c, http.StatusOK, posts, "posts retrieved successfully")
}

// AddPostHandler handles POST /posts
func (h *SharingHandler) AddPostHandler(c *gin.Context) {
	var req helpers.AddPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddPostHandler", err)
		return
	}

	post, err := h.service.AddPost(req.Text, req.Image)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("AddPostHandler: failed to add post", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, post, "post shared successfully")
	helpers.LogSuccess("AddPostHandler", "post shared successfully", map[string]any{
		"post_id":  post.PostID,
		"username": post.Username,
	})
}

// ListItemsHandler handles GET /items
func (h *SharingHandler) ListItemsHandler(c *gin.Context) {
	items := h.service.Items()
	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// AddItemHandler handles POST /items
func (h *SharingHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	item, err := h.service.AddItem(sharing.ItemInput{
		Name:        req.Name,
		Image:       req.Image,
		Quantity:    req.Quantity,
		Quality:     req.Quality,
		DamageLevel: req.DamageLevel,
		Duration:    req.Duration,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("AddItemHandler: failed to add item", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item offered successfully")
	helpers.LogSuccess("AddItemHandler", "item offered successfully", map[string]any{
		"item_id":    item.ItemID,
		"owner_name": item.OwnerName,
		"duration":   item.Duration.String(),
	})
}

// RequestItemHandler handles POST /items/:item_id/request
func (h *SharingHandler) RequestItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.RequestItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("RequestItemHandler: failed to request item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item requested successfully")
	helpers.LogSuccess("RequestItemHandler", "item requested successfully", map[string]any{
		"item_id":       item.ItemID,
		"receiver_name": item.ReceiverName,
	})
}

// ConfirmReturnHandler handles POST /items/:item_id/return
func (h *SharingHandler) ConfirmReturnHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.ConfirmReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ConfirmReturnHandler", err)
		return
	}

	item, err := h.service.ConfirmReturn(itemID, *req.IsOwner)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("ConfirmReturnHandler: failed to confirm return", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "return confirmed")
	helpers.LogSuccess("ConfirmReturnHandler", "return confirmed", map[string]any{
		"item_id":       item.ItemID,
		"is_owner":      *req.IsOwner,
		"return_closed": item.ReturnClosed(),
	})
}

// ListRequestsHandler handles GET /requests
func (h *SharingHandler) ListRequestsHandler(c *gin.Context) {
	requests := h.service.Requests()
	if requests == nil {
		requests = []model.Request{}
	}

	utils.JSONResponse(c, http.StatusOK, requests, "requests retrieved successfully")
}

// AddRequestHandler handles POST /requests
func (h *SharingHandler) AddRequestHandler(c *gin.Context) {
	var req helpers.AddRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddRequestHandler", err)
		return
	}

	request, err := h.service.AddRequest(sharing.RequestInput{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		Quality:  req.Quality,
		Timeline: req.Timeline,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("AddRequestHandler: failed to add request", map[string]any{
			"item_name": req.ItemName,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, request, "request posted successfully")
	helpers.LogSuccess("AddRequestHandler", "request posted successfully", map[string]any{
		"request_id": request.RequestID,
		"item_name":  request.ItemName,
	})
}

// ProfileHandler handles GET /profile
func (h *SharingHandler) ProfileHandler(c *gin.Context) {
	profile, err := h.service.Profile()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
}

// ImpactHandler handles GET /impact
func (h *SharingHandler) ImpactHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.ImpactSummary(), "impact summary retrieved successfully")
}

// CurrentPageHandler handles GET /page
func (h *SharingHandler) CurrentPageHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.PageResponse{Page: string(h.nav.Current())}, "current page retrieved")
}

// NavigateHandler handles PUT /page
func (h *SharingHandler) NavigateHandler(c *gin.Context) {
	var req helpers.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "NavigateHandler", err)
		return
	}

	page, err := navigation.ParsePage(req.Page)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("NavigateHandler: rejected page", map[string]any{"page": req.Page})
		return
	}

	_ = h.nav.Navigate(page)

	utils.JSONResponse(c, http.StatusOK, helpers.PageResponse{Page: string(page)}, "navigated")
	helpers.LogSuccess("NavigateHandler", "navigated", map[string]any{"page": string(page)})
}
