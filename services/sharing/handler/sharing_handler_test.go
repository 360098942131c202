package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/navigation"
	sharing "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingService"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/services/sharing/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a handler with a mock service and fresh navigator
func newTestRouter(t *testing.T) (*gin.Engine, *MockSharingServiceInterface, *navigation.Navigator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := NewMockSharingServiceInterface(ctrl)
	nav := navigation.NewNavigator()
	h := NewSharingHandler(mockService, nav)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/session", h.LoginHandler)
	router.DELETE("/session", h.LogoutHandler)
	router.GET("/session", h.GetSessionHandler)
	router.POST("/posts", h.AddPostHandler)
	router.GET("/posts", h.ListPostsHandler)
	router.POST("/items", h.AddItemHandler)
	router.POST("/items/:item_id/request", h.RequestItemHandler)
	router.POST("/items/:item_id/return", h.ConfirmReturnHandler)
	router.POST("/requests", h.AddRequestHandler)
	router.GET("/profile", h.ProfileHandler)
	router.GET("/page", h.CurrentPageHandler)
	router.PUT("/page", h.NavigateHandler)

	return router, mockService, nav
}

// doJSON serializes body and runs the request through the router
func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockSharingServiceInterface)
		expectedStatus int
		expectedMsg    string
		wantPage       navigation.Page
	}{
		{
			name:        "success",
			requestBody: helpers.LoginRequest{Username: "alice", Password: "x", Pincode: "12345"},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().Login("alice", "x", "12345").
					Return(model.User{Username: "alice", Pincode: "12345", Medals: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "session started",
			wantPage:       navigation.PageDashboard,
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockSharingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
			wantPage:       navigation.PageLogin,
		},
		{
			name:           "missing_pincode",
			requestBody:    helpers.LoginRequest{Username: "alice", Password: "x"},
			mockSetup:      func(m *MockSharingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
			wantPage:       navigation.PageLogin,
		},
		{
			name:        "service_rejects",
			requestBody: helpers.LoginRequest{Username: "alice", Password: "x", Pincode: "12345"},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().Login("alice", "x", "12345").
					Return(model.User{}, sharingerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid login credentials",
			wantPage:       navigation.PageLogin,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService, nav := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doJSON(t, router, http.MethodPost, "/session", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			require.Equal(t, tc.wantPage, nav.Current())

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "alice", data["username"])
				require.Equal(t, 3.0, data["medals"])
				require.Equal(t, "Bronze Member", data["tier"])
			}
		})
	}
}

// Test LogoutHandler
func TestLogoutHandler(t *testing.T) {
	router, mockService, nav := newTestRouter(t)
	require.NoError(t, nav.Navigate(navigation.PageProfile))

	mockService.EXPECT().Logout()

	w, resp := doJSON(t, router, http.MethodDelete, "/session", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, resp["message"], "session ended")
	require.Equal(t, navigation.PageLogin, nav.Current())
}

// Test GetSessionHandler
func TestGetSessionHandler(t *testing.T) {
	t.Run("active_session", func(t *testing.T) {
		router, mockService, _ := newTestRouter(t)
		mockService.EXPECT().ActiveUser().Return(model.User{Username: "bob", Medals: 7}, true)

		w, resp := doJSON(t, router, http.MethodGet, "/session", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "bob", data["username"])
		require.Equal(t, "Silver Member", data["tier"])
	})

	t.Run("no_session", func(t *testing.T) {
		router, mockService, _ := newTestRouter(t)
		mockService.EXPECT().ActiveUser().Return(model.User{}, false)

		w, resp := doJSON(t, router, http.MethodGet, "/session", nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "no active session")
	})
}

// Test AddPostHandler
func TestAddPostHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockSharingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.AddPostRequest{Text: "hello", Image: "img.png"},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().AddPost("hello", "img.png").
					Return(model.Post{PostID: uuid.NewString(), UserID: "bob", Username: "bob", Text: "hello", Image: "img.png", Date: "2025-10-18"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "post shared successfully",
		},
		{
			name:           "missing_text",
			requestBody:    helpers.AddPostRequest{Image: "img.png"},
			mockSetup:      func(m *MockSharingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "no_active_session",
			requestBody: helpers.AddPostRequest{Text: "hello"},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().AddPost("hello", "").
					Return(model.Post{}, sharingerrors.ErrNoActiveUser)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "no active session",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService, _ := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doJSON(t, router, http.MethodPost, "/posts", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "bob", data["username"])
				require.Equal(t, "hello", data["text"])
			}
		})
	}
}

// Test AddItemHandler
func TestAddItemHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockSharingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success_days_duration",
			requestBody: `{"name":"Drill","image":"x","quantity":1,"quality":9,"damage_level":2,"duration":7}`,
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().AddItem(sharing.ItemInput{
					Name: "Drill", Image: "x", Quantity: 1, Quality: 9, DamageLevel: 2,
					Duration: model.ForDays(7),
				}).Return(model.Item{
					ItemID: uuid.NewString(), Name: "Drill", OwnerID: "carol", OwnerName: "carol",
					Quantity: 1, Quality: 9, DamageLevel: 2, Duration: model.ForDays(7),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "item offered successfully",
		},
		{
			name:        "success_permanent_duration",
			requestBody: `{"name":"Books","quantity":5,"quality":10,"damage_level":1,"duration":"permanent"}`,
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().AddItem(sharing.ItemInput{
					Name: "Books", Quantity: 5, Quality: 10, DamageLevel: 1,
					Duration: model.Forever(),
				}).Return(model.Item{
					ItemID: uuid.NewString(), Name: "Books", OwnerID: "carol", OwnerName: "carol",
					Quantity: 5, Quality: 10, DamageLevel: 1, Duration: model.Forever(),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "item offered successfully",
		},
		{
			name:           "quality_out_of_binding_range",
			requestBody:    `{"name":"Drill","quantity":1,"quality":11,"damage_level":2,"duration":7}`,
			mockSetup:      func(m *MockSharingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_rejects_duration",
			requestBody: `{"name":"Drill","quantity":1,"quality":9,"damage_level":2,"duration":0}`,
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().AddItem(gomock.Any()).
					Return(model.Item{}, sharingerrors.ErrInvalidItem)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid item details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService, _ := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doJSON(t, router, http.MethodPost, "/items", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "carol", data["owner_name"])
				require.NotContains(t, data, "receiver_id")
			}
		})
	}
}

// Test RequestItemHandler
func TestRequestItemHandler(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		mockSetup      func(m *MockSharingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success",
			itemID: "item1",
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().RequestItem("item1").
					Return(model.Item{ItemID: "item1", OwnerName: "carol", ReceiverID: "dave", ReceiverName: "dave"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "item requested successfully",
		},
		{
			name:   "item_not_found",
			itemID: "itemX",
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().RequestItem("itemX").
					Return(model.Item{}, sharingerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name:   "no_active_session",
			itemID: "item1",
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().RequestItem("item1").
					Return(model.Item{}, sharingerrors.ErrNoActiveUser)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "no active session",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService, _ := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doJSON(t, router, http.MethodPost, "/items/"+tc.itemID+"/request", nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "dave", data["receiver_name"])
				require.Equal(t, "carol", data["owner_name"])
			}
		})
	}
}

// Test ConfirmReturnHandler
func TestConfirmReturnHandler(t *testing.T) {
	owner := true
	receiver := false

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockSharingServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "owner_confirms",
			requestBody: helpers.ConfirmReturnRequest{IsOwner: &owner},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().ConfirmReturn("item1", true).
					Return(model.Item{ItemID: "item1", OwnerConfirmed: true, ReceiverID: "dave", ReceiverName: "dave"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "return confirmed",
		},
		{
			name:        "receiver_confirms_explicit_false",
			requestBody: helpers.ConfirmReturnRequest{IsOwner: &receiver},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().ConfirmReturn("item1", false).
					Return(model.Item{ItemID: "item1", ReceiverConfirmed: true, ReceiverID: "dave", ReceiverName: "dave"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "return confirmed",
		},
		{
			name:           "missing_is_owner",
			requestBody:    `{}`,
			mockSetup:      func(m *MockSharingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "item_not_found",
			requestBody: helpers.ConfirmReturnRequest{IsOwner: &owner},
			mockSetup: func(m *MockSharingServiceInterface) {
				m.EXPECT().ConfirmReturn("item1", true).
					Return(model.Item{}, sharingerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router, mockService, _ := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doJSON(t, router, http.MethodPost, "/items/item1/return", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				// the receiver stays on the item even mid-return
				require.Equal(t, "dave", data["receiver_name"])
			}
		})
	}
}

// Test NavigateHandler and CurrentPageHandler
func TestPageHandlers(t *testing.T) {
	t.Run("navigate_valid_page", func(t *testing.T) {
		router, _, nav := newTestRouter(t)

		w, resp := doJSON(t, router, http.MethodPut, "/page", helpers.NavigateRequest{Page: "lend"})

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "lend", data["page"])
		require.Equal(t, navigation.PageLend, nav.Current())
	})

	t.Run("navigate_unknown_page", func(t *testing.T) {
		router, _, nav := newTestRouter(t)

		w, resp := doJSON(t, router, http.MethodPut, "/page", helpers.NavigateRequest{Page: "settings"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["message"], "unknown page")
		require.Equal(t, navigation.PageLogin, nav.Current())
	})

	t.Run("current_page", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		w, resp := doJSON(t, router, http.MethodGet, "/page", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "login", data["page"])
	})
}

// Test ProfileHandler
func TestProfileHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mockService, _ := newTestRouter(t)
		mockService.EXPECT().Profile().Return(sharing.Profile{
			User: model.User{Username: "carol", Medals: 12},
			Tier: "Gold Member",
		}, nil)

		w, resp := doJSON(t, router, http.MethodGet, "/profile", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "Gold Member", data["tier"])
	})

	t.Run("no_session", func(t *testing.T) {
		router, mockService, _ := newTestRouter(t)
		mockService.EXPECT().Profile().
			Return(sharing.Profile{}, sharingerrors.ErrNoActiveUser)

		w, resp := doJSON(t, router, http.MethodGet, "/profile", nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, resp["message"], "no active session")
	})
}

// Generic error mapping sanity check
func TestHandlers_InternalError(t *testing.T) {
	router, mockService, _ := newTestRouter(t)
	mockService.EXPECT().RequestItem("item1").
		Return(model.Item{}, errors.New("store failure"))

	w, resp := doJSON(t, router, http.MethodPost, "/items/item1/request", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, resp["message"], "internal server error")
}
