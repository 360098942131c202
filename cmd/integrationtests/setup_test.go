package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/navigation"
	sharing "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingService"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/server"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory store for
// integration testing. The navigator is returned so flows can assert on the
// current page.
func SetupTestRouter() (*gin.Engine, *navigation.Navigator) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	service := sharing.NewSharingService(st)
	nav := navigation.NewNavigator()
	router := server.SetupRouter(service, nav)
	return router, nav
}

// SetupTestRouterWithItems initializes the router and seeds the store with items.
func SetupTestRouterWithItems(items ...model.Item) (*gin.Engine, *navigation.Navigator) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()

	for i := len(items) - 1; i >= 0; i-- {
		st.PrependItem(items[i])
	}

	service := sharing.NewSharingService(st)
	nav := navigation.NewNavigator()
	router := server.SetupRouter(service, nav)
	return router, nav
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Login starts a session for the given member and fails the test on error
func Login(t *testing.T, router *gin.Engine, username string) {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, router, "POST", "/session", map[string]string{
		"username": username,
		"password": "pw",
		"pincode":  "12345",
	})
	if w.Code != 201 {
		t.Fatalf("login for %s failed with status %d", username, w.Code)
	}
}
