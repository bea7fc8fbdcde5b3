package routing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/docsproxy/internal/api/models/common"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(NoRoute)
	engine.NoMethod(NoMethod)
	NewTopLevelRoutesGroup(engine)
	return engine
}

func perform(r http.Handler, method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	resp := perform(setupRouter(), http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, resp.Body.String(), "/api/data")
}

func TestNoRoute(t *testing.T) {
	resp := perform(setupRouter(), http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body common.Body
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, "No such route.", body.Error)
	}
}

func TestNoMethod(t *testing.T) {
	resp := perform(setupRouter(), http.MethodPost, "/")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
