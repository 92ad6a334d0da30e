package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextFor(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestPage(t *testing.T) {
	c, _ := contextFor(http.MethodGet, "/x", "")
	skip, limit, ok := Page(c)
	assert.True(t, ok)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 100, limit)

	c, _ = contextFor(http.MethodGet, "/x?skip=20&limit=5", "")
	skip, limit, ok = Page(c)
	assert.True(t, ok)
	assert.Equal(t, 20, skip)
	assert.Equal(t, 5, limit)

	for _, q := range []string{"skip=-1", "limit=0", "limit=5000", "limit=abc"} {
		c, w := contextFor(http.MethodGet, "/x?"+q, "")
		_, _, ok := Page(c)
		assert.False(t, ok, q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestBindJSON(t *testing.T) {
	type body struct {
		Email string `json:"email" validate:"required,email"`
	}

	c, _ := contextFor(http.MethodPost, "/x", `{"email":"a@example.com"}`)
	var ok body
	assert.True(t, BindJSON(c, &ok))

	c, w := contextFor(http.MethodPost, "/x", `{"email":"nope"}`)
	var bad body
	assert.False(t, BindJSON(c, &bad))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"email"`)
}

func TestUUIDQuery(t *testing.T) {
	c, _ := contextFor(http.MethodGet, "/x", "")
	id, ok := UUIDQuery(c, "client_id")
	assert.True(t, ok)
	assert.Nil(t, id)

	c, w := contextFor(http.MethodGet, "/x?client_id=42", "")
	_, ok = UUIDQuery(c, "client_id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
