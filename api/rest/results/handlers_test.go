package results

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studypilot/server/internal/generator"
	"github.com/studypilot/server/internal/transfer"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(&router.RouterGroup)
	return router
}

func getView(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/results/view"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestViewHandler_RoundTrip(t *testing.T) {
	router := setupRouter()

	original := generator.Result{
		Quiz: []generator.QuizQuestion{{
			Question: "Which planet is largest?",
			Options:  []string{"Mars", "Jupiter", "Venus", "Earth"},
			Answer:   "Jupiter",
		}},
	}

	token, err := transfer.Encode(original)
	require.NoError(t, err)

	w := getView(router, "?data="+token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, original.Quiz, resp.Result.Quiz)
}

func TestViewHandler_MissingToken(t *testing.T) {
	router := setupRouter()

	w := getView(router, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":null}`, w.Body.String())
}

func TestViewHandler_MalformedToken(t *testing.T) {
	router := setupRouter()

	w := getView(router, "?data=!!!not-base64!!!")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":null}`, w.Body.String())
}
