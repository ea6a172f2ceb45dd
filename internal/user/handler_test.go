package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apphttp "github.com/km-arc/go-beans/framework/http"
	"github.com/km-arc/go-beans/framework/routing"
	"github.com/km-arc/go-beans/internal/user"
)

func serve(t *testing.T, repo user.Repository, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := routing.New(zap.NewNop())
	user.NewHandler(repo, zap.NewNop()).Routes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHandler_ListReturnsAllUsers(t *testing.T) {
	repo := &fakeRepo{saved: user.Fixtures}

	rr := serve(t, repo, "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, apphttp.ContentTypeJSON, rr.Header().Get("Content-Type"))

	var got []user.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, user.Fixtures, got)
}

func TestHandler_ListEmptyIsArray(t *testing.T) {
	rr := serve(t, &fakeRepo{}, "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHandler_ListUsesJSONFieldNames(t *testing.T) {
	rr := serve(t, &fakeRepo{saved: []user.User{{Login: "jlong", Firstname: "Josh", Lastname: "Long"}}}, "/")

	assert.JSONEq(t, `[{"login":"jlong","firstname":"Josh","lastname":"Long"}]`, rr.Body.String())
}

func TestHandler_ListRepositoryFailure(t *testing.T) {
	rr := serve(t, &fakeRepo{failOn: "findAll"}, "/")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Server Error."}`, rr.Body.String())
}

func TestHandler_Show(t *testing.T) {
	repo := &fakeRepo{saved: user.Fixtures}

	rr := serve(t, repo, "/users/smaldini")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"login":"smaldini","firstname":"Stéphane","lastname":"Maldini"}`, rr.Body.String())

	rr = serve(t, repo, "/users/nobody")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Not found."}`, rr.Body.String())
}

func TestHandler_ShowRepositoryFailure(t *testing.T) {
	rr := serve(t, &fakeRepo{failOn: "findOne"}, "/users/jlong")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_Count(t *testing.T) {
	rr := serve(t, &fakeRepo{saved: user.Fixtures}, "/users/count")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":4}`, rr.Body.String())

	rr = serve(t, &fakeRepo{failOn: "count"}, "/users/count")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
