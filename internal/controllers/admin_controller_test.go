package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &AdminController{}
	r := gin.New()
	r.POST("/admin/users", ctrl.CreateUser)
	return r
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	r := adminTestRouter()
	w := doJSON(r, http.MethodPost, "/admin/users",
		`{"email":"x@y.ro","password":"secret1","firstName":"A","lastName":"B","role":"Janitor"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid role")
}

func TestCreateUserRequiresGroupForStudents(t *testing.T) {
	r := adminTestRouter()
	w := doJSON(r, http.MethodPost, "/admin/users",
		`{"email":"x@y.ro","password":"secret1","firstName":"A","lastName":"B","role":"Student"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "groupId")
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	r := adminTestRouter()
	w := doJSON(r, http.MethodPost, "/admin/users",
		`{"email":"x@y.ro","password":"abc","firstName":"A","lastName":"B","role":"Secretary"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
