package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/openamr/surveillance-api/schema"
)

// userRegister creates a user account. The route sits behind the admin
// api key, there is no self-service registration.
func (s *Server) userRegister(c *gin.Context) {
	var params struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Role        string `json:"role" binding:"required"`
		FullName    string `json:"full_name"`
		PhoneNumber string `json:"phone_number"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	role := schema.UserRole(params.Role)
	if !schema.ValidRole(role) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUserRole)
		return
	}

	user, err := s.store.CreateUser(params.Username, params.Email, role, params.FullName, params.PhoneNumber)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			abortWithEncoding(c, http.StatusConflict, errorUserTaken)
			return
		}
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}

func (s *Server) userDetail(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}
