package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listPathogens(c *gin.Context) {
	pathogens, err := s.mongoStore.ListPathogens()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"pathogens": pathogens})
}

func (s *Server) listAntibiotics(c *gin.Context) {
	antibiotics, err := s.mongoStore.ListAntibiotics()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"antibiotics": antibiotics})
}
