package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/schema"
	"github.com/openamr/surveillance-api/store"
)

func (s *Server) createFacility(c *gin.Context) {
	var params struct {
		Name         string  `json:"name" binding:"required"`
		FacilityType string  `json:"facility_type" binding:"required"`
		Address      string  `json:"address"`
		City         string  `json:"city"`
		State        string  `json:"state"`
		Country      string  `json:"country"`
		Latitude     float64 `json:"latitude"`
		Longitude    float64 `json:"longitude"`
		ContactEmail string  `json:"contact_email"`
		ContactPhone string  `json:"contact_phone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	facility := schema.Facility{
		Name:         params.Name,
		FacilityType: params.FacilityType,
		Address:      params.Address,
		City:         params.City,
		State:        params.State,
		Country:      params.Country,
		ContactEmail: params.ContactEmail,
		ContactPhone: params.ContactPhone,
	}

	if params.Latitude != 0 || params.Longitude != 0 {
		location := schema.NewPoint(params.Latitude, params.Longitude)
		facility.Location = &location
	}

	created, err := s.mongoStore.CreateFacility(facility)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": created})
}

func (s *Server) getFacility(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("facilityID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	facility, err := s.mongoStore.GetFacility(id)
	if err == store.ErrFacilityNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorFacilityNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": facility})
}

func (s *Server) listFacilities(c *gin.Context) {
	facilities, err := s.mongoStore.ListFacilities()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}
