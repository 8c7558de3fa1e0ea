package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/schema"
)

func (s *Server) submitEnvironmentalSample(c *gin.Context) {
	var params struct {
		SampleType          string  `json:"sample_type" binding:"required"`
		CollectionDate      string  `json:"collection_date"`
		Latitude            float64 `json:"latitude" binding:"required"`
		Longitude           float64 `json:"longitude" binding:"required"`
		LocationDescription string  `json:"location_description"`
		Region              string  `json:"region"`
		PathogenDetected    bool    `json:"pathogen_detected"`
		Pathogen            string  `json:"pathogen"`
		PathogenLoad        float64 `json:"pathogen_load"`
		Notes               string  `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	collectionTS := time.Now().UTC().Unix()
	if params.CollectionDate != "" {
		if t, err := ingest.ParseDate(params.CollectionDate); err == nil {
			collectionTS = t.Unix()
		}
	}

	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	sample := schema.EnvironmentalSample{
		SampleType:          params.SampleType,
		CollectionTS:        collectionTS,
		Location:            schema.NewPoint(params.Latitude, params.Longitude),
		LocationDescription: params.LocationDescription,
		Region:              params.Region,
		PathogenDetected:    params.PathogenDetected,
		PathogenName:        params.Pathogen,
		PathogenLoad:        params.PathogenLoad,
		Notes:               params.Notes,
	}

	saved, err := s.store.ProcessEnvironmentalSample(user.ID.String(), sample)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": saved})
}

func (s *Server) listEnvironmentalSamples(c *gin.Context) {
	var samples []schema.EnvironmentalSample
	var err error

	if c.Query("detected") == "true" {
		samples, err = s.mongoStore.ListDetectedSamples()
	} else {
		samples, err = s.mongoStore.ListEnvironmentalSamples()
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"samples": samples})
}
