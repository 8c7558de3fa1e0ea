package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/store"
)

// statFilterFromQuery builds an aggregation filter out of the optional
// query parameters shared by the dashboard endpoints.
func statFilterFromQuery(c *gin.Context) (store.StatFilter, bool) {
	filter := store.StatFilter{Region: c.Query("region")}

	if v := c.Query("pathogen_id"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return filter, false
		}
		filter.PathogenID = id
	}

	if v := c.Query("facility_id"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return filter, false
		}
		filter.FacilityID = id
	}

	if v := c.Query("start"); v != "" {
		t, err := ingest.ParseDate(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return filter, false
		}
		filter.Start = t.Unix()
	}

	if v := c.Query("end"); v != "" {
		t, err := ingest.ParseDate(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return filter, false
		}
		filter.End = t.Unix()
	}

	return filter, true
}

func (s *Server) dashboardSummary(c *gin.Context) {
	summary, err := s.mongoStore.DashboardSummary()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

func (s *Server) aggregateStats(c *gin.Context) {
	dimension := c.DefaultQuery("dimension", store.DimensionRegion)

	filter, ok := statFilterFromQuery(c)
	if !ok {
		return
	}

	stats, err := s.mongoStore.AggregateBy(dimension, filter)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownDimension, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dimension": dimension,
		"stats":     stats,
	})
}

func (s *Server) resistanceMap(c *gin.Context) {
	filter, ok := statFilterFromQuery(c)
	if !ok {
		return
	}

	points, err := s.mongoStore.ResistanceMap(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"map_points": points})
}

func (s *Server) monthlyTrends(c *gin.Context) {
	filter, ok := statFilterFromQuery(c)
	if !ok {
		return
	}

	points, err := s.mongoStore.MonthlyResistanceTrend(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": points})
}

func (s *Server) antibioticEffectiveness(c *gin.Context) {
	breakdown, err := s.mongoStore.AntibioticBreakdown()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"effectiveness": breakdown})
}

func (s *Server) pathogenDistribution(c *gin.Context) {
	distribution, err := s.mongoStore.PathogenDistribution()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution": distribution})
}

func (s *Server) treatmentOptions(c *gin.Context) {
	pathogenID, err := primitive.ObjectIDFromHex(c.Query("pathogen_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.mongoStore.GetPathogen(pathogenID); err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownPathogen, err)
		return
	}

	options, err := s.mongoStore.TreatmentOptions(pathogenID, c.Query("region"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}

// detectOutbreaks runs an on-demand detection scan over the rolling
// window. The periodic scan with alert fan-out runs in the background
// worker; this endpoint never creates alerts.
func (s *Server) detectOutbreaks(c *gin.Context) {
	signals, err := s.mongoStore.DetectOutbreaks(time.Now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"signals": signals})
}
