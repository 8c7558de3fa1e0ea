package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/store"
	"github.com/openamr/surveillance-api/utils"
)

// ingestLabBatch accepts a batch of raw lab records for one facility.
// An unknown facility rejects the whole batch; invalid records are
// reported per index while the rest of the batch is committed.
func (s *Server) ingestLabBatch(c *gin.Context) {
	var params struct {
		FacilityID string          `json:"facility_id" binding:"required"`
		Records    []ingest.Record `json:"records" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Records) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyBatch)
		return
	}

	facilityID, err := primitive.ObjectIDFromHex(params.FacilityID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	result, err := s.store.IngestLabBatch(facilityID, user.ID.String(), params.Records)
	if errors.Is(err, store.ErrInvalidReference) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReference, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if result.Alerts > 0 && s.cadenceClient != nil {
		// critical findings warrant a scan ahead of the hourly timer.
		// gin recycles c once the handler returns, so the detached
		// signal must not hold on to it
		go func() {
			if err := utils.TriggerOutbreakScan(*s.cadenceClient, context.Background()); err != nil {
				sentry.CaptureException(err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
