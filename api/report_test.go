package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/schema"
	"github.com/openamr/surveillance-api/store"
	"github.com/openamr/surveillance-api/store/mocks"
)

func ingestTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeUserMiddleware())
	router.POST("/", s.ingestLabBatch)
	return router
}

func TestIngestLabBatchHandler(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	s := Server{store: core}

	actor := schema.User{
		ID:       uuid.New(),
		Role:     schema.RoleLabTechnician,
		IsActive: true,
	}
	facilityID := primitive.NewObjectID()

	core.EXPECT().GetUser(gomock.Any()).Return(&actor, nil).Times(1)
	core.EXPECT().
		IngestLabBatch(facilityID, actor.ID.String(), gomock.Any()).
		Return(&store.IngestResult{
			Processed: 1,
			Rejected:  1,
			Alerts:    2,
			Errors:    []store.RecordError{{Index: 1, Reason: "missing required field: result"}},
		}, nil).Times(1)

	body := fmt.Sprintf(`{
		"facility_id": %q,
		"records": [
			{"pathogen": "E. coli", "antibiotic": "Ciprofloxacin", "result": "R"},
			{"pathogen": "E. coli", "antibiotic": "Ciprofloxacin"}
		]
	}`, facilityID.Hex())

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	ingestTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result store.IngestResult `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, jResp.Result.Processed)
	assert.Equal(t, 1, jResp.Result.Rejected)
	assert.Equal(t, 2, jResp.Result.Alerts)
}

func TestIngestLabBatchHandlerUnknownFacility(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	s := Server{store: core}

	actor := schema.User{ID: uuid.New(), Role: schema.RoleLabTechnician, IsActive: true}
	facilityID := primitive.NewObjectID()

	core.EXPECT().GetUser(gomock.Any()).Return(&actor, nil).Times(1)
	core.EXPECT().
		IngestLabBatch(facilityID, actor.ID.String(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: facility %s", store.ErrInvalidReference, facilityID.Hex())).
		Times(1)

	body := fmt.Sprintf(`{
		"facility_id": %q,
		"records": [{"pathogen": "E. coli", "antibiotic": "Ciprofloxacin", "result": "R"}]
	}`, facilityID.Hex())

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	ingestTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestIngestLabBatchHandlerEmptyBatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	s := Server{store: core}

	actor := schema.User{ID: uuid.New(), Role: schema.RoleLabTechnician, IsActive: true}
	core.EXPECT().GetUser(gomock.Any()).Return(&actor, nil).Times(1)

	body := fmt.Sprintf(`{"facility_id": %q, "records": []}`, primitive.NewObjectID().Hex())

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	ingestTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
