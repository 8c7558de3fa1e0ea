package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/background"
	"github.com/openamr/surveillance-api/schema"
	"github.com/openamr/surveillance-api/store"
)

func (s *Server) listAlerts(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	filter := store.AlertFilter{
		UnreadOnly: c.Query("unread") == "true",
		AlertType:  c.Query("type"),
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.ParseInt(v, 10, 64); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	alerts, err := s.mongoStore.ListAlerts(user.ID.String(), filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func (s *Server) unreadAlertCount(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	count, err := s.mongoStore.CountUnreadAlerts(user.ID.String())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (s *Server) acknowledgeAlert(c *gin.Context) {
	s.updateAlert(c, s.mongoStore.AcknowledgeAlert)
}

func (s *Server) resolveAlert(c *gin.Context) {
	s.updateAlert(c, s.mongoStore.ResolveAlert)
}

func (s *Server) dismissAlert(c *gin.Context) {
	s.updateAlert(c, s.mongoStore.DismissAlert)
}

func (s *Server) updateAlert(c *gin.Context, update func(string, primitive.ObjectID) error) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUserNotFound)
		return
	}

	alertID, err := primitive.ObjectIDFromHex(c.Param("alertID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	err = update(user.ID.String(), alertID)
	if err == store.ErrAlertNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorAlertNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// broadcastAlert lets officials push a manual alert to whole roles.
func (s *Server) broadcastAlert(c *gin.Context) {
	var params struct {
		Title    string   `json:"title" binding:"required"`
		Message  string   `json:"message" binding:"required"`
		Severity int      `json:"severity"`
		Region   string   `json:"region"`
		Roles    []string `json:"roles" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	roles := make([]schema.UserRole, 0, len(params.Roles))
	for _, r := range params.Roles {
		role := schema.UserRole(r)
		if !schema.ValidRole(role) {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownUserRole)
			return
		}
		roles = append(roles, role)
	}

	severity := params.Severity
	if severity < 1 || severity > 5 {
		severity = 3
	}

	payload := schema.AlertPayload{
		Title:     params.Title,
		Message:   params.Message,
		AlertType: schema.AlertTypeManual,
		Severity:  severity,
		Region:    params.Region,
	}

	created, err := s.store.BroadcastAlert(payload, roles)
	if shouldInterupt(err, c) {
		return
	}

	if s.backgroundEnqueuer != nil {
		if err := background.EnqueueAlertNotification(s.backgroundEnqueuer, payload, created); err != nil {
			log.WithError(err).Error("enqueue alert notification")
		}
	}

	c.JSON(http.StatusOK, gin.H{"recipients": created})
}
