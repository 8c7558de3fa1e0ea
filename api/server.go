package api

import (
	"context"
	"crypto/rsa"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/external/cadence"
	"github.com/openamr/surveillance-api/external/geoinfo"
	"github.com/openamr/surveillance-api/external/onesignal"
	"github.com/openamr/surveillance-api/ingest"
	"github.com/openamr/surveillance-api/logmodule"
	"github.com/openamr/surveillance-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SurveillanceCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	oneSignalClient *onesignal.OneSignalClient
	cadenceClient   *cadence.CadenceClient

	// http client for calling external services
	httpClient *http.Client

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	httpClient := &http.Client{
		Timeout:   5 * time.Minute,
		Transport: tr,
	}

	var geoClient geoinfo.GeoInfo
	if apiKey := viper.GetString("map.apikey"); apiKey != "" {
		client, err := geoinfo.New(apiKey)
		if err != nil {
			log.WithError(err).Error("create geo client")
		} else {
			geoClient = client
		}
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
	)

	normalizer := ingest.NewNormalizer(
		ingest.NewPatientHasher(viper.GetString("ingest.patient_salt")),
	)

	var cadenceClient *cadence.CadenceClient
	if viper.GetString("cadence.conn") != "" {
		cadenceClient = cadence.NewClient()
	}

	return &Server{
		store:              store.NewSurveillanceStore(store.NewUserRegistry(ormDB), mongoStore, normalizer),
		mongoStore:         mongoStore,
		jwtPrivateKey:      jwtKey,
		httpClient:         httpClient,
		oneSignalClient:    onesignal.NewClient(httpClient),
		cadenceClient:      cadenceClient,
		backgroundEnqueuer: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/me", s.userDetail)
	}

	facilityRoute := apiRoute.Group("/facilities")
	{
		facilityRoute.GET("", s.listFacilities)
		facilityRoute.GET("/:facilityID", s.getFacility)
		facilityRoute.POST("", s.requireRoles(roleAdmin, rolePublicHealthOfficial), s.createFacility)
	}

	catalogRoute := apiRoute.Group("/catalog")
	{
		catalogRoute.GET("/pathogens", s.listPathogens)
		catalogRoute.GET("/antibiotics", s.listAntibiotics)
	}

	reportRoute := apiRoute.Group("/lab-reports")
	reportRoute.Use(s.requireRoles(roleAdmin, roleLabTechnician))
	{
		reportRoute.POST("", s.ingestLabBatch)
	}

	environmentRoute := apiRoute.Group("/environment")
	{
		environmentRoute.GET("/samples", s.listEnvironmentalSamples)
		environmentRoute.POST("/samples",
			s.requireRoles(roleAdmin, roleFieldWorker, rolePublicHealthOfficial),
			s.submitEnvironmentalSample)
	}

	dashboardRoute := apiRoute.Group("/dashboard")
	{
		dashboardRoute.GET("/summary", s.dashboardSummary)
		dashboardRoute.GET("/stats", s.aggregateStats)
		dashboardRoute.GET("/map", s.resistanceMap)
		dashboardRoute.GET("/trends", s.monthlyTrends)
		dashboardRoute.GET("/antibiotic-effectiveness", s.antibioticEffectiveness)
		dashboardRoute.GET("/pathogen-distribution", s.pathogenDistribution)
	}

	apiRoute.GET("/treatment-options", s.treatmentOptions)

	outbreakRoute := apiRoute.Group("/outbreaks")
	outbreakRoute.Use(s.requireRoles(roleAdmin, roleDoctor, rolePublicHealthOfficial))
	{
		outbreakRoute.GET("", s.detectOutbreaks)
	}

	alertRoute := apiRoute.Group("/alerts")
	{
		alertRoute.GET("", s.listAlerts)
		alertRoute.GET("/unread-count", s.unreadAlertCount)
		alertRoute.PATCH("/:alertID/acknowledge", s.acknowledgeAlert)
		alertRoute.PATCH("/:alertID/resolve", s.resolveAlert)
		alertRoute.DELETE("/:alertID", s.dismissAlert)
		alertRoute.POST("/broadcast",
			s.requireRoles(roleAdmin, rolePublicHealthOfficial),
			s.broadcastAlert)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/users", s.userRegister)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/summary", s.dashboardSummary)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "OpenAMR 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
