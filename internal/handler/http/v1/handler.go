package v1

import (
	"errors"
	"net/http"

	"github.com/YoussefElshafei/BridgeAid-Project/internal/config"
	"github.com/YoussefElshafei/BridgeAid-Project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService  service.IncidentService
	authService      service.AuthService
	volunteerService service.VolunteerService
	aidService       service.AidService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(incidentService service.IncidentService, authService service.AuthService, volunteerService service.VolunteerService, aidService service.AidService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  incidentService,
		authService:      authService,
		volunteerService: volunteerService,
		aidService:       aidService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Register a new user
// @Description Register a new account with email and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "Registration request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to register user in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registered", "email": user.Email})
}

// @Summary Log in
// @Description Exchange credentials for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to log in user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// @Summary Get current user
// @Description Return the email of the authenticated user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": emailFromContext(c)})
}

// @Summary List incident types
// @Description Fixed set of incident types for the reporting dropdown.
// @Tags Incidents
// @Produce json
// @Success 200 {object} IncidentTypesResponse
// @Router /incidents/types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, IncidentTypesResponse{IncidentTypes: h.incidentService.ListIncidentTypes()})
}

// @Summary Report an incident
// @Description Submit an incident report by address; the server geocodes it. The incident becomes publicly visible once enough distinct reporters confirm it.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} ReportIncidentResponse
// @Failure 400 {object} map[string]string "Invalid type, missing or unresolvable address"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Duplicate report within cooldown"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/report [post]
func (h *Handler) reportIncident(c *gin.Context) {
	var input ReportIncidentRequest
	log := h.logger.WithField("method", "reportIncident")

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.incidentService.SubmitReport(c.Request.Context(), userID, input.Type, input.Address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidIncidentType),
			errors.Is(err, service.ErrAddressRequired),
			errors.Is(err, service.ErrUnresolvableAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to submit report in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	resp := ReportIncidentResponse{
		Message:   "report accepted",
		ReportID:  result.Report.ID,
		Address:   result.Report.Address,
		Lat:       result.Report.Latitude,
		Lng:       result.Report.Longitude,
		Confirmed: result.Cluster.Confirmed,
	}
	if result.Cluster.Confirmed {
		resp.ConfirmedEntry = ClusterToConfirmedEntry(result.Cluster)
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List confirmed incidents
// @Description Public feed of confirmed incident clusters for the map, most recent first.
// @Tags Incidents
// @Produce json
// @Success 200 {object} ConfirmedListResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listConfirmed(c *gin.Context) {
	log := h.logger.WithField("method", "listConfirmed")

	feed, err := h.incidentService.ListConfirmed(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list confirmed incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ConfirmedListResponse{
		Confirmed: ClustersToConfirmedEntries(feed.Confirmed),
		Totals: TotalsResponse{
			Reports:   feed.TotalReports,
			Confirmed: len(feed.Confirmed),
		},
	})
}

// @Summary Get incident statistics
// @Description Aggregated report and confirmation counts over the configured time window.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		ReportCount:    stats.ReportCount,
		ConfirmedCount: stats.ConfirmedCount,
		ReporterCount:  stats.ReporterCount,
	})
}

// @Summary Register as a volunteer
// @Description Register the authenticated user as a volunteer. One registration per user.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param volunteer body RegisterVolunteerRequest true "Volunteer registration request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid request body or category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/register [post]
func (h *Handler) registerVolunteer(c *gin.Context) {
	var input RegisterVolunteerRequest
	log := h.logger.WithField("method", "registerVolunteer")

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteer, err := h.volunteerService.RegisterVolunteer(c.Request.Context(), userID, emailFromContext(c), input.LegalName, input.Location, input.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVolunteerExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidVolunteerCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to register volunteer in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "volunteer registered",
		"email":     volunteer.Email,
		"volunteer": VolunteerToResponse(volunteer),
	})
}

// @Summary List volunteers
// @Description List all registered volunteers.
// @Tags Volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VolunteersListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	log := h.logger.WithField("method", "listVolunteers")

	volunteers, err := h.volunteerService.ListVolunteers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list volunteers from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, VolunteersListResponse{Volunteers: VolunteersToResponses(volunteers)})
}

// @Summary Submit an aid request
// @Description Submit a request for aid on behalf of the authenticated user.
// @Tags Aid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AidRequestRequest true "Aid request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid request body or urgency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /aid/request [post]
func (h *Handler) submitAidRequest(c *gin.Context) {
	var input AidRequestRequest
	log := h.logger.WithField("method", "submitAidRequest")

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := DTOToAidRequestModel(input)
	request.UserID = userID
	if err := h.aidService.SubmitAidRequest(c.Request.Context(), request); err != nil {
		if errors.Is(err, service.ErrInvalidAidUrgency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to submit aid request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "aid request submitted", "request_id": request.ID})
}

// @Summary List aid requests
// @Description List aid requests for coordinators, most urgent first.
// @Tags Aid
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AidRequestsListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /aid/requests [get]
func (h *Handler) listAidRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listAidRequests")

	requests, err := h.aidService.ListAidRequests(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list aid requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AidRequestsListResponse{Requests: AidRequestsToResponses(requests)})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
