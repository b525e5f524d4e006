package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/dishalabs/disha-backend/internal/calc"
	"github.com/dishalabs/disha-backend/internal/catalog"
	"github.com/dishalabs/disha-backend/internal/chat"
	"github.com/dishalabs/disha-backend/internal/database"
	"github.com/dishalabs/disha-backend/internal/flows"
	"github.com/dishalabs/disha-backend/internal/logger"
	"github.com/dishalabs/disha-backend/internal/model"
	"github.com/dishalabs/disha-backend/internal/recommend"
)

// Handler handles HTTP requests.
type Handler struct {
	log         *logger.Logger
	db          *database.Queries
	catalog     *catalog.Catalog
	recommender *recommend.Service
	chats       *chat.Manager
	flows       *flows.Client
	rabbitConn  *amqp.Connection // nil when the async report path is disabled
}

func NewHandler(
	log *logger.Logger,
	db *database.Queries,
	cat *catalog.Catalog,
	recommender *recommend.Service,
	chats *chat.Manager,
	flowClient *flows.Client,
	rabbitConn *amqp.Connection,
) *Handler {
	return &Handler{
		log:         log,
		db:          db,
		catalog:     cat,
		recommender: recommender,
		chats:       chats,
		flows:       flowClient,
		rabbitConn:  rabbitConn,
	}
}

// generationStatus maps an error from the generative boundary onto an HTTP
// status. Generation failures are user-visible but non-fatal.
func (h *Handler) generationStatus(err error) int {
	if flows.IsGenerationError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// GetCatalog lists the full guidance catalog.
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.catalog.Entries()})
}

// PostRecommendations runs the synchronous recommendation path.
func (h *Handler) PostRecommendations(c *gin.Context) {
	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.recommender.Recommend(c.Request.Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrInvalidProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error("recommendation failed", "error", err)
			c.JSON(h.generationStatus(err), gin.H{"error": "Could not generate recommendations, please try again"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

type reportJobRequest struct {
	UserID  string            `json:"userId"`
	Profile model.UserProfile `json:"profile"`
}

// PostReportJobs enqueues an async counseling report.
func (h *Handler) PostReportJobs(c *gin.Context) {
	if h.rabbitConn == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Async reports are not enabled"})
		return
	}
	var req reportJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if err := recommend.ValidateProfile(req.Profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := ReportJobMessage{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UserID:    userID,
		Profile:   req.Profile,
	}
	if err := h.db.CreateReportJob(c.Request.Context(), database.CreateReportJobParams{
		ID:     job.ID,
		UserID: job.UserID,
		Status: statusQueued,
	}); err != nil {
		h.log.Error("failed to create report job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create report job"})
		return
	}
	if err := h.publishReportJob(job); err != nil {
		h.log.Error("failed to enqueue report job", "job_id", job.ID, "error", err)
		h.markJobFailed(c, job.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not enqueue report job"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"jobId": job.ID, "status": statusQueued})
}

func (h *Handler) publishReportJob(job ReportJobMessage) error {
	ch, err := h.rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(reportQueue, true, false, false, false, nil); err != nil {
		return err
	}
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return ch.Publish("", reportQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (h *Handler) markJobFailed(c *gin.Context, jobID uuid.UUID) {
	if err := h.db.UpdateReportJobStatus(c.Request.Context(), database.UpdateReportJobStatusParams{
		Status: statusFailed,
		ID:     jobID,
	}); err != nil {
		h.log.Warn("failed to mark job failed", "job_id", jobID, "error", err)
	}
}

// GetReportJob returns a job's status plus the result once completed.
func (h *Handler) GetReportJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}
	job, err := h.db.GetReportJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := gin.H{"jobId": job.ID, "status": job.Status, "createdAt": job.CreatedAt}
	if job.Status == statusCompleted {
		result, err := h.db.GetReportResultByJob(c.Request.Context(), jobID)
		if err == nil {
			resp["result"] = json.RawMessage(result.Result)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// PostChatSessions opens a chat session for a user context.
func (h *Handler) PostChatSessions(c *gin.Context) {
	var userCtx model.UserContext
	if err := c.ShouldBindJSON(&userCtx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	s := h.chats.Create(userCtx)
	c.JSON(http.StatusCreated, gin.H{"sessionId": s.ID})
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

// PostChatMessage runs one chat turn on an existing session.
func (h *Handler) PostChatMessage(c *gin.Context) {
	s, err := h.chats.Get(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := s.Send(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is empty"})
		case errors.Is(err, chat.ErrTurnInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "A reply is already being generated for this session"})
		default:
			h.log.Error("chat turn failed", "session_id", s.ID, "error", err)
			c.JSON(h.generationStatus(err), gin.H{"error": "Could not generate a reply, please resend your message"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetChatHistory returns the full ordered history of a session.
func (h *Handler) GetChatHistory(c *gin.Context) {
	s, err := h.chats.Get(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID, "messages": s.History()})
}

// DeleteChatSession drops a session.
func (h *Handler) DeleteChatSession(c *gin.Context) {
	h.chats.Close(c.Param("sessionId"))
	c.Status(http.StatusNoContent)
}

type quizGenerateRequest struct {
	ClassLevel string `json:"classLevel"`
	Count      int    `json:"count"`
}

// PostQuizGenerate generates an aptitude quiz for a class level.
func (h *Handler) PostQuizGenerate(c *gin.Context) {
	var req quizGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ClassLevel != "10" && req.ClassLevel != "12" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classLevel must be \"10\" or \"12\""})
		return
	}
	set, err := h.flows.QuizQuestions(c.Request.Context(), req.ClassLevel, req.Count)
	if err != nil {
		h.log.Error("quiz generation failed", "error", err)
		c.JSON(h.generationStatus(err), gin.H{"error": "Could not generate quiz, please try again"})
		return
	}
	c.JSON(http.StatusOK, set)
}

type quizAnswersRequest struct {
	UserID  string            `json:"userId"`
	Answers map[string]string `json:"answers"`
}

// PostQuizAnswers stores a user's quiz answers.
func (h *Handler) PostQuizAnswers(c *gin.Context) {
	var req quizAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No answers supplied"})
		return
	}
	raw, err := json.Marshal(req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answers"})
		return
	}
	if err := h.db.UpsertQuizAnswers(c.Request.Context(), database.UpsertQuizAnswersParams{
		UserID:  userID,
		Answers: raw,
	}); err != nil {
		h.log.Error("failed to save quiz answers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save answers"})
		return
	}
	c.Status(http.StatusNoContent)
}

type customPathRequest struct {
	Profile       model.UserProfile `json:"profile"`
	DreamCareer   string            `json:"dreamCareer"`
	AllowFallback bool              `json:"allowFallback"`
}

// PostCustomPath explores a free-text career. The client chooses between
// the propagate and static-fallback failure policies.
func (h *Handler) PostCustomPath(c *gin.Context) {
	var req customPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.DreamCareer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dreamCareer is required"})
		return
	}
	policy := flows.FallbackNone
	if req.AllowFallback {
		policy = flows.FallbackStatic
	}
	path, err := h.flows.CustomCareerPath(c.Request.Context(), req.Profile, req.DreamCareer, policy)
	if err != nil {
		h.log.Error("custom path generation failed", "error", err)
		c.JSON(h.generationStatus(err), gin.H{"error": "Could not generate career path, please try again"})
		return
	}
	c.JSON(http.StatusOK, path)
}

type emiRequest struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annualRate"`
	TenureMonths int     `json:"tenureMonths"`
}

// PostCalcEMI runs the loan EMI calculator.
func (h *Handler) PostCalcEMI(c *gin.Context) {
	var req emiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	result, err := calc.EMI(req.Principal, req.AnnualRate, req.TenureMonths)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostCalcCost runs the education cost planner.
func (h *Handler) PostCalcCost(c *gin.Context) {
	var req calc.CostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	result, err := calc.EducationCost(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type saveCollegeRequest struct {
	UserID      string `json:"userId"`
	CollegeName string `json:"collegeName"`
}

// PostSavedColleges saves a college for a user.
func (h *Handler) PostSavedColleges(c *gin.Context) {
	var req saveCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if req.CollegeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collegeName is required"})
		return
	}
	if err := h.db.CreateSavedCollege(c.Request.Context(), database.CreateSavedCollegeParams{
		ID:          uuid.New(),
		UserID:      userID,
		CollegeName: req.CollegeName,
	}); err != nil {
		h.log.Error("failed to save college", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save college"})
		return
	}
	c.Status(http.StatusCreated)
}

// GetSavedColleges lists a user's saved colleges.
func (h *Handler) GetSavedColleges(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	items, err := h.db.GetSavedCollegesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"colleges": items})
}

type saveCareerPathRequest struct {
	UserID   string          `json:"userId"`
	PathName string          `json:"pathName"`
	Detail   json.RawMessage `json:"detail"`
}

// PostSavedCareerPaths saves a career path for a user.
func (h *Handler) PostSavedCareerPaths(c *gin.Context) {
	var req saveCareerPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if req.PathName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pathName is required"})
		return
	}
	if err := h.db.CreateSavedCareerPath(c.Request.Context(), database.CreateSavedCareerPathParams{
		ID:       uuid.New(),
		UserID:   userID,
		PathName: req.PathName,
		Detail:   req.Detail,
	}); err != nil {
		h.log.Error("failed to save career path", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save career path"})
		return
	}
	c.Status(http.StatusCreated)
}

// GetSavedCareerPaths lists a user's saved career paths.
func (h *Handler) GetSavedCareerPaths(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	items, err := h.db.GetSavedCareerPathsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"careerPaths": items})
}

type profileRequest struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	UserType   string `json:"userType"`
	ClassLevel string `json:"classLevel"`
	Stream     string `json:"stream"`
	Location   string `json:"location"`
}

// PutProfile upserts a user profile.
func (h *Handler) PutProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if err := recommend.ValidateProfile(model.UserProfile{ClassLevel: req.ClassLevel}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.db.UpsertProfile(c.Request.Context(), database.UpsertProfileParams{
		UserID:     userID,
		Name:       req.Name,
		UserType:   req.UserType,
		ClassLevel: req.ClassLevel,
		Stream:     req.Stream,
		Location:   req.Location,
	}); err != nil {
		h.log.Error("failed to upsert profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save profile"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfile fetches a user profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	profile, err := h.db.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
