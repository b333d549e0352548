package assessments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"synapflow-backend/internal/plan"
	"synapflow-backend/internal/scoring"
	"synapflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.create)
	rg.GET("/assessments/:id", h.get)
	rg.PUT("/assessments/:id/departments", h.setDepartments)
	rg.PUT("/assessments/:id/weights", h.setWeights)
	rg.PUT("/assessments/:id/responses", h.upsertResponse)
	rg.GET("/assessments/:id/responses", h.listResponses)
	rg.GET("/assessments/:id/scorecard", h.scorecard)
	rg.POST("/assessments/:id/plan", h.generatePlan)
	rg.GET("/assessments/:id/plan", h.getPlan)
	rg.PATCH("/assessments/:id/plan/items/:itemID", h.updatePlanItem)
	rg.POST("/assessments/:id/plan/summary", h.generateSummary)
	rg.GET("/assessments/:id/plan/suggestions", h.suggestions)
	rg.POST("/assessments/:id/plan/suggestions/accept", h.acceptSuggestions)
	rg.GET("/assessments/:id/history", h.history)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "failed to create assessment")
		return
	}
	respond.JSON(c, http.StatusCreated, a)
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch assessment")
		return
	}
	respond.OK(c, a)
}

func (h *Handler) setDepartments(c *gin.Context) {
	var body struct {
		Departments []string `json:"departments"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.SetDepartments(c.Request.Context(), c.Param("id"), body.Departments)
	if err != nil {
		h.fail(c, err, "failed to update departments")
		return
	}
	respond.OK(c, a)
}

func (h *Handler) setWeights(c *gin.Context) {
	var body struct {
		CategoryWeights   map[string]float64 `json:"categoryWeights"`
		DepartmentWeights map[string]float64 `json:"departmentWeights"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.SetWeights(c.Request.Context(), c.Param("id"), body.CategoryWeights, body.DepartmentWeights)
	if err != nil {
		h.fail(c, err, "failed to update weights")
		return
	}
	respond.OK(c, a)
}

func (h *Handler) upsertResponse(c *gin.Context) {
	var in ResponseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	row, err := h.Svc.UpsertResponse(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err, "failed to save response")
		return
	}
	respond.OK(c, row)
}

func (h *Handler) listResponses(c *gin.Context) {
	rows, err := h.Svc.Responses(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list responses")
		return
	}
	respond.OK(c, gin.H{"responses": rows})
}

func (h *Handler) scorecard(c *gin.Context) {
	sc, err := h.Svc.Scorecard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to compute scorecard")
		return
	}
	respond.OK(c, sc)
}

func (h *Handler) generatePlan(c *gin.Context) {
	p, err := h.Svc.GeneratePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to generate plan")
		return
	}
	respond.JSON(c, http.StatusCreated, p)
}

func (h *Handler) getPlan(c *gin.Context) {
	p, err := h.Svc.Plan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch plan")
		return
	}
	respond.OK(c, p)
}

func (h *Handler) updatePlanItem(c *gin.Context) {
	var body struct {
		Status        plan.Status `json:"status"`
		Justification string      `json:"justification"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	item, err := h.Svc.UpdatePlanItemStatus(c.Request.Context(), c.Param("id"), c.Param("itemID"), body.Status, body.Justification)
	if err != nil {
		h.fail(c, err, "failed to update plan item")
		return
	}
	respond.OK(c, item)
}

func (h *Handler) generateSummary(c *gin.Context) {
	summary, err := h.Svc.GenerateSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to generate summary")
		return
	}
	respond.OK(c, gin.H{"executiveSummary": summary})
}

func (h *Handler) suggestions(c *gin.Context) {
	suggestions, err := h.Svc.Suggestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to compute suggestions")
		return
	}
	respond.OK(c, gin.H{"suggestions": suggestions})
}

func (h *Handler) acceptSuggestions(c *gin.Context) {
	var body struct {
		SuggestionIDs []string `json:"suggestionIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.AcceptSuggestions(c.Request.Context(), c.Param("id"), body.SuggestionIDs)
	if err != nil {
		h.fail(c, err, "failed to accept suggestions")
		return
	}
	respond.OK(c, p)
}

func (h *Handler) history(c *gin.Context) {
	entries, err := h.Svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch score history")
		return
	}
	respond.OK(c, gin.H{"history": entries})
}

// fail maps service errors onto the shared error envelope.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "assessment or plan not found", nil)
	case errors.Is(err, ErrJustificationRequired):
		respond.Error(c, http.StatusBadRequest, "justification_required", "a justification is required to close a plan item", nil)
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, scoring.ErrInvalidState), errors.Is(err, plan.ErrInvalidState):
		respond.Error(c, http.StatusConflict, "invalid_state", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
