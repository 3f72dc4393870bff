package handlers

import (
	"errors"
	"net/http"

	request "concessionaria_xpto/internal/adapter/http/dto/request"
	response "concessionaria_xpto/internal/adapter/http/dto/response"
	"concessionaria_xpto/internal/adapter/http/middleware"
	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase"
	"concessionaria_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errMissingActingUser      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
)

// ProposalHandler exposes the proposal aggregate over HTTP.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        proposal  body      request.ProposalRequest  true  "Proposal aggregate"
// @Success      201       {object}  response.ProposalResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	p, ok := bindProposal(c)
	if !ok {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), p, user)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(created))
}

// UpdateProposal godoc
// @Summary      Update a proposal
// @Description  Replaces the aggregate. A different status requests a transition.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Proposal id"
// @Param        proposal  body      request.ProposalRequest  true  "Proposal aggregate"
// @Success      200       {object}  response.ProposalResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id} [put]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	p, ok := bindProposal(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), p, user)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// DeleteProposal godoc
// @Summary      Soft delete a proposal
// @Tags         proposals
// @Param        id  path  string  true  "Proposal id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), user); err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProposal godoc
// @Summary      Load a proposal with all its children
// @Tags         proposals
// @Produce      json
// @Param        id  path      string  true  "Proposal id"
// @Success      200 {object}  response.ProposalResponse
// @Failure      404 {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetAggregate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// SearchProposals godoc
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Param        status           query  string  false  "Status"
// @Param        seller_id        query  string  false  "Seller id"
// @Param        lead_id          query  string  false  "Lead id"
// @Param        proposal_number  query  string  false  "Formatted proposal number"
// @Success      200  {array}   response.ProposalResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals [get]
func (h *ProposalHandler) SearchProposals(c *gin.Context) {
	var q request.ProposalSearchRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidProposalPayload)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		writeError(c, errInvalidProposalPayload)
		return
	}

	found, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(found))
}

func bindProposal(c *gin.Context) (entities.Proposal, bool) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.L().Info("[proposal][handler] invalid payload", zap.Error(err))
		writeError(c, errInvalidProposalPayload)
		return entities.Proposal{}, false
	}
	p, err := payload.ToEntity()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", err.Error(), http.StatusBadRequest))
		return entities.Proposal{}, false
	}
	return p, true
}

func actingUser(c *gin.Context) (entities.ActingUser, bool) {
	user, ok := middleware.ActingUser(c)
	if !ok {
		writeError(c, errMissingActingUser)
	}
	return user, ok
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapProposalError(err error) *pkg.AppError {
	var rv *usecase.RuleViolation
	switch {
	case errors.As(err, &rv):
		return pkg.NewDomainErrorSimple(rv.Code, rv.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSalesOrderNotFound):
		return pkg.NewDomainErrorSimple("SALES_ORDER_NOT_FOUND", "Sales order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
