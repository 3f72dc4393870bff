package handlers

import (
	"net/http"

	response "concessionaria_xpto/internal/adapter/http/dto/response"
	"concessionaria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler lists proposals waiting for the caller's commercial approval.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// SearchApprovals godoc
// @Summary      List proposals pending commercial approval
// @Description  Scoped by the reviewer's approval checkpoints.
// @Tags         approvals
// @Produce      json
// @Success      200  {array}   response.ProposalApprovalResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposal-approvals [get]
func (h *ApprovalHandler) SearchApprovals(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	views, err := h.usecase.Search(c.Request.Context(), user)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposalApprovals(views))
}
