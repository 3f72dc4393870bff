package routes

import (
	"net/http"

	"concessionaria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals         = "/proposals"
	PathProposalApprovals = "/proposal-approvals"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, approvalHandler *handlers.ApprovalHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.SearchProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
	}

	rg.GET(PathProposalApprovals, approvalHandler.SearchApprovals)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
