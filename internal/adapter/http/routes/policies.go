package routes

import (
	"insurance_designer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies   = "/policies"
	PathDesignRuns = "/design-runs"
	PathOperations = "/operations"
)

func addPolicyRoutes(rg *gin.RouterGroup, policyHandler *handlers.PolicyHandler, designRunHandler *handlers.DesignRunHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("/design", policyHandler.Design)
		policies.POST("/clone", policyHandler.Clone)
		policies.GET("", policyHandler.List)
		policies.GET("/:id", policyHandler.Details)
		policies.GET("/:id"+PathDesignRuns, designRunHandler.ListByPolicyID)
	}

	runs := rg.Group(PathDesignRuns)
	{
		runs.GET("/:id", designRunHandler.GetByID)
	}
}

func addOperationRoutes(rg *gin.RouterGroup, policyHandler *handlers.PolicyHandler) {
	rg.POST(PathOperations, policyHandler.ExecuteOperation)
}
