package contacts

import (
	"net/http"

	"baerstudio/internal/httperr"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SubmitContact handles POST /contact
func (c *Controller) SubmitContact(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httperr.Write(ctx, httperr.Validation("Missing or invalid contact field: "+err.Error()))
		return
	}

	contact, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ContactResponse{
		Success:   true,
		Message:   "Contact form submitted successfully",
		ContactID: contact.ID,
	})
}

// GetContact handles GET /contact/:id
func (c *Controller) GetContact(ctx *gin.Context) {
	contact, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Write(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"contact": contact})
}

// SetupContactRoutes configures contact-form routes
func SetupContactRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/contact", controller.SubmitContact)
	rg.GET("/contact/:id", controller.GetContact)
}
