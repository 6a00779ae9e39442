package projection

import (
	"errors"
	"net/http"

	httperr "github.com/aevon-lab/contact-ledger/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/contacts", s.HandleListContacts)
	r.GET("/v1/contacts/:email", s.HandleGetContact)
	r.GET("/v1/report", s.HandleReport)
}

// HandleListContacts handles GET /v1/contacts
// Query parameters: platform, replied
func (s *Service) HandleListContacts(c *gin.Context) {
	var query ContactQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	contacts, err := s.Contacts(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to aggregate contacts",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ContactListResponse{Count: len(contacts), Contacts: contacts})
}

// HandleGetContact handles GET /v1/contacts/:email
func (s *Service) HandleGetContact(c *gin.Context) {
	contact, err := s.Contact(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpContactNotFoundError,
				Message:   "Contact not found",
				Details:   map[string]interface{}{"email": c.Param("email")},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to aggregate contact",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// HandleReport handles GET /v1/report
func (s *Service) HandleReport(c *gin.Context) {
	summary, err := s.Report(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to build report",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
