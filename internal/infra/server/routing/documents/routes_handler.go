package documents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	documentController "github.com/lloydmeta/docsproxy/internal/api/controllers/document"
	"github.com/lloydmeta/docsproxy/internal/api/models/document"
	domainDocument "github.com/lloydmeta/docsproxy/internal/domain/document"
	"github.com/lloydmeta/docsproxy/internal/infra/server/routing"
)

var subPath = "api"

var documentIdKey = "id"
var idQueryKey = "id"
var revQueryKey = "rev"

type RoutesHandler struct {
	Controller documentController.Controller
}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	subGroup := routerGroup.Group(subPath)
	subGroup.POST("/add", h.create)
	subGroup.GET("/data", h.list)
	subGroup.PUT("/update/:"+documentIdKey, h.update)
	subGroup.DELETE("/delete", h.delete)
	subGroup.DELETE("/delete/:"+documentIdKey, h.delete)
}

// @Summary Add a new Document
// @ID create-document
// @Tags documents
// @Description Submits any JSON object as a new Document
// @Accept  json
// @Produce  json
// @Param   document body document.Document true "The request body"
// @Success 200 {object} document.WriteResult
// @Failure 400 {object} common.Body "Invalid JSON"
// @Failure 500 {object} common.Body "The store failed"
// @Router /api/add [post]
func (h *RoutesHandler) create(c *gin.Context) {
	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		if r, err := h.Controller.Create(c.Request.Context(), doc); err == nil {
			c.JSON(http.StatusOK, r)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}

// @Summary List Documents
// @ID list-documents
// @Tags documents
// @Description Lists the bodies of every Document
// @Produce  json
// @Success 200 {array} document.Document
// @Failure 500 {object} common.Body "The store failed"
// @Router /api/data [get]
func (h *RoutesHandler) list(c *gin.Context) {
	if docs, err := h.Controller.List(c.Request.Context()); err == nil {
		c.JSON(http.StatusOK, docs)
	} else {
		routing.HandleApiErr(c, err)
	}
}

// @Summary Update a Document
// @ID update-document
// @Tags documents
// @Description Writes a Document under the given id. The _rev in the body, if any, is the revision being replaced.
// @Accept  json
// @Produce  json
// @Param   id path string true "The id of the Document"
// @Param   document body document.Document true "The request body"
// @Success 200 {object} document.WriteResult
// @Failure 400 {object} common.Body "Invalid JSON"
// @Failure 500 {object} common.Body "The store failed, e.g. on a revision conflict"
// @Router /api/update/{id} [put]
func (h *RoutesHandler) update(c *gin.Context) {
	var id = domainDocument.Id(c.Param(documentIdKey))
	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		if r, err := h.Controller.Update(c.Request.Context(), id, doc); err == nil {
			c.JSON(http.StatusOK, r)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}

// @Summary Delete a Document
// @ID delete-document
// @Tags documents
// @Description Deletes the given revision of a Document
// @Produce  json
// @Param   id query string true "The id of the Document"
// @Param   rev query string true "The current revision of the Document"
// @Success 200 {object} document.WriteResult
// @Failure 500 {object} common.Body "The store failed, e.g. on a revision conflict"
// @Router /api/delete [delete]
func (h *RoutesHandler) delete(c *gin.Context) {
	idStr, ok := c.GetQuery(idQueryKey)
	if !ok {
		idStr = c.Param(documentIdKey)
	}
	var rev *domainDocument.Rev
	if revStr, ok := c.GetQuery(revQueryKey); ok {
		r := domainDocument.Rev(revStr)
		rev = &r
	}
	if r, err := h.Controller.Delete(c.Request.Context(), domainDocument.Id(idStr), rev); err == nil {
		c.JSON(http.StatusOK, r)
	} else {
		routing.HandleApiErr(c, err)
	}
}
