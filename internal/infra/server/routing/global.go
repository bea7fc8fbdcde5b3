package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lloydmeta/docsproxy/internal/api/models/common"
	"github.com/lloydmeta/docsproxy/internal/infra/server/html"
)

var notFoundErr = common.ApiError{
	StatusCode: http.StatusNotFound,
	Body: common.Body{
		Error: "No such route.",
	},
}

var noMethodErr = common.ApiError{
	StatusCode: http.StatusMethodNotAllowed,
	Body: common.Body{
		Error: "No such route.",
	},
}

// NewTopLevelRoutesGroup returns the group every route hangs off of, with the index page registered
func NewTopLevelRoutesGroup(ginEngine *gin.Engine) *gin.RouterGroup {
	routerGroup := ginEngine.Group("")
	routerGroup.GET("/", Index)
	return routerGroup
}

// @Summary The index page
// @ID index-page
// @Tags pages
// @Produce  html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html.Index))
}

func NoRoute(c *gin.Context) {
	c.JSON(notFoundErr.StatusCode, notFoundErr.Body)
}

func NoMethod(c *gin.Context) {
	c.JSON(noMethodErr.StatusCode, noMethodErr.Body)
}

func HandleApiErr(c *gin.Context, apiError *common.ApiError) {
	c.JSON(apiError.StatusCode, apiError.Body)
}

func HandleJsonSerdesErr(c *gin.Context, err error) {
	errResp := common.ApiError{
		StatusCode: http.StatusBadRequest,
		Body: common.Body{
			Error: err.Error(),
		},
	}
	HandleApiErr(c, &errResp)
}
