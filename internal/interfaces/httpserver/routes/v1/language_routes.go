package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"search-gateway/internal/interfaces/httpserver/handlers"
	"search-gateway/internal/interfaces/httpserver/responses"
	"search-gateway/internal/platformerrors"
)

type detectLanguageRequest struct {
	Text string `json:"text" binding:"required"`
}

func registerLanguageRoutes(router gin.IRoutes, handler *handlers.LanguageHandler) {
	router.POST("/language/detect", detectLanguage(handler))
	router.GET("/language/detections/:id", getDetectionByID(handler))
	router.GET("/language/detections", getAllDetections(handler))
}

// detectLanguage godoc
// @Summary      Detect language
// @Description  Calls the language provider, persists the top candidate and echoes the raw provider payload.
// @Tags         language
// @Accept       json
// @Produce      json
// @Param        request  body  detectLanguageRequest  true  "Text to analyze"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /v1/language/detect [post]
func detectLanguage(handler *handlers.LanguageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req detectLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "text field is required")
			return
		}

		payload, err := handler.Detect(c.Request.Context(), req.Text)
		if err != nil {
			responses.HandleError(c, err, "detect language")
			return
		}
		c.Data(http.StatusOK, "application/json", payload)
	}
}

// getDetectionByID godoc
// @Summary      Fetch stored detection
// @Tags         language
// @Produce      json
// @Param        id  path  string  true  "Detection id"
// @Success      200  {object}  language.LanguageDetection
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/language/detections/{id} [get]
func getDetectionByID(handler *handlers.LanguageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		detection, err := handler.GetDetectionByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, "get language detection")
			return
		}
		c.JSON(http.StatusOK, detection)
	}
}

// getAllDetections godoc
// @Summary      List stored detections
// @Tags         language
// @Produce      json
// @Success      200  {array}  language.LanguageDetection
// @Router       /v1/language/detections [get]
func getAllDetections(handler *handlers.LanguageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		detections, err := handler.GetAllDetections(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "list language detections")
			return
		}
		c.JSON(http.StatusOK, detections)
	}
}
