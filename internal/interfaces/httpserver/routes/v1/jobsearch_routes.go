package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "search-gateway/internal/domain/jobsearch"
	"search-gateway/internal/interfaces/httpserver/handlers"
	"search-gateway/internal/interfaces/httpserver/responses"
	"search-gateway/internal/platformerrors"
)

const (
	defaultPage           = 1
	defaultResultsPerPage = 10
)

func registerJobSearchRoutes(router gin.IRoutes, handler *handlers.JobSearchHandler) {
	router.GET("/jobs/search", searchJobs(handler))
	router.GET("/jobs/details/:jobId", getJobDetails(handler))
	router.GET("/jobs/:id", getSearchResultByID(handler))
	router.GET("/jobs", getAllSearchResults(handler))
	router.DELETE("/jobs/:id", deleteSearchResult(handler))
}

// searchJobs godoc
// @Summary      Search jobs
// @Description  Queries the job-search provider, persists the normalized result and returns it.
// @Tags         jobs
// @Produce      json
// @Param        query           query  string  true   "Search query"
// @Param        location        query  string  false  "Free-text location"
// @Param        page            query  int     false  "Page number"  default(1)
// @Param        resultsPerPage  query  int     false  "Results per page, capped at 5"  default(10)
// @Success      200  {object}  jobsearch.JobSearchResult
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/jobs/search [get]
func searchJobs(handler *handlers.JobSearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("query"))
		if query == "" {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "query parameter is required")
			return
		}

		req := domain.SearchRequest{
			Query:          query,
			Location:       c.Query("location"),
			Page:           intQuery(c, "page", defaultPage),
			ResultsPerPage: intQuery(c, "resultsPerPage", defaultResultsPerPage),
		}

		result, err := handler.Search(c.Request.Context(), req)
		if err != nil {
			responses.HandleError(c, err, "search jobs")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// getJobDetails godoc
// @Summary      Job details
// @Tags         jobs
// @Produce      json
// @Param        jobId  path  string  true  "Provider job id"
// @Success      200  {object}  jobsearch.Job
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/jobs/details/{jobId} [get]
func getJobDetails(handler *handlers.JobSearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, err := handler.JobDetails(c.Request.Context(), c.Param("jobId"))
		if err != nil {
			responses.HandleError(c, err, "get job details")
			return
		}
		c.JSON(http.StatusOK, job)
	}
}

// getSearchResultByID godoc
// @Summary      Fetch stored search result
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Search result id"
// @Success      200  {object}  jobsearch.JobSearchResult
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/jobs/{id} [get]
func getSearchResultByID(handler *handlers.JobSearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := handler.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, "get search result")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// getAllSearchResults godoc
// @Summary      List stored search results
// @Tags         jobs
// @Produce      json
// @Success      200  {array}  jobsearch.JobSearchResult
// @Router       /v1/jobs [get]
func getAllSearchResults(handler *handlers.JobSearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := handler.GetAll(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "list search results")
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// deleteSearchResult godoc
// @Summary      Delete stored search result
// @Tags         jobs
// @Param        id  path  string  true  "Search result id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/jobs/{id} [delete]
func deleteSearchResult(handler *handlers.JobSearchHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			responses.HandleError(c, err, "delete search result")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
