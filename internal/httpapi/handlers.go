package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qa-platform/internal/question"
)

const defaultRandomCount = 10

func (a *API) HandleQuestions(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.GetAll())
}

func (a *API) HandleQuestion(c *gin.Context) {
	if !a.ready(c) {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	record, err := a.bank.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (a *API) HandleSearch(c *gin.Context) {
	if !a.ready(c) {
		return
	}

	results, err := a.bank.Search(c.Query("keyword"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (a *API) HandleCategories(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Categories())
}

func (a *API) HandleDifficulties(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Difficulties())
}

func (a *API) HandleCategory(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Filter(question.Criteria{Category: c.Param("category")}))
}

func (a *API) HandleDifficulty(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Filter(question.Criteria{Difficulty: c.Param("level")}))
}

// HandleFilter combines both criteria; either query parameter may be omitted.
func (a *API) HandleFilter(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Filter(question.Criteria{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}))
}

func (a *API) HandleRandom(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	count := parseCountParam(c, "count", defaultRandomCount)
	c.JSON(http.StatusOK, a.bank.RandomSample(count))
}

func (a *API) HandleStats(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, a.bank.Stats())
}

func (a *API) HandleHealth(c *gin.Context) {
	if !a.ready(c) {
		return
	}
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ok",
		Questions: a.bank.Len(),
		Timestamp: time.Now().UTC(),
	})
}

func (a *API) HandleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{Error: "route not found"})
}

func (a *API) ready(c *gin.Context) bool {
	if a.bank == nil {
		a.log.Error("question bank is not initialized", "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "question bank unavailable"})
		return false
	}
	return true
}
