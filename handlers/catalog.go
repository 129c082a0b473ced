package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mechriz/zen-fit/services/catalog"
)

// GetWorkouts lists workout plans filtered by ?category= and ?q=.
func (h *AppHandler) GetWorkouts(c *gin.Context) {
	category := c.DefaultQuery("category", catalog.CategoryAll)
	plans := catalog.FilterWorkouts(catalog.WorkoutPlans(), category, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"categories": catalog.WorkoutCategories, "workouts": plans})
}

func (h *AppHandler) GetWorkout(c *gin.Context) {
	plan, ok := catalog.FindWorkout(catalog.WorkoutPlans(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": plan})
}

// GetTherapists lists the directory filtered by ?specialization=.
func (h *AppHandler) GetTherapists(c *gin.Context) {
	area := c.DefaultQuery("specialization", catalog.CategoryAll)
	c.JSON(http.StatusOK, gin.H{
		"specializations": catalog.Specializations,
		"therapists":      catalog.FilterTherapists(catalog.TherapistListings(), area),
	})
}
