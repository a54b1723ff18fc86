package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"kharcha/internal/models"
)

func TestGetCategories(t *testing.T) {
	router := gin.New()
	router.GET("/categories", NewCategoryHandler().GetCategories)

	w := doRequest(router, http.MethodGet, "/categories", nil)
	assertStatus(t, w, http.StatusOK)

	body := parseJSON(t, w)
	categories := body["categories"].([]interface{})
	if len(categories) != len(models.Categories) {
		t.Fatalf("expected %d categories, got %d", len(models.Categories), len(categories))
	}

	first := categories[0].(map[string]interface{})
	if first["name"] != "Food" {
		t.Errorf("expected Food first, got %v", first["name"])
	}
	if first["color"] != "#2563eb" {
		t.Errorf("expected Food color #2563eb, got %v", first["color"])
	}

	last := categories[len(categories)-1].(map[string]interface{})
	if last["name"] != "Other" {
		t.Errorf("expected Other last, got %v", last["name"])
	}
}
