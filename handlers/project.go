package handlers

import (
	"errors"
	"net/http"

	"timesheet/database"
	"timesheet/models"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// ProjectHandler serves the pick-lists the timecard grid is built from.
type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := database.GetDB().Order("name asc").Find(&projects).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "project")

	var project models.Project
	err := database.GetDB().Where("name = ?", name).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondJSON(w, http.StatusNotFound, errorBody{Error: "project not found"})
			return
		}
		respondError(w, err)
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("project_id = ?", project.ID).Order("name asc").Find(&tasks).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}
