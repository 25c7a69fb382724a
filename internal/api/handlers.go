package api

import (
	"errors"

	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type projectRequest struct {
	Project string `json:"project" binding:"required"`
}

type taskRequest struct {
	Project  string `json:"project" binding:"required"`
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content"`
}

type updateTaskRequest struct {
	Project     string  `json:"project" binding:"required"`
	Filename    string  `json:"filename" binding:"required"`
	Content     *string `json:"content"`
	NewFilename *string `json:"new_filename"`
}

func (s *Server) handleHealth(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.planner.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, projects)
}

func (s *Server) handleSummaries(c *gin.Context) {
	sums, err := s.planner.Summaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, sums)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := s.planner.CreateProject(c.Request.Context(), req.Name); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (s *Server) handleToggleTraining(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	newName, err := s.planner.ToggleTraining(c.Request.Context(), req.Project)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, newName)
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.planner.ListTasks(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tasks)
}

func (s *Server) handleRoadmap(c *gin.Context) {
	rm, err := s.planner.Roadmap(c.Request.Context(), c.Param("name"), c.Query("selected"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rm)
}

func (s *Server) handleDue(c *gin.Context) {
	due, err := s.planner.Due(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, due)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := s.planner.CreateTask(c.Request.Context(), req.Project, req.Filename, req.Content); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// handleUpdateTask renames and/or rewrites a task in one store update.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if req.Content == nil && req.NewFilename == nil {
		respondBadRequest(c, errors.New("nothing to update: set content or new_filename"))
		return
	}

	upd := repository.TaskUpdate{Content: req.Content, NewFilename: req.NewFilename}
	if err := s.planner.UpdateTask(c.Request.Context(), req.Project, req.Filename, upd); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := s.planner.DeleteTask(c.Request.Context(), req.Project, req.Filename); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (s *Server) handleComplete(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	newName, err := s.planner.CompleteTask(c.Request.Context(), req.Project, req.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, newName)
}
