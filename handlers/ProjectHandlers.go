package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"backend/models"
	"backend/repository"
	"backend/services"
)

// ProjectCreateRequest carries the fields of a new project. Reference and
// status are assigned server-side.
type ProjectCreateRequest struct {
	ClientName   string               `json:"client_name" binding:"required"`
	ClientEmail  string               `json:"client_email"`
	ClientPhone  string               `json:"client_phone"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	PostalCode   string               `json:"postal_code"`
	Salesperson  string               `json:"salesperson"`
	BuildingType string               `json:"building_type"`
	DelegateID   string               `json:"delegate_id"`
	ProductLines []models.ProductLine `json:"product_lines"`
}

// CreateProjectHandler creates a project
// @Summary Create project
// @Description Create a project in status NOUVEAU with a generated reference
// @Tags Projects
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param request body ProjectCreateRequest true "Project fields"
// @Success 201 {object} models.Project
// @Failure 400 {object} models.ErrorResponse
// @Router /api/projects [post]
func CreateProjectHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req ProjectCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "client_name is required"})
			return
		}

		ctx := c.Request.Context()
		productIDs := make([]string, 0, len(req.ProductLines))
		for _, line := range req.ProductLines {
			productIDs = append(productIDs, line.ProductID)
		}
		productMap, err := store.GetProductMap(ctx, orgID, productIDs)
		if err != nil {
			respondError(c, err)
			return
		}
		lines, err := services.NormalizeProductLines(req.ProductLines, productMap)
		if err != nil {
			respondError(c, err)
			return
		}

		now := time.Now()
		project := &models.Project{
			ID:           uuid.NewString(),
			OrgID:        orgID,
			Reference:    repository.GenerateProjectReference(),
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			ClientPhone:  req.ClientPhone,
			Address:      req.Address,
			City:         req.City,
			PostalCode:   req.PostalCode,
			Salesperson:  req.Salesperson,
			BuildingType: req.BuildingType,
			DelegateID:   req.DelegateID,
			Status:       models.StatusNouveau,
			ProductLines: lines,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := store.CreateProject(ctx, project); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, project)
	}
}

// GetProjectsHandler lists the organization's projects
// @Summary List projects
// @Description Return every project of the caller's organization
// @Tags Projects
// @Produce json
// @Param Authorization header string true "Session ID"
// @Success 200 {array} models.Project
// @Failure 401 {object} models.ErrorResponse
// @Router /api/projects [get]
func GetProjectsHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		projects, err := store.ListProjects(c.Request.Context(), orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

// GetProjectHandler returns one project
// @Summary Get project
// @Description Return one project by id, scoped to the caller's organization
// @Tags Projects
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id} [get]
func GetProjectHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		project, err := store.GetProject(c.Request.Context(), orgID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// UpdateProjectStatusHandler moves a project to a new status
// @Summary Update project status
// @Description Apply a forward-only status transition to a project. The edit is rejected when it would place the project behind its most advanced chantier.
// @Tags Projects
// @Accept json
// @Produce json
// @Param Authorization header string true "Session ID"
// @Param id path string true "Project ID"
// @Param request body models.StatusUpdateRequest true "Target status"
// @Success 200 {object} models.Project
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/projects/{id}/status [put]
func UpdateProjectStatusHandler(db *sql.DB, sync *services.StatusSyncService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		var req models.StatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "status is required"})
			return
		}

		project, err := sync.UpdateProjectStatus(c.Request.Context(), orgID, c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// ExportProjectsXlsxHandler streams the project list as an Excel workbook
// @Summary Export projects to Excel
// @Description Build an xlsx workbook with one row per project
// @Tags Projects
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Session ID"
// @Success 200 {file} file
// @Failure 401 {object} models.ErrorResponse
// @Router /api/projects/export/xlsx [get]
func ExportProjectsXlsxHandler(db *sql.DB, store *repository.GormStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := requireSession(c, db)
		if !ok {
			return
		}
		orgID, ok := resolveOrgID(c, user)
		if !ok {
			return
		}

		projects, err := store.ListProjects(c.Request.Context(), orgID)
		if err != nil {
			respondError(c, err)
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Projets"
		index, err := f.NewSheet(sheet)
		if err != nil {
			respondError(c, err)
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{"Référence", "Client", "Email", "Téléphone", "Ville", "Code postal", "Type de bâtiment", "Commercial", "Statut", "Créé le"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, p := range projects {
			values := []interface{}{
				p.Reference, p.ClientName, p.ClientEmail, p.ClientPhone,
				p.City, p.PostalCode, p.BuildingType, p.Salesperson,
				p.Status, p.CreatedAt.Format("2006-01-02"),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		filename := fmt.Sprintf("projets-%s.xlsx", time.Now().Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			respondError(c, err)
		}
	}
}
