package groups

import (
	"errors"
	"net/http"

	"github.com/gvnna/bookworms/db"
	"github.com/gvnna/bookworms/models"
	"github.com/gvnna/bookworms/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Create a new group
// @Description Create a new reading group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body models.Group true "Group information"
// @Security BearerAuth
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /groups [post]
func CreateGroup(c *gin.Context) {
	var group models.Group

	if err := c.ShouldBindJSON(&group); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := db.DB.Create(&group).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Erro ao criar grupo: "+err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Grupo criado com sucesso", group)
}

// @Summary Get a group by ID
// @Description Retrieve a group by its ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /groups/{id} [get]
func GetGroupByID(c *gin.Context) {
	groupID := c.Param("id")

	var group models.Group
	if err := db.DB.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Grupo não encontrado")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Erro ao buscar grupo: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, group)
}
