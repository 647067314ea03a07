package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type AddGroupUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// ListGroupUsers returns the members of a staff group — manager only
func ListGroupUsers(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Group not found"})
			return
		}

		members := config.DB.Table("user_groups").Select("user_id").Where("group_id = ?", group.ID)
		var users []models.User
		config.DB.Where("id IN (?)", members).Find(&users)
		c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
	}
}

// AddGroupUser adds a user to a staff group by username — manager only
func AddGroupUser(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddGroupUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Group not found"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Append(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user to group"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "User added to " + groupName,
			"user_id":  user.ID,
			"username": user.Username,
		})
	}
}

// RemoveGroupUser removes a user from a staff group by id — manager only.
// A user who exists but is not a member is reported as not found, matching
// the roster API's contract.
func RemoveGroupUser(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := config.DB.Preload("Groups").First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if !user.InGroup(groupName) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User is not a member of " + groupName})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Group not found"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Delete(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove user from group"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User removed from " + groupName,
			"user_id": user.ID,
		})
	}
}
