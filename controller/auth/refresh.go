package auth

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskdesk/middleware"
	"taskdesk/services"
)

func RefreshTokenController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshToken(c, firestoreClient)
	})
}

// RefreshToken rotates the token pair. The presented refresh token must match
// the hash stored on the user document.
func RefreshToken(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)
	presented := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if user.RefreshToken == "" || services.CompareRefreshToken(user.RefreshToken, presented) != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Refresh token has been revoked"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}
	hashed, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}
	_, err = firestoreClient.Collection("Users").Doc(user.UserID).Update(ctx, []firestore.Update{
		{Path: "refreshtoken", Value: hashed},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
