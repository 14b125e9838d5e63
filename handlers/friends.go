// friends.go - Friend search, friend requests and friends' answers

package handlers

import (
	"net/http"

	"go-traits-backend/database"
	"go-traits-backend/forms"
	"go-traits-backend/middleware"
	"go-traits-backend/mqtt"

	"github.com/gin-gonic/gin"
)

// SearchUsers - GET handler validated by the search form
func SearchUsers(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	sub, err := forms.Search.Validate(forms.InputFromValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}
	users, err := database.SearchUsers(database.DB, sub.String(forms.FieldSearch), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AddFriend handles the friend request form.
func AddFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	sub := validate(c, forms.FriendRequest)
	if sub == nil {
		return
	}
	friendID, ok := formID(c, sub, forms.FieldID)
	if !ok {
		return
	}
	if err := database.AddFriend(database.DB, userID, friendID); err != nil {
		respondError(c, err)
		return
	}

	// Notifications are best effort, the friendship is already stored
	if err := mqtt.Publish(mqtt.TopicFriendRequest, gin.H{"from": userID, "to": friendID}); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend added"})
}

func ListFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	friends, err := database.FriendsOf(database.DB, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// FriendAnswers - Shows a friend's answers, or the caller's own. Anyone
// else gets 403.
func FriendAnswers(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	friendID, ok := idParam(c, "id")
	if !ok {
		return
	}
	friends := userID == friendID // Own answers are always visible
	if !friends {
		var err error
		if friends, err = database.AreFriends(database.DB, userID, friendID); err != nil {
			respondError(c, err)
			return
		}
	}
	if !friends {
		c.JSON(http.StatusForbidden, gin.H{"error": "not friends"})
		return
	}
	answers, err := database.AnswersFor(database.DB, friendID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}
