// traits.go - Trait listing and import from the external trait API

package handlers

import (
	"context"
	"net/http"
	"sync"

	"go-traits-backend/database"
	"go-traits-backend/genomelink"
	"go-traits-backend/middleware"
	"go-traits-backend/models"

	"github.com/gin-gonic/gin"
)

// TraitSource fetches scored traits for the named reports.
type TraitSource interface {
	FetchTraits(ctx context.Context, names []string) ([]genomelink.Trait, error)
}

var (
	traitMu     sync.RWMutex
	traitSource TraitSource
)

// SetTraitSource configures where ImportTraits fetches from. A nil source
// disables imports.
func SetTraitSource(src TraitSource) {
	traitMu.Lock()
	traitSource = src
	traitMu.Unlock()
}

func ListTraits(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	traits, err := database.TraitsFor(database.DB, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"traits": traits})
}

// ImportTraits replaces the caller's traits with fresh scores for the
// personality reports.
func ImportTraits(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	traitMu.RLock()
	src := traitSource
	traitMu.RUnlock()
	if src == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trait import is not configured"})
		return
	}

	fetched, err := src.FetchTraits(c.Request.Context(), genomelink.PersonalityReports)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	rows := make([]models.GLTrait, len(fetched))
	for i, t := range fetched {
		rows[i] = models.GLTrait{Trait: t.Name, TScore: t.Score, UserID: userID}
	}
	if err := database.ReplaceTraits(database.DB, userID, rows); err != nil {
		respondError(c, err)
		return
	}

	traits, err := database.TraitsFor(database.DB, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"traits": traits})
}
