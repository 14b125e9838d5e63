// forms.go - Describes declared forms so a client can render them

package handlers

import (
	"net/http"

	"go-traits-backend/forms"

	"github.com/gin-gonic/gin"
)

type fieldView struct {
	Name    string         `json:"name"`
	Label   string         `json:"label"`
	Kind    string         `json:"kind"`
	Default string         `json:"default,omitempty"`
	Options []forms.Option `json:"options,omitempty"`
}

// DescribeForm - GET handler returning the fields of one form
func DescribeForm(c *gin.Context) {
	form, ok := forms.Lookup(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown form"})
		return
	}
	fields := form.Fields()
	views := make([]fieldView, len(fields))
	for i, f := range fields {
		views[i] = fieldView{
			Name:    f.Name(),
			Label:   f.Label(),
			Kind:    f.Kind().String(),
			Default: f.Default(),
			Options: f.Options(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"name": form.Name(), "fields": views})
}
