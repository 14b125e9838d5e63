// input.go - Request decoding and error responses shared by the handlers

package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"go-traits-backend/database"
	"go-traits-backend/forms"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// formInput flattens a JSON object, a form body or the query string into
// the raw input a form validates.
func formInput(c *gin.Context) (forms.Input, error) {
	if c.ContentType() == binding.MIMEJSON {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		in := make(forms.Input, len(raw))
		for k, v := range raw {
			switch t := v.(type) {
			case nil:
			case string:
				in[k] = t
			case bool:
				in[k] = strconv.FormatBool(t)
			case float64:
				in[k] = strconv.FormatFloat(t, 'f', -1, 64)
			default:
				in[k] = fmt.Sprint(t)
			}
		}
		return in, nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return forms.InputFromValues(c.Request.Form), nil
}

// validate decodes the request and runs form over it. On failure it writes
// the response and returns nil.
func validate(c *gin.Context, form *forms.Form) *forms.Submission {
	in, err := formInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil
	}
	sub, err := form.Validate(in)
	if err != nil {
		respondError(c, err)
		return nil
	}
	return sub
}

// respondError maps domain errors to status codes.
func respondError(c *gin.Context, err error) {
	var formErrs forms.Errors
	switch {
	case errors.As(err, &formErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": formErrs})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, database.ErrSelfFriend), errors.Is(err, database.ErrInvalidAnswer),
		errors.Is(err, database.ErrInvalidReset):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// idParam parses a positive numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(n), true
}

// formID reads a hidden identifier field as a database ID.
func formID(c *gin.Context, sub *forms.Submission, field string) (uint, bool) {
	n, err := sub.Int(field)
	if err != nil || n < 0 {
		respondError(c, forms.Errors{field: {"Not a valid identifier."}})
		return 0, false
	}
	return uint(n), true
}
