// questions.go - Questionnaire and self-assessment handlers

package handlers

import (
	"net/http"

	"go-traits-backend/database"
	"go-traits-backend/forms"
	"go-traits-backend/middleware"
	"go-traits-backend/models"

	"github.com/gin-gonic/gin"
)

// ListQuestions returns the questionnaire. show_all defaults to the form's
// default when the query leaves it out.
func ListQuestions(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	showAll := forms.ParseBool(forms.Questionnaire.Defaults()[forms.FieldShowAll])
	if v, ok := c.GetQuery(forms.FieldShowAll); ok {
		showAll = forms.ParseBool(v)
	}

	questions, err := database.QuestionsFor(database.DB, userID, showAll)
	if err != nil {
		respondError(c, err)
		return
	}
	field, _ := forms.Questionnaire.Field(forms.FieldAnswers)
	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"show_all":  showAll,
		"options":   field.Options(),
	})
}

// AnswerQuestion saves an answer submitted with the questionnaire form.
func AnswerQuestion(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	sub := validate(c, forms.Questionnaire)
	if sub == nil {
		return
	}
	questionID, ok := formID(c, sub, forms.FieldID)
	if !ok {
		return
	}
	saveAnswer(c, userID, questionID, sub)
}

// SelfAssess saves a self-assessment for the question in the path.
func SelfAssess(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	questionID, ok := idParam(c, "id")
	if !ok {
		return
	}
	sub := validate(c, forms.SelfAssessment)
	if sub == nil {
		return
	}
	saveAnswer(c, userID, questionID, sub)
}

func saveAnswer(c *gin.Context, userID, questionID uint, sub *forms.Submission) {
	value, err := sub.Int(forms.FieldAnswers)
	if err != nil {
		respondError(c, forms.Errors{forms.FieldAnswers: {"Not a valid choice."}})
		return
	}
	answer, err := database.SaveAnswer(database.DB, userID, questionID, value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// QuestionInput - Structure for admin question creation
type QuestionInput struct {
	Question string `json:"question" binding:"required"` // Question text (required)
	Trait    string `json:"trait" binding:"required"`    // Trait category (required)
}

// CreateQuestion - Admin handler adding a question to the questionnaire
func CreateQuestion(c *gin.Context) {
	var input QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input from request body
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return 400 error if JSON is invalid
		return
	}
	q := models.Question{Question: input.Question, Trait: input.Trait}
	if err := database.CreateQuestion(database.DB, &q); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"question": q})
}
