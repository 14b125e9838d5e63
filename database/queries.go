// queries.go - Reads and writes used by the HTTP handlers
// Every function takes the *gorm.DB to run on, so tests can pass their own

package database // Declares the package name

import ( // Import required packages
	"errors"  // Sentinel errors
	"fmt"     // Error formatting
	"strings" // Search term handling
	"time"    // Reset token expiry

	"go-traits-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Errors returned to the handlers, compared with errors.Is
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateUser = errors.New("username already taken")
	ErrSelfFriend    = errors.New("cannot add yourself as a friend")
	ErrInvalidAnswer = fmt.Errorf("answer must be between %d and %d", models.MinAnswer, models.MaxAnswer)
	ErrInvalidReset  = errors.New("invalid or expired reset token")
)

const searchLimit = 50 // Max users returned by one search

// likeEscaper - Makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// CreateUser - Inserts u after checking that its username is free
func CreateUser(db *gorm.DB, u *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 { // Username taken
			return ErrDuplicateUser
		}
		return tx.Create(u).Error
	})
}

// FindUser - Loads a user by primary key
func FindUser(db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := db.First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindUserByUsername - Loads a user by login name
func FindUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var u models.User
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindUserByEmail - Matches either the contact email or a username that
// is an email address
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var u models.User
	if err := db.Where("email = ? OR username = ?", email, email).Order("id").First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// SearchUsers - Returns users other than excludeID whose username, name
// or surname contains term, case-insensitively
func SearchUsers(db *gorm.DB, term string, excludeID uint) ([]models.User, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%" // Match term anywhere, wildcards literal
	var users []models.User
	err := db.
		Where("id <> ?", excludeID). // Never list the searcher
		Where(`(LOWER(username) LIKE ? ESCAPE '\' OR LOWER(name) LIKE ? ESCAPE '\' OR LOWER(surname) LIKE ? ESCAPE '\')`, like, like, like).
		Order("username").
		Limit(searchLimit).
		Find(&users).Error
	return users, err
}

// CreateQuestion - Adds a question to the questionnaire
func CreateQuestion(db *gorm.DB, q *models.Question) error {
	return db.Create(q).Error
}

// QuestionsFor - Lists questions in id order
// Unless showAll is set, questions userID already answered are left out.
func QuestionsFor(db *gorm.DB, userID uint, showAll bool) ([]models.Question, error) {
	q := db.Order("id")
	if !showAll {
		answered := db.Model(&models.Answer{}).Select("question_id").Where("user_id = ?", userID)
		q = q.Where("id NOT IN (?)", answered)
	}
	var questions []models.Question
	err := q.Find(&questions).Error
	return questions, err
}

// SaveAnswer - Records userID's answer to questionID, replacing an earlier
// answer to the same question
func SaveAnswer(db *gorm.DB, userID, questionID uint, value int) (*models.Answer, error) {
	if value < models.MinAnswer || value > models.MaxAnswer {
		return nil, ErrInvalidAnswer
	}

	var answer models.Answer
	err := db.Transaction(func(tx *gorm.DB) error {
		var q models.Question
		if err := tx.First(&q, questionID).Error; err != nil {
			return notFound(err)
		}
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&answer).Error
		switch {
		case err == nil: // Answered before, overwrite
			answer.Answer = value
			return tx.Save(&answer).Error
		case errors.Is(err, gorm.ErrRecordNotFound): // First answer
			answer = models.Answer{UserID: userID, QuestionID: questionID, Answer: value}
			return tx.Create(&answer).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// AnswersFor - Returns userID's answers with their questions loaded
func AnswersFor(db *gorm.DB, userID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := db.Preload("Question").Where("user_id = ?", userID).Order("question_id").Find(&answers).Error
	return answers, err
}

// AddFriend - Records that userID added friendID
// Adding the same friend twice is not an error.
func AddFriend(db *gorm.DB, userID, friendID uint) error {
	if userID == friendID {
		return ErrSelfFriend
	}
	if _, err := FindUser(db, friendID); err != nil {
		return err
	}
	f := models.Friendship{UserID: userID, FriendID: friendID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&f).Error // Repeat requests are no-ops
}

// AreFriends - Reports whether either user added the other
func AreFriends(db *gorm.DB, a, b uint) (bool, error) {
	var count int64
	err := db.Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// FriendsOf - Lists the users connected to userID in either direction
func FriendsOf(db *gorm.DB, userID uint) ([]models.User, error) {
	added := db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", userID)
	addedBy := db.Model(&models.Friendship{}).Select("user_id").Where("friend_id = ?", userID)
	var users []models.User
	err := db.Where("id IN (?) OR id IN (?)", added, addedBy).Order("username").Find(&users).Error
	return users, err
}

// TraitsFor - Lists userID's imported traits by name
func TraitsFor(db *gorm.DB, userID uint) ([]models.GLTrait, error) {
	var traits []models.GLTrait
	err := db.Where("user_id = ?", userID).Order("trait").Find(&traits).Error
	return traits, err
}

// ReplaceTraits - Swaps userID's stored traits for traits in one transaction
func ReplaceTraits(db *gorm.DB, userID uint, traits []models.GLTrait) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.GLTrait{}).Error; err != nil {
			return err
		}
		if len(traits) == 0 {
			return nil
		}
		rows := make([]models.GLTrait, len(traits))
		for i, t := range traits {
			rows[i] = models.GLTrait{Trait: t.Trait, TScore: t.TScore, UserID: userID}
		}
		return tx.Create(&rows).Error
	})
}

// CreatePasswordReset - Issues a single-use reset token for userID that
// expires after ttl
func CreatePasswordReset(db *gorm.DB, userID uint, ttl time.Duration) (*models.PasswordReset, error) {
	reset := models.PasswordReset{
		UserID:    userID,
		Token:     uuid.NewString(),    // Random, unguessable token
		ExpiresAt: time.Now().Add(ttl), // Reset links are short lived
	}
	if err := db.Create(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

// ResetPassword - Stores hash as the password of the token's owner and
// revokes every outstanding token of that user
func ResetPassword(db *gorm.DB, token, hash string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordReset
		err := tx.Where("token = ?", token).First(&reset).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidReset
		}
		if err != nil {
			return err
		}
		if time.Now().After(reset.ExpiresAt) { // Expired tokens are never honoured
			return ErrInvalidReset
		}
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password", hash).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", reset.UserID).Delete(&models.PasswordReset{}).Error // Tokens are single use
	})
}
