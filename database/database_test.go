// database_test.go - Tests for schema setup, bootstrap and queries
// Run with: go test ./...

package database

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"go-traits-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a fresh migrated database in a temp dir
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), models.NewSchema())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username, Password: "hash"}
	require.NoError(t, CreateUser(db, &u))
	return u
}

func createQuestion(t *testing.T, db *gorm.DB, text, trait string) models.Question {
	t.Helper()
	q := models.Question{Question: text, Trait: trait}
	require.NoError(t, CreateQuestion(db, &q))
	return q
}

func TestBootstrapSeedsSampleUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBootstrapPath)
	var out bytes.Buffer
	require.NoError(t, Bootstrap(path, models.NewSchema(), &out))

	db, err := Open(path, models.NewSchema())
	require.NoError(t, err)
	defer Close(db)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, uint(0), users[0].ID)
	assert.Equal(t, "Janusz@example.com", users[0].Username)
	assert.Equal(t, "12345", users[0].Password)

	assert.Equal(t, "0 Janusz@example.com\nUser(id = 0, username = Janusz@example.com)\n", out.String())
}

func TestBootstrapTwiceLeavesOneUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBootstrapPath)
	require.NoError(t, Bootstrap(path, models.NewSchema(), &bytes.Buffer{}))
	require.NoError(t, Bootstrap(path, models.NewSchema(), &bytes.Buffer{}))

	db, err := Open(path, models.NewSchema())
	require.NoError(t, err)
	defer Close(db)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAnswerForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "alice@example.com")
	q := createQuestion(t, db, "Do you enjoy parties?", "extraversion")

	// Missing question
	err := db.Create(&models.Answer{QuestionID: q.ID + 100, UserID: u.ID, Answer: 3}).Error
	assert.Error(t, err)

	// Missing user
	err = db.Create(&models.Answer{QuestionID: q.ID, UserID: u.ID + 100, Answer: 3}).Error
	assert.Error(t, err)

	// Both present
	err = db.Create(&models.Answer{QuestionID: q.ID, UserID: u.ID, Answer: 3}).Error
	assert.NoError(t, err)
}

func TestTraitForeignKeyEnforced(t *testing.T) {
	db := openTestDB(t)
	err := db.Create(&models.GLTrait{Trait: "openness", TScore: 3, UserID: 42}).Error
	assert.Error(t, err)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	createUser(t, db, "bob@example.com")

	err := CreateUser(db, &models.User{Username: "bob@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestFindUserByUsername(t *testing.T) {
	db := openTestDB(t)
	created := createUser(t, db, "carol@example.com")

	u, err := FindUserByUsername(db, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, "user", u.Role)

	_, err = FindUserByUsername(db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchUsers(t *testing.T) {
	db := openTestDB(t)
	me := createUser(t, db, "searcher@example.com")
	createUser(t, db, "anna.kowalska@example.com")
	other := models.User{Username: "zed@example.com", Password: "x", Surname: "Annanowski"}
	require.NoError(t, CreateUser(db, &other))
	createUser(t, db, "piotr@example.com")

	users, err := SearchUsers(db, "ANNA", me.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "anna.kowalska@example.com", users[0].Username)
	assert.Equal(t, "zed@example.com", users[1].Username)

	// Searching never returns the searcher
	users, err = SearchUsers(db, "searcher", me.ID)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSearchUsersTreatsWildcardsLiterally(t *testing.T) {
	db := openTestDB(t)
	me := createUser(t, db, "searcher@example.com")
	createUser(t, db, "anna@example.com")
	createUser(t, db, "ann_b@example.com")

	for _, term := range []string{"____", "%%%%", `\\\\`} {
		users, err := SearchUsers(db, term, me.ID)
		require.NoError(t, err)
		assert.Empty(t, users, "term %q", term)
	}

	// An underscore still matches itself
	users, err := SearchUsers(db, "ann_", me.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ann_b@example.com", users[0].Username)
}

func TestSaveAnswerReplacesEarlierAnswer(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "dave@example.com")
	q := createQuestion(t, db, "Are you organised?", "conscientiousness")

	first, err := SaveAnswer(db, u.ID, q.ID, 2)
	require.NoError(t, err)
	second, err := SaveAnswer(db, u.ID, q.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	answers, err := AnswersFor(db, u.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 5, answers[0].Answer)
	require.NotNil(t, answers[0].Question)
	assert.Equal(t, "Are you organised?", answers[0].Question.Question)
}

func TestSaveAnswerValidation(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "erin@example.com")
	q := createQuestion(t, db, "Do you worry a lot?", "neuroticism")

	_, err := SaveAnswer(db, u.ID, q.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = SaveAnswer(db, u.ID, q.ID, 6)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = SaveAnswer(db, u.ID, q.ID+1, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionsForHidesAnswered(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "fay@example.com")
	q1 := createQuestion(t, db, "Q1", "openness")
	q2 := createQuestion(t, db, "Q2", "openness")
	_, err := SaveAnswer(db, u.ID, q1.ID, 4)
	require.NoError(t, err)

	all, err := QuestionsFor(db, u.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := QuestionsFor(db, u.ID, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, q2.ID, open[0].ID)
}

func TestFriends(t *testing.T) {
	db := openTestDB(t)
	a := createUser(t, db, "a@example.com")
	b := createUser(t, db, "b@example.com")
	c := createUser(t, db, "c@example.com")

	assert.ErrorIs(t, AddFriend(db, a.ID, a.ID), ErrSelfFriend)
	assert.ErrorIs(t, AddFriend(db, a.ID, 999), ErrNotFound)

	require.NoError(t, AddFriend(db, a.ID, b.ID))
	require.NoError(t, AddFriend(db, a.ID, b.ID)) // repeated request is fine
	require.NoError(t, AddFriend(db, c.ID, a.ID))

	ok, err := AreFriends(db, b.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = AreFriends(db, b.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	friends, err := FriendsOf(db, a.ID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "b@example.com", friends[0].Username)
	assert.Equal(t, "c@example.com", friends[1].Username)
}

func TestReplaceTraits(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "gus@example.com")

	require.NoError(t, ReplaceTraits(db, u.ID, []models.GLTrait{{Trait: "openness", TScore: 2}}))
	require.NoError(t, ReplaceTraits(db, u.ID, []models.GLTrait{
		{Trait: "openness", TScore: 4},
		{Trait: "agreeableness", TScore: 1},
	}))

	traits, err := TraitsFor(db, u.ID)
	require.NoError(t, err)
	require.Len(t, traits, 2)
	assert.Equal(t, "agreeableness", traits[0].Trait)
	assert.Equal(t, 4, traits[1].TScore)
	assert.Equal(t, u.ID, traits[1].UserID)
}

func TestDeletingUserCascades(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "hal@example.com")
	q := createQuestion(t, db, "Q", "openness")
	_, err := SaveAnswer(db, u.ID, q.ID, 3)
	require.NoError(t, err)
	require.NoError(t, ReplaceTraits(db, u.ID, []models.GLTrait{{Trait: "openness", TScore: 3}}))
	_, err = CreatePasswordReset(db, u.ID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, u.ID).Error)

	var answers, traits, resets int64
	db.Model(&models.Answer{}).Count(&answers)
	db.Model(&models.GLTrait{}).Count(&traits)
	db.Model(&models.PasswordReset{}).Count(&resets)
	assert.Zero(t, answers)
	assert.Zero(t, traits)
	assert.Zero(t, resets)
}

func TestResetPassword(t *testing.T) {
	db := openTestDB(t)
	u := createUser(t, db, "ida@example.com")
	first, err := CreatePasswordReset(db, u.ID, time.Hour)
	require.NoError(t, err)
	second, err := CreatePasswordReset(db, u.ID, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	require.NoError(t, ResetPassword(db, first.Token, "newhash"))
	stored, err := FindUser(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", stored.Password)

	// Redeeming one token revokes the others
	assert.ErrorIs(t, ResetPassword(db, second.Token, "other"), ErrInvalidReset)
	assert.ErrorIs(t, ResetPassword(db, "", "other"), ErrInvalidReset)

	expired, err := CreatePasswordReset(db, u.ID, -time.Second)
	require.NoError(t, err)
	assert.ErrorIs(t, ResetPassword(db, expired.Token, "other"), ErrInvalidReset)
	stored, err = FindUser(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", stored.Password)
}
