// declared.go - Forms served by the application

package forms // Declares the package name

// Field names shared with the handlers.
const (
	FieldUsername          = "username"
	FieldName              = "name"
	FieldSurname           = "surname"
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldConfirm           = "confirm"
	FieldRememberMe        = "remember_me"
	FieldAcceptTOS         = "accept_tos"
	FieldSearch            = "searchfriend"
	FieldID                = "id"
	FieldShowAll           = "show_all"
	FieldAnswers           = "answers"
	FieldSubmit            = "submit"
	FieldForgottenPassword = "forgotten_password"
	FieldToken             = "token"
)

var likert = []Option{ // Five point agreement scale
	{Value: "1", Label: "definitely not!"},
	{Value: "2", Label: "quite not"},
	{Value: "3", Label: "idk"},
	{Value: "4", Label: "quite yes"},
	{Value: "5", Label: "definitely yes!"},
}

// Login accepts anything; credentials are checked by the caller.
var Login = New("login",
	Text(FieldUsername, "Username"),
	Text(FieldName, "Name"),
	Text(FieldSurname, "Last name"),
	Password(FieldPassword, "Password"),
	Boolean(FieldRememberMe, "Remember Me", false),
	Submit(FieldSubmit, "Sign In"),
)

var Search = New("search",
	Text(FieldSearch, "Search for your friend",
		Length{Min: 4, Max: 50, Message: "Search request has to be between 4 and 50 characters"}),
)

var Registration = New("registration",
	Text(FieldUsername, "Username",
		Length{Min: 4, Max: 20, Message: "Username has to be between 4 and 20 characters"}),
	Text(FieldName, "Name",
		Length{Min: 4, Max: 20, Message: "Name has to be between 4 and 20 characters"}),
	Text(FieldSurname, "Last name",
		Length{Min: 4, Max: 20, Message: "Last name has to be between 4 and 20 characters"}),
	Text(FieldEmail, "Email Address",
		Length{Min: 6, Max: 50, Message: "Email has to be between 6 and 50 characters"}),
	Password(FieldPassword, "Password",
		Required{Message: "You must provide a password."},
		Length{Min: 5, Max: 50},
		EqualTo{Field: FieldConfirm, Message: "Passwords must match."}),
	Password(FieldConfirm, "Repeat Password"),
	Boolean(FieldAcceptTOS, "I accept the Terms of Service and Privacy Notice", false,
		Checked{Message: "You have to accept this terms to use this site!"}),
	Submit(FieldSubmit, "Register"),
)

// Questionnaire answers one question. Nothing is preselected.
var Questionnaire = New("questionnaire",
	Hidden(FieldID, "Question ID"),
	Boolean(FieldShowAll, "Show answered questions too", true),
	Choice(FieldAnswers, "Label", "", likert),
	Submit(FieldSubmit, "Submit"),
)

// ForgottenPassword has two actions: FieldSubmit sends a reminder,
// FieldForgottenPassword starts a reset.
var ForgottenPassword = New("forgotten_password",
	Text(FieldEmail, "Email Address"),
	Submit(FieldSubmit, "Remind password!"),
	Submit(FieldForgottenPassword, "I forgot password"),
)

var FriendRequest = New("friend_request",
	Hidden(FieldID, "User ID"),
	Submit(FieldSubmit, "Add"),
)

// SelfAssessment rates how strongly a user recognises a trait in
// themselves. It defaults to the lowest option.
var SelfAssessment = New("self_assessment",
	Choice(FieldAnswers, "Label", "1", likert),
	Submit(FieldSubmit, "Send answer"),
)

// PasswordReset sets a new password with the token from a reset event.
var PasswordReset = New("password_reset",
	Hidden(FieldToken, "Reset token",
		Required{Message: "The reset link is incomplete."}),
	Password(FieldPassword, "New Password",
		Required{Message: "You must provide a password."},
		Length{Min: 5, Max: 50},
		EqualTo{Field: FieldConfirm, Message: "Passwords must match."}),
	Password(FieldConfirm, "Repeat Password"),
	Submit(FieldSubmit, "Change password"),
)

var byName = map[string]*Form{} // Filled by init from the forms above

func init() {
	for _, f := range []*Form{Login, Search, Registration, Questionnaire, ForgottenPassword, FriendRequest, SelfAssessment, PasswordReset} {
		byName[f.name] = f
	}
}

// Lookup - Returns the declared form called name
func Lookup(name string) (*Form, bool) {
	f, ok := byName[name]
	return f, ok
}
