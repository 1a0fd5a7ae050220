package carbon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
)

func TestDuplicateSignupRejected(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	signup(t, client, "frank", "frank@example.com")

	_, err := client.Signup(ctx, carbonsdk.SignupRequest{
		Username: "someone-else",
		Email:    "frank@example.com",
		Password: testPassword,
	})
	requireAPIError(t, err, carbonsdk.ErrEmailInUse)

	_, err = client.Signup(ctx, carbonsdk.SignupRequest{
		Username: "frank",
		Email:    "other@example.com",
		Password: testPassword,
	})
	requireAPIError(t, err, carbonsdk.ErrUsernameTaken)
}

// TestLoginFailuresAreUniform checks that an unknown email and a wrong
// password cannot be told apart.
func TestLoginFailuresAreUniform(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	signup(t, client, "grace", "grace@example.com")

	_, wrongPassword := client.Login(ctx, "grace@example.com", "not the password")
	_, unknownEmail := client.Login(ctx, "nobody@example.com", "not the password")

	requireAPIError(t, wrongPassword, carbonsdk.ErrInvalidCredentials)
	requireAPIError(t, unknownEmail, carbonsdk.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestSaveQuizRequiresToken(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	session := signup(t, client, "heidi", "heidi@example.com")

	for name, token := range map[string]string{
		"empty":    "",
		"garbage":  "not-a-token",
		"tampered": session.Token() + "x",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := client.NewSession(token).SaveQuiz(ctx, quizAnswers)
			requireAPIError(t, err, carbonsdk.ErrUnauthorized)
		})
	}

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Nil(t, me.QuizAnswers, "rejected requests must not touch the user")
}
