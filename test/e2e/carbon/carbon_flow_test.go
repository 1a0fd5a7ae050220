package carbon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
)

// TestSignupLoginQuizRoundTrip covers the whole client journey:
// signup, login, save the quiz, read it back and get suggestions.
func TestSignupLoginQuizRoundTrip(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	signup(t, client, "erin", "erin@example.com")

	session, err := client.Authenticate(ctx, "erin@example.com", testPassword)
	require.NoError(t, err, "login should succeed")

	saved, err := session.SaveQuiz(ctx, quizAnswers)
	require.NoError(t, err)
	require.True(t, saved.Success)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "erin", me.Username)
	require.NotNil(t, me.QuizAnswers)
	require.Equal(t, quizAnswers, *me.QuizAnswers, "answers should round-trip field for field")

	fromSaved, err := session.Suggestions(ctx)
	require.NoError(t, err)
	adHoc, err := client.Suggest(ctx, quizAnswers)
	require.NoError(t, err)
	require.Equal(t, fromSaved, adHoc)
	require.NotEmpty(t, fromSaved)
}

func TestVehiclesAndCalculate(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	vehicles, err := client.Vehicles(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, vehicles)

	emission, err := client.Calculate(ctx, "Car", 100)
	require.NoError(t, err)
	require.InDelta(t, 5.0, emission, 1e-9)

	_, err = client.Calculate(ctx, "Spaceship", 100)
	requireAPIError(t, err, carbonsdk.ErrVehicleNotFound)

	_, err = client.Calculate(ctx, "Car", -5)
	requireAPIError(t, err, carbonsdk.ErrInvalidDistance)
}

func TestProxiesDegradeGracefully(t *testing.T) {
	client := setupCarbonContainer(t)
	ctx := t.Context()

	// No Dialogflow project is configured, so every reply is the fallback.
	reply, err := client.Chat(ctx, "hello")
	require.NoError(t, err)
	require.Equal(t, "Sorry, there was an issue processing your request.", reply)

	_, err = client.News(ctx, "")
	requireAPIError(t, err, carbonsdk.ErrNewsUnavailable)
}

func TestHealthProbes(t *testing.T) {
	client := setupCarbonContainer(t)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
