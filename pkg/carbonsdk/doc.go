/*
Package carbonsdk is a Go client for the carbon footprint API.

# Client vs Session

Client covers the public endpoints and logs users in:

	client := carbonsdk.NewClient("http://localhost:3000")

	vehicles, err := client.Vehicles(ctx)
	emission, err := client.Calculate(ctx, "Car", 100) // 5 with the default factors

	resp, err := client.Signup(ctx, carbonsdk.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

A Session carries the bearer token for the endpoints that need one:

	session, err := client.Authenticate(ctx, "alice@example.com", "correct horse")
	_, err = session.SaveQuiz(ctx, carbonsdk.QuizAnswers{...})
	report, err := session.Suggestions(ctx)

Tokens expire one hour after issue and there is no refresh grant.

# Errors

Non-2xx responses come back as *APIError. The predefined values compare
with errors.Is:

	_, err := client.Calculate(ctx, "Spaceship", 1)
	if errors.Is(err, carbonsdk.ErrVehicleNotFound) {
		// 404
	}

The same values are what the server writes, so message text is shared by
both sides.
*/
package carbonsdk
