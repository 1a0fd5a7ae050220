package service

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store/drivers/sqlite"
	"github.com/aussiebroadwan/carbon/pkg/cryptox"
	"github.com/aussiebroadwan/carbon/pkg/idx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newTokens(t *testing.T) (*TokenService, *clock) {
	t.Helper()

	tokens, err := NewTokenService(testSecret, "carbon-test")
	require.NoError(t, err)

	c := &clock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	tokens.Now = c.Now
	tokens.Verifier.Now = c.Now
	return tokens, c
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func newUserService(t *testing.T) (*UserService, *clock) {
	t.Helper()

	tokens, c := newTokens(t)
	return &UserService{
		Store:  newStore(t),
		Hasher: cryptox.NewHasher(4),
		Tokens: tokens,
	}, c
}

var fullQuiz = domain.QuizAnswers{
	Transportation:   "Occasionally",
	MeatConsumption:  "Rarely",
	Recycling:        "Frequently",
	EnergyEfficiency: "Yes",
	ElectricityUsage: "Moderate",
}

func TestTokenService(t *testing.T) {
	tokens, c := newTokens(t)
	userID := idx.New().String()

	token, err := tokens.Issue(userID, "alice")
	require.NoError(t, err)
	issued := c.t

	t.Run("valid within the hour", func(t *testing.T) {
		for _, d := range []time.Duration{0, 30 * time.Minute, time.Hour - time.Second} {
			c.t = issued.Add(d)
			got, err := tokens.Verify(token)
			require.NoError(t, err, "offset %s", d)
			require.Equal(t, userID, got)
		}
	})

	t.Run("expired from the hour on", func(t *testing.T) {
		for _, d := range []time.Duration{time.Hour, 2 * time.Hour} {
			c.t = issued.Add(d)
			_, err := tokens.Verify(token)
			require.ErrorIs(t, err, ErrExpiredToken, "offset %s", d)
		}
	})

	t.Run("garbage and foreign tokens are invalid", func(t *testing.T) {
		c.t = issued

		other, err := NewTokenService([]byte("ffffffffffffffffffffffffffffffff"), "carbon-test")
		require.NoError(t, err)
		other.Now = c.Now
		foreign, err := other.Issue(userID, "alice")
		require.NoError(t, err)

		for _, tok := range []string{"", "abc", token + "x", foreign} {
			_, err := tokens.Verify(tok)
			require.ErrorIs(t, err, ErrInvalidToken)
		}
	})

	t.Run("subject must be a ulid", func(t *testing.T) {
		c.t = issued
		tok, err := tokens.Issue("not-a-ulid", "alice")
		require.NoError(t, err)

		_, err = tokens.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("weak secret rejected", func(t *testing.T) {
		_, err := NewTokenService([]byte("short"), "x")
		require.Error(t, err)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates one user and a token for it", func(t *testing.T) {
		svc, _ := newUserService(t)

		u, token, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		sub, err := svc.Tokens.Verify(token)
		require.NoError(t, err)
		require.Equal(t, u.ID, sub)

		stored, err := svc.Store.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, stored.ID)
		require.NotEqual(t, "password123", stored.PasswordHash)
		require.NoError(t, svc.Hasher.Verify("password123", stored.PasswordHash))
	})

	t.Run("validation order", func(t *testing.T) {
		svc, _ := newUserService(t)

		tests := []struct {
			name                      string
			username, email, password string
			want                      error
		}{
			{"missing username", "", "a@example.com", "password123", ErrMissingFields},
			{"missing email", "a", "", "password123", ErrMissingFields},
			{"missing password", "a", "a@example.com", "", ErrMissingFields},
			{"bad email", "a", "not-an-email", "short", ErrInvalidEmail},
			{"tld too long", "a", "a@example.museums", "password123", ErrInvalidEmail},
			{"short password", "a", "a@example.com", "1234567", ErrPasswordTooShort},
			{"five accented letters are five characters", "a", "a@example.com", "ééééé", ErrPasswordTooShort},
			{"password over 72 bytes", "a", "a@example.com", strings.Repeat("p", 73), ErrPasswordTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := svc.Signup(ctx, tt.username, tt.email, tt.password)
				require.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("second signup with same email fails", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, _, err := svc.Signup(ctx, "alice", "dup@example.com", "password123")
		require.NoError(t, err)

		for _, name := range []string{"alice", "bob", "carol"} {
			_, _, err := svc.Signup(ctx, name, "dup@example.com", "password123")
			require.ErrorIs(t, err, ErrEmailTaken)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, _, err := svc.Signup(ctx, "alice", "one@example.com", "password123")
		require.NoError(t, err)
		_, _, err = svc.Signup(ctx, "alice", "two@example.com", "password123")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, _, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)

		sub, err := svc.Tokens.Verify(token)
		require.NoError(t, err)
		require.Equal(t, u.ID, sub)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrong := svc.Login(ctx, "alice@example.com", "wrong-password")
		_, errUnknown := svc.Login(ctx, "nobody@example.com", "password123")

		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "password123")
		require.ErrorIs(t, err, ErrMissingFields)
		_, err = svc.Login(ctx, "alice@example.com", "")
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("upgrades digests made at another cost", func(t *testing.T) {
		old, err := cryptox.NewHasher(5).Hash("password123")
		require.NoError(t, err)
		require.NoError(t, svc.Store.Users().UpdatePasswordHash(ctx, u.ID, old))

		_, err = svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)

		stored, err := svc.Store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotEqual(t, old, stored.PasswordHash)
		require.False(t, svc.Hasher.NeedsRehash(stored.PasswordHash))
	})
}

func TestSaveQuiz(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, _, err := svc.Signup(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("incomplete answers rejected", func(t *testing.T) {
		partial := fullQuiz
		partial.Recycling = ""
		require.ErrorIs(t, svc.SaveQuiz(ctx, u.ID, partial), ErrMissingAnswers)

		got, err := svc.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, got.QuizAnswers)
	})

	t.Run("blank answers count as missing", func(t *testing.T) {
		blank := fullQuiz
		blank.MeatConsumption = "  \t "
		require.ErrorIs(t, svc.SaveQuiz(ctx, u.ID, blank), ErrMissingAnswers)

		got, err := svc.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, got.QuizAnswers)
	})

	t.Run("unknown user", func(t *testing.T) {
		require.ErrorIs(t, svc.SaveQuiz(ctx, idx.New().String(), fullQuiz), ErrUserNotFound)
	})

	t.Run("saved verbatim and hash untouched", func(t *testing.T) {
		before, err := svc.GetUser(ctx, u.ID)
		require.NoError(t, err)

		require.NoError(t, svc.SaveQuiz(ctx, u.ID, fullQuiz))

		after, err := svc.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, &fullQuiz, after.QuizAnswers)
		require.Equal(t, before.PasswordHash, after.PasswordHash)
	})

	t.Run("suggestions from saved answers", func(t *testing.T) {
		text, err := svc.Suggestions(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, GenerateSuggestions(fullQuiz), text)
	})
}

func TestSuggestions_NoAnswers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, _, err := svc.Signup(ctx, "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Suggestions(ctx, u.ID)
	require.ErrorIs(t, err, ErrNoQuizAnswers)

	_, err = svc.Suggestions(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

type countingRecorder map[string]int

func (c countingRecorder) ObserveCalculation(vehicleType string) { c[vehicleType]++ }

func TestEmissionService(t *testing.T) {
	ctx := context.Background()
	rec := countingRecorder{}
	svc := &EmissionService{Store: newStore(t), Recorder: rec}
	require.NoError(t, svc.Seed(ctx, domain.DefaultVehicles))

	t.Run("car times distance", func(t *testing.T) {
		got, err := svc.Calculate(ctx, "Car", 100)
		require.NoError(t, err)
		require.InDelta(t, 5.0, got, 1e-9)
		require.Equal(t, 1, rec["Car"])
	})

	t.Run("zero distance and zero factor", func(t *testing.T) {
		got, err := svc.Calculate(ctx, "Car", 0)
		require.NoError(t, err)
		require.Zero(t, got)

		got, err = svc.Calculate(ctx, "Bike", 42)
		require.NoError(t, err)
		require.Zero(t, got)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := svc.Calculate(ctx, "Spaceship", 100)
		require.ErrorIs(t, err, ErrVehicleNotFound)

		_, err = svc.Calculate(ctx, "car", 100)
		require.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := svc.Calculate(ctx, "", 10)
		require.ErrorIs(t, err, ErrMissingTrip)

		_, err = svc.Calculate(ctx, "Car", -1)
		require.ErrorIs(t, err, ErrInvalidDistance)
	})

	t.Run("overflowing product rejected", func(t *testing.T) {
		big := &EmissionService{Store: newStore(t), Recorder: rec}
		require.NoError(t, big.Seed(ctx, []domain.Vehicle{{Type: "Freighter", EmissionFactor: 10}}))

		_, err := big.Calculate(ctx, "Freighter", math.MaxFloat64)
		require.ErrorIs(t, err, ErrInvalidDistance)
		require.Zero(t, rec["Freighter"])
	})

	t.Run("seed rejects negative factor without writing", func(t *testing.T) {
		err := svc.Seed(ctx, []domain.Vehicle{{Type: "Hovercraft", EmissionFactor: 1}, {Type: "Rocket", EmissionFactor: -0.5}})
		require.ErrorIs(t, err, ErrNegativeEmission)

		_, err = svc.Calculate(ctx, "Hovercraft", 1)
		require.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("list", func(t *testing.T) {
		all, err := svc.ListVehicles(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultVehicles, all)
	})
}

func TestGenerateSuggestions(t *testing.T) {
	t.Run("one paragraph per known answer", func(t *testing.T) {
		out := GenerateSuggestions(fullQuiz)
		require.True(t, strings.HasPrefix(out, suggestionsIntro))

		body := strings.TrimSuffix(strings.TrimPrefix(out, suggestionsIntro), "\n\n")
		require.Len(t, strings.Split(body, "\n\n"), 5)
	})

	t.Run("answers pick their own paragraph", func(t *testing.T) {
		a := GenerateSuggestions(domain.QuizAnswers{Transportation: "Never"})
		b := GenerateSuggestions(domain.QuizAnswers{Transportation: "Frequently"})
		require.NotEqual(t, a, b)
		require.Contains(t, a, suggestionText[0]["Never"])
	})

	t.Run("unknown values are ignored", func(t *testing.T) {
		out := GenerateSuggestions(domain.QuizAnswers{Transportation: "Sometimes", EnergyEfficiency: "yes"})
		require.Equal(t, suggestionsIntro, out)
	})

	t.Run("every vocabulary value has text", func(t *testing.T) {
		vocab := [][]string{
			{"Never", "Occasionally", "Frequently"},
			{"Frequently", "Occasionally", "Rarely"},
			{"Never", "Rarely", "Frequently"},
			{"No", "Yes"},
			{"High", "Moderate", "Low"},
		}
		for i, values := range vocab {
			for _, v := range values {
				require.NotEmpty(t, suggestionText[i][v], "field %d value %q", i, v)
			}
		}
	})
}

func TestValidEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "first.last-x_y@sub.example.org"} {
		require.True(t, ValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "a@b", "a b@c.com", "a@b.c", "a+tag@example.com", "@example.com"} {
		require.False(t, ValidEmail(bad), bad)
	}
}
