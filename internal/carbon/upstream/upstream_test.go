package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carbon/pkg/carbonsdk"
)

func TestDialogflow_SendMessage(t *testing.T) {
	var got *dialogflowpb.DetectIntentRequest
	detect := func(_ context.Context, req *dialogflowpb.DetectIntentRequest) (*dialogflowpb.DetectIntentResponse, error) {
		got = req
		return &dialogflowpb.DetectIntentResponse{
			QueryResult: &dialogflowpb.QueryResult{FulfillmentText: "Try cycling to work."},
		}, nil
	}

	d := newDialogflow(DialogflowConfig{ProjectID: "carbon-agent"}, detect, nil)

	reply, err := d.SendMessage(context.Background(), "how do I cut emissions?")
	require.NoError(t, err)
	require.Equal(t, "Try cycling to work.", reply)

	require.True(t, strings.HasPrefix(got.GetSession(), "projects/carbon-agent/agent/sessions/"))
	require.Equal(t, "how do I cut emissions?", got.GetQueryInput().GetText().GetText())
	require.Equal(t, DefaultLanguage, got.GetQueryInput().GetText().GetLanguageCode())

	t.Run("session is stable across messages", func(t *testing.T) {
		first := got.GetSession()
		_, err := d.SendMessage(context.Background(), "again")
		require.NoError(t, err)
		require.Equal(t, first, got.GetSession())
	})

	t.Run("upstream errors are wrapped", func(t *testing.T) {
		failing := newDialogflow(DialogflowConfig{ProjectID: "p", Language: "en-AU"},
			func(context.Context, *dialogflowpb.DetectIntentRequest) (*dialogflowpb.DetectIntentResponse, error) {
				return nil, errors.New("permission denied")
			}, nil)

		_, err := failing.SendMessage(context.Background(), "hi")
		require.ErrorContains(t, err, "permission denied")
		require.NoError(t, failing.Close())
	})
}

func TestNewDialogflow_RequiresProject(t *testing.T) {
	_, err := NewDialogflow(context.Background(), DialogflowConfig{})
	require.ErrorIs(t, err, ErrChatDisabled)

	_, err = DisabledChat{}.SendMessage(context.Background(), "hi")
	require.ErrorIs(t, err, ErrChatDisabled)
}

func TestSessionPath(t *testing.T) {
	require.Equal(t, "projects/p1/agent/sessions/s1", SessionPath("p1", "s1"))
}

func TestNewsAPI_FetchArticles(t *testing.T) {
	t.Run("relays articles", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "carbon footprint environment", r.URL.Query().Get("q"))
			assert.Equal(t, "k3y", r.Header.Get("X-Api-Key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{
				"source":{"id":null,"name":"Green Daily"},
				"author":null,
				"title":"Cities cut transport emissions",
				"description":"A look at bus lanes.",
				"url":"https://example.com/a",
				"urlToImage":null,
				"publishedAt":"2025-01-02T03:04:05Z",
				"content":"..."}]}`))
		}))
		defer srv.Close()

		c := NewNewsAPI(srv.URL, "k3y", time.Second)
		articles, err := c.FetchArticles(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, articles, 1)

		var got carbonsdk.Article
		require.NoError(t, json.Unmarshal(articles[0], &got))
		require.Equal(t, "Green Daily", got.Source.Name)
		require.Nil(t, got.Author)
		require.Equal(t, "https://example.com/a", got.URL)
		require.Equal(t, "2025-01-02T03:04:05Z", got.PublishedAt)
	})

	t.Run("odd articles pass through untouched", func(t *testing.T) {
		bad := `{"source":{"id":null,"name":"Wire"},"title":"No date","publishedAt":"","sponsored":true}`
		good := `{"source":{"id":"bbc","name":"BBC"},"title":"Dated","publishedAt":"2024-01-01T00:00:00Z"}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok","articles":[` + bad + `,` + good + `]}`))
		}))
		defer srv.Close()

		articles, err := NewNewsAPI(srv.URL, "", 0).FetchArticles(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		require.JSONEq(t, bad, string(articles[0]))
		require.JSONEq(t, good, string(articles[1]))
	})

	t.Run("custom query", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "solar power", r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(`{"status":"ok","articles":null}`))
		}))
		defer srv.Close()

		articles, err := NewNewsAPI(srv.URL, "", 0).FetchArticles(context.Background(), "solar power")
		require.NoError(t, err)
		require.NotNil(t, articles)
		require.Empty(t, articles)
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
		}))
		defer srv.Close()

		_, err := NewNewsAPI(srv.URL, "bad", 0).FetchArticles(context.Background(), "")
		require.ErrorIs(t, err, ErrNewsUnavailable)
		require.ErrorContains(t, err, "apiKeyInvalid")
	})

	t.Run("non json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer srv.Close()

		_, err := NewNewsAPI(srv.URL, "", 0).FetchArticles(context.Background(), "")
		require.ErrorIs(t, err, ErrNewsUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := NewNewsAPI(srv.URL, "", 0).FetchArticles(context.Background(), "")
		require.ErrorIs(t, err, ErrNewsUnavailable)
	})
}
