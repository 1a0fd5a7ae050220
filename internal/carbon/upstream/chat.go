// Package upstream holds the clients for the third-party services the API
// proxies: a Dialogflow agent for chat and newsapi.org for articles.
package upstream

import (
	"context"
	"errors"
	"fmt"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// ChatFallbackReply is what the chat route answers with whenever the agent
// cannot be reached. Upstream errors are never shown to the user.
const ChatFallbackReply = "Sorry, there was an issue processing your request."

// DefaultLanguage is the query language sent to the agent.
const DefaultLanguage = "en-US"

var ErrChatDisabled = errors.New("upstream: chat is not configured")

// ChatClient sends one user message to a conversational agent and returns
// its reply text.
type ChatClient interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

type DialogflowConfig struct {
	ProjectID string
	// KeyFile is a service-account JSON path. Empty uses application
	// default credentials.
	KeyFile  string
	Language string
}

type detectFunc func(ctx context.Context, req *dialogflowpb.DetectIntentRequest) (*dialogflowpb.DetectIntentResponse, error)

// Dialogflow talks to a Dialogflow ES agent. All messages share one session,
// created when the client is.
type Dialogflow struct {
	session  string
	language string
	detect   detectFunc
	close    func() error
}

func NewDialogflow(ctx context.Context, cfg DialogflowConfig) (*Dialogflow, error) {
	if cfg.ProjectID == "" {
		return nil, ErrChatDisabled
	}

	var opts []option.ClientOption
	if cfg.KeyFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.KeyFile))
	}

	client, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("upstream: dialogflow client: %w", err)
	}

	detect := func(ctx context.Context, req *dialogflowpb.DetectIntentRequest) (*dialogflowpb.DetectIntentResponse, error) {
		return client.DetectIntent(ctx, req)
	}
	return newDialogflow(cfg, detect, client.Close), nil
}

func newDialogflow(cfg DialogflowConfig, detect detectFunc, closeFn func() error) *Dialogflow {
	lang := cfg.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Dialogflow{
		session:  SessionPath(cfg.ProjectID, uuid.NewString()),
		language: lang,
		detect:   detect,
		close:    closeFn,
	}
}

// SessionPath is the agent session resource name.
func SessionPath(projectID, sessionID string) string {
	return fmt.Sprintf("projects/%s/agent/sessions/%s", projectID, sessionID)
}

func (d *Dialogflow) SendMessage(ctx context.Context, text string) (string, error) {
	resp, err := d.detect(ctx, &dialogflowpb.DetectIntentRequest{
		Session: d.session,
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{Text: text, LanguageCode: d.language},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("upstream: detect intent: %w", err)
	}

	// Relayed verbatim, even when the matched intent has no fulfillment.
	return resp.GetQueryResult().GetFulfillmentText(), nil
}

func (d *Dialogflow) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// DisabledChat is used when no agent is configured. Every message fails,
// which the chat route turns into ChatFallbackReply.
type DisabledChat struct{}

func (DisabledChat) SendMessage(context.Context, string) (string, error) {
	return "", ErrChatDisabled
}
