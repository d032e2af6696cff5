package mailclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/dulbrich/wardclean/internal/config"
	"github.com/dulbrich/wardclean/pkg/utils"
)

// Client wraps the Gmail API client used to deliver cleaning reminders
type Client struct {
	service      *gmail.Service
	userID       string
	sender       string
	lastSendTime time.Time
	sendMutex    sync.Mutex
}

// NewClient creates a new Gmail client, running the OAuth flow if no valid
// token is cached. userID is the Gmail account to send as ("me" when empty);
// sender is the From address stamped on outgoing mail.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, userID, sender string) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)

	service, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	if userID == "" {
		userID = "me"
	}

	return &Client{
		service: service,
		userID:  userID,
		sender:  sender,
	}, nil
}
