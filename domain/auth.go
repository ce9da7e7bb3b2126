package domain

import "errors"

var (
	MessageSuccessIssueToken = "token issued and set in cookie"
	MessageFailedIssueToken  = "failed to issue token"
	MessageFailedEmailNeeded = "email is required"
	MessageFailedServerSetup = "server config error"

	ErrEmailRequired = errors.New("email is required")
	ErrMissingSecret = errors.New("signing secret not configured")
)

type (
	IssueTokenRequest struct {
		Email string `json:"email" validate:"required"`
	}

	IssueTokenResponse struct {
		Token string `json:"token"`
	}
)
