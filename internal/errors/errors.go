package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrOrganizationNotFound is returned when no organization resolves for a user.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrOrganizationNotApproved is returned when the organization is not admin-approved.
	ErrOrganizationNotApproved = errors.New("organization not approved")
	// ErrRoleInUse is returned when deleting a role that users still hold.
	ErrRoleInUse = errors.New("role is assigned to users and cannot be deleted")
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
	// ErrCampaignNotFound is returned when a fundraising campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCampaignClosed is returned when donating to a closed campaign.
	ErrCampaignClosed = errors.New("campaign is closed")
	// ErrDonationNotFound is returned when no donation matches a checkout session.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrCodeNotFound is returned when a reference code is not found.
	ErrCodeNotFound = errors.New("reference code not found")
	// ErrUnknownCodeKind is returned for a reference-code kind outside the closed set.
	ErrUnknownCodeKind = errors.New("unknown reference code kind")
	// ErrInvalidAmount is returned when a donation amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSubscriptionNotFound is returned when a merchant has no subscription record.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrOrganizationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORGANIZATION_NOT_FOUND")
	case errors.Is(err, ErrOrganizationNotApproved):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ORGANIZATION_NOT_APPROVED")
	case errors.Is(err, ErrRoleInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "ROLE_IN_USE")
	case errors.Is(err, ErrRoleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ROLE_NOT_FOUND")
	case errors.Is(err, ErrCampaignNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CAMPAIGN_NOT_FOUND")
	case errors.Is(err, ErrCampaignClosed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CAMPAIGN_CLOSED")
	case errors.Is(err, ErrDonationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DONATION_NOT_FOUND")
	case errors.Is(err, ErrCodeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CODE_NOT_FOUND")
	case errors.Is(err, ErrUnknownCodeKind):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_CODE_KIND")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrSubscriptionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBSCRIPTION_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
