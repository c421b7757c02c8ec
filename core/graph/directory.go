package graph

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"holiday-manager/core/reconcile"
)

// userSelect lists the user fields reconciliation needs.
const userSelect = "id,displayName,mail,userPrincipalName,proxyAddresses,officeLocation,city,state,country"

// User is a directory principal with the attributes reconciliation
// consults.
type User struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"displayName"`
	Mail              string   `json:"mail"`
	UserPrincipalName string   `json:"userPrincipalName"`
	ProxyAddresses    []string `json:"proxyAddresses"`
	OfficeLocation    string   `json:"officeLocation"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
}

// Attributes returns the location attributes the out-of-office resolver
// consults.
func (u User) Attributes() reconcile.Subject {
	return reconcile.Subject{
		OfficeLocation: u.OfficeLocation,
		City:           u.City,
		State:          u.State,
		Country:        u.Country,
	}
}

// HasPrimaryMailbox reports whether the user carries a primary SMTP proxy
// address, i.e. an entry with the (case-insensitive) "SMTP:" prefix.
func (u User) HasPrimaryMailbox() bool {
	for _, addr := range u.ProxyAddresses {
		if len(addr) >= 5 && strings.EqualFold(addr[:5], "SMTP:") {
			return true
		}
	}
	return false
}

type userPage struct {
	Value    []User `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// GetUser looks up a single user by userPrincipalName or object ID.
// Returns ErrUserNotFound when the directory has no such principal.
func (c *Client) GetUser(ctx context.Context, principal string) (*User, error) {
	query := url.Values{"$select": {userSelect}}
	var user User
	if err := c.get(ctx, "/users/"+url.PathEscape(principal)+"?"+query.Encode(), &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", principal, err)
	}
	return &user, nil
}

// ListUsers returns every enabled user in the directory, following
// @odata.nextLink pagination until the collection is exhausted.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	query := url.Values{
		"$filter": {"accountEnabled eq true"},
		"$select": {userSelect},
	}

	var users []User
	next := "/users?" + query.Encode()
	for next != "" {
		var page userPage
		if err := c.get(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, page.Value...)
		next = page.NextLink
	}
	return users, nil
}

// MailboxTimeZone returns the user's configured mailbox time zone,
// defaulting to UTC when none is set.
func (c *Client) MailboxTimeZone(ctx context.Context, userID string) (string, error) {
	var settings struct {
		TimeZone string `json:"timeZone"`
	}
	if err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/mailboxSettings", &settings); err != nil {
		return "", fmt.Errorf("get mailbox settings for %s: %w", userID, err)
	}
	if settings.TimeZone == "" {
		return "UTC", nil
	}
	return settings.TimeZone, nil
}
