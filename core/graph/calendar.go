package graph

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"holiday-manager/core/reconcile"
)

// The calendar side of the client is the engine's mutation surface.
var _ reconcile.Store = (*Client)(nil)

// eventDTO is the wire shape of a Graph calendar event, limited to the
// fields reconciliation reads or writes.
type eventDTO struct {
	ID         string              `json:"id,omitempty"`
	Subject    string              `json:"subject,omitempty"`
	Start      *reconcile.DateTime `json:"start,omitempty"`
	End        *reconcile.DateTime `json:"end,omitempty"`
	IsAllDay   bool                `json:"isAllDay,omitempty"`
	ShowAs     string              `json:"showAs,omitempty"`
	Location   *locationDTO        `json:"location,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Body       *itemBodyDTO        `json:"body,omitempty"`
	ReminderOn *bool               `json:"isReminderOn,omitempty"`
}

type locationDTO struct {
	DisplayName string `json:"displayName"`
}

type itemBodyDTO struct {
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content"`
}

type eventPage struct {
	Value    []eventDTO `json:"value"`
	NextLink string     `json:"@odata.nextLink"`
}

func (dto eventDTO) toEvent() reconcile.Event {
	event := reconcile.Event{
		ID:         dto.ID,
		Subject:    dto.Subject,
		IsAllDay:   dto.IsAllDay,
		ShowAs:     dto.ShowAs,
		Categories: dto.Categories,
	}
	if dto.Start != nil {
		event.Start = *dto.Start
	}
	if dto.End != nil {
		event.End = *dto.End
	}
	if dto.Location != nil {
		event.Location = dto.Location.DisplayName
	}
	if dto.Body != nil {
		event.Body = dto.Body.Content
	}
	return event
}

func toDTO(event reconcile.Event) eventDTO {
	off := false
	dto := eventDTO{
		Subject:    event.Subject,
		Start:      &reconcile.DateTime{DateTime: event.Start.DateTime, TimeZone: event.Start.TimeZone},
		End:        &reconcile.DateTime{DateTime: event.End.DateTime, TimeZone: event.End.TimeZone},
		IsAllDay:   event.IsAllDay,
		ShowAs:     event.ShowAs,
		Categories: event.Categories,
		Body:       &itemBodyDTO{ContentType: "text", Content: event.Body},
		ReminderOn: &off,
	}
	if event.Location != "" {
		dto.Location = &locationDTO{DisplayName: event.Location}
	}
	return dto
}

// categoryFilter translates the typed category set into the OData filter
// the calendar store understands. Single quotes in labels are doubled per
// OData escaping rules.
func categoryFilter(categories []string) string {
	clauses := make([]string, 0, len(categories))
	for _, category := range categories {
		escaped := strings.ReplaceAll(category, "'", "''")
		clauses = append(clauses, fmt.Sprintf("categories/any(c:c eq '%s')", escaped))
	}
	return strings.Join(clauses, " or ")
}

// ListEvents returns the full, unpaginated list of the user's calendar
// events tagged with any of the given categories, following
// @odata.nextLink until exhausted.
func (c *Client) ListEvents(ctx context.Context, userID string, categories []string) ([]reconcile.Event, error) {
	query := url.Values{}
	if len(categories) > 0 {
		query.Set("$filter", categoryFilter(categories))
	}

	var events []reconcile.Event
	next := "/users/" + url.PathEscape(userID) + "/calendar/events?" + query.Encode()
	for next != "" {
		var page eventPage
		if err := c.get(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("list events for %s: %w", userID, err)
		}
		for _, dto := range page.Value {
			events = append(events, dto.toEvent())
		}
		next = page.NextLink
	}
	return events, nil
}

// CreateEvent creates an event on the user's default calendar and returns
// the new event ID.
func (c *Client) CreateEvent(ctx context.Context, userID string, event reconcile.Event) (string, error) {
	var created eventDTO
	path := "/users/" + url.PathEscape(userID) + "/calendar/events"
	if err := c.send(ctx, "POST", path, toDTO(event), &created); err != nil {
		return "", fmt.Errorf("create event %q for %s: %w", event.Subject, userID, err)
	}
	return created.ID, nil
}

// PatchEvent rewrites the location display and free/busy status of an
// existing event.
func (c *Client) PatchEvent(ctx context.Context, userID, eventID string, patch reconcile.Patch) error {
	body := eventDTO{
		Location: &locationDTO{DisplayName: patch.Location},
		ShowAs:   patch.ShowAs,
	}
	path := "/users/" + url.PathEscape(userID) + "/calendar/events/" + url.PathEscape(eventID)
	if err := c.send(ctx, "PATCH", path, body, nil); err != nil {
		return fmt.Errorf("patch event %s for %s: %w", eventID, userID, err)
	}
	return nil
}

// DeleteEvent removes an event from the user's calendar.
func (c *Client) DeleteEvent(ctx context.Context, userID, eventID string) error {
	path := "/users/" + url.PathEscape(userID) + "/calendar/events/" + url.PathEscape(eventID)
	if err := c.send(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete event %s for %s: %w", eventID, userID, err)
	}
	return nil
}
