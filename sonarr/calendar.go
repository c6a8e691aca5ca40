package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const dateFormat = "2006-01-02"

// GetCalendar retrieves episodes that aired or will air between start and
// end. Both dates are optional YYYY-MM-DD strings; when neither is given the
// server returns today and tomorrow.
func (c *Client) GetCalendar(ctx context.Context, start, end string) ([]Episode, error) {
	params := url.Values{}

	if start != "" {
		day, err := normalizeDate("start", start)
		if err != nil {
			return nil, err
		}
		params.Set("start", day)
	}
	if end != "" {
		day, err := normalizeDate("end", end)
		if err != nil {
			return nil, err
		}
		params.Set("end", day)
	}

	var episodes []Episode
	if err := c.get(ctx, "/api/calendar", params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	return episodes, nil
}

// normalizeDate validates a YYYY-MM-DD date and re-renders it canonically
func normalizeDate(field, value string) (string, error) {
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return "", &ValidationError{Field: field, Value: value, Reason: "expected YYYY-MM-DD"}
	}
	return t.Format(dateFormat), nil
}
