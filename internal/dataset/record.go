package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProblemRecord is one scraped problem statement. Records are read-only once
// loaded; nothing in the application creates or edits them.
type ProblemRecord struct {
	ID                 Text   `json:"id"`
	Category           string `json:"category"`
	Theme              string `json:"theme"`
	Organization       string `json:"organization"`
	Description        string `json:"description"`
	SubmittedIdeaCount Text   `json:"submitted_idea_count,omitempty"`
	Deadline           Text   `json:"deadline,omitempty"`
}

// Text is a display string that decodes from a JSON string, number or null.
// The scraper emits idea counts and ids as either, depending on the page.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*t = Text(n.String())
	return nil
}

// String returns the raw text
func (t Text) String() string {
	return string(t)
}
