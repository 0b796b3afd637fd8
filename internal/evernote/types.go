package evernote

import "time"

// Wire types for the Evernote REST API. Timestamps arrive as
// epoch-milliseconds; FormatTimestamp converts them for display.

// CreatedResponse is the relevant part of a create note/notebook response.
type CreatedResponse struct {
	GUID string `json:"guid"`
}

// NoteMetadata is one entry in a search response.
type NoteMetadata struct {
	GUID         string `json:"guid"`
	Title        string `json:"title"`
	Created      int64  `json:"created"`
	Updated      int64  `json:"updated"`
	NotebookGUID string `json:"notebookGuid"`
}

// SearchResponse is the body of GET /notes/search.
type SearchResponse struct {
	Notes []NoteMetadata `json:"notes"`
}

// Notebook is one entry in the GET /notebooks response.
type Notebook struct {
	GUID           string `json:"guid"`
	Name           string `json:"name"`
	ServiceCreated int64  `json:"serviceCreated"`
}

// FormatTimestamp converts an epoch-millisecond timestamp to ISO-8601 (UTC).
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
