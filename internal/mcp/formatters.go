package mcp

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/SqREL/evernote-mcp/internal/evernote"
)

// NoteSummary is the normalized listing shape for search results.
type NoteSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Created  string `json:"created"`
	Updated  string `json:"updated"`
	Notebook string `json:"notebook"`
}

// NotebookSummary is the normalized listing shape for notebooks.
type NotebookSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// textResult wraps a string in a single-block MCP result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// formatSearchResults normalizes search metadata into a pretty-printed JSON
// array, converting epoch-millisecond timestamps to ISO-8601.
func formatSearchResults(notes []evernote.NoteMetadata) (string, error) {
	summaries := make([]NoteSummary, 0, len(notes))
	for _, n := range notes {
		summaries = append(summaries, NoteSummary{
			ID:       n.GUID,
			Title:    n.Title,
			Created:  evernote.FormatTimestamp(n.Created),
			Updated:  evernote.FormatTimestamp(n.Updated),
			Notebook: n.NotebookGUID,
		})
	}
	pretty, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

// formatNotebooks normalizes notebooks into a pretty-printed JSON array.
func formatNotebooks(notebooks []evernote.Notebook) (string, error) {
	summaries := make([]NotebookSummary, 0, len(notebooks))
	for _, nb := range notebooks {
		summaries = append(summaries, NotebookSummary{
			ID:      nb.GUID,
			Name:    nb.Name,
			Created: evernote.FormatTimestamp(nb.ServiceCreated),
		})
	}
	pretty, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

// indentJSON re-indents a raw JSON document, preserving field order.
func indentJSON(raw []byte) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}
