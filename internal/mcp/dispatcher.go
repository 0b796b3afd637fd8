package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SqREL/evernote-mcp/internal/common"
	"github.com/SqREL/evernote-mcp/internal/evernote"
)

// Dispatcher routes tool calls to the Evernote REST API. It holds no state
// beyond the injected client and logger; concurrent calls are independent.
type Dispatcher struct {
	client *evernote.Client
	logger *common.Logger
}

// NewDispatcher creates a dispatcher backed by the given Evernote client.
func NewDispatcher(client *evernote.Client, logger *common.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		logger: logger,
	}
}

// handlerFor adapts the dispatcher to an mcp-go tool handler for one tool name.
func (d *Dispatcher) handlerFor(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.CallTool(ctx, name, request.GetArguments())
	}
}

// CallTool validates the credential, routes the named tool to its handler,
// and returns one result or one classified *Error, never both.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if d.client.APIKey() == "" {
		return nil, invalidRequest("Evernote API key not configured")
	}

	log := d.logger.WithCorrelationId(uuid.New().String())
	log.Debug().Str("tool", name).Msg("tool call")
	start := time.Now()

	var result *mcp.CallToolResult
	var err error

	switch name {
	case ToolCreateNote:
		result, err = d.createNote(ctx, args)
	case ToolSearchNotes:
		result, err = d.searchNotes(ctx, args)
	case ToolGetNote:
		result, err = d.getNote(ctx, args)
	case ToolUpdateNote:
		result, err = d.updateNote(ctx, args)
	case ToolListNotebooks:
		result, err = d.listNotebooks(ctx)
	case ToolCreateNotebook:
		result, err = d.createNotebook(ctx, args)
	default:
		err = methodNotFound(name)
	}

	if err != nil {
		log.Warn().Str("tool", name).Err(err).Dur("duration", time.Since(start)).Msg("tool call failed")
		return nil, err
	}
	log.Debug().Str("tool", name).Dur("duration", time.Since(start)).Msg("tool call complete")
	return result, nil
}

func (d *Dispatcher) createNote(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	title, err := requireArg(args, "title")
	if err != nil {
		return nil, internalError(err)
	}
	content, err := requireArg(args, "content")
	if err != nil {
		return nil, internalError(err)
	}

	reqBody := map[string]interface{}{
		"title":   title,
		"content": evernote.WrapENML(content),
	}
	if notebook := argString(args, "notebook", ""); notebook != "" {
		reqBody["notebookGuid"] = notebook
	}
	if tags := argStringSlice(args, "tags"); len(tags) > 0 {
		reqBody["tagNames"] = tags
	}

	body, err := d.client.Post(ctx, "/notes", reqBody)
	if err != nil {
		return nil, internalError(err)
	}

	var created evernote.CreatedResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, internalError(err)
	}

	return textResult(fmt.Sprintf("Note created successfully with ID: %s", created.GUID)), nil
}

func (d *Dispatcher) searchNotes(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	query, err := requireArg(args, "query")
	if err != nil {
		return nil, internalError(err)
	}

	// Notebook restriction goes through the search grammar, notebook clause first.
	if notebook := argString(args, "notebook", ""); notebook != "" {
		query = fmt.Sprintf("notebook:\"%s\" %s", notebook, query)
	}
	limit := argInt(args, "limit", 10)

	params := url.Values{}
	params.Set("query", query)
	params.Set("maxNotes", strconv.Itoa(limit))

	body, err := d.client.Get(ctx, "/notes/search?"+params.Encode())
	if err != nil {
		return nil, internalError(err)
	}

	var resp evernote.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, internalError(err)
	}

	text, err := formatSearchResults(resp.Notes)
	if err != nil {
		return nil, internalError(err)
	}
	return textResult(text), nil
}

func (d *Dispatcher) getNote(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	noteID, err := requireArg(args, "noteId")
	if err != nil {
		return nil, internalError(err)
	}
	includeContent := argBool(args, "includeContent", true)

	path := fmt.Sprintf("/notes/%s?includeContent=%s",
		url.PathEscape(noteID), strconv.FormatBool(includeContent))

	body, err := d.client.Get(ctx, path)
	if err != nil {
		return nil, internalError(err)
	}

	// The note object is opaque; pass it through re-indented.
	text, err := indentJSON(body)
	if err != nil {
		return nil, internalError(err)
	}
	return textResult(text), nil
}

func (d *Dispatcher) updateNote(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	noteID, err := requireArg(args, "noteId")
	if err != nil {
		return nil, internalError(err)
	}

	// Only supplied fields go into the body; omitted fields stay absent
	// entirely rather than being sent as null.
	reqBody := map[string]interface{}{}
	if title := argString(args, "title", ""); title != "" {
		reqBody["title"] = title
	}
	if content := argString(args, "content", ""); content != "" {
		reqBody["content"] = evernote.WrapENML(content)
	}
	if tags := argStringSlice(args, "tags"); len(tags) > 0 {
		reqBody["tagNames"] = tags
	}

	if _, err := d.client.Put(ctx, "/notes/"+url.PathEscape(noteID), reqBody); err != nil {
		return nil, internalError(err)
	}

	return textResult("Note updated successfully"), nil
}

func (d *Dispatcher) listNotebooks(ctx context.Context) (*mcp.CallToolResult, error) {
	body, err := d.client.Get(ctx, "/notebooks")
	if err != nil {
		return nil, internalError(err)
	}

	var notebooks []evernote.Notebook
	if err := json.Unmarshal(body, &notebooks); err != nil {
		return nil, internalError(err)
	}

	text, err := formatNotebooks(notebooks)
	if err != nil {
		return nil, internalError(err)
	}
	return textResult(text), nil
}

func (d *Dispatcher) createNotebook(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	name, err := requireArg(args, "name")
	if err != nil {
		return nil, internalError(err)
	}

	body, err := d.client.Post(ctx, "/notebooks", map[string]interface{}{"name": name})
	if err != nil {
		return nil, internalError(err)
	}

	var created evernote.CreatedResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, internalError(err)
	}

	return textResult(fmt.Sprintf("Notebook created successfully with ID: %s", created.GUID)), nil
}

// --- Argument helpers ---

// requireArg extracts a mandatory string argument.
func requireArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

func argString(args map[string]interface{}, key, defaultVal string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}

func argInt(args map[string]interface{}, key string, defaultVal int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return defaultVal
}

func argBool(args map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return defaultVal
}

func argStringSlice(args map[string]interface{}, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
