// Package mcp defines the evernote-mcp tool registry and dispatcher.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names, in registry order.
const (
	ToolCreateNote     = "create_note"
	ToolSearchNotes    = "search_notes"
	ToolGetNote        = "get_note"
	ToolUpdateNote     = "update_note"
	ToolListNotebooks  = "list_notebooks"
	ToolCreateNotebook = "create_notebook"
)

// Tools returns the six tool descriptors in their fixed registry order.
// The list is static; callers always see the same entries in the same order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		createNoteTool(),
		searchNotesTool(),
		getNoteTool(),
		updateNoteTool(),
		listNotebooksTool(),
		createNotebookTool(),
	}
}

// Register wires every registry tool into the MCP server, routing each call
// through the dispatcher. Returns the number of tools registered.
func Register(s *server.MCPServer, d *Dispatcher) int {
	tools := Tools()
	for _, tool := range tools {
		s.AddTool(tool, d.handlerFor(tool.Name))
	}
	return len(tools)
}

func createNoteTool() mcp.Tool {
	return mcp.NewTool(ToolCreateNote,
		mcp.WithDescription("Create a new note in Evernote."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the note")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content of the note (plain text or HTML)")),
		mcp.WithString("notebook", mcp.Description("Notebook GUID to create the note in (default notebook if not specified)")),
		mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("Tag names to attach to the note")),
	)
}

func searchNotesTool() mcp.Tool {
	return mcp.NewTool(ToolSearchNotes,
		mcp.WithDescription("Search for notes in Evernote using a search query."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (Evernote search grammar)")),
		mcp.WithString("notebook", mcp.Description("Restrict the search to a notebook by name")),
		mcp.WithNumber("limit", mcp.DefaultNumber(10), mcp.Description("Maximum number of results (default: 10)")),
	)
}

func getNoteTool() mcp.Tool {
	return mcp.NewTool(ToolGetNote,
		mcp.WithDescription("Get a specific note by its ID."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("GUID of the note to retrieve")),
		mcp.WithBoolean("includeContent", mcp.DefaultBool(true), mcp.Description("Include the note body in the response (default: true)")),
	)
}

func updateNoteTool() mcp.Tool {
	return mcp.NewTool(ToolUpdateNote,
		mcp.WithDescription("Update an existing note. Only the supplied fields are changed."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("GUID of the note to update")),
		mcp.WithString("title", mcp.Description("New title for the note")),
		mcp.WithString("content", mcp.Description("New content for the note (plain text or HTML)")),
		mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("Replacement tag names for the note")),
	)
}

func listNotebooksTool() mcp.Tool {
	return mcp.NewTool(ToolListNotebooks,
		mcp.WithDescription("List all notebooks in the Evernote account."),
	)
}

func createNotebookTool() mcp.Tool {
	return mcp.NewTool(ToolCreateNotebook,
		mcp.WithDescription("Create a new notebook in Evernote."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the notebook")),
	)
}
