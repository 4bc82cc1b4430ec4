// Package domain defines the MCP tool surface for the match engine:
// typed tool inputs and results, tool declarations, and the handlers
// that run the engine headlessly on behalf of assistant clients.
package domain
