package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/orbitalworks/stellarduel/internal/services/game/domain/arena"
)

// ArenaEntry describes one arena in tool results.
type ArenaEntry struct {
	Key                  string   `json:"key" jsonschema:"arena key used by other tools"`
	Name                 string   `json:"name" jsonschema:"display name"`
	Subtitle             string   `json:"subtitle" jsonschema:"short tagline"`
	Description          string   `json:"description" jsonschema:"flavor description"`
	BackgroundColor      string   `json:"background_color" jsonschema:"hex background color"`
	AccentColor          string   `json:"accent_color" jsonschema:"hex accent color"`
	SecondaryAccentColor string   `json:"secondary_accent_color" jsonschema:"hex secondary accent color"`
	AnomalyKinds         []string `json:"anomaly_kinds" jsonschema:"anomaly kinds the arena can spawn"`
	MaxAnomalies         int      `json:"max_anomalies" jsonschema:"maximum anomalies generated per match"`
	MaxAsteroids         int      `json:"max_asteroids" jsonschema:"maximum asteroids generated per match"`
	Hazards              []string `json:"hazards" jsonschema:"hazard kinds the arena activates"`
}

// ListArenasInput represents the MCP tool input for arena listing.
type ListArenasInput struct{}

// ListArenasResult represents the MCP tool output for arena listing.
type ListArenasResult struct {
	Arenas []ArenaEntry `json:"arenas" jsonschema:"all playable arenas in catalog order"`
}

// GetArenaInput represents the MCP tool input for a single arena lookup.
type GetArenaInput struct {
	Key string `json:"key" jsonschema:"arena key, e.g. nebula-rift"`
}

// GetArenaResult represents the MCP tool output for a single arena lookup.
type GetArenaResult struct {
	Arena ArenaEntry `json:"arena" jsonschema:"the requested arena"`
}

// ArenaListTool declares the arena listing tool.
func ArenaListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_arenas",
		Description: "Lists all playable arenas with their anomaly and hazard profiles.",
	}
}

// ArenaListHandler returns the arena listing handler.
func ArenaListHandler() mcp.ToolHandlerFor[ListArenasInput, ListArenasResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListArenasInput) (*mcp.CallToolResult, ListArenasResult, error) {
		defs := arena.Definitions()
		result := ListArenasResult{Arenas: make([]ArenaEntry, 0, len(defs))}
		for _, def := range defs {
			result.Arenas = append(result.Arenas, arenaEntry(def))
		}
		return nil, result, nil
	}
}

// ArenaGetTool declares the single arena lookup tool.
func ArenaGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_arena",
		Description: "Returns one arena by key, including its anomaly and hazard profile.",
	}
}

// ArenaGetHandler returns the single arena lookup handler.
func ArenaGetHandler() mcp.ToolHandlerFor[GetArenaInput, GetArenaResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetArenaInput) (*mcp.CallToolResult, GetArenaResult, error) {
		key := strings.TrimSpace(input.Key)
		if key == "" {
			return nil, GetArenaResult{}, fmt.Errorf("arena key is required")
		}
		def, err := arena.ByKey(key)
		if err != nil {
			return nil, GetArenaResult{}, fmt.Errorf("arena %q is not in the catalog", key)
		}
		return nil, GetArenaResult{Arena: arenaEntry(def)}, nil
	}
}

func arenaEntry(def arena.Definition) ArenaEntry {
	entry := ArenaEntry{
		Key:                  def.Key,
		Name:                 def.Name,
		Subtitle:             def.Subtitle,
		Description:          def.Description,
		BackgroundColor:      def.Background,
		AccentColor:          def.Accent,
		SecondaryAccentColor: def.Accent2,
		MaxAnomalies:         def.MaxAnomalies,
		MaxAsteroids:         def.MaxAsteroids,
		AnomalyKinds:         make([]string, 0, len(def.AnomalyKinds)),
		Hazards:              make([]string, 0, len(def.Hazards)),
	}
	for _, kind := range def.AnomalyKinds {
		entry.AnomalyKinds = append(entry.AnomalyKinds, string(kind))
	}
	for _, hazard := range def.Hazards {
		entry.Hazards = append(entry.Hazards, string(hazard))
	}
	return entry
}
