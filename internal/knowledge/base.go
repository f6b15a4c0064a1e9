package knowledge

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-stats-agent/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-agent/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-agent/internal/logging"
)

// Base answers point lookups against read-only reference tables.
// It holds no mutable state and is safe for concurrent use.
type Base struct {
	tables Tables
	logger *slog.Logger
}

// New constructs a Base over the built-in tables.
func New(logger *slog.Logger) *Base {
	return NewWithTables(defaultTables, logger)
}

// NewWithTables constructs a Base over caller-supplied tables. The tables must not be
// modified after this call.
func NewWithTables(tables Tables, logger *slog.Logger) *Base {
	return &Base{tables: tables, logger: logger}
}

// Championships returns the number of titles won by team.
func (b *Base) Championships(team teams.Team) int {
	logging.Info(b.logger, "get championships", slog.String(logging.FieldTeam, team.String()))
	return b.tables.Championships[team]
}

// Record returns the current season record for team. ok is false when the table has
// no row for the team.
func (b *Base) Record(team teams.Team) (SeasonRecord, bool) {
	logging.Info(b.logger, "get team record", slog.String(logging.FieldTeam, team.String()))
	rec, ok := b.tables.Records[team]
	return rec, ok
}

// PositionDescription returns the descriptive text for position.
func (b *Base) PositionDescription(position players.Position) string {
	logging.Info(b.logger, "get position info", slog.String(logging.FieldPosition, position.String()))
	return b.tables.Positions[position]
}

// Legends returns a copy of the notable players for team in display order.
func (b *Base) Legends(team teams.Team) []string {
	logging.Info(b.logger, "get team legends", slog.String(logging.FieldTeam, team.String()))
	return slices.Clone(b.tables.Legends[team])
}

// LegendsText returns the notable players for team joined with ", ".
func (b *Base) LegendsText(team teams.Team) string {
	return strings.Join(b.Legends(team), ", ")
}
