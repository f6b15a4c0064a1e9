package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-stats-agent/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-agent/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-agent/internal/knowledge"
	"github.com/preston-bernstein/nba-stats-agent/internal/metrics"
	"github.com/preston-bernstein/nba-stats-agent/internal/prompts"
)

const (
	ToolChampionships = "get_championships"
	ToolTeamRecord    = "get_team_record"
	ToolPositionInfo  = "get_position_info"
	ToolTeamLegends   = "get_team_legends"
)

const (
	enumTeam     = "team"
	enumPosition = "position"
)

// NewNBARegistry registers the four NBA knowledge tools over base.
func NewNBARegistry(base *knowledge.Base, logger *slog.Logger, recorder *metrics.Recorder) (*Registry, error) {
	if base == nil {
		return nil, fmt.Errorf("knowledge base required")
	}
	handlers := map[string]Handler{
		ToolChampionships: championshipsHandler(base),
		ToolTeamRecord:    recordHandler(base),
		ToolPositionInfo:  positionHandler(base),
		ToolTeamLegends:   legendsHandler(base),
	}

	reg := NewRegistry(logger, recorder)
	for _, name := range []string{ToolChampionships, ToolTeamRecord, ToolPositionInfo, ToolTeamLegends} {
		spec, err := prompts.LoadToolSpec(name)
		if err != nil {
			return nil, err
		}
		params := make([]Param, 0, len(spec.Params))
		for _, ps := range spec.Params {
			p, err := enumParam(ps)
			if err != nil {
				return nil, fmt.Errorf("tool %s: %w", name, err)
			}
			params = append(params, p)
		}
		if err := reg.Register(Tool{
			Name:        spec.Name,
			Description: spec.Description,
			Params:      params,
			Handler:     handlers[name],
		}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func enumParam(ps prompts.ParamSpec) (Param, error) {
	p := Param{Name: ps.Name, Description: ps.Description}
	switch ps.Enum {
	case enumTeam:
		p.Enum = teams.Values()
		p.Parse = func(raw string) (string, bool) {
			t, ok := teams.Parse(raw)
			return t.String(), ok
		}
	case enumPosition:
		p.Enum = players.PositionValues()
		p.Parse = func(raw string) (string, bool) {
			pos, ok := players.ParsePosition(raw)
			return pos.String(), ok
		}
	default:
		return Param{}, fmt.Errorf("parameter %s: unknown enum %q", ps.Name, ps.Enum)
	}
	return p, nil
}

func championshipsHandler(base *knowledge.Base) Handler {
	return func(_ context.Context, args Args) Result {
		team := teams.Team(args["team"])
		return Result{Text: ChampionshipsSentence(team, base.Championships(team))}
	}
}

func recordHandler(base *knowledge.Base) Handler {
	return func(_ context.Context, args Args) Result {
		team := teams.Team(args["team"])
		record, ok := base.Record(team)
		if !ok {
			return Result{Text: RecordUnavailableSentence(team), Fallback: true}
		}
		return Result{Text: RecordSentence(team, record)}
	}
}

func positionHandler(base *knowledge.Base) Handler {
	return func(_ context.Context, args Args) Result {
		return Result{Text: base.PositionDescription(players.Position(args["position"]))}
	}
}

func legendsHandler(base *knowledge.Base) Handler {
	return func(_ context.Context, args Args) Result {
		team := teams.Team(args["team"])
		return Result{Text: LegendsSentence(team, base.LegendsText(team))}
	}
}

// ChampionshipsSentence renders a championship count, e.g. "The Celtics have won 17 NBA championships."
func ChampionshipsSentence(team teams.Team, count int) string {
	noun := "championships"
	if count == 1 {
		noun = "championship"
	}
	return fmt.Sprintf("The %s have won %d NBA %s.", team.DisplayName(), count, noun)
}

func RecordSentence(team teams.Team, record knowledge.SeasonRecord) string {
	return fmt.Sprintf("The %s current record is %d-%d.", team.DisplayName(), record.Wins, record.Losses)
}

func RecordUnavailableSentence(team teams.Team) string {
	return fmt.Sprintf("Current record not available for the %s.", team.DisplayName())
}

func LegendsSentence(team teams.Team, legends string) string {
	return fmt.Sprintf("Notable %s legends include: %s.", team.DisplayName(), legends)
}
