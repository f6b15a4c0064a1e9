package knowledge

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-stats-agent/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-agent/internal/domain/teams"
)

// ErrIncompleteCoverage is wrapped by every error returned from Validate.
var ErrIncompleteCoverage = errors.New("knowledge: incomplete coverage")

// Validate checks that the championship, legends and position tables hold an entry for
// every enumeration member. Season records may be partial. All gaps are reported.
func (b *Base) Validate() error {
	return b.tables.Validate()
}

// Validate checks total coverage of t. See Base.Validate.
func (t Tables) Validate() error {
	var errs []error
	for _, team := range teams.All() {
		if n, ok := t.Championships[team]; !ok {
			errs = append(errs, fmt.Errorf("%w: championships missing %s", ErrIncompleteCoverage, team))
		} else if n < 0 {
			errs = append(errs, fmt.Errorf("%w: championships negative for %s", ErrIncompleteCoverage, team))
		}
		if names, ok := t.Legends[team]; !ok || len(names) == 0 {
			errs = append(errs, fmt.Errorf("%w: legends missing %s", ErrIncompleteCoverage, team))
		}
		if rec, ok := t.Records[team]; ok && (rec.Wins < 0 || rec.Losses < 0) {
			errs = append(errs, fmt.Errorf("%w: record negative for %s", ErrIncompleteCoverage, team))
		}
	}
	for _, position := range players.Positions() {
		if text, ok := t.Positions[position]; !ok || text == "" {
			errs = append(errs, fmt.Errorf("%w: position description missing %s", ErrIncompleteCoverage, position))
		}
	}
	return errors.Join(errs...)
}
