package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"train_routes/internal/database"
)

// ErrIncompleteAssignments means a train lacks one of its start or end
// platform assignments.
var ErrIncompleteAssignments = errors.New("train has no complete pair of platform assignments")

const platformQuery = `SELECT p.nr AS number, s.name AS station, COALESCE(c.name, '') AS city
FROM train_has_platform t
LEFT JOIN platform p ON t.platform_idplatform = p.idplatform
LEFT JOIN station s ON p.station_idstation = s.idstation
LEFT JOIN city c ON s.idstation = c.station_idstation
WHERE t.train_nrtrain = ? AND t.start = ?
LIMIT 1`

const assignmentsQuery = `SELECT t.start AS start, p.nr AS number, s.name AS station, COALESCE(c.name, '') AS city
FROM train_has_platform t
LEFT JOIN platform p ON t.platform_idplatform = p.idplatform
LEFT JOIN station s ON p.station_idstation = s.idstation
LEFT JOIN city c ON s.idstation = c.station_idstation
WHERE t.train_nrtrain = ?
ORDER BY t.start DESC`

type platformRow struct {
	Start   bool
	Number  int
	Station string
	City    string
}

func (p platformRow) snapshot(ts time.Time) PlatformSnapshot {
	return PlatformSnapshot{Number: p.Number, Station: p.Station, City: p.City, Time: ts}
}

// MatchStart tells which assignment applies: the start assignment when
// wantStart agrees with the direction, the other one otherwise.
func MatchStart(direction, wantStart bool) bool {
	return (wantStart && direction) || (!wantStart && !direction)
}

// Resolver looks up the platform a train uses at either end of a route.
type Resolver struct {
	db  database.Executor
	log logrus.FieldLogger
}

func NewResolver(db database.Executor, log logrus.FieldLogger) *Resolver {
	return &Resolver{db: db, log: log.WithField("component", "resolver")}
}

// ResolvePlatform returns the platform of the assignment MatchStart picks
// for the train, stamped with ts.
func (r *Resolver) ResolvePlatform(trainNumber int, direction, wantStart bool, ts time.Time) (PlatformSnapshot, error) {
	r.log.WithFields(logrus.Fields{
		"train":     trainNumber,
		"direction": DirectionName(direction),
		"start":     wantStart,
	}).Debug("Finding platform")

	var row platformRow
	err := r.db.QueryRow(&row, platformQuery, trainNumber, MatchStart(direction, wantStart))
	if errors.Is(err, database.ErrNoRows) {
		return PlatformSnapshot{}, fmt.Errorf("train %d: %w", trainNumber, ErrIncompleteAssignments)
	}
	if err != nil {
		return PlatformSnapshot{}, fmt.Errorf("failed finding platform for train %d: %w", trainNumber, err)
	}
	return row.snapshot(ts), nil
}

// Termini returns the start and end platform of a train's line, without
// a time.
func (r *Resolver) Termini(trainNumber int) (start, end PlatformSnapshot, err error) {
	var rows []platformRow
	if err := r.db.Query(&rows, assignmentsQuery, trainNumber); err != nil {
		return start, end, fmt.Errorf("failed loading platforms for train %d: %w", trainNumber, err)
	}

	var starts, ends int
	for _, row := range rows {
		if row.Start {
			start = row.snapshot(time.Time{})
			starts++
		} else {
			end = row.snapshot(time.Time{})
			ends++
		}
	}
	if starts != 1 || ends != 1 {
		return PlatformSnapshot{}, PlatformSnapshot{}, fmt.Errorf("train %d: %w", trainNumber, ErrIncompleteAssignments)
	}
	return start, end, nil
}
