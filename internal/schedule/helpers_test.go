package schedule

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"train_routes/internal/console"
	"train_routes/internal/database"
	"train_routes/internal/testutil"
)

// fakeTrain describes what storage holds for one train.
type fakeTrain struct {
	number   int
	typeName string
	start    platformRow
	end      platformRow
}

// rex is train 1 of the seed data: start at platform 2 in salzburg, end at
// platform 1 (id 3) in wien.
var rex = fakeTrain{
	number:   1,
	typeName: "REX",
	start:    platformRow{Start: true, Number: 2, Station: "hbf-salzburg", City: "salzburg"},
	end:      platformRow{Start: false, Number: 1, Station: "hbf-wien", City: "wien"},
}

var ice = fakeTrain{
	number:   3,
	typeName: "ICE",
	start:    platformRow{Start: true, Number: 2, Station: "hbf-linz", City: "linz"},
	end:      platformRow{Start: false, Number: 1, Station: "hbf-salzburg", City: "salzburg"},
}

type fixture struct {
	registry *Registry
	mock     sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, mock := testutil.NewMockGorm(t)
	log, _ := testutil.NewLogger()

	db := database.New(gdb, log)
	resolver := NewResolver(db, log)
	return &fixture{
		registry: NewRegistry(db, NewAssembler(db, resolver, log), log),
		mock:     mock,
	}
}

func (f *fixture) resolver() *Resolver   { return f.registry.assembler.resolver }
func (f *fixture) assembler() *Assembler { return f.registry.assembler }

func (f *fixture) expectTrainType(train fakeTrain) {
	f.mock.ExpectQuery(`FROM train t JOIN traintype tt ON t.traintype_idtraintype = tt.idtraintype WHERE t.nrtrain = \$1`).
		WithArgs(train.number).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow(train.typeName))
}

func (f *fixture) expectPlatform(train fakeTrain, start bool) {
	row := train.end
	if start {
		row = train.start
	}
	f.mock.ExpectQuery(`WHERE t.train_nrtrain = \$1 AND t.start = \$2 LIMIT 1`).
		WithArgs(train.number, start).
		WillReturnRows(sqlmock.NewRows([]string{"number", "station", "city"}).
			AddRow(row.Number, row.Station, row.City))
}

func (f *fixture) expectMissingPlatform(train fakeTrain, start bool) {
	f.mock.ExpectQuery(`WHERE t.train_nrtrain = \$1 AND t.start = \$2 LIMIT 1`).
		WithArgs(train.number, start).
		WillReturnRows(sqlmock.NewRows([]string{"number", "station", "city"}))
}

// expectAssembly queues the queries BuildRoute issues for one route: the
// train type, then the arrival platform, then the departure platform.
func (f *fixture) expectAssembly(train fakeTrain, direction bool) {
	f.expectTrainType(train)
	f.expectPlatform(train, MatchStart(direction, true))
	f.expectPlatform(train, MatchStart(direction, false))
}

type storedRoute struct {
	id        int
	train     fakeTrain
	direction bool
	departure time.Time
	arrival   time.Time
}

func (f *fixture) expectReload(routes ...storedRoute) {
	f.mock.ExpectQuery(`SELECT idroute, arrival, departure, train_nrtrain, direction FROM route ORDER BY idroute`).
		WillReturnRows(routeRows(routes...))
	for _, r := range routes {
		f.expectAssembly(r.train, r.direction)
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2023, 12, 4, hour, minute, 0, 0, time.UTC)
}

type scriptedReader struct {
	lines   []string
	prompts []string
}

func (s *scriptedReader) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", console.ErrInputClosed
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedReader) count(prompt string) int {
	n := 0
	for _, p := range s.prompts {
		if p == prompt {
			n++
		}
	}
	return n
}

func routeRows(routes ...storedRoute) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"idroute", "arrival", "departure", "train_nrtrain", "direction"})
	for _, r := range routes {
		rows.AddRow(r.id, r.arrival, r.departure, r.train.number, r.direction)
	}
	return rows
}
