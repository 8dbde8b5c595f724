package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train_routes/internal/console"
	"train_routes/internal/schedule"
)

type scriptedReader struct {
	lines []string
	reads int
}

func (s *scriptedReader) ReadLine(string) (string, error) {
	s.reads++
	if len(s.lines) == 0 {
		return "", console.ErrInputClosed
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type fakeBook struct {
	routes    []*schedule.Route
	created   *schedule.Route
	createErr error
	creates   int
	reloads   int
}

func (f *fakeBook) CreateRouteInteractive(console.LineReader, io.Writer) (*schedule.Route, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.routes = append(f.routes, f.created)
	return f.created, nil
}

func (f *fakeBook) Reload() error {
	f.reloads++
	return nil
}

func (f *fakeBook) Routes() []*schedule.Route { return f.routes }

func route(id int) *schedule.Route {
	dep := schedule.PlatformSnapshot{Number: 1, Station: "hbf-wien", City: "wien", Time: time.Date(2023, 12, 4, 8, 0, 0, 0, time.UTC)}
	arr := schedule.PlatformSnapshot{Number: 2, Station: "hbf-salzburg", City: "salzburg", Time: time.Date(2023, 12, 4, 9, 30, 0, 0, time.UTC)}
	return schedule.NewRoute(id, 1, "REX", true, dep, arr)
}

func TestSession(t *testing.T) {
	tests := []struct {
		name        string
		mode        createMode
		lines       []string
		wantCreates int
		wantRoutes  []string
	}{
		{
			name:        "yes creates then prints",
			mode:        askCreate,
			lines:       []string{"maybe", "y"},
			wantCreates: 1,
			wantRoutes:  []string{"Route: 7", "Route: 13"},
		},
		{
			name:       "no only prints",
			mode:       askCreate,
			lines:      []string{"no"},
			wantRoutes: []string{"Route: 7"},
		},
		{
			name:        "create flag skips the question",
			mode:        alwaysCreate,
			wantCreates: 1,
			wantRoutes:  []string{"Route: 7", "Route: 13"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := &fakeBook{routes: []*schedule.Route{route(7)}, created: route(13)}
			in := &scriptedReader{lines: tt.lines}
			var out bytes.Buffer

			require.NoError(t, session(book, in, &out, tt.mode))

			assert.Equal(t, tt.wantCreates, book.creates)
			assert.Equal(t, 1, book.reloads)
			for _, want := range tt.wantRoutes {
				assert.Contains(t, out.String(), want)
			}
			if tt.wantCreates == 0 {
				assert.NotContains(t, out.String(), "Created:")
			}
		})
	}
}

func TestSessionNoCreateNeverReads(t *testing.T) {
	book := &fakeBook{routes: []*schedule.Route{route(7)}}
	var out bytes.Buffer

	require.NoError(t, session(book, nil, &out, neverCreate))

	assert.Zero(t, book.creates)
	assert.Equal(t, "Route: 7\nTrain: REX 1\n"+
		"Departure: platform 1 from station hbf-wien in wien at 2023-12-04 08:00:00\n"+
		"Arrival: platform 2 from station hbf-salzburg in salzburg at 2023-12-04 09:30:00\n\n", out.String())
}

func TestSessionErrors(t *testing.T) {
	t.Run("closed input at the gate", func(t *testing.T) {
		book := &fakeBook{}
		err := session(book, &scriptedReader{}, &bytes.Buffer{}, askCreate)

		assert.ErrorIs(t, err, console.ErrInputClosed)
		assert.Zero(t, book.reloads)
	})

	t.Run("creation failure stops before printing", func(t *testing.T) {
		book := &fakeBook{routes: []*schedule.Route{route(7)}, createErr: assert.AnError}
		var out bytes.Buffer
		err := session(book, &scriptedReader{lines: []string{"y"}}, &out, askCreate)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, book.reloads)
		assert.NotContains(t, out.String(), "Route: 7")
	})
}
