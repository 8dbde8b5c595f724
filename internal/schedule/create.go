package schedule

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"train_routes/internal/console"
	"train_routes/internal/models"
)

const trainsQuery = `SELECT t.nrtrain AS number, tt.name AS type_name
FROM train t
JOIN traintype tt ON t.traintype_idtraintype = tt.idtraintype
ORDER BY t.nrtrain`

const insertRouteQuery = `INSERT INTO route (arrival, departure, train_nrtrain, direction)
VALUES (?, ?, ?, ?)
RETURNING idroute`

// Trains lists every train with its type name.
func (r *Registry) Trains() ([]models.TrainSummary, error) {
	var trains []models.TrainSummary
	if err := r.db.Query(&trains, trainsQuery); err != nil {
		return nil, fmt.Errorf("failed selecting trains: %w", err)
	}
	return trains, nil
}

// CreateRouteInteractive asks for a train, a direction and the two
// timestamps, stores the route and reloads the registry. Invalid answers
// are asked again; only storage failures and closed input end the flow
// with an error.
func (r *Registry) CreateRouteInteractive(in console.LineReader, out io.Writer) (*Route, error) {
	trains, err := r.Trains()
	if err != nil {
		return nil, err
	}
	if len(trains) == 0 {
		return nil, errors.New("no trains to create a route for")
	}

	trainNumber, err := r.promptTrain(in, out, trains)
	if err != nil {
		return nil, err
	}
	direction, err := r.promptDirection(in, out, trainNumber)
	if err != nil {
		return nil, err
	}
	departure, err := r.promptTime(in, out, "Departure", time.Time{})
	if err != nil {
		return nil, err
	}
	arrival, err := r.promptTime(in, out, "Arrival", departure)
	if err != nil {
		return nil, err
	}

	var id int
	if err := r.db.QueryRow(&id, insertRouteQuery, arrival, departure, trainNumber, direction); err != nil {
		return nil, fmt.Errorf("failed inserting route for train %d: %w", trainNumber, err)
	}
	r.log.WithFields(logrus.Fields{"route": id, "train": trainNumber}).Info("Route created")

	if err := r.Reload(); err != nil {
		return nil, err
	}
	route, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("route %d missing after reload", id)
	}
	return route, nil
}

func (r *Registry) promptTrain(in console.LineReader, out io.Writer, trains []models.TrainSummary) (int, error) {
	known := make(map[int]bool, len(trains))
	for _, t := range trains {
		known[t.Number] = true
	}

	console.RenderTrains(out, trains)
	for {
		line, err := in.ReadLine("Train number: ")
		if err != nil {
			return 0, fmt.Errorf("read train number: %w", err)
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && known[n] {
			return n, nil
		}
		_, _ = fmt.Fprintf(out, "%q is not a known train number.\n", line)
	}
}

func (r *Registry) promptDirection(in console.LineReader, out io.Writer, trainNumber int) (bool, error) {
	forwards, backwards, err := r.directionLabels(trainNumber)
	if err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(out, "f: %s\nb: %s\n", forwards, backwards)
	for {
		line, err := in.ReadLine("Direction [f/b]: ")
		if err != nil {
			return false, fmt.Errorf("read direction: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "f":
			return true, nil
		case "b":
			return false, nil
		}
		_, _ = fmt.Fprintln(out, "Enter f for forwards or b for backwards.")
	}
}

// directionLabels renders "<departure> --> <arrival>" for both directions
// of the train's line.
func (r *Registry) directionLabels(trainNumber int) (forwards, backwards string, err error) {
	start, end, err := r.assembler.resolver.Termini(trainNumber)
	if err != nil {
		return "", "", err
	}

	label := func(direction bool) string {
		dep, arr := start, end
		if MatchStart(direction, true) {
			dep, arr = end, start
		}
		return platformLabel(dep) + " --> " + platformLabel(arr)
	}
	return label(true), label(false), nil
}

func platformLabel(p PlatformSnapshot) string {
	return fmt.Sprintf("%s (%s) platform %d", p.Station, p.City, p.Number)
}

// promptTime reads a timestamp in TimeLayout. A non-zero notBefore rejects
// earlier times.
func (r *Registry) promptTime(in console.LineReader, out io.Writer, what string, notBefore time.Time) (time.Time, error) {
	for {
		time.Sleep(r.PromptDelay)

		line, err := in.ReadLine(fmt.Sprintf("%s (%s): ", what, TimeLayout))
		if err != nil {
			return time.Time{}, fmt.Errorf("read %s: %w", strings.ToLower(what), err)
		}
		ts, parseErr := time.ParseInLocation(TimeLayout, strings.TrimSpace(line), time.UTC)
		if parseErr != nil {
			_, _ = fmt.Fprintf(out, "%q does not match %s.\n", line, TimeLayout)
			continue
		}
		if !notBefore.IsZero() && ts.Before(notBefore) {
			_, _ = fmt.Fprintf(out, "%s must not be before %s.\n", what, notBefore.Format(TimeLayout))
			continue
		}
		return ts, nil
	}
}
