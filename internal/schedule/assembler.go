package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"train_routes/internal/database"
)

// ErrUnknownTrainType means the train has no train type row.
var ErrUnknownTrainType = errors.New("train type not found")

const trainTypeQuery = `SELECT tt.name
FROM train t
JOIN traintype tt ON t.traintype_idtraintype = tt.idtraintype
WHERE t.nrtrain = ?
LIMIT 1`

// Assembler builds Route values from stored route columns.
type Assembler struct {
	db       database.Executor
	resolver *Resolver
	log      logrus.FieldLogger
}

func NewAssembler(db database.Executor, resolver *Resolver, log logrus.FieldLogger) *Assembler {
	return &Assembler{db: db, resolver: resolver, log: log.WithField("component", "assembler")}
}

// BuildRoute loads the train type and both platforms of a route.
func (a *Assembler) BuildRoute(id int, departure, arrival time.Time, trainNumber int, direction bool) (*Route, error) {
	trainType, err := a.trainType(trainNumber)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"route":     id,
		"train":     fmt.Sprintf("%s %d", trainType, trainNumber),
		"direction": DirectionName(direction),
	}).Info("Creating route")

	// arrival takes the start-side lookup, departure the other one
	arr, err := a.resolver.ResolvePlatform(trainNumber, direction, true, arrival)
	if err != nil {
		return nil, err
	}
	dep, err := a.resolver.ResolvePlatform(trainNumber, direction, false, departure)
	if err != nil {
		return nil, err
	}

	return NewRoute(id, trainNumber, trainType, direction, dep, arr), nil
}

func (a *Assembler) trainType(trainNumber int) (string, error) {
	var name string
	err := a.db.QueryRow(&name, trainTypeQuery, trainNumber)
	if errors.Is(err, database.ErrNoRows) {
		return "", fmt.Errorf("train %d: %w", trainNumber, ErrUnknownTrainType)
	}
	if err != nil {
		return "", fmt.Errorf("failed selecting train type of train %d: %w", trainNumber, err)
	}
	return name, nil
}
