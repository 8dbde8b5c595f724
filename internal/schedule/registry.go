package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"train_routes/internal/database"
	"train_routes/internal/models"
)

const routesQuery = `SELECT idroute, arrival, departure, train_nrtrain, direction FROM route ORDER BY idroute`

// Registry keeps the loaded routes keyed by id. It serves a single actor
// and is not safe for concurrent use.
type Registry struct {
	db        database.Executor
	assembler *Assembler
	log       logrus.FieldLogger
	routes    map[int]*Route

	// PromptDelay is waited before each timestamp prompt.
	PromptDelay time.Duration
}

func NewRegistry(db database.Executor, assembler *Assembler, log logrus.FieldLogger) *Registry {
	return &Registry{
		db:        db,
		assembler: assembler,
		log:       log.WithField("component", "registry"),
		routes:    map[int]*Route{},
	}
}

// Reload replaces the registry contents with every stored route. If any
// route fails to assemble the previous contents are kept.
func (r *Registry) Reload() error {
	var rows []models.Route
	if err := r.db.Query(&rows, routesQuery); err != nil {
		return fmt.Errorf("failed loading routes: %w", err)
	}

	routes := make(map[int]*Route, len(rows))
	for _, row := range rows {
		route, err := r.assembler.BuildRoute(row.ID, row.Departure, row.Arrival, row.TrainNumber, row.Direction)
		if err != nil {
			return fmt.Errorf("failed assembling route %d: %w", row.ID, err)
		}
		routes[row.ID] = route
	}

	r.routes = routes
	r.log.WithField("routes", len(routes)).Info("Routes reloaded")
	return nil
}

// Get returns the route with the given id.
func (r *Registry) Get(id int) (*Route, bool) {
	route, ok := r.routes[id]
	return route, ok
}

func (r *Registry) Len() int {
	return len(r.routes)
}

// Routes returns the loaded routes ordered by id.
func (r *Registry) Routes() []*Route {
	out := make([]*Route, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
