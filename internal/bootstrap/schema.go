package bootstrap

// tableSchema is the DDL of one table. Serial names the generated id
// column whose sequence has to be moved past seeded ids.
type tableSchema struct {
	Name       string
	Serial     string
	Statements []string
}

// tables lists the seven tables in foreign-key order. Every statement is
// idempotent so running the list against a partial schema only adds what
// is missing.
var tables = []tableSchema{
	{
		Name:   "station",
		Serial: "idstation",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS station (
				idstation SERIAL PRIMARY KEY,
				name      VARCHAR(45) NOT NULL
			)`,
		},
	},
	{
		Name:   "city",
		Serial: "idcity",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS city (
				idcity            SERIAL PRIMARY KEY,
				name              VARCHAR(45) NOT NULL,
				station_idstation INT NOT NULL,
				CONSTRAINT fk_city_station1 FOREIGN KEY (station_idstation)
					REFERENCES station (idstation) ON DELETE NO ACTION ON UPDATE NO ACTION
			)`,
			`CREATE INDEX IF NOT EXISTS fk_city_station1_idx ON city (station_idstation)`,
		},
	},
	{
		Name:   "platform",
		Serial: "idplatform",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS platform (
				idplatform        SERIAL PRIMARY KEY,
				nr                INT NOT NULL,
				station_idstation INT NOT NULL,
				CONSTRAINT fk_platform_station1 FOREIGN KEY (station_idstation)
					REFERENCES station (idstation) ON DELETE NO ACTION ON UPDATE NO ACTION
			)`,
			`CREATE INDEX IF NOT EXISTS fk_platform_station1_idx ON platform (station_idstation)`,
		},
	},
	{
		Name:   "traintype",
		Serial: "idtraintype",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS traintype (
				idtraintype SERIAL PRIMARY KEY,
				name        VARCHAR(45) NOT NULL
			)`,
		},
	},
	{
		Name:   "train",
		Serial: "nrtrain",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS train (
				nrtrain               SERIAL PRIMARY KEY,
				traintype_idtraintype INT NOT NULL,
				acquisition           DATE NOT NULL,
				CONSTRAINT fk_train_traintype FOREIGN KEY (traintype_idtraintype)
					REFERENCES traintype (idtraintype) ON DELETE NO ACTION ON UPDATE NO ACTION
			)`,
			`CREATE INDEX IF NOT EXISTS fk_train_traintype_idx ON train (traintype_idtraintype)`,
		},
	},
	{
		Name: "train_has_platform",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS train_has_platform (
				train_nrtrain       INT NOT NULL,
				platform_idplatform INT NOT NULL,
				start               BOOLEAN NOT NULL DEFAULT FALSE,
				PRIMARY KEY (train_nrtrain, platform_idplatform),
				CONSTRAINT fk_train_has_platform_train1 FOREIGN KEY (train_nrtrain)
					REFERENCES train (nrtrain) ON DELETE NO ACTION ON UPDATE NO ACTION,
				CONSTRAINT fk_train_has_platform_platform1 FOREIGN KEY (platform_idplatform)
					REFERENCES platform (idplatform) ON DELETE NO ACTION ON UPDATE NO ACTION
			)`,
			`CREATE INDEX IF NOT EXISTS fk_train_has_platform_platform1_idx ON train_has_platform (platform_idplatform)`,
			`CREATE INDEX IF NOT EXISTS fk_train_has_platform_train1_idx ON train_has_platform (train_nrtrain)`,
		},
	},
	{
		Name:   "route",
		Serial: "idroute",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS route (
				idroute       SERIAL PRIMARY KEY,
				arrival       TIMESTAMP(6) NOT NULL DEFAULT NOW(),
				departure     TIMESTAMP(6) NOT NULL DEFAULT NOW(),
				train_nrtrain INT NOT NULL,
				direction     BOOLEAN NOT NULL DEFAULT FALSE,
				CONSTRAINT fk_route_train1 FOREIGN KEY (train_nrtrain)
					REFERENCES train (nrtrain) ON DELETE NO ACTION ON UPDATE NO ACTION
			)`,
			`CREATE INDEX IF NOT EXISTS fk_route_train1_idx ON route (train_nrtrain)`,
		},
	},
}

// TableNames returns the names of the expected tables in creation order.
func TableNames() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}
