package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/yourorg/qoz-dashboard/catalog"
)

type Store struct{ DB *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{DB: db}, nil
}

func (s *Store) Close() error { return s.DB.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS qoz_properties (
            id            TEXT PRIMARY KEY,
            position      INTEGER NOT NULL DEFAULT 0,
            title         TEXT NOT NULL,
            address       TEXT NOT NULL,
            description   TEXT NOT NULL DEFAULT '',
            source        TEXT NOT NULL DEFAULT '',
            price         BIGINT NOT NULL,
            acreage       DOUBLE PRECISION NOT NULL,
            distance      DOUBLE PRECISION NOT NULL,
            zoning        TEXT NOT NULL,
            qoz_eligible  BOOLEAN NOT NULL DEFAULT false,
            tract_id      TEXT NOT NULL DEFAULT '',
            map_x         DOUBLE PRECISION NOT NULL DEFAULT 50,
            map_y         DOUBLE PRECISION NOT NULL DEFAULT 50,
            created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_qoz_properties_position ON qoz_properties(position);`,
		`CREATE INDEX IF NOT EXISTS idx_qoz_properties_zoning ON qoz_properties(zoning);`,
	}
	for _, q := range stmts {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// PropertyRecord is the row shape of qoz_properties.
type PropertyRecord struct {
	ID          string  `db:"id"`
	Position    int     `db:"position"`
	Title       string  `db:"title"`
	Address     string  `db:"address"`
	Description string  `db:"description"`
	Source      string  `db:"source"`
	Price       int64   `db:"price"`
	Acreage     float64 `db:"acreage"`
	Distance    float64 `db:"distance"`
	Zoning      string  `db:"zoning"`
	QOZEligible bool    `db:"qoz_eligible"`
	TractID     string  `db:"tract_id"`
	MapX        float64 `db:"map_x"`
	MapY        float64 `db:"map_y"`
}

func RecordFromProperty(position int, p catalog.Property) PropertyRecord {
	return PropertyRecord{
		ID:          p.ID,
		Position:    position,
		Title:       p.Title,
		Address:     p.Address,
		Description: p.Description,
		Source:      p.Source,
		Price:       p.Price,
		Acreage:     p.Acreage,
		Distance:    p.Distance,
		Zoning:      p.Zoning,
		QOZEligible: p.QOZEligible,
		TractID:     p.TractID,
		MapX:        p.Coordinates.X,
		MapY:        p.Coordinates.Y,
	}
}

func (r PropertyRecord) Property() catalog.Property {
	return catalog.Property{
		ID:          r.ID,
		Title:       r.Title,
		Address:     r.Address,
		Description: r.Description,
		Source:      r.Source,
		Price:       r.Price,
		Acreage:     r.Acreage,
		Distance:    r.Distance,
		Zoning:      r.Zoning,
		QOZEligible: r.QOZEligible,
		TractID:     r.TractID,
		Coordinates: catalog.Coordinates{X: r.MapX, Y: r.MapY},
	}
}

func (s *Store) UpsertProperty(ctx context.Context, rec PropertyRecord) error {
	if s.DB == nil {
		return errors.New("nil db")
	}
	if rec.ID == "" {
		return errors.New("property id required")
	}
	_, err := s.DB.NamedExecContext(ctx, `
        INSERT INTO qoz_properties (id, position, title, address, description, source, price, acreage, distance, zoning, qoz_eligible, tract_id, map_x, map_y)
        VALUES (:id, :position, :title, :address, :description, :source, :price, :acreage, :distance, :zoning, :qoz_eligible, :tract_id, :map_x, :map_y)
        ON CONFLICT (id)
        DO UPDATE SET position=EXCLUDED.position, title=EXCLUDED.title, address=EXCLUDED.address, description=EXCLUDED.description, source=EXCLUDED.source, price=EXCLUDED.price, acreage=EXCLUDED.acreage, distance=EXCLUDED.distance, zoning=EXCLUDED.zoning, qoz_eligible=EXCLUDED.qoz_eligible, tract_id=EXCLUDED.tract_id, map_x=EXCLUDED.map_x, map_y=EXCLUDED.map_y, updated_at=now()`,
		rec)
	if err != nil {
		return fmt.Errorf("upsert property %s: %w", rec.ID, err)
	}
	return nil
}

// LoadProperties returns the whole catalog in position order.
func (s *Store) LoadProperties(ctx context.Context) ([]catalog.Property, error) {
	var recs []PropertyRecord
	err := s.DB.SelectContext(ctx, &recs, `
        SELECT id, position, title, address, description, source, price, acreage, distance, zoning, qoz_eligible, tract_id, map_x, map_y
        FROM qoz_properties
        ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	out := make([]catalog.Property, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Property())
	}
	return out, nil
}
