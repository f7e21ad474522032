// Package orm is a thin chainable wrapper over the shared gorm handle.
// Every terminal method records its latency in the db query histogram,
// and Cache consults Redis before touching the store.
package orm

import (
	"time"

	"github.com/nikitaraj/foodbridge/pkg/cache"
	"github.com/nikitaraj/foodbridge/pkg/database"
	"github.com/nikitaraj/foodbridge/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Distinct(cols ...interface{}) *Query {
	return &Query{db: q.db.Distinct(cols...)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Count(dest *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Count(dest).Error
}

func (q *Query) Pluck(column string, dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Pluck(column, dest).Error
}

func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Update sets one column on the rows selected by the chain and reports
// how many rows matched; zero rows means the target was absent.
func (q *Query) Update(column string, value interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.Update(column, value)
	return res.RowsAffected, res.Error
}

// Delete removes the rows selected by the chain and reports how many
// rows matched.
func (q *Query) Delete(v interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())
	res := q.db.Delete(v)
	return res.RowsAffected, res.Error
}

// Cache reads dest from the cache under key, falling back to the store
// and priming the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	cache.Set(key, dest, ttl) //nolint:errcheck
	return nil
}
