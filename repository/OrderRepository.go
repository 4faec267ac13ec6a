package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"larekStore/entities"
	"larekStore/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOrderRepo is an OrderSink that stores orders in postgres instead
// of posting them to the storefront API.
type PostgresOrderRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresOrderRepo(pool *pgxpool.Pool) *PostgresOrderRepo {
	return &PostgresOrderRepo{Pool: pool}
}

// EnsureOrderSchema creates the orders table if it is missing.
func EnsureOrderSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS orders (
  id text PRIMARY KEY,
  total integer NOT NULL,
  payload jsonb NOT NULL,
  created_at timestamptz NOT NULL
);`)
	return err
}

func (r *PostgresOrderRepo) SubmitOrder(ctx context.Context, order entities.Order) (res entities.OrderResult, err error) {
	if len(order.Items) == 0 {
		log.Printf("SubmitOrder: order has no items")
		err = models.ErrBadRequest
		return
	}
	payload, e := json.Marshal(order)
	if e != nil {
		log.Printf("SubmitOrder: Marshal err: %v", e)
		err = models.ErrServerError
		return
	}
	row := models.Order_db{
		Id:        uuid.NewString(),
		Total:     order.Total,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	_, e = r.Pool.Exec(ctx, `INSERT INTO orders(id, total, payload, created_at) VALUES($1, $2, $3, $4)`,
		row.Id, row.Total, row.Payload, row.CreatedAt)
	if e != nil {
		log.Printf("SubmitOrder: %v", e)
		err = models.ErrServerError
		return
	}
	res = entities.OrderResult{Id: row.Id, Total: row.Total}
	return
}

func (r *PostgresOrderRepo) GetOrder(ctx context.Context, id string) (order entities.Order, err error) {
	var payload []byte
	e := r.Pool.QueryRow(ctx, `SELECT payload FROM orders WHERE id = $1`, id).Scan(&payload)
	if e != nil {
		if errors.Is(e, pgx.ErrNoRows) {
			err = models.ErrNotFoundError
			return
		}
		log.Printf("GetOrder: %v", e)
		err = models.ErrServerError
		return
	}
	if e = json.Unmarshal(payload, &order); e != nil {
		log.Printf("GetOrder: Unmarshal err: %v", e)
		err = models.ErrServerError
	}
	return
}

var _ OrderSink = (*PostgresOrderRepo)(nil)
var _ OrderSink = (*LarekAPI)(nil)
var _ ProductSource = (*LarekAPI)(nil)
