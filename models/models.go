package models

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

var ErrBadRequest = errors.New("bad request")
var ErrServerError = errors.New("server error")
var ErrNotFoundError = errors.New("not found")
var ErrNotAllowed = errors.New("not acceptable")
var ErrSubmitInProgress = errors.New("order submission already in progress")

// Product_db is a catalog row as stored in the Products table.
type Product_db struct {
	Id          string         `db:"Id"`
	Category    string         `db:"Category"`
	Title       string         `db:"Title"`
	Description sql.NullString `db:"Description"`
	Image       string         `db:"Image"`
	Price       sql.NullInt64  `db:"Price"`
}

// Order_db is a submitted order as stored by the postgres order sink.
type Order_db struct {
	Id        string
	Total     int
	Payload   json.RawMessage
	CreatedAt time.Time
}

// ProductListResponse is the list envelope returned by the catalog API.
type ProductListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// ApiError is the error body returned by the catalog API.
type ApiError struct {
	Error string `json:"error"`
}

// OrderPlaced is published to the message broker after a successful order.
type OrderPlaced struct {
	OrderId   string    `json:"order_id"`
	SessionId string    `json:"session_id"`
	Items     []string  `json:"items"`
	Total     int       `json:"total"`
	Payment   string    `json:"payment"`
	PlacedAt  time.Time `json:"placed_at"`
}
