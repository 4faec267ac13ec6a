package repository

import (
	"context"
	"database/sql"
	"errors"
	"larekStore/entities"
	"larekStore/models"
	"log"
)

type ProductSource interface {
	GetProductList(ctx context.Context) (prods []entities.Product, err error)
	GetProduct(ctx context.Context, id string) (prod entities.Product, err error)
}

type ProductRepository interface {
	ProductSource
	CreateProduct(ctx context.Context, prod entities.Product) (err error)
}

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepository(conn *sql.DB) (ProductRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &ProductRepo{
		db: conn,
	}, nil
}

// EnsureProductSchema creates the Products table. The statement is valid
// for both postgres and sqlite3.
func EnsureProductSchema(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS Products (
  Id TEXT PRIMARY KEY,
  Category TEXT NOT NULL,
  Title TEXT NOT NULL,
  Description TEXT,
  Image TEXT NOT NULL,
  Price INTEGER
);`)
	return err
}

func (p *ProductRepo) GetProductList(ctx context.Context) (prods []entities.Product, err error) {
	rows, e := p.db.QueryContext(ctx, "SELECT Id, Category, Title, Description, Image, Price FROM Products ORDER BY Title")
	if e != nil {
		log.Printf("GetProductList[1]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()
	prods = []entities.Product{}
	for rows.Next() {
		var pModel models.Product_db
		err = rows.Scan(&pModel.Id, &pModel.Category, &pModel.Title, &pModel.Description, &pModel.Image, &pModel.Price)
		if err != nil {
			log.Printf("GetProductList[2]: %v", err)
			err = models.ErrServerError
			return
		}
		prods = append(prods, toProduct(pModel))
	}
	if err = rows.Err(); err != nil {
		log.Printf("GetProductList[3]: %v", err)
		err = models.ErrServerError
	}
	return
}

func (p *ProductRepo) GetProduct(ctx context.Context, id string) (prod entities.Product, err error) {
	var pModel models.Product_db
	row := p.db.QueryRowContext(ctx, "SELECT Id, Category, Title, Description, Image, Price FROM Products WHERE Id = $1", id)
	err = row.Scan(&pModel.Id, &pModel.Category, &pModel.Title, &pModel.Description, &pModel.Image, &pModel.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = models.ErrNotFoundError
		} else {
			log.Printf("GetProduct: %v", err)
			err = models.ErrServerError
		}
		return
	}
	prod = toProduct(pModel)
	return
}

func (p *ProductRepo) CreateProduct(ctx context.Context, prod entities.Product) (err error) {
	if prod.Id == "" {
		log.Printf("id field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if !prod.Category.IsValid() {
		log.Printf("category field is invalid: %q", prod.Category)
		err = models.ErrNotAllowed
		return
	}
	if !isValidLen(prod.Title, 1, 100) {
		log.Printf("title field is invalid")
		err = models.ErrNotAllowed
		return
	}
	if prod.Price != nil && *prod.Price < 0 {
		log.Printf("price field is invalid")
		err = models.ErrNotAllowed
		return
	}
	price := sql.NullInt64{}
	if prod.Price != nil {
		price = sql.NullInt64{Int64: int64(*prod.Price), Valid: true}
	}
	_, e := p.db.ExecContext(ctx, "INSERT INTO Products (Id, Category, Title, Description, Image, Price) VALUES ($1, $2, $3, $4, $5, $6)",
		prod.Id, string(prod.Category), prod.Title,
		sql.NullString{String: prod.Description, Valid: prod.Description != ""}, prod.Image, price)
	if e != nil {
		log.Printf("CreateProduct: %v", e)
		err = models.ErrServerError
	}
	return
}

func toProduct(pModel models.Product_db) entities.Product {
	prod := entities.Product{
		Id:          pModel.Id,
		Category:    entities.Category(pModel.Category),
		Title:       pModel.Title,
		Description: pModel.Description.String,
		Image:       pModel.Image,
	}
	if pModel.Price.Valid {
		price := int(pModel.Price.Int64)
		prod.Price = &price
	}
	return prod
}

func isValidLen(input string, minLen int, maxLen int) bool {
	inputLen := len([]rune(input))
	if inputLen < minLen || inputLen > maxLen {
		return false
	}
	return true
}
