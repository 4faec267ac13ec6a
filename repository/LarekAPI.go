package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"larekStore/entities"
	"larekStore/models"
)

type OrderSink interface {
	SubmitOrder(ctx context.Context, order entities.Order) (res entities.OrderResult, err error)
}

// LarekAPI is the HTTP client of the storefront backend. It serves both as
// the catalog source and as the order sink.
type LarekAPI struct {
	baseUrl string
	cdn     string
	client  *http.Client
}

func NewLarekAPI(baseUrl string, cdn string, client *http.Client) *LarekAPI {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &LarekAPI{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		cdn:     cdn,
		client:  client,
	}
}

func (a *LarekAPI) GetProductList(ctx context.Context) (prods []entities.Product, err error) {
	var data models.ProductListResponse[entities.Product]
	err = a.do(ctx, http.MethodGet, "/product", nil, &data)
	if err != nil {
		return
	}
	prods = make([]entities.Product, 0, len(data.Items))
	for _, item := range data.Items {
		item.Image = a.cdn + item.Image
		prods = append(prods, item)
	}
	return
}

func (a *LarekAPI) GetProduct(ctx context.Context, id string) (prod entities.Product, err error) {
	err = a.do(ctx, http.MethodGet, "/product/"+id, nil, &prod)
	if err != nil {
		return
	}
	prod.Image = a.cdn + prod.Image
	return
}

func (a *LarekAPI) SubmitOrder(ctx context.Context, order entities.Order) (res entities.OrderResult, err error) {
	err = a.do(ctx, http.MethodPost, "/order", order, &res)
	return
}

func (a *LarekAPI) do(ctx context.Context, method string, uri string, body any, out any) (err error) {
	var reqBody *bytes.Reader
	if body != nil {
		jsonData, e := json.Marshal(body)
		if e != nil {
			log.Printf("LarekAPI %s %s: Marshal err: %v", method, uri, e)
			err = models.ErrBadRequest
			return
		}
		reqBody = bytes.NewReader(jsonData)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, e := http.NewRequestWithContext(ctx, method, a.baseUrl+uri, reqBody)
	if e != nil {
		log.Printf("LarekAPI %s %s: %v", method, uri, e)
		err = models.ErrBadRequest
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, e := a.client.Do(req)
	if e != nil {
		log.Printf("LarekAPI %s %s: %v", method, uri, e)
		err = fmt.Errorf("%w: %v", models.ErrServerError, e)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr models.ApiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		log.Printf("LarekAPI %s %s: %d %s", method, uri, resp.StatusCode, apiErr.Error)
		err = fmt.Errorf("%w: %s", statusError(resp.StatusCode), apiErr.Error)
		return
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		log.Printf("LarekAPI %s %s: Unmarshal err: %v", method, uri, err)
		err = models.ErrServerError
	}
	return
}

func statusError(code int) error {
	switch {
	case code == http.StatusNotFound:
		return models.ErrNotFoundError
	case code >= 400 && code < 500:
		return models.ErrBadRequest
	default:
		return models.ErrServerError
	}
}
