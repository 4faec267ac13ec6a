package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"

	"larekStore/entities"
	"larekStore/events"
	"larekStore/models"
	"larekStore/services"
	"larekStore/views"

	"github.com/gorilla/mux"
)

// Handler exposes the storefront session over HTTP. Every request except
// the order submission runs inside a single session turn.
type Handler struct {
	bus      *events.Bus
	state    *services.AppState
	turn     *services.Turn
	checkout *services.Checkout
	catalog  services.CatalogService

	page     *views.PageView
	basket   *views.BasketView
	delivery *views.FormView
	contact  *views.FormView
	modal    *views.ModalView
}

type HandlerParams struct {
	Bus      *events.Bus
	State    *services.AppState
	Turn     *services.Turn
	Checkout *services.Checkout
	Catalog  services.CatalogService

	Page     *views.PageView
	Basket   *views.BasketView
	Delivery *views.FormView
	Contact  *views.FormView
	Modal    *views.ModalView
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		bus:      params.Bus,
		state:    params.State,
		turn:     params.Turn,
		checkout: params.Checkout,
		catalog:  params.Catalog,
		page:     params.Page,
		basket:   params.Basket,
		delivery: params.Delivery,
		contact:  params.Contact,
		modal:    params.Modal,
	}
}

// Routes registers every endpoint of the session on router.
func (h *Handler) Routes(router *mux.Router) {
	router.Use(h.ErrorHandleMiddleware)

	router.HandleFunc("/catalog", h.GetCatalog).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)

	router.HandleFunc("/basket", h.GetBasket).Methods(http.MethodGet)
	router.HandleFunc("/basket/open", h.OpenBasket).Methods(http.MethodPost)
	router.HandleFunc("/basket/{id}", h.AddToBasket).Methods(http.MethodPost)
	router.HandleFunc("/basket/{id}", h.RemoveFromBasket).Methods(http.MethodDelete)

	router.HandleFunc("/order", h.GetCheckout).Methods(http.MethodGet)
	router.HandleFunc("/order", h.SetOrderField).Methods(http.MethodPatch)
	router.HandleFunc("/order/open", h.OpenOrder).Methods(http.MethodPost)
	router.HandleFunc("/order/delivery", h.SubmitDelivery).Methods(http.MethodPost)
	router.HandleFunc("/order/submit", h.SubmitOrder).Methods(http.MethodPost)

	router.HandleFunc("/modal/close", h.CloseModal).Methods(http.MethodPost)
	router.HandleFunc("/view", h.GetView).Methods(http.MethodGet)
}

//catalog

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	var resp models.ProductListResponse[entities.Product]
	h.turn.Run(func() {
		resp.Items = h.state.Catalog()
	})
	resp.Total = len(resp.Items)
	writeJSON(w, resp)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	prod, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	h.turn.Run(func() {
		h.bus.Emit(events.CardSelected{Product: prod})
	})
	writeJSON(w, prod)
}

//basket

func (h *Handler) GetBasket(w http.ResponseWriter, r *http.Request) {
	var resp entities.BasketResponse
	h.turn.Run(func() {
		resp = h.basketResponse()
	})
	writeJSON(w, resp)
}

func (h *Handler) AddToBasket(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var resp entities.BasketResponse
	var err error
	h.turn.Run(func() {
		prod, exists := h.state.Product(id)
		if !exists {
			err = models.ErrNotFoundError
			return
		}
		if !prod.Purchasable() {
			log.Printf("AddToBasket: product %s is not for sale", id)
			err = models.ErrNotAllowed
			return
		}
		h.bus.Emit(events.BasketAdd{Product: prod})
		resp = h.basketResponse()
	})
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) RemoveFromBasket(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var resp entities.BasketResponse
	h.turn.Run(func() {
		h.basket.Remove(id)
		resp = h.basketResponse()
	})
	writeJSON(w, resp)
}

func (h *Handler) OpenBasket(w http.ResponseWriter, r *http.Request) {
	var resp entities.BasketResponse
	h.turn.Run(func() {
		h.page.OpenBasket()
		resp = h.basketResponse()
	})
	writeJSON(w, resp)
}

func (h *Handler) basketResponse() entities.BasketResponse {
	return entities.BasketResponse{
		Items: h.state.Basket(),
		Count: h.state.BasketCount(),
		Total: h.state.BasketTotal(),
	}
}

//order

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	var resp entities.CheckoutResponse
	h.turn.Run(func() {
		resp = h.checkoutResponse()
	})
	writeJSON(w, resp)
}

func (h *Handler) SetOrderField(w http.ResponseWriter, r *http.Request) {
	req := entities.OrderFieldRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !req.Field.IsValid() {
		log.Printf("SetOrderField: unknown field %q", req.Field)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var resp entities.CheckoutResponse
	h.turn.Run(func() {
		form := h.contact
		if h.delivery.Owns(req.Field) {
			form = h.delivery
		}
		form.Input(req.Field, req.Value)
		resp = h.checkoutResponse()
	})
	writeJSON(w, resp)
}

func (h *Handler) OpenOrder(w http.ResponseWriter, r *http.Request) {
	var resp entities.CheckoutResponse
	var err error
	h.turn.Run(func() {
		err = h.checkout.Proceed()
		resp = h.checkoutResponse()
	})
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	var resp entities.CheckoutResponse
	var err error
	h.turn.Run(func() {
		err = h.checkout.SubmitDelivery()
		resp = h.checkoutResponse()
	})
	if errors.Is(err, models.ErrBadRequest) {
		writeJSONStatus(w, http.StatusUnprocessableEntity, resp)
		return
	}
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, resp)
}

// SubmitOrder sends the order. The sink is called outside any turn so the
// session stays responsive while the order is in flight.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.checkout.Submit(r.Context())
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) checkoutResponse() entities.CheckoutResponse {
	return entities.CheckoutResponse{
		Step:           h.checkout.Step(),
		Order:          h.state.Order(),
		DeliveryErrors: h.state.DeliveryErrors(),
		ContactErrors:  h.state.ContactErrors(),
	}
}

//view

func (h *Handler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.turn.Run(func() {
		h.modal.Close()
	})
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	var jsonData []byte
	var err error
	h.turn.Run(func() {
		jsonData, err = json.MarshalIndent(map[string]*views.Element{
			"page":  h.page.Root(),
			"modal": h.modal.Root(),
		}, "", "  ")
	})
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(jsonData); err != nil {
		log.Printf("Write err:%v", err)
	}
}

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrServerError):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	case errors.Is(err, models.ErrBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrNotFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotAllowed):
		http.Error(w, err.Error(), http.StatusNotAcceptable)
	case errors.Is(err, models.ErrSubmitInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("WriteErrorResponse: unexpected error: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
