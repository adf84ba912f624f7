// Package client talks to the storefront HTTP API and holds the shopper's
// session and cart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// Error is a non-2xx response from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// API is a typed client for every storefront endpoint. Methods that need
// a caller take the bearer token explicitly.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &API{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (a *API) Register(ctx context.Context, email, password, name string) (services.Session, error) {
	var out services.Session
	err := a.do(ctx, http.MethodPost, "/auth/register", "", services.RegisterInput{Email: email, Password: password, Name: name}, &out)
	return out, err
}

func (a *API) Login(ctx context.Context, email, password string) (services.Session, error) {
	var out services.Session
	err := a.do(ctx, http.MethodPost, "/auth/login", "", services.LoginInput{Email: email, Password: password}, &out)
	return out, err
}

func (a *API) Me(ctx context.Context, token string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	err := a.do(ctx, http.MethodGet, "/auth/me", token, nil, &out)
	return out.User, err
}

func (a *API) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out struct {
		Products []models.Product `json:"products"`
	}
	err := a.do(ctx, http.MethodGet, path, "", nil, &out)
	return out.Products, err
}

func (a *API) Product(ctx context.Context, id string) (models.Product, error) {
	var out struct {
		Product models.Product `json:"product"`
	}
	err := a.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil, &out)
	return out.Product, err
}

func (a *API) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	err := a.do(ctx, http.MethodGet, "/products/categories", "", nil, &out)
	return out.Categories, err
}

func (a *API) CreateProduct(ctx context.Context, token string, in models.ProductInput) (models.Product, error) {
	var out struct {
		Product models.Product `json:"product"`
	}
	err := a.do(ctx, http.MethodPost, "/products", token, in, &out)
	return out.Product, err
}

func (a *API) UpdateProduct(ctx context.Context, token, id string, in models.ProductInput) (models.Product, error) {
	in.ID = id
	var out struct {
		Product models.Product `json:"product"`
	}
	err := a.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), token, in, &out)
	return out.Product, err
}

func (a *API) DeleteProduct(ctx context.Context, token, id string) error {
	body := map[string]string{"id": id}
	return a.do(ctx, http.MethodDelete, "/products", token, body, nil)
}

func (a *API) PlaceOrder(ctx context.Context, token string, in services.PlaceOrderInput) (models.Order, error) {
	var out struct {
		Order models.Order `json:"order"`
	}
	err := a.do(ctx, http.MethodPost, "/orders", token, in, &out)
	return out.Order, err
}

func (a *API) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out struct {
		Orders []models.Order `json:"orders"`
	}
	err := a.do(ctx, http.MethodGet, "/orders", token, nil, &out)
	return out.Orders, err
}

func (a *API) AllOrders(ctx context.Context, token string) ([]models.PurchasedOrder, error) {
	var out struct {
		Orders []models.PurchasedOrder `json:"orders"`
	}
	err := a.do(ctx, http.MethodGet, "/orders/admin", token, nil, &out)
	return out.Orders, err
}

func (a *API) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
