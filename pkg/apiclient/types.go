package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pieglobal/storefront/pkg/cart"
)

// Product is a catalog entry as served by the API. Prices are decimal strings.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description"`
	ShortDescription   string   `json:"short_description"`
	Price              string   `json:"price"`
	CompareAtPrice     *string  `json:"compare_at_price"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
	MainImage          string   `json:"main_image"`
	Gallery            []string `json:"gallery"`
	Stock              int      `json:"stock"`
	SKU                *string  `json:"sku"`
	Dimensions         string   `json:"dimensions"`
	Material           string   `json:"material"`
	Color              string   `json:"color"`
	Weight             string   `json:"weight"`
	Featured           bool     `json:"featured"`
	IsActive           bool     `json:"is_active"`
	OnSale             bool     `json:"on_sale"`
	MetaTitle          string   `json:"meta_title"`
	MetaDescription    string   `json:"meta_description"`
	InStock            bool     `json:"in_stock"`
	DiscountPercentage float64  `json:"discount_percentage"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// Ref converts the product into the reference the cart accepts.
func (p Product) Ref() (cart.ProductRef, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return cart.ProductRef{}, fmt.Errorf("product %d: parse price %q: %w", p.ID, p.Price, err)
	}
	if price.IsNegative() {
		return cart.ProductRef{}, fmt.Errorf("product %d: negative price %s", p.ID, p.Price)
	}
	return cart.ProductRef{
		ID:        cart.ProductID(p.ID),
		Name:      p.Name,
		Slug:      p.Slug,
		UnitPrice: price.InexactFloat64(),
		Image:     p.MainImage,
	}, nil
}

// ProductPage is one page of the product listing. The API answers either
// with a paginated object or with a bare array; both decode into ProductPage.
type ProductPage struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Product `json:"results"`
}

func (p *ProductPage) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []Product
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*p = ProductPage{Count: len(items), Results: items}
		return nil
	}

	type page ProductPage
	var v page
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = ProductPage(v)
	return nil
}

// OrderItem is one line of an order request.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image,omitempty"`
}

// OrderRequest is the payload of POST orders/.
type OrderRequest struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	PostalCode    string      `json:"postal_code"`
	Notes         string      `json:"notes"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount"`
}

// Order is an order as echoed back by the API.
type Order struct {
	ID            int64       `json:"id,omitempty"`
	Name          string      `json:"name"`
	Email         string      `json:"email,omitempty"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city,omitempty"`
	PostalCode    string      `json:"postal_code,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   json.Number `json:"total_amount"`
	Status        string      `json:"status,omitempty"`
	Paid          bool        `json:"paid,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     string      `json:"created_at,omitempty"`
}

// OrderCreated is the acknowledgement returned with HTTP 201.
type OrderCreated struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type SliderImage struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Order      int    `json:"order"`
	Active     bool   `json:"active"`
	UploadedAt string `json:"uploaded_at"`
}

type HomeVideo struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Video      string `json:"video"`
	Active     bool   `json:"active"`
	UploadedAt string `json:"uploaded_at"`
}

type AboutPage struct {
	ID        int64  `json:"id"`
	Headline  string `json:"headline"`
	Body      string `json:"body"`
	Mission   string `json:"mission"`
	Vision    string `json:"vision"`
	UpdatedAt string `json:"updated_at"`
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}

type MessageCreated struct {
	Message string         `json:"message"`
	Data    ContactMessage `json:"data"`
}

// User is the account view returned by the auth endpoints.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is the envelope of every auth endpoint.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
