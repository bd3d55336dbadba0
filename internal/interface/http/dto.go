package handlers

import (
	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

type productResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Rate        string `json:"rate"`
	IsGreen     bool   `json:"is_green"`
	Description string `json:"description"`
}

func toProductResponse(p *entity.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Duration:    p.Duration,
		Rate:        p.Rate,
		IsGreen:     p.IsGreen,
		Description: p.Description,
	}
}

func toProductResponses(products []entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type investmentResponse struct {
	ID           int64            `json:"id"`
	Amount       string           `json:"amount"`
	PurchaseDate string           `json:"purchase_date"`
	SaleDate     *string          `json:"sale_date,omitempty"`
	Sold         bool             `json:"sold"`
	Product      *productResponse `json:"product,omitempty"`
}

func toInvestmentResponse(inv *entity.Investment) investmentResponse {
	r := investmentResponse{
		ID:           inv.ID,
		Amount:       inv.Amount.StringFixed(2),
		PurchaseDate: inv.PurchaseDate.Format(dateLayout),
		Sold:         inv.Sold(),
	}
	if inv.SaleDate != nil {
		sd := inv.SaleDate.Format(dateLayout)
		r.SaleDate = &sd
	}
	if inv.Product != nil {
		p := toProductResponse(inv.Product)
		r.Product = &p
	}
	return r
}

func toInvestmentResponses(investments []entity.Investment) []investmentResponse {
	out := make([]investmentResponse, 0, len(investments))
	for i := range investments {
		out = append(out, toInvestmentResponse(&investments[i]))
	}
	return out
}

type profileResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	ImageURL  string `json:"image_url,omitempty"`
	IsActive  bool   `json:"is_active"`
}

func toProfileResponse(p *entity.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		ImageURL:  p.ImageURL,
		IsActive:  p.IsActive,
	}
}

type profileViewResponse struct {
	Profile         profileResponse      `json:"profile"`
	OpenInvestments []investmentResponse `json:"open_investments"`
	OpenTotal       string               `json:"open_total"`
}

func toProfileViewResponse(v *application.ProfileView) profileViewResponse {
	return profileViewResponse{
		Profile:         toProfileResponse(v.Profile),
		OpenInvestments: toInvestmentResponses(v.OpenInvestments),
		OpenTotal:       v.OpenTotal.StringFixed(2),
	}
}
