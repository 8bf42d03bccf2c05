package crmapi

import (
	"context"
	"fmt"
	"net/http"

	"ahlan_office/internal/models"
)

// UpdateApartmentStatus PATCHes the apartment status, e.g. to "band" after
// a reservation-type sale.
func (c *Client) UpdateApartmentStatus(ctx context.Context, apartmentID int64, status models.ApartmentStatus) error {
	body := map[string]models.ApartmentStatus{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/apartments/%d/", apartmentID), body, nil)
}

func (c *Client) Apartment(ctx context.Context, apartmentID int64) (models.Apartment, error) {
	var a models.Apartment
	if err := c.get(ctx, fmt.Sprintf("/apartments/%d/", apartmentID), &a); err != nil {
		return models.Apartment{}, err
	}
	return a, nil
}

func (c *Client) Apartments(ctx context.Context) ([]models.Apartment, error) {
	return FetchAll[models.Apartment](ctx, c.Paginate("/apartments/"))
}

func (c *Client) ClientRecord(ctx context.Context, clientID int64) (models.Client, error) {
	var cl models.Client
	if err := c.get(ctx, fmt.Sprintf("/clients/%d/", clientID), &cl); err != nil {
		return models.Client{}, err
	}
	return cl, nil
}

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	return FetchAll[models.Client](ctx, c.Paginate("/clients/"))
}

// Objects returns the id -> name map used to enrich apartment listings.
func (c *Client) Objects(ctx context.Context) (map[int64]string, error) {
	type object struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	objs, err := FetchAll[object](ctx, c.Paginate("/objects/"))
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(objs))
	for _, o := range objs {
		out[o.ID] = o.Name
	}
	return out, nil
}
