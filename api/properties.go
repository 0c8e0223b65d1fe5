// File: api/properties.go
package api

import (
	"context"

	"cocoliving/models"
)

// ListProperties returns every property with its nested rate card.
func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	var res struct {
		Properties []models.Property `json:"properties"`
	}
	if err := c.getJSON(ctx, "/api/property/getAll", &res, authOptional); err != nil {
		return nil, err
	}
	return res.Properties, nil
}

// ListRooms returns every bookable room across properties.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var res struct {
		Rooms []models.Room `json:"rooms"`
	}
	if err := c.getJSON(ctx, "/api/rooms/getall", &res, authOptional); err != nil {
		return nil, err
	}
	return res.Rooms, nil
}

// ListEvents returns upcoming community events.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var res struct {
		Events []models.Event `json:"events"`
	}
	if err := c.getJSON(ctx, "/api/events/allevents", &res, authOptional); err != nil {
		return nil, err
	}
	return res.Events, nil
}

// ListFoodMenus returns the weekly food menus visible to the user.
func (c *Client) ListFoodMenus(ctx context.Context) ([]models.FoodMenu, error) {
	var res struct {
		Menus []models.FoodMenu `json:"menus"`
	}
	if err := c.getJSON(ctx, "/api/food-menu/user-menus", &res, authRequired); err != nil {
		return nil, err
	}
	return res.Menus, nil
}
