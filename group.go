package core

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/gofrs/uuid"
)

type (
	GroupStore interface {
		CreateGroup(ctx context.Context, group *Group) error
		GetGroupById(ctx context.Context, id uuid.UUID) (*Group, error)
		GetGroupByName(ctx context.Context, name string) (*Group, error)
		UpdateGroup(ctx context.Context, name string, group *Group) error
		GetAllGroups(ctx context.Context) ([]*Group, error)
	}

	// Group is a named collection of pools under one admin key.
	Group struct {
		Id       uuid.UUID `json:"id"`
		AdminKey string    `json:"adminKey"`

		Name        string `json:"name"`
		Description string `json:"description"`
		CreatedAt   int64  `json:"createdAt"`
		UpdatedAt   int64  `json:"updatedAt"`
	}
)

func NewGroup(clk clock.Clock, adminKey string, name string, description string) *Group {
	return &Group{
		Id:          uuid.Must(uuid.NewV4()),
		AdminKey:    adminKey,
		Name:        name,
		Description: description,
		CreatedAt:   clk.Now().Unix(),
		UpdatedAt:   clk.Now().Unix(),
	}
}

func (g *Group) Update(clk clock.Clock, adminKey string, name string, description string) {
	g.AdminKey = adminKey
	g.Name = name
	g.Description = description
	g.UpdatedAt = clk.Now().Unix()
}
