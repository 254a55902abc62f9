package api

import (
	"github.com/greenswap/greenbot/internal/classifications"
	"github.com/greenswap/greenbot/internal/conversations"
	"github.com/greenswap/greenbot/internal/items"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Items           items.System
	Classifications classifications.System
	Conversations   conversations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	itemSystem := items.NewSystem(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	classificationSystem := classifications.NewSystem(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Models,
		itemSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	conversationSystem := conversations.NewSystem(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Models,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Items:           itemSystem,
		Classifications: classificationSystem,
		Conversations:   conversationSystem,
	}
}
