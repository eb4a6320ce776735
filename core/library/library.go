// Package library holds the class wallet's purchased digital resources.
// A purchase only records a label: there is no price, balance or payment.
package library

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

type (
	Repository interface {
		// AddItem appends label(n), n being the number of items before the append,
		// and returns the whole list right after it.
		AddItem(ctx context.Context, label func(n int) string) ([]string, error)
		QueryAllItems(ctx context.Context) ([]string, error)
	}

	Service struct {
		repo   Repository
		events core.EventPublisher
		logger core.Logger
	}

	Purchase struct {
		Item string `json:"item"`
	}
)

func NewService(repo Repository, events core.EventPublisher, logger core.Logger) *Service {
	return &Service{repo: repo, events: events, logger: logger}
}

// ItemLabel names the n-th (0-based) purchased resource.
func ItemLabel(n int) string {
	return fmt.Sprintf("Digital Resource %d", n)
}

func (svc *Service) Buy(ctx context.Context) ([]string, error) {
	items, err := svc.repo.AddItem(ctx, ItemLabel)
	if err != nil {
		return nil, errors.Wrap(err, "adding library item")
	}
	core.Notify(svc.events, svc.logger, core.SubjectLibraryPurchased, Purchase{Item: items[len(items)-1]})
	return items, nil
}

func (svc *Service) List(ctx context.Context) ([]string, error) {
	return svc.repo.QueryAllItems(ctx)
}
