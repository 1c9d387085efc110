package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

// listProvider implements the list operations shared by every provider on top
// of a [ListPersistence] strategy. Its reads never offer a background sync.
type listProvider struct {
	persistence ListPersistence
	ids         *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func newListProvider(persistence ListPersistence, logger *logger.Logger) *listProvider {
	return &listProvider{
		persistence: persistence,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (p *listProvider) GetShoppingLists(ctx context.Context) (models.ReadResult[models.ListsIndex], error) {
	metadata, state, err := p.persistence.GetListsDetails(ctx)
	if err != nil {
		return models.ReadResult[models.ListsIndex]{Data: models.ListsIndex{}, State: models.CacheStateMissing},
			fmt.Errorf("get lists details: %w", err)
	}

	return models.ReadResult[models.ListsIndex]{Data: metadata.Lists, State: state}, nil
}

func (p *listProvider) GetShoppingListData(ctx context.Context, listID string) (models.ReadResult[*models.ListContent], error) {
	if err := validateListID(listID); err != nil {
		return models.ReadResult[*models.ListContent]{State: models.CacheStateMissing}, err
	}

	content, state, err := p.persistence.GetListData(ctx, listID)
	if err != nil {
		return models.ReadResult[*models.ListContent]{State: models.CacheStateMissing},
			fmt.Errorf("get list %s data: %w", listID, err)
	}

	return models.ReadResult[*models.ListContent]{Data: content, State: state}, nil
}

// CreateShoppingList stores an empty list and adds its summary to the index.
func (p *listProvider) CreateShoppingList(ctx context.Context, name string) (models.ListSummary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ListSummary{}, ErrInvalidListName
	}

	id := p.ids.Generate()
	ts := formatTimestamp(p.now())

	content := &models.ListContent{ID: id, Name: name, Items: models.ItemList{}, UpdatedAt: ts}
	if err := p.persistence.CreateListData(ctx, id, content); err != nil {
		return models.ListSummary{}, fmt.Errorf("create list %s data: %w", id, err)
	}

	metadata, _, err := p.persistence.GetListsDetails(ctx)
	if err != nil {
		return models.ListSummary{}, fmt.Errorf("get lists details: %w", err)
	}
	if metadata.Lists == nil {
		metadata.Lists = models.ListsIndex{}
	}

	summary := models.ListSummary{ID: id, Name: name, CreatedAt: ts, UpdatedAt: ts}
	metadata.Lists[id] = summary

	if err = p.persistence.SaveListsDetails(ctx, metadata); err != nil {
		return models.ListSummary{}, fmt.Errorf("save lists details: %w", err)
	}

	return summary, nil
}

// UpdateShoppingList saves content and refreshes the counts of its summary.
func (p *listProvider) UpdateShoppingList(ctx context.Context, content *models.ListContent) error {
	if content == nil {
		return fmt.Errorf("%w: no content", ErrInvalidListID)
	}
	if err := validateListID(content.ID); err != nil {
		return err
	}

	now := p.now()
	content.UpdatedAt = formatTimestamp(now)

	if err := p.persistence.SaveListData(ctx, content.ID, content); err != nil {
		return fmt.Errorf("save list %s data: %w", content.ID, err)
	}

	metadata, _, err := p.persistence.GetListsDetails(ctx)
	if err != nil {
		return fmt.Errorf("get lists details: %w", err)
	}

	summary, ok := metadata.Lists[content.ID]
	if !ok {
		p.logger.Warn().Str("func", "listProvider.UpdateShoppingList").Str("list_id", content.ID).
			Msg("updated list has no summary in the index")
		return nil
	}
	metadata.Lists[content.ID] = repairSummary(summary, content, now)

	if err = p.persistence.SaveListsDetails(ctx, metadata); err != nil {
		return fmt.Errorf("save lists details: %w", err)
	}
	return nil
}

func (p *listProvider) RenameShoppingList(ctx context.Context, listID, name string) error {
	if err := validateListID(listID); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidListName
	}

	metadata, _, err := p.persistence.GetListsDetails(ctx)
	if err != nil {
		return fmt.Errorf("get lists details: %w", err)
	}
	summary, ok := metadata.Lists[listID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrListNotFound, listID)
	}

	ts := formatTimestamp(p.now())

	content, _, err := p.persistence.GetListData(ctx, listID)
	if err != nil {
		return fmt.Errorf("get list %s data: %w", listID, err)
	}
	if content != nil {
		content.Name = name
		content.UpdatedAt = ts
		if err = p.persistence.SaveListData(ctx, listID, content); err != nil {
			return fmt.Errorf("save list %s data: %w", listID, err)
		}
	}

	summary.Name = name
	summary.UpdatedAt = ts
	metadata.Lists[listID] = summary

	if err = p.persistence.SaveListsDetails(ctx, metadata); err != nil {
		return fmt.Errorf("save lists details: %w", err)
	}
	return nil
}

func (p *listProvider) DeleteShoppingList(ctx context.Context, listID string) error {
	if err := validateListID(listID); err != nil {
		return err
	}

	metadata, _, err := p.persistence.GetListsDetails(ctx)
	if err != nil {
		return fmt.Errorf("get lists details: %w", err)
	}
	if _, ok := metadata.Lists[listID]; !ok {
		return fmt.Errorf("%w: %s", ErrListNotFound, listID)
	}

	if err = p.persistence.DeleteListData(ctx, listID); err != nil {
		return fmt.Errorf("delete list %s data: %w", listID, err)
	}

	delete(metadata.Lists, listID)
	if err = p.persistence.SaveListsDetails(ctx, metadata); err != nil {
		return fmt.Errorf("save lists details: %w", err)
	}
	return nil
}
