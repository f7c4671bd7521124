package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/pkg/api"
)

func recordsPath(table string, id ...string) string {
	p := "/api/v1/records/" + url.PathEscape(table)
	if len(id) > 0 {
		p += "/" + url.PathEscape(id[0])
	}
	return p
}

// Select выполняет выборку записей таблицы
func (c *Client) Select(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	path := recordsPath(table)
	if v := api.EncodeQuery(q); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp api.SelectResponse
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("select %s failed: %w", table, err)
	}

	page := &models.RecordPage{Rows: resp.Rows}
	if page.Rows == nil {
		page.Rows = []models.Record{}
	}
	if resp.Count != nil {
		page.Count = *resp.Count
	}
	return page, nil
}

// Get возвращает запись по id
func (c *Client) Get(ctx context.Context, table, id string) (models.Record, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	var rec models.Record
	if err := c.doJSON(ctx, http.MethodGet, recordsPath(table, id), token, nil, &rec); err != nil {
		return nil, fmt.Errorf("get %s/%s failed: %w", table, id, err)
	}
	return rec, nil
}

// Insert создает запись и возвращает ее с полями, заполненными шлюзом
func (c *Client) Insert(ctx context.Context, table string, rec models.Record) (models.Record, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	var created models.Record
	if err := c.doJSON(ctx, http.MethodPost, recordsPath(table), token, rec, &created); err != nil {
		return nil, fmt.Errorf("insert into %s failed: %w", table, err)
	}
	return created, nil
}

// Update частично обновляет запись
func (c *Client) Update(ctx context.Context, table, id string, patch models.Record) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	if err := c.doJSON(ctx, http.MethodPatch, recordsPath(table, id), token, patch, nil); err != nil {
		return fmt.Errorf("update %s/%s failed: %w", table, id, err)
	}
	return nil
}

// Delete удаляет запись
func (c *Client) Delete(ctx context.Context, table, id string) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}

	if err := c.doJSON(ctx, http.MethodDelete, recordsPath(table, id), token, nil, nil); err != nil {
		return fmt.Errorf("delete %s/%s failed: %w", table, id, err)
	}
	return nil
}
