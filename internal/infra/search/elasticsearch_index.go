// Package search implements the medicine full-text index on Elasticsearch.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"zenvira/internal/domain/entity"
	"zenvira/internal/domain/service"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// indexMapping keeps status and ids as exact keywords and boosts the name.
const indexMapping = `{
  "mappings": {
    "properties": {
      "id":           {"type": "keyword"},
      "name":         {"type": "text"},
      "slug":         {"type": "keyword"},
      "description":  {"type": "text"},
      "manufacturer": {"type": "text"},
      "status":       {"type": "keyword"},
      "categoryId":   {"type": "keyword"},
      "sellerId":     {"type": "keyword"}
    }
  }
}`

type medicineDocument struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Manufacturer string `json:"manufacturer"`
	Status       string `json:"status"`
	CategoryID   string `json:"categoryId"`
	SellerID     string `json:"sellerId"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

// ElasticIndex implements service.MedicineIndex on an Elasticsearch index.
type ElasticIndex struct {
	client *elasticsearch.Client
	index  string
	logger *slog.Logger
}

// NewElasticIndex wraps an Elasticsearch client as a MedicineIndex.
func NewElasticIndex(client *elasticsearch.Client, index string, logger *slog.Logger) *ElasticIndex {
	return &ElasticIndex{client: client, index: index, logger: logger}
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (e *ElasticIndex) EnsureIndex(ctx context.Context) error {
	res, err := e.client.Indices.Exists([]string{e.index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "check search index")
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = e.client.Indices.Create(e.index,
		e.client.Indices.Create.WithContext(ctx),
		e.client.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
	)
	if err != nil {
		return errors.Wrap(err, "create search index")
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError(res, "create search index")
	}

	e.logger.Info("Search index created", slog.String("index", e.index))

	return nil
}

// Index inserts or replaces the document of a medicine.
func (e *ElasticIndex) Index(ctx context.Context, medicine *entity.Medicine) error {
	body, err := json.Marshal(medicineDocument{
		ID:           medicine.ID.String(),
		Name:         medicine.Name,
		Slug:         medicine.Slug,
		Description:  medicine.Description,
		Manufacturer: medicine.Manufacturer,
		Status:       string(medicine.Status),
		CategoryID:   medicine.CategoryID.String(),
		SellerID:     medicine.SellerID.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	res, err := e.client.Index(e.index, bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(medicine.ID.String()),
	)
	if err != nil {
		return errors.Wrap(err, "index medicine")
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError(res, "index medicine")
	}

	return nil
}

// Remove deletes the document of a medicine. A missing document is not an error.
func (e *ElasticIndex) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := e.client.Delete(e.index, id.String(), e.client.Delete.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "remove medicine")
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return responseError(res, "remove medicine")
	}

	return nil
}

// Search returns ids of active medicines matching query, best match first.
func (e *ElasticIndex) Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error) {
	body, err := json.Marshal(map[string]any{
		"size":    limit,
		"_source": false,
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"name^2", "manufacturer", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": []any{
					map[string]any{"term": map[string]any{"status": string(entity.MedicineStatusActive)}},
				},
			},
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrSearchUnavailable, err.Error())
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Wrap(service.ErrSearchUnavailable, responseError(res, "search medicines").Error())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	ids := make([]uuid.UUID, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			e.logger.Warn("Skipping search hit with invalid id", slog.String("id", hit.ID))

			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func responseError(res *esapi.Response, action string) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))

	return errors.Errorf("%s: elasticsearch returned %s: %s", action, res.Status(), bytes.TrimSpace(raw))
}
