package elasticsearch

import (
	"github.com/elastic/go-elasticsearch/v8"

	"logrange-backend/internal/repository"
)

func NewPagedLogRepository(client *elasticsearch.TypedClient, index string, pageSize int) repository.StoreAdapter {
	return &elasticsearchLogRepository{esTypedClient: client, index: index, pageSize: pageSize}
}
