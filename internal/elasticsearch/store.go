package elasticsearch

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"logrange-backend/config"

	"github.com/cenkalti/backoff"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"
)

// NewTypedClient builds the typed client shared by the document store adapter
// and verifies the cluster answers before the application starts serving.
func NewTypedClient(cfg *config.Config) (*elasticsearch.TypedClient, error) {
	if len(cfg.Elasticsearch.Addresses) == 0 {
		log.Error().Msg("Elasticsearch addresses are not configured.")
		return nil, errors.New("elasticsearch configuration missing")
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: cfg.Query.Timeout,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
	}
	esCfg := elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Transport: transport,
	}

	var client *elasticsearch.TypedClient
	operation := func() error {
		var err error
		client, err = elasticsearch.NewTypedClient(esCfg)
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Error creating the Elasticsearch client")
			return err
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		info, err := client.Info().Do(pingCtx)
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Elasticsearch Info() call failed")
			return err
		}
		log.Info().
			Str("cluster", info.ClusterName).
			Msg("Elasticsearch client initialized and connection verified!")
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 2 * time.Second
	connectBackoff.MaxInterval = 15 * time.Second
	connectBackoff.MaxElapsedTime = cfg.Connect.MaxElapsed

	log.Info().Strs("addresses", cfg.Elasticsearch.Addresses).Msg("Attempting to connect to Elasticsearch with retries...")
	if err := backoff.Retry(operation, connectBackoff); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Elasticsearch after multiple retries")
		return nil, err
	}
	return client, nil
}
