// ABOUTME: Qdrant-backed vector store with per-owner payload filtering
// ABOUTME: Bootstraps the collection and owner_id index idempotently at startup
package vectorstore

import (
	"context"
	"fmt"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/platonbot/platon/internal/models"
)

// Payload field names, fixed by the wire contract.
const (
	payloadText  = "text"
	payloadOwner = "owner_id"
	payloadSrc   = "source"
)

// QdrantConfig configures the Qdrant gRPC client.
type QdrantConfig struct {
	// Host is the Qdrant server hostname. Default: "localhost".
	Host string

	// Port is the Qdrant gRPC port, not the HTTP REST port. Default: 6334.
	Port int

	// APIKey is the optional API key, empty for local deployments.
	APIKey string

	// UseTLS enables TLS for the gRPC connection.
	UseTLS bool

	// Collection is the collection name. Required.
	Collection string

	// VectorSize is the embedding dimensionality. Must match the embedding
	// backend. Required.
	VectorSize int

	// Timeout bounds each individual request. Default: 30s.
	Timeout time.Duration
}

func (c *QdrantConfig) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 6334
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
}

// QdrantStore persists knowledge chunks as Qdrant points with
// {text, owner_id, source} payload and serves owner-filtered similarity
// search.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
	vectorSize int
	timeout    time.Duration
	logger     *zap.Logger
}

// NewQdrantStore connects to Qdrant and verifies the connection.
func NewQdrantStore(cfg QdrantConfig, logger *zap.Logger) (*QdrantStore, error) {
	cfg.applyDefaults()
	if cfg.Collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if cfg.VectorSize <= 0 {
		return nil, fmt.Errorf("vector size is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	qdrantConfig := &qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		UseTLS: cfg.UseTLS,
		APIKey: cfg.APIKey,
	}
	if !cfg.UseTLS {
		qdrantConfig.GrpcOptions = append(qdrantConfig.GrpcOptions,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}

	client, err := qdrant.NewClient(qdrantConfig)
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %v: %w", err, models.ErrBackendUnavailable)
	}

	store := &QdrantStore{
		client:     client,
		collection: cfg.Collection,
		vectorSize: cfg.VectorSize,
		timeout:    cfg.Timeout,
		logger:     logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if _, err := client.HealthCheck(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("qdrant health check: %v: %w", err, models.ErrBackendUnavailable)
	}

	logger.Info("qdrant connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("collection", cfg.Collection),
	)
	return store, nil
}

// Bootstrap creates the collection (configured size, cosine distance) when
// absent and ensures the integer payload index on owner_id that filtered
// search depends on. Safe to run on every process start.
func (s *QdrantStore) Bootstrap(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("check collection %s: %v: %w", s.collection, err, models.ErrBackendUnavailable)
	}
	if !exists {
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(s.vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("create collection %s: %v: %w", s.collection, err, models.ErrBackendUnavailable)
		}
		s.logger.Info("collection created",
			zap.String("collection", s.collection),
			zap.Int("vector_size", s.vectorSize),
		)
	}

	// Index creation is idempotent on the server side.
	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collection,
		FieldName:      payloadOwner,
		FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %v: %w", payloadOwner, err, models.ErrBackendUnavailable)
	}
	return nil
}

// Upsert writes chunks as points. Vectors must match the collection's
// dimensionality.
func (s *QdrantStore) Upsert(ctx context.Context, chunks []models.KnowledgeChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		if len(chunk.Vector) != s.vectorSize {
			return fmt.Errorf("chunk %s has %d dimensions, collection expects %d: %w",
				chunk.ID, len(chunk.Vector), s.vectorSize, models.ErrDimensionMismatch)
		}
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(chunk.ID),
			Vectors: qdrant.NewVectors(chunk.Vector...),
			Payload: map[string]*qdrant.Value{
				payloadText:  {Kind: &qdrant.Value_StringValue{StringValue: chunk.Text}},
				payloadOwner: {Kind: &qdrant.Value_IntegerValue{IntegerValue: chunk.OwnerID}},
				payloadSrc:   {Kind: &qdrant.Value_StringValue{StringValue: chunk.Source}},
			},
		}
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upsert %d points: %v: %w", len(points), err, models.ErrBackendUnavailable)
	}
	return nil
}

// Search returns the owner's most similar chunks, highest score first. No
// matches is an empty result, not an error.
func (s *QdrantStore) Search(ctx context.Context, vector []float32, ownerID int64, limit int) ([]models.ScoredChunk, error) {
	if len(vector) != s.vectorSize {
		return nil, fmt.Errorf("query vector has %d dimensions, collection expects %d: %w",
			len(vector), s.vectorSize, models.ErrDimensionMismatch)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			{
				ConditionOneOf: &qdrant.Condition_Field{
					Field: &qdrant.FieldCondition{
						Key: payloadOwner,
						Match: &qdrant.Match{
							MatchValue: &qdrant.Match_Integer{Integer: ownerID},
						},
					},
				},
			},
		},
	}

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         filter,
	})
	if err != nil {
		return nil, fmt.Errorf("search collection %s: %v: %w", s.collection, err, models.ErrBackendUnavailable)
	}

	chunks := make([]models.ScoredChunk, 0, len(results))
	for _, point := range results {
		chunk := models.KnowledgeChunk{
			ID:      point.GetId().GetUuid(),
			OwnerID: ownerID,
		}
		for key, value := range point.GetPayload() {
			switch key {
			case payloadText:
				chunk.Text = value.GetStringValue()
			case payloadOwner:
				chunk.OwnerID = value.GetIntegerValue()
			case payloadSrc:
				chunk.Source = value.GetStringValue()
			}
		}
		chunks = append(chunks, models.ScoredChunk{Chunk: chunk, Score: point.GetScore()})
	}
	return chunks, nil
}

// Close releases the underlying gRPC connection.
func (s *QdrantStore) Close() error {
	return s.client.Close()
}
