package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"careerpilot/internal/models"
)

// similarityThreshold is the minimum cosine score for reusing a stored
// benchmark. Scores this high mean the job description is effectively the
// same posting.
const similarityThreshold = 0.97

// BenchmarkCache stores benchmarks keyed by a job-posting embedding so that
// repeated runs against the same posting skip the benchmark build. Lookup
// returns nil when there is no close-enough match.
type BenchmarkCache interface {
	InitCollection() error
	Lookup(ctx context.Context, jobTitle, company, jdText string) (*models.BenchmarkProfile, error)
	Store(ctx context.Context, jobTitle, company, jdText string, benchmark *models.BenchmarkProfile) error
}

type qdrantBenchmarkCache struct {
	client         *qdrant.Client
	completion     CompletionService
	collectionName string
	vectorSize     uint64
}

func NewBenchmarkCache(urlStr, apiKey, collectionName string, completion CompletionService) (BenchmarkCache, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port by default
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantBenchmarkCache{
		client:         client,
		completion:     completion,
		collectionName: collectionName,
		vectorSize:     768,
	}, nil
}

// InitCollection implements BenchmarkCache.
func (q *qdrantBenchmarkCache) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		log.Println("✅ Benchmark collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// Lookup implements BenchmarkCache. A hit requires both a cosine score at or
// above the threshold and an exact company match, so benchmarks never leak
// across companies.
func (q *qdrantBenchmarkCache) Lookup(ctx context.Context, jobTitle, company, jdText string) (*models.BenchmarkProfile, error) {
	embedding, err := q.completion.GenerateEmbedding(ctx, jobTitle+"\n"+jdText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed posting: %w", err)
	}

	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("company", company),
		},
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	if len(points) == 0 || points[0].Score < similarityThreshold {
		return nil, nil
	}

	payload := points[0].Payload
	raw, ok := payload["benchmark"]
	if !ok {
		return nil, nil
	}
	val, ok := raw.GetKind().(*qdrant.Value_StringValue)
	if !ok {
		return nil, nil
	}

	var benchmark models.BenchmarkProfile
	if err := json.Unmarshal([]byte(val.StringValue), &benchmark); err != nil {
		return nil, fmt.Errorf("failed to decode cached benchmark: %w", err)
	}
	benchmark.Normalize()

	return &benchmark, nil
}

// Store implements BenchmarkCache.
func (q *qdrantBenchmarkCache) Store(ctx context.Context, jobTitle, company, jdText string, benchmark *models.BenchmarkProfile) error {
	embedding, err := q.completion.GenerateEmbedding(ctx, jobTitle+"\n"+jdText)
	if err != nil {
		return fmt.Errorf("failed to embed posting: %w", err)
	}

	data, err := json.Marshal(benchmark)
	if err != nil {
		return fmt.Errorf("failed to encode benchmark: %w", err)
	}

	pointID := uuid.New()
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"job_title": jobTitle,
			"company":   company,
			"benchmark": string(data),
		}),
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert benchmark: %w", err)
	}

	return nil
}
