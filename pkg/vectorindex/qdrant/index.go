package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// QdrantIndex keeps scheme chunks in a Qdrant collection over gRPC.
type QdrantIndex struct {
	conn        *grpc.ClientConn
	points      pb.PointsClient
	collections pb.CollectionsClient
	collection  string
}

var _ vectorindex.Index = &QdrantIndex{}

func NewQdrantIndex(addr string, collection string) (*QdrantIndex, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("qdrant: dial %s: %w", addr, err)
	}
	return &QdrantIndex{
		conn:        conn,
		points:      pb.NewPointsClient(conn),
		collections: pb.NewCollectionsClient(conn),
		collection:  collection,
	}, nil
}

func (q *QdrantIndex) Close() error {
	return q.conn.Close()
}

// EnsureCollection creates the collection if it doesn't exist.
func (q *QdrantIndex) EnsureCollection(ctx context.Context, dims int) error {
	list, err := q.collections.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("qdrant: list collections: %w", err)
	}
	for _, c := range list.GetCollections() {
		if c.GetName() == q.collection {
			return nil
		}
	}

	_, err = q.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     uint64(dims),
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("qdrant: create collection %s: %w", q.collection, err)
	}
	return nil
}

func (q *QdrantIndex) Upsert(ctx context.Context, docs []vectorindex.Document) error {
	if len(docs) == 0 {
		return nil
	}

	points := make([]*pb.PointStruct, len(docs))
	for i, doc := range docs {
		points[i] = &pb.PointStruct{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{Uuid: doc.Id},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{Data: doc.Embedding},
				},
			},
			Payload: map[string]*pb.Value{
				"content":        stringValue(doc.Content),
				"scheme_name":    stringValue(doc.Metadata.SchemeName),
				"ministry":       stringValue(doc.Metadata.Ministry),
				"chunk_kind":     stringValue(doc.Metadata.ChunkKind),
				"last_updated":   stringValue(doc.Metadata.LastUpdated),
				"reference_link": stringValue(doc.Metadata.ReferenceLink),
			},
		}
	}

	wait := true
	_, err := q.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: q.collection,
		Wait:           &wait,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("qdrant: upsert %d points: %w", len(docs), err)
	}
	return nil
}

func (q *QdrantIndex) Search(ctx context.Context, vector []float32, topK int, filter *vectorindex.Filter) ([]vectorindex.SearchResult, error) {
	req := &pb.SearchPoints{
		CollectionName: q.collection,
		Vector:         vector,
		Limit:          uint64(topK),
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	}

	if filter != nil {
		must := make([]*pb.Condition, 0, 3)
		if filter.SchemeName != "" {
			must = append(must, fieldMatch("scheme_name", filter.SchemeName))
		}
		if filter.Ministry != "" {
			must = append(must, fieldMatch("ministry", filter.Ministry))
		}
		if filter.ChunkKind != "" {
			must = append(must, fieldMatch("chunk_kind", filter.ChunkKind))
		}
		if len(must) > 0 {
			req.Filter = &pb.Filter{Must: must}
		}
	}

	resp, err := q.points.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search: %w", err)
	}

	results := make([]vectorindex.SearchResult, len(resp.GetResult()))
	for i, r := range resp.GetResult() {
		payload := r.GetPayload()
		results[i] = vectorindex.SearchResult{
			Id:      r.GetId().GetUuid(),
			Content: payload["content"].GetStringValue(),
			Score:   r.GetScore(),
			Metadata: vectorindex.Metadata{
				SchemeName:    payload["scheme_name"].GetStringValue(),
				Ministry:      payload["ministry"].GetStringValue(),
				ChunkKind:     payload["chunk_kind"].GetStringValue(),
				LastUpdated:   payload["last_updated"].GetStringValue(),
				ReferenceLink: payload["reference_link"].GetStringValue(),
			},
		}
	}
	return results, nil
}

func stringValue(s string) *pb.Value {
	return &pb.Value{Kind: &pb.Value_StringValue{StringValue: s}}
}

func fieldMatch(key, value string) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_Field{
			Field: &pb.FieldCondition{
				Key: key,
				Match: &pb.Match{
					MatchValue: &pb.Match_Keyword{Keyword: value},
				},
			},
		},
	}
}
