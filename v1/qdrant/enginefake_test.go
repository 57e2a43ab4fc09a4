package qdrant

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudvec/cloudvec/v1/vectordb"
)

// fakeEngine is an in-memory stand-in for the remote engine's REST API.
// It implements just enough of the collections and points surface to
// exercise the client contract, including the response envelope and the
// engine's diagnostic texts.
type fakeEngine struct {
	mu          sync.Mutex
	collections map[string]*fakeCollection
	requests    int
}

type fakeCollection struct {
	size     int
	distance vectordb.Distance
	points   map[string]fakePoint
}

type fakePoint struct {
	id      vectordb.PointID
	vector  []float32
	payload map[string]any
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{collections: map[string]*fakeCollection{}}
}

// Requests returns how many HTTP requests the engine has seen, so tests can
// assert that local precondition failures issue no network call.
func (e *fakeEngine) Requests() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requests
}

func (e *fakeEngine) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.requests++

		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		switch {
		case len(parts) == 1 && parts[0] == "collections" && r.Method == http.MethodGet:
			e.listCollections(w)
		case len(parts) == 2 && parts[0] == "collections":
			e.collectionResource(w, r, parts[1])
		case len(parts) == 3 && parts[0] == "collections" && parts[2] == "points":
			e.upsertPoints(w, r, parts[1])
		case len(parts) == 4 && parts[0] == "collections" && parts[2] == "points" && parts[3] == "search":
			e.search(w, r, parts[1])
		case len(parts) == 4 && parts[0] == "collections" && parts[2] == "points" && parts[3] == "delete":
			e.deletePoints(w, r, parts[1])
		default:
			writeEngineError(w, http.StatusNotFound, "Not found")
		}
	})
}

func (e *fakeEngine) listCollections(w http.ResponseWriter) {
	names := make([]string, 0, len(e.collections))
	for name := range e.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]map[string]string, len(names))
	for i, name := range names {
		entries[i] = map[string]string{"name": name}
	}
	writeEngineOK(w, map[string]any{"collections": entries})
}

func (e *fakeEngine) collectionResource(w http.ResponseWriter, r *http.Request, name string) {
	switch r.Method {
	case http.MethodPut:
		if _, ok := e.collections[name]; ok {
			writeEngineError(w, http.StatusConflict,
				fmt.Sprintf("Wrong input: Collection `%s` already exists!", name))
			return
		}
		var req createCollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Vectors.Size <= 0 {
			writeEngineError(w, http.StatusBadRequest, "Wrong input: malformed vector params")
			return
		}
		e.collections[name] = &fakeCollection{
			size:     req.Vectors.Size,
			distance: req.Vectors.Distance,
			points:   map[string]fakePoint{},
		}
		writeEngineOK(w, true)

	case http.MethodGet:
		col, ok := e.collections[name]
		if !ok {
			writeEngineError(w, http.StatusNotFound,
				fmt.Sprintf("Not found: Collection `%s` doesn't exist!", name))
			return
		}
		count := uint64(len(col.points))
		writeEngineOK(w, map[string]any{
			"status":       "green",
			"points_count": count,
			"config": map[string]any{
				"params": map[string]any{
					"vectors": map[string]any{"size": col.size, "distance": col.distance},
				},
			},
		})

	case http.MethodDelete:
		// Older engine behavior: HTTP 200 with result=false when absent.
		_, ok := e.collections[name]
		delete(e.collections, name)
		writeEngineOK(w, ok)

	default:
		writeEngineError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (e *fakeEngine) upsertPoints(w http.ResponseWriter, r *http.Request, name string) {
	col, ok := e.collections[name]
	if !ok {
		writeEngineError(w, http.StatusNotFound,
			fmt.Sprintf("Not found: Collection `%s` doesn't exist!", name))
		return
	}

	var req upsertPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngineError(w, http.StatusBadRequest, "Wrong input: malformed points")
		return
	}

	for _, p := range req.Points {
		if len(p.Vector) != col.size {
			writeEngineError(w, http.StatusBadRequest,
				fmt.Sprintf("Wrong input: Vector dimension error: expected dim: %d, got %d", col.size, len(p.Vector)))
			return
		}
	}
	for _, p := range req.Points {
		col.points[p.ID.String()] = fakePoint{id: p.ID, vector: p.Vector, payload: p.Payload}
	}
	writeEngineOK(w, map[string]any{"operation_id": 1, "status": "completed"})
}

func (e *fakeEngine) deletePoints(w http.ResponseWriter, r *http.Request, name string) {
	col, ok := e.collections[name]
	if !ok {
		writeEngineError(w, http.StatusNotFound,
			fmt.Sprintf("Not found: Collection `%s` doesn't exist!", name))
		return
	}

	var req deletePointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngineError(w, http.StatusBadRequest, "Wrong input: malformed selector")
		return
	}
	for _, id := range req.Points {
		delete(col.points, id.String())
	}
	writeEngineOK(w, map[string]any{"operation_id": 2, "status": "completed"})
}

func (e *fakeEngine) search(w http.ResponseWriter, r *http.Request, name string) {
	col, ok := e.collections[name]
	if !ok {
		writeEngineError(w, http.StatusNotFound,
			fmt.Sprintf("Not found: Collection `%s` doesn't exist!", name))
		return
	}

	var req searchPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEngineError(w, http.StatusBadRequest, "Wrong input: malformed search request")
		return
	}
	if len(req.Vector) != col.size {
		writeEngineError(w, http.StatusBadRequest,
			fmt.Sprintf("Wrong input: Vector dimension error: expected dim: %d, got %d", col.size, len(req.Vector)))
		return
	}

	type hit struct {
		point fakePoint
		score float32
	}
	var hits []hit
	for _, p := range col.points {
		if !matchesFilter(p.payload, req.Filter) {
			continue
		}
		hits = append(hits, hit{point: p, score: score(col.distance, req.Vector, p.vector)})
	}

	// Best match first: ascending for euclidean distance, descending otherwise.
	sort.SliceStable(hits, func(i, j int) bool {
		if col.distance == vectordb.DistanceEuclid {
			return hits[i].score < hits[j].score
		}
		return hits[i].score > hits[j].score
	})
	if len(hits) > req.Limit {
		hits = hits[:req.Limit]
	}

	results := make([]map[string]any, len(hits))
	for i, h := range hits {
		entry := map[string]any{"id": h.point.id, "score": h.score, "version": 0}
		if req.WithPayload {
			entry["payload"] = h.point.payload
		}
		results[i] = entry
	}
	writeEngineOK(w, results)
}

// matchesFilter evaluates the subset of the filter grammar the tests use:
// "must" clauses with exact matches on top-level payload fields.
func matchesFilter(payload, filter map[string]any) bool {
	if filter == nil {
		return true
	}
	must, _ := filter["must"].([]any)
	for _, raw := range must {
		cond, _ := raw.(map[string]any)
		key, _ := cond["key"].(string)
		match, _ := cond["match"].(map[string]any)
		if payload == nil || payload[key] != match["value"] {
			return false
		}
	}
	return true
}

func score(distance vectordb.Distance, query, stored []float32) float32 {
	switch distance {
	case vectordb.DistanceDot:
		var dot float32
		for i := range query {
			dot += query[i] * stored[i]
		}
		return dot
	case vectordb.DistanceEuclid:
		var sum float64
		for i := range query {
			d := float64(query[i] - stored[i])
			sum += d * d
		}
		return float32(math.Sqrt(sum))
	default: // cosine
		var dot, qn, sn float64
		for i := range query {
			dot += float64(query[i]) * float64(stored[i])
			qn += float64(query[i]) * float64(query[i])
			sn += float64(stored[i]) * float64(stored[i])
		}
		if qn == 0 || sn == 0 {
			return 0
		}
		return float32(dot / (math.Sqrt(qn) * math.Sqrt(sn)))
	}
}

func writeEngineOK(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"result": result,
		"status": "ok",
		"time":   0.0001,
	})
}

func writeEngineError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": map[string]string{"error": msg},
		"time":   0.0001,
	})
}

// fakeEngineServer bundles a running fake engine with a client config
// pointing at it.
type fakeEngineServer struct {
	*fakeEngine
	config *Config
}

func newFakeEngineServer(t *testing.T) *fakeEngineServer {
	t.Helper()

	engine := newFakeEngine()
	srv := httptest.NewServer(engine.handler())
	t.Cleanup(srv.Close)

	return &fakeEngineServer{fakeEngine: engine, config: testConfig(t, srv.URL)}
}

// newTestClient starts a fake engine and connects a client to it.
func newTestClient(t *testing.T) (*Client, *fakeEngineServer) {
	t.Helper()

	engine := newFakeEngineServer(t)
	client, err := NewClient(Params{Config: engine.config})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, engine
}

func testConfig(t *testing.T, serverURL string) *Config {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	return FromHost(u.Hostname()).WithPort(port)
}
