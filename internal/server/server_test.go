package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/treekit/pkg/store"
)

// sampleTree is the JSON form of:
//
//	1
//	├── 2
//	│   ├── 3 ── 4 ── {5, 6}
//	│   └── 7 ── 8 ── 9
//	└── 10 ── {11, 12}
const sampleTree = `{
	"identity": "1",
	"children": [
		{"identity": "2", "children": [
			{"identity": "3", "children": [
				{"identity": "4", "children": [
					{"identity": "5"},
					{"identity": "6"}
				]}
			]},
			{"identity": "7", "children": [
				{"identity": "8", "children": [
					{"identity": "9"}
				]}
			]}
		]},
		{"identity": "10", "children": [
			{"identity": "11"},
			{"identity": "12"}
		]}
	]
}`

// newTestServer starts an httptest server with the sample tree stored as "numbers".
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := store.NewMemoryStore()
	srv := New(st, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	body := `{"name": "numbers", "tree": ` + sampleTree + `}`
	resp, err := http.Post(ts.URL+"/trees", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /trees: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /trees status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	return ts
}

// getJSON fetches url and decodes the response into v, returning the status code.
func getJSON(t *testing.T, url string, v any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if v != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	if status := getJSON(t, ts.URL+"/healthz", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "ok" {
		t.Errorf("status body = %q, want ok", body["status"])
	}
}

func TestGetTree(t *testing.T) {
	ts := newTestServer(t)

	var rec store.Record
	if status := getJSON(t, ts.URL+"/trees/numbers", &rec); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if rec.Name != "numbers" {
		t.Errorf("Name = %q, want numbers", rec.Name)
	}
	if rec.Tree.Identity == nil || *rec.Tree.Identity != "1" {
		t.Errorf("root identity = %v, want 1", rec.Tree.Identity)
	}
}

func TestGetTreeMissing(t *testing.T) {
	ts := newTestServer(t)

	if status := getJSON(t, ts.URL+"/trees/nope", nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestCreateInvalid(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"tree": {"identity": "x"}}`},
		{"malformed json", `{"name": "x",`},
		{"over capacity", `{"name": "x", "tree": {"identity": "r", "max_children": 1, "children": [{"identity": "a"}, {"identity": "b"}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/trees", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestListTrees(t *testing.T) {
	ts := newTestServer(t)

	var recs []store.Record
	if status := getJSON(t, ts.URL+"/trees", &recs); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(recs) != 1 || recs[0].Name != "numbers" {
		t.Errorf("List = %+v, want single numbers record", recs)
	}
}

func TestPutTree(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/trees/numbers", bytes.NewReader([]byte(`{"identity": "new-root"}`)))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var stats struct {
		Size int `json:"size"`
	}
	getJSON(t, ts.URL+"/trees/numbers/stats", &stats)
	if stats.Size != 1 {
		t.Errorf("Size after replace = %d, want 1", stats.Size)
	}
}

func TestDeleteTree(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/trees/numbers", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	if status := getJSON(t, ts.URL+"/trees/numbers", nil); status != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", status)
	}
}

func TestNodes(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Order string   `json:"order"`
		Nodes []string `json:"nodes"`
	}
	if status := getJSON(t, ts.URL+"/trees/numbers/nodes", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
	if body.Order != "preorder" {
		t.Errorf("order = %q, want preorder", body.Order)
	}
	if len(body.Nodes) != len(want) {
		t.Fatalf("len(nodes) = %d, want %d", len(body.Nodes), len(want))
	}
	for i := range want {
		if body.Nodes[i] != want[i] {
			t.Errorf("nodes[%d] = %q, want %q", i, body.Nodes[i], want[i])
		}
	}
}

func TestNodesLevelOrderWindow(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Nodes []string `json:"nodes"`
	}
	status := getJSON(t, ts.URL+"/trees/numbers/nodes?order=levelorder&offset=1&limit=3", &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	want := []string{"2", "10", "3"}
	if len(body.Nodes) != 3 || body.Nodes[0] != want[0] || body.Nodes[1] != want[1] || body.Nodes[2] != want[2] {
		t.Errorf("nodes = %v, want %v", body.Nodes, want)
	}
}

func TestNodesBadOrder(t *testing.T) {
	ts := newTestServer(t)

	if status := getJSON(t, ts.URL+"/trees/numbers/nodes?order=spiral", nil); status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Size   int `json:"size"`
		Height int `json:"height"`
		Leaves int `json:"leaves"`
	}
	if status := getJSON(t, ts.URL+"/trees/numbers/stats", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body.Size != 12 || body.Height != 4 || body.Leaves != 5 {
		t.Errorf("stats = %+v, want size=12 height=4 leaves=5", body)
	}
}

func TestLCA(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Ancestor string `json:"ancestor"`
		Depth    int    `json:"depth"`
	}
	status := getJSON(t, ts.URL+"/trees/numbers/lca?node=5&node=9", &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body.Ancestor != "2" || body.Depth != 1 {
		t.Errorf("lca = %+v, want ancestor=2 depth=1", body)
	}
}

func TestLCAErrors(t *testing.T) {
	ts := newTestServer(t)

	if status := getJSON(t, ts.URL+"/trees/numbers/lca?node=5", nil); status != http.StatusBadRequest {
		t.Errorf("single node status = %d, want 400", status)
	}
	if status := getJSON(t, ts.URL+"/trees/numbers/lca?node=5&node=99", nil); status != http.StatusNotFound {
		t.Errorf("unknown node status = %d, want 404", status)
	}
}

func TestPath(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Path     []string `json:"path"`
		Distance int      `json:"distance"`
	}
	status := getJSON(t, ts.URL+"/trees/numbers/path?a=5&b=9", &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	want := []string{"5", "4", "3", "2", "7", "8", "9"}
	if len(body.Path) != len(want) {
		t.Fatalf("path = %v, want %v", body.Path, want)
	}
	for i := range want {
		if body.Path[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, body.Path[i], want[i])
		}
	}
	if body.Distance != 6 {
		t.Errorf("distance = %d, want 6", body.Distance)
	}
}

func TestDistance(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Distance int `json:"distance"`
	}
	status := getJSON(t, ts.URL+"/trees/numbers/distance?a=5&b=9", &body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body.Distance != 6 {
		t.Errorf("distance = %d, want 6", body.Distance)
	}

	if status := getJSON(t, ts.URL+"/trees/numbers/distance?a=5", nil); status != http.StatusBadRequest {
		t.Errorf("missing b status = %d, want 400", status)
	}
}
