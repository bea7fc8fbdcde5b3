package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloydmeta/docsproxy/internal/config"
	"github.com/lloydmeta/docsproxy/internal/infra/cloudant/fake"
)

var dbName = "portfolio"

type jsonObj = map[string]interface{}

func setupComponents(t *testing.T) *Components {
	cloudant := fake.NewServer(dbName)
	t.Cleanup(cloudant.Close)
	components, err := NewComponents(&config.App{
		Port: 3000,
		Store: config.Store{
			Kind:     config.Cloudant,
			URL:      cloudant.URL,
			Database: dbName,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return components
}

func call(t *testing.T, c *Components, method, url string, body interface{}) (int, []byte) {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func list(t *testing.T, c *Components) []jsonObj {
	code, body := call(t, c, http.MethodGet, "/api/data", nil)
	assert.Equal(t, http.StatusOK, code)
	var docs []jsonObj
	if err := json.Unmarshal(body, &docs); err != nil {
		t.Fatal(err)
	}
	return docs
}

func writeResult(t *testing.T, body []byte) jsonObj {
	var result jsonObj
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatal(err)
	}
	return result
}

// created adds a document and returns its id and rev, stopping the test if that fails
func created(t *testing.T, c *Components, doc jsonObj) (string, string) {
	code, body := call(t, c, http.MethodPost, "/api/add", doc)
	require.Equal(t, http.StatusOK, code, string(body))
	result := writeResult(t, body)
	id, ok := result["id"].(string)
	require.True(t, ok, "no id in %s", body)
	rev, ok := result["rev"].(string)
	require.True(t, ok, "no rev in %s", body)
	return id, rev
}

func TestNewComponents_unsupportedStore(t *testing.T) {
	_, err := NewComponents(&config.App{Store: config.Store{Kind: "mongo"}})
	assert.IsType(t, UnsupportedStoreKind{}, err)
}

func TestComponents_Address(t *testing.T) {
	c := Components{config: &config.App{BindHost: "127.0.0.1", Port: 3000}}
	assert.EqualValues(t, "127.0.0.1:3000", c.Address())
}

func TestComponents_addThenList(t *testing.T) {
	c := setupComponents(t)

	code, body := call(t, c, http.MethodPost, "/api/add", jsonObj{"name": "Alice"})
	assert.Equal(t, http.StatusOK, code)
	result := writeResult(t, body)
	assert.NotEmpty(t, result["id"])
	assert.NotEmpty(t, result["rev"])

	docs := list(t, c)
	if assert.Len(t, docs, 1) {
		assert.EqualValues(t, "Alice", docs[0]["name"])
		assert.EqualValues(t, result["id"], docs[0]["_id"])
		assert.EqualValues(t, result["rev"], docs[0]["_rev"])
	}
}

func TestComponents_updateWithCurrentThenStaleRev(t *testing.T) {
	c := setupComponents(t)

	id, rev := created(t, c, jsonObj{"name": "Alice"})

	code, body := call(t, c, http.MethodPut, "/api/update/"+id, jsonObj{"name": "Alicia", "_rev": rev})
	assert.Equal(t, http.StatusOK, code)
	updated := writeResult(t, body)
	assert.NotEqual(t, rev, updated["rev"])

	docs := list(t, c)
	if assert.Len(t, docs, 1) {
		assert.EqualValues(t, "Alicia", docs[0]["name"])
		assert.EqualValues(t, updated["rev"], docs[0]["_rev"])
	}

	code, body = call(t, c, http.MethodPut, "/api/update/"+id, jsonObj{"name": "Stale", "_rev": rev})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotEmpty(t, writeResult(t, body)["error"])

	docs = list(t, c)
	if assert.Len(t, docs, 1) {
		assert.EqualValues(t, "Alicia", docs[0]["name"])
	}
}

func TestComponents_delete(t *testing.T) {
	c := setupComponents(t)

	id, rev := created(t, c, jsonObj{"name": "Alice"})

	code, body := call(t, c, http.MethodDelete, "/api/delete?id="+id+"&rev=1-wrong", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotEmpty(t, writeResult(t, body)["error"])
	assert.Len(t, list(t, c), 1)

	code, _ = call(t, c, http.MethodDelete, "/api/delete?id="+id+"&rev="+rev, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, list(t, c))
}

func TestComponents_index(t *testing.T) {
	c := setupComponents(t)
	code, body := call(t, c, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "<html")
}

func TestComponents_metrics(t *testing.T) {
	c := setupComponents(t)
	call(t, c, http.MethodPost, "/api/add", jsonObj{"name": "Alice"})
	call(t, c, http.MethodDelete, "/api/delete?id=nope&rev=1-nope", nil)

	code, body := call(t, c, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `docsproxy_store_calls_total{operation="create",outcome="ok"} 1`)
	assert.Contains(t, string(body), `docsproxy_store_calls_total{operation="delete",outcome="error"} 1`)
	assert.Contains(t, string(body), `docsproxy_store_call_duration_seconds_count{operation="create"} 1`)
}

func TestComponents_updateWithNonStringRev(t *testing.T) {
	c := setupComponents(t)

	code, body := call(t, c, http.MethodPut, "/api/update/fresh", jsonObj{"name": "Fresh", "_rev": 2})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotEmpty(t, writeResult(t, body)["error"])
	assert.Empty(t, list(t, c))
}
