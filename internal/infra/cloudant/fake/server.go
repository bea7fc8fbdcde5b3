// fake holds an in-memory stand-in for the slice of the Cloudant HTTP API that docsproxy uses.
// It enforces revisions the way Cloudant does, so it is good enough to test against.
package fake

import (
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type jsonObj = map[string]interface{}

// Server is a fake Cloudant
type Server struct {
	*httptest.Server

	mu  sync.Mutex
	dbs map[string]map[string]jsonObj
}

// NewServer starts a fake Cloudant holding the given (empty) databases. Close it when done.
func NewServer(dbNames ...string) *Server {
	s := &Server{dbs: make(map[string]map[string]jsonObj)}
	for _, name := range dbNames {
		s.dbs[name] = make(map[string]jsonObj)
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(gunzipBody)
	engine.GET("/:db", s.getDatabase)
	engine.PUT("/:db", s.putDatabase)
	engine.POST("/:db", s.postDocument)
	engine.POST("/:db/_all_docs", s.allDocs)
	engine.PUT("/:db/:docid", s.putDocument)
	engine.DELETE("/:db/:docid", s.deleteDocument)

	s.Server = httptest.NewServer(engine)
	return s
}

// Docs returns a copy of the documents currently in the given database
func (s *Server) Docs(dbName string) map[string]jsonObj {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]jsonObj)
	for id, doc := range s.dbs[dbName] {
		out[id] = copyObj(doc)
	}
	return out
}

// gunzipBody inflates request bodies sent with Content-Encoding: gzip, which the SDK does by default
func gunzipBody(c *gin.Context) {
	if c.GetHeader("Content-Encoding") != "gzip" {
		c.Next()
		return
	}
	reader, err := gzip.NewReader(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		c.Abort()
		return
	}
	defer reader.Close()
	c.Request.Body = reader
	c.Request.Header.Del("Content-Encoding")
	c.Request.ContentLength = -1
	c.Next()
}

func (s *Server) getDatabase(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db := c.Param("db")
	docs, ok := s.dbs[db]
	if !ok {
		dbNotFound(c)
		return
	}
	c.JSON(http.StatusOK, jsonObj{"db_name": db, "doc_count": len(docs)})
}

func (s *Server) putDatabase(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db := c.Param("db")
	if _, ok := s.dbs[db]; ok {
		c.JSON(http.StatusPreconditionFailed, jsonObj{"error": "file_exists", "reason": "The database could not be created, the file already exists."})
		return
	}
	s.dbs[db] = make(map[string]jsonObj)
	c.JSON(http.StatusCreated, jsonObj{"ok": true})
}

func (s *Server) postDocument(c *gin.Context) {
	var body jsonObj
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if _, ok := bodyRev(body); !ok {
		invalidRev(c)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.dbs[c.Param("db")]
	if !ok {
		dbNotFound(c)
		return
	}
	id, ok := body["_id"].(string)
	if !ok {
		id = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	if _, exists := docs[id]; exists {
		conflict(c)
		return
	}
	s.write(c, docs, id, body, 0)
}

func (s *Server) putDocument(c *gin.Context) {
	var body jsonObj
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	rev, ok := bodyRev(body)
	if !ok {
		invalidRev(c)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.dbs[c.Param("db")]
	if !ok {
		dbNotFound(c)
		return
	}
	id := c.Param("docid")
	existing, exists := docs[id]
	switch {
	case exists && existing["_rev"] != rev:
		conflict(c)
	case !exists && rev != "":
		conflict(c)
	case exists:
		s.write(c, docs, id, body, revGeneration(rev))
	default:
		s.write(c, docs, id, body, 0)
	}
}

func (s *Server) deleteDocument(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.dbs[c.Param("db")]
	if !ok {
		dbNotFound(c)
		return
	}
	id := c.Param("docid")
	existing, exists := docs[id]
	if !exists {
		c.JSON(http.StatusNotFound, jsonObj{"error": "not_found", "reason": "missing"})
		return
	}
	rev := c.Query("rev")
	if existing["_rev"] != rev {
		conflict(c)
		return
	}
	delete(docs, id)
	c.JSON(http.StatusOK, jsonObj{"ok": true, "id": id, "rev": nextRev(revGeneration(rev), id)})
}

func (s *Server) allDocs(c *gin.Context) {
	var body struct {
		IncludeDocs bool `json:"include_docs"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.dbs[c.Param("db")]
	if !ok {
		dbNotFound(c)
		return
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rows := make([]jsonObj, 0, len(ids))
	for _, id := range ids {
		row := jsonObj{
			"id":    id,
			"key":   id,
			"value": jsonObj{"rev": docs[id]["_rev"]},
		}
		if body.IncludeDocs {
			row["doc"] = copyObj(docs[id])
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, jsonObj{"total_rows": len(rows), "offset": 0, "rows": rows})
}

func (s *Server) write(c *gin.Context, docs map[string]jsonObj, id string, body jsonObj, generation int) {
	doc := copyObj(body)
	rev := nextRev(generation, id)
	doc["_id"] = id
	doc["_rev"] = rev
	docs[id] = doc
	c.JSON(http.StatusCreated, jsonObj{"ok": true, "id": id, "rev": rev})
}

// bodyRev returns the _rev of a body, "" when absent. It is not ok when _rev is there but not a string.
func bodyRev(body jsonObj) (string, bool) {
	raw, present := body["_rev"]
	if !present {
		return "", true
	}
	rev, ok := raw.(string)
	return rev, ok
}

func revGeneration(rev string) int {
	parts := strings.SplitN(rev, "-", 2)
	n, _ := strconv.Atoi(parts[0])
	return n
}

func nextRev(generation int, id string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s/%d/%s", id, generation, uuid.New().String())))
	return fmt.Sprintf("%d-%s", generation+1, hex.EncodeToString(sum[:]))
}

func copyObj(obj jsonObj) jsonObj {
	b, _ := json.Marshal(obj)
	var out jsonObj
	_ = json.Unmarshal(b, &out)
	return out
}

func conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, jsonObj{"error": "conflict", "reason": "Document update conflict."})
}

func invalidRev(c *gin.Context) {
	c.JSON(http.StatusBadRequest, jsonObj{"error": "bad_request", "reason": "Invalid rev format"})
}

func dbNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, jsonObj{"error": "not_found", "reason": "Database does not exist."})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, jsonObj{"error": "bad_request", "reason": err.Error()})
}
