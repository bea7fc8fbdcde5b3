// common contains models that are common to ES operations
package common

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
)

type IndexName string

type ElasticsearchErr struct {
	Underlying error
}

func (e ElasticsearchErr) Error() string {
	return fmt.Sprintf("Error from Elasticsearch: %v", e.Underlying)
}

func (e ElasticsearchErr) Unwrap() error {
	return e.Underlying
}

type JsonSerdesErr struct {
	Underlying []error
}

func (e JsonSerdesErr) Error() string {
	return fmt.Sprintf("Error working with JSON: %v", e.Underlying)
}

func (e JsonSerdesErr) Unwrap() error {
	if len(e.Underlying) == 1 {
		return e.Underlying[0]
	} else {
		return fmt.Errorf("Multiple JSON serdes errors: [%v]", e.Underlying)
	}
}

type esErrorResponse struct {
	Error *struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

// UnexpectedEsStatusError reads the response body, preferring ES's own error type and reason
// when there is one.
func UnexpectedEsStatusError(rawResp *esapi.Response) ElasticsearchErr {
	var body string
	if b, err := ioutil.ReadAll(rawResp.Body); err == nil {
		body = string(b)
	}
	var errResp esErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Error != nil {
		return ElasticsearchErr{Underlying: fmt.Errorf("[%d] %s: %s", rawResp.StatusCode, errResp.Error.Type, errResp.Error.Reason)}
	}
	return ElasticsearchErr{Underlying: fmt.Errorf("Unexpected status from ES: [%d], body: [%s]", rawResp.StatusCode, body)}
}

// Version is what ES uses for optimistic concurrency control
type Version struct {
	SeqNum      uint64
	PrimaryTerm uint64
}

var revSeparator = "-"

// Rev renders the Version as an opaque revision token
func (v Version) Rev() document.Rev {
	return document.Rev(fmt.Sprintf("%d%s%d", v.SeqNum, revSeparator, v.PrimaryTerm))
}

// VersionFromRev is the inverse of Version.Rev
func VersionFromRev(id document.Id, rev document.Rev) (*Version, error) {
	parts := strings.Split(string(rev), revSeparator)
	if len(parts) != 2 {
		return nil, document.InvalidRevision{ID: id, Rev: &rev}
	}
	seqNum, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return nil, document.InvalidRevision{ID: id, Rev: &rev}
	}
	primaryTerm, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, document.InvalidRevision{ID: id, Rev: &rev}
	}
	return &Version{SeqNum: seqNum, PrimaryTerm: primaryTerm}, nil
}

// EsWriteResponse is what ES returns for create, index and delete requests
type EsWriteResponse struct {
	Index       string `json:"_index"`
	ID          string `json:"_id"`
	SeqNum      uint64 `json:"_seq_no"`
	PrimaryTerm uint64 `json:"_primary_term"`
	Result      string `json:"result"`
}

func (r *EsWriteResponse) Version() Version {
	return Version{
		SeqNum:      r.SeqNum,
		PrimaryTerm: r.PrimaryTerm,
	}
}

func (r *EsWriteResponse) ToWriteResult() document.WriteResult {
	return document.WriteResult{
		Ok:  true,
		ID:  document.Id(r.ID),
		Rev: r.Version().Rev(),
	}
}
