package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggo/swag"
)

func TestReadDoc_isValidJson(t *testing.T) {
	rendered, err := swag.ReadDoc()
	if assert.NoError(t, err) {
		var parsed map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(rendered), &parsed))
		assert.Contains(t, parsed["paths"], "/api/add")
		assert.Contains(t, parsed["paths"], "/api/update/{id}")
	}
}
