/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwaggerJSON(t *testing.T) {
	data, err := GetSwaggerJSON()
	require.NoError(t, err)

	var doc struct {
		Swagger string                     `json:"swagger"`
		Info    map[string]interface{}     `json:"info"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "NetWatch API", doc.Info["title"])
	assert.Equal(t, "dev", doc.Info["version"])

	for _, path := range []string{"/api/devices", "/api/alerts/{id}/ack", "/api/topology/graph", "/api/health"} {
		assert.Contains(t, doc.Paths, path)
	}
}
