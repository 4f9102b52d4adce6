// Copyright 2026 The annot authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/seqannot/annot/proteome"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p := proteome.New()
	prot, err := p.AddProtein("P1", "protein one", "MAEPQRDG")
	assert.Equal(t, nil, err)
	_, err = prot.AddDomain(2, 4, "test_domain")
	assert.Equal(t, nil, err)
	_, err = prot.AddSite(3, "phosphosite", "S", nil)
	assert.Equal(t, nil, err)
	_, err = prot.AddValuesTrack("mytrack", []float64{1, 1, 0, 0, 1, 1, 0, 1})
	assert.Equal(t, nil, err)

	return NewServer(p).Handler()
}

func get(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListProteins(t *testing.T) {
	router := setupRouter(t)
	w := get(router, "/v1/proteins")
	assert.Equal(t, 200, w.Code)
	assert.NotEqual(t, "", w.Header().Get("X-Request-ID"))

	var body struct {
		Proteins []struct {
			UniqueID string `json:"unique_id"`
			Length   int    `json:"length"`
		} `json:"proteins"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, len(body.Proteins))
	assert.Equal(t, "P1", body.Proteins[0].UniqueID)
	assert.Equal(t, 8, body.Proteins[0].Length)
}

func TestGetProtein_NotFound(t *testing.T) {
	router := setupRouter(t)
	w := get(router, "/v1/proteins/missing")
	assert.Equal(t, 404, w.Code)
}

func TestGetRegion(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/v1/proteins/P1/region?start=2&end=4")
	assert.Equal(t, 200, w.Code)
	var body struct {
		Sequence string `json:"sequence"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AEP", body.Sequence)

	assert.Equal(t, 400, get(router, "/v1/proteins/P1/region?start=5&end=2").Code)
	assert.Equal(t, 400, get(router, "/v1/proteins/P1/region?start=x&end=2").Code)
}

func TestGetContext_Clips(t *testing.T) {
	router := setupRouter(t)
	w := get(router, "/v1/proteins/P1/context?position=1&window=5")
	assert.Equal(t, 200, w.Code)
	var body struct {
		Sequence string `json:"sequence"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MAEPQR", body.Sequence)
}

func TestGetDomains_TypeFilter(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/v1/proteins/P1/domains?type=test_domain")
	assert.Equal(t, 200, w.Code)
	var body struct {
		Domains []struct {
			Start int `json:"start"`
			End   int `json:"end"`
		} `json:"domains"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, len(body.Domains))
	assert.Equal(t, 2, body.Domains[0].Start)
	assert.Equal(t, 4, body.Domains[0].End)

	assert.Equal(t, nil, json.Unmarshal(get(router, "/v1/proteins/P1/domains?type=absent").Body.Bytes(), &body))
	assert.Equal(t, 0, len(body.Domains))
}

func TestGetTrack(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/v1/proteins/P1/tracks/mytrack")
	assert.Equal(t, 200, w.Code)
	var body struct {
		Name   string    `json:"name"`
		Values []float64 `json:"values"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "mytrack", body.Name)
	assert.Equal(t, 8, len(body.Values))

	assert.Equal(t, 404, get(router, "/v1/proteins/P1/tracks/absent").Code)
}

func TestGetSites(t *testing.T) {
	router := setupRouter(t)
	w := get(router, "/v1/proteins/P1/sites?type=phosphosite")
	assert.Equal(t, 200, w.Code)
	var body struct {
		Sites []struct {
			Position int    `json:"position"`
			Symbol   string `json:"symbol"`
		} `json:"sites"`
	}
	assert.Equal(t, nil, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, len(body.Sites))
	assert.Equal(t, 3, body.Sites[0].Position)
	assert.Equal(t, "S", body.Sites[0].Symbol)
}
