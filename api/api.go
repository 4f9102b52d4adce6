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

// Package api provides a read-only HTTP query surface over a loaded
// proteome.  The proteome is loaded before the server starts and never
// mutated afterwards, which keeps the single-writer model intact.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seqannot/annot/proteome"
)

// Server serves annotation queries for one proteome.
type Server struct {
	proteome *proteome.Proteome
	instance string
}

// NewServer returns a server over p.
func NewServer(p *proteome.Proteome) *Server {
	return &Server{proteome: p, instance: uuid.New().String()}
}

// Export registers the query routes on the provided engine.
func (s *Server) Export(r *gin.Engine) {
	r.Use(s.tagResponses())
	r.GET("/v1/proteins", s.listProteins)
	r.GET("/v1/proteins/:id", s.getProtein)
	r.GET("/v1/proteins/:id/region", s.getRegion)
	r.GET("/v1/proteins/:id/context", s.getContext)
	r.GET("/v1/proteins/:id/domains", s.getDomains)
	r.GET("/v1/proteins/:id/sites", s.getSites)
	r.GET("/v1/proteins/:id/tracks", s.listTracks)
	r.GET("/v1/proteins/:id/tracks/:name", s.getTrack)
}

// Handler returns a ready-to-serve engine with the routes exported.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.Export(r)
	return r
}

func (s *Server) tagResponses() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", uuid.New().String())
		c.Writer.Header().Set("X-Instance-ID", s.instance)
		c.Next()
	}
}

func (s *Server) protein(c *gin.Context) *proteome.Protein {
	prot, err := s.proteome.Protein(c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, proteome.ErrUnknownProtein) {
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return nil
	}
	return prot
}

func intQuery(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "parameter " + name + " must be an integer",
		})
		return 0, false
	}
	return v, true
}

func (s *Server) listProteins(c *gin.Context) {
	out := make([]gin.H, 0, s.proteome.Len())
	for _, prot := range s.proteome.Proteins() {
		out = append(out, gin.H{
			"unique_id": prot.UniqueID(),
			"name":      prot.Name(),
			"length":    prot.Len(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"proteins": out})
}

func (s *Server) getProtein(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"unique_id":  prot.UniqueID(),
		"name":       prot.Name(),
		"length":     prot.Len(),
		"sequence":   prot.Sequence(),
		"domains":    len(prot.Domains()),
		"sites":      len(prot.Sites()),
		"tracks":     prot.TrackNames(),
		"attributes": attributesJSON(prot.Attributes()),
	})
}

func (s *Server) getRegion(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	start, ok := intQuery(c, "start")
	if !ok {
		return
	}
	end, ok := intQuery(c, "end")
	if !ok {
		return
	}
	seq, err := prot.Region(start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": start, "end": end, "sequence": seq})
}

func (s *Server) getContext(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	position, ok := intQuery(c, "position")
	if !ok {
		return
	}
	window, ok := intQuery(c, "window")
	if !ok {
		return
	}
	seq, err := prot.Context(position, window)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": position, "window": window, "sequence": seq})
}

func (s *Server) getDomains(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	domains := prot.Domains()
	if t := c.Query("type"); t != "" {
		domains = prot.DomainsByType(t)
	}
	out := make([]gin.H, 0, len(domains))
	for _, d := range domains {
		out = append(out, gin.H{
			"start":       d.Start(),
			"end":         d.End(),
			"domain_type": d.Type(),
			"attributes":  attributesJSON(d.Attributes()),
		})
	}
	c.JSON(http.StatusOK, gin.H{"domains": out})
}

func (s *Server) getSites(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	sites := prot.Sites()
	if t := c.Query("type"); t != "" {
		sites = prot.SitesByType(t)
	}
	out := make([]gin.H, 0, len(sites))
	for _, site := range sites {
		entry := gin.H{
			"position":   site.Position(),
			"site_type":  site.Type(),
			"attributes": attributesJSON(site.Attributes()),
		}
		if symbol := site.Symbol(); symbol != "" {
			entry["symbol"] = symbol
		}
		if v, ok := site.Value(); ok {
			entry["value"] = v
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"sites": out})
}

func (s *Server) listTracks(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": prot.TrackNames()})
}

func (s *Server) getTrack(c *gin.Context) {
	prot := s.protein(c)
	if prot == nil {
		return
	}
	track, err := prot.Track(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	entry := gin.H{"name": track.Name(), "length": track.Len()}
	if track.Numeric() {
		values, _ := track.Values()
		entry["values"] = values
	} else {
		symbols, _ := track.Symbols()
		entry["symbols"] = symbols
	}
	c.JSON(http.StatusOK, entry)
}

func attributesJSON(attrs *proteome.Attributes) map[string]string {
	out := make(map[string]string, attrs.Len())
	for _, name := range attrs.Names() {
		v, _ := attrs.Get(name)
		out[name] = v.String()
	}
	return out
}
