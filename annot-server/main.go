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

// This binary serves read-only annotation queries over a proteome loaded
// from flat files at startup.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/seqannot/annot/annotio"
	"github.com/seqannot/annot/api"
	"github.com/seqannot/annot/fasta"
	"github.com/seqannot/annot/proteome"
)

var (
	port = flag.Int("port", 8080, "HTTP service port")

	fastaFile    = flag.String("fasta", "", "FASTA file defining the proteome")
	proteinsFile = flag.String("proteins", "", "proteins file defining the proteome")

	domainsFile    = flag.String("domains", "", "domains file to load")
	sitesFile      = flag.String("sites", "", "sites file to load")
	tracksFile     = flag.String("tracks", "", "tracks file to load")
	attributesFile = flag.String("attributes", "", "protein attributes file to load")
)

func main() {
	flag.Parse()

	p, err := buildProteome()
	if err != nil {
		log.Fatalf("Failed to build proteome: %v", err)
	}

	load := func(name, path string, fn func(*proteome.Proteome, string) (*annotio.Report, error)) {
		if path == "" {
			return
		}
		rep, err := fn(p, path)
		if err != nil {
			log.Fatalf("Failed to load %s from %s: %v", name, path, err)
		}
		log.Printf("Loaded %s from %s: %s", name, path, rep.Summary())
	}
	load("domains", *domainsFile, annotio.LoadDomains)
	load("sites", *sitesFile, annotio.LoadSites)
	load("tracks", *tracksFile, annotio.LoadTracks)
	load("attributes", *attributesFile, annotio.LoadProteinAttributes)

	server := api.NewServer(p)
	log.Printf("Serving %d proteins on port %d", p.Len(), *port)
	if err := server.Handler().Run(fmt.Sprintf(":%d", *port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildProteome() (*proteome.Proteome, error) {
	switch {
	case *fastaFile != "" && *proteinsFile != "":
		return nil, fmt.Errorf("use only one of -fasta and -proteins")
	case *fastaFile != "":
		return fasta.LoadProteome(*fastaFile)
	case *proteinsFile != "":
		p := proteome.New()
		rep, err := annotio.LoadProteins(p, *proteinsFile)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded proteins from %s: %s", *proteinsFile, rep.Summary())
		return p, nil
	default:
		return nil, fmt.Errorf("one of -fasta and -proteins is required")
	}
}
