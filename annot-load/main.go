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

// This binary bulk-loads a proteome and its annotation files, prints a load
// report per file, and can write the whole hierarchy back out to verify
// the round trip.  Large loads can be profiled with -cpuprofile.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/profile"

	"github.com/seqannot/annot/annotio"
	"github.com/seqannot/annot/fasta"
	"github.com/seqannot/annot/proteome"
)

var (
	fastaFile    = flag.String("fasta", "", "FASTA file defining the proteome")
	proteinsFile = flag.String("proteins", "", "proteins file defining the proteome")

	domainsFile    = flag.String("domains", "", "domains file to load")
	sitesFile      = flag.String("sites", "", "sites file to load")
	tracksFile     = flag.String("tracks", "", "tracks file to load")
	attributesFile = flag.String("attributes", "", "protein attributes file to load")

	outDir     = flag.String("out", "", "if set, write the loaded hierarchy back out to this directory")
	cpuProfile = flag.Bool("cpuprofile", false, "write a CPU profile for the load")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	p, err := buildProteome()
	if err != nil {
		log.Fatalf("Failed to build proteome: %v", err)
	}
	log.Printf("Proteome holds %d proteins", p.Len())

	load := func(name, path string, fn func(*proteome.Proteome, string) (*annotio.Report, error)) {
		if path == "" {
			return
		}
		rep, err := fn(p, path)
		if err != nil {
			log.Fatalf("Failed to load %s from %s: %v", name, path, err)
		}
		log.Printf("%s: %s", path, rep.Summary())
		for _, msg := range rep.Messages {
			log.Printf("  %s", msg)
		}
		if rep.Bad > len(rep.Messages) {
			log.Printf("  ... and %d more bad records", rep.Bad-len(rep.Messages))
		}
	}
	load("domains", *domainsFile, annotio.LoadDomains)
	load("sites", *sitesFile, annotio.LoadSites)
	load("tracks", *tracksFile, annotio.LoadTracks)
	load("attributes", *attributesFile, annotio.LoadProteinAttributes)

	if *outDir != "" {
		if err := writeBack(p, *outDir); err != nil {
			log.Fatalf("Failed to write hierarchy: %v", err)
		}
		log.Printf("Wrote hierarchy to %s", *outDir)
	}
}

func buildProteome() (*proteome.Proteome, error) {
	if *fastaFile != "" {
		return fasta.LoadProteome(*fastaFile)
	}
	p := proteome.New()
	if *proteinsFile == "" {
		log.Fatalf("One of -fasta and -proteins is required")
	}
	rep, err := annotio.LoadProteins(p, *proteinsFile)
	if err != nil {
		return nil, err
	}
	log.Printf("%s: %s", *proteinsFile, rep.Summary())
	return p, nil
}

func writeBack(p *proteome.Proteome, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := annotio.SaveProteins(p, filepath.Join(dir, "proteins.tsv")); err != nil {
		return err
	}
	if err := annotio.SaveDomains(p, filepath.Join(dir, "domains.tsv"), nil); err != nil {
		return err
	}
	if err := annotio.SaveSites(p, filepath.Join(dir, "sites.tsv"), nil); err != nil {
		return err
	}
	return annotio.SaveTracks(p, filepath.Join(dir, "tracks.tsv"), nil)
}
