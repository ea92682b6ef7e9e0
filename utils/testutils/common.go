package testutils

import (
	"bytes"
	"fmt"
	"missensecolor/models"
	"missensecolor/utils"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/gommon/log"
	yaml "gopkg.in/yaml.v2"
)

const (
	MappingsPath   = "/pdbe/api/mappings/uniprot"
	PredictionPath = "/api/prediction"
	TablePath      = "/files"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve the shared test.config.yml
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// NewCapturingLogger returns a debug level logger writing into
// the returned buffer.
func NewCapturingLogger() (*log.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return utils.NewLogger(true, buf), buf
}

/*
FakeRemotes stands in for the PDBe mapping API, the AlphaFold
prediction API and the AlphaMissense file host.

	Mappings : lower-cased PDB id -> raw JSON reply
	Tables   : UniProt accession  -> CSV body
	Indexes  : UniProt accession  -> raw JSON reply, overriding
	           the generated one
*/
type FakeRemotes struct {
	Server   *httptest.Server
	Mappings map[string]string
	Tables   map[string]string
	Indexes  map[string]string

	requestsMux sync.Mutex
	requests    []string
}

func NewFakeRemotes(t *testing.T) *FakeRemotes {
	fr := &FakeRemotes{
		Mappings: map[string]string{},
		Tables:   map[string]string{},
		Indexes:  map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(MappingsPath+"/", func(w http.ResponseWriter, r *http.Request) {
		fr.record(r)
		body, ok := fr.Mappings[strings.TrimPrefix(r.URL.Path, MappingsPath+"/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})
	mux.HandleFunc(PredictionPath+"/", func(w http.ResponseWriter, r *http.Request) {
		fr.record(r)
		accession := strings.TrimPrefix(r.URL.Path, PredictionPath+"/")
		w.Header().Set("Content-Type", "application/json")
		if body, ok := fr.Indexes[accession]; ok {
			fmt.Fprint(w, body)
			return
		}
		if _, ok := fr.Tables[accession]; !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `[{"uniprotAccession":%q,"amAnnotationsUrl":%q}]`, accession, fr.TableUrl(accession))
	})
	mux.HandleFunc(TablePath+"/", func(w http.ResponseWriter, r *http.Request) {
		fr.record(r)
		accession := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, TablePath+"/"), ".csv")
		body, ok := fr.Tables[accession]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	})

	fr.Server = httptest.NewServer(mux)
	t.Cleanup(fr.Server.Close)
	return fr
}

func (fr *FakeRemotes) record(r *http.Request) {
	fr.requestsMux.Lock()
	defer fr.requestsMux.Unlock()
	fr.requests = append(fr.requests, r.URL.Path)
}

// Requests lists the paths hit so far.
func (fr *FakeRemotes) Requests() []string {
	fr.requestsMux.Lock()
	defer fr.requestsMux.Unlock()
	return append([]string{}, fr.requests...)
}

func (fr *FakeRemotes) TableUrl(accession string) string {
	return fmt.Sprintf("%s%s/%s.csv", fr.Server.URL, TablePath, accession)
}

// Config returns the shared test configuration pointed at the fakes.
func (fr *FakeRemotes) Config() *models.Config {
	cfg := InitConfig()
	cfg.Pdbe.MappingsUrl = fr.Server.URL + MappingsPath
	cfg.AlphaFold.PredictionUrl = fr.Server.URL + PredictionPath
	return cfg
}

// SetEnv exports the fake endpoints for code reading its
// configuration from the environment.
func (fr *FakeRemotes) SetEnv(t *testing.T) {
	t.Setenv("MISSENSE_PDBE_MAPPINGS_URL", fr.Server.URL+MappingsPath)
	t.Setenv("MISSENSE_ALPHAFOLD_PREDICTION_URL", fr.Server.URL+PredictionPath)
}

// -- fixtures

// MappingFixture is a 7znj-like entry: chains A and C on P38919,
// chain B on Q9Y5S9.
const MappingFixture = `{
  "7znj": {
    "UniProt": {
      "P38919": {
        "identifier": "IF4A3_HUMAN",
        "name": "IF4A3_HUMAN",
        "mappings": [
          {"entity_id": 1, "chain_id": "A", "struct_asym_id": "A", "unp_start": 1, "unp_end": 411, "start": {"residue_number": 1}, "end": {"residue_number": 411}},
          {"entity_id": 1, "chain_id": "C", "struct_asym_id": "C", "unp_start": 20, "unp_end": 411}
        ]
      },
      "Q9Y5S9": {
        "identifier": "RBM8A_HUMAN",
        "name": "RBM8A_HUMAN",
        "mappings": [
          {"entity_id": 2, "chain_id": "B", "struct_asym_id": "B", "unp_start": 1, "unp_end": 174}
        ]
      }
    }
  }
}`

const TableFixtureP38919 = `protein_variant,am_pathogenicity,am_class
M1A,0.3,Amb
M1C,0.5,Amb
M1D,0.9,LPath
A2C,0.1,LBen
A2D,0.2,LBen
`

const TableFixtureQ9Y5S9 = `protein_variant,am_pathogenicity,am_class
A123V,0.9,LPath
A123T,0.1,LBen
`
