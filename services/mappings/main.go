package mappingsService

import (
	"context"
	"fmt"
	"missensecolor/models"
	"missensecolor/utils"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

type (
	MappingService struct {
		Config *models.Config
		Client *http.Client
		Logger utils.Logger
	}
)

func NewMappingService(cfg *models.Config, client *http.Client, logger utils.Logger) *MappingService {
	return &MappingService{
		Config: cfg,
		Client: client,
		Logger: logger,
	}
}

// GetChainMappings resolves the chains of a PDB entry to UniProt
// accessions. Any failure is logged and yields an empty result.
func (ms *MappingService) GetChainMappings(ctx context.Context, pdbId string) []models.ChainMapping {
	pdbKey := strings.ToLower(pdbId)
	url := fmt.Sprintf("%s/%s", strings.TrimRight(ms.Config.Pdbe.MappingsUrl, "/"), pdbKey)

	body, err := utils.GetRequestBody(ctx, ms.Client, url)
	if err != nil {
		ms.Logger.Errorf("Error retrieving chain mapping: %v", err)
		return []models.ChainMapping{}
	}
	ms.Logger.Debugf("PDB API response: %s", body)

	mappings, err := ParseChainMappings(body, pdbKey)
	if err != nil {
		ms.Logger.Errorf("Error reading chain mapping for PDB ID %s: %v", pdbId, err)
		return []models.ChainMapping{}
	}

	for _, m := range mappings {
		ms.Logger.Infof("Mapped chain %s to UniProt %s (%d-%d)", m.ChainId, m.UniprotId, m.Start, m.End)
	}
	return mappings
}

// ParseChainMappings reads a PDBe SIFTS "mappings/uniprot" reply.
// Chains are returned in document order; a chain listed under
// several accessions keeps its first position but takes the
// values of the last listing.
func ParseChainMappings(body []byte, pdbKey string) ([]models.ChainMapping, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parsing error: invalid JSON reply")
	}

	var entry gjson.Result
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		if key.String() == pdbKey {
			entry = value
			return false
		}
		return true
	})
	if !entry.Exists() {
		return nil, fmt.Errorf("no data found for PDB ID %s", pdbKey)
	}

	uniprot := entry.Get("UniProt")
	if !uniprot.IsObject() {
		return nil, fmt.Errorf("no UniProt section for PDB ID %s", pdbKey)
	}

	mappings := []models.ChainMapping{}
	chainIndex := map[string]int{}

	var parseErr error
	uniprot.ForEach(func(key, value gjson.Result) bool {
		uniprotId := key.String()

		listed := value.Get("mappings")
		if !listed.IsArray() {
			parseErr = fmt.Errorf("no mappings listed for UniProt %s", uniprotId)
			return false
		}

		for _, item := range listed.Array() {
			var mapping models.ChainMapping
			if err := mapstructure.Decode(item.Value(), &mapping); err != nil {
				parseErr = fmt.Errorf("malformed mapping for UniProt %s: %w", uniprotId, err)
				return false
			}
			if mapping.ChainId == "" {
				parseErr = fmt.Errorf("mapping for UniProt %s has no chain_id", uniprotId)
				return false
			}
			mapping.UniprotId = uniprotId

			if i, seen := chainIndex[mapping.ChainId]; seen {
				mappings[i] = mapping
				continue
			}
			chainIndex[mapping.ChainId] = len(mappings)
			mappings = append(mappings, mapping)
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return mappings, nil
}

// GroupByUniprot merges chains sharing an accession, keeping
// the order in which accessions are first met.
func GroupByUniprot(mappings []models.ChainMapping) []models.UniprotGroup {
	groups := []models.UniprotGroup{}
	groupIndex := map[string]int{}

	for _, m := range mappings {
		i, ok := groupIndex[m.UniprotId]
		if !ok {
			i = len(groups)
			groupIndex[m.UniprotId] = i
			groups = append(groups, models.UniprotGroup{UniprotId: m.UniprotId})
		}
		groups[i].Chains = append(groups[i].Chains, m.ChainId)
		groups[i].AddRange(m.Start, m.End)
	}

	return groups
}
