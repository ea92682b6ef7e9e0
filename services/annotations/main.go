package annotationsService

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"missensecolor/models"
	amClass "missensecolor/models/constants/am-class"
	"missensecolor/utils"
	"net/http"
	"net/url"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	ColProteinVariant  = "protein_variant"
	ColAmClass         = "am_class"
	ColAmPathogenicity = "am_pathogenicity"

	annotationsUrlKey = "amAnnotationsUrl"
)

var RequiredColumns = []string{ColProteinVariant, ColAmClass, ColAmPathogenicity}

type (
	AnnotationService struct {
		Config *models.Config
		Client *http.Client
		Logger utils.Logger
	}
)

func NewAnnotationService(cfg *models.Config, client *http.Client, logger utils.Logger) *AnnotationService {
	return &AnnotationService{
		Config: cfg,
		Client: client,
		Logger: logger,
	}
}

// GetMissenseRows downloads the AlphaMissense table of a UniProt
// accession. The boolean is false whenever no table could be had.
func (as *AnnotationService) GetMissenseRows(ctx context.Context, uniprotId string) ([]models.VariantRow, bool) {
	predictionUrl := fmt.Sprintf("%s/%s", strings.TrimRight(as.Config.AlphaFold.PredictionUrl, "/"), url.PathEscape(uniprotId))

	body, err := utils.GetRequestBody(ctx, as.Client, predictionUrl)
	if err != nil {
		as.Logger.Errorf("Error downloading AlphaMissense CSV for UniProt ID %s: %v", uniprotId, err)
		return nil, false
	}
	as.Logger.Debugf("AlphaFold API response for %s: %s", uniprotId, body)

	csvUrl, found := FindAnnotationsUrl(body)
	if !found {
		as.Logger.Errorf("No AlphaMissense CSV URL found for UniProt ID %s", uniprotId)
		return nil, false
	}

	as.Logger.Infof("Downloading AlphaMissense CSV for UniProt ID %s from %s", uniprotId, csvUrl)
	csvBody, err := utils.GetRequestBody(ctx, as.Client, csvUrl)
	if err != nil {
		as.Logger.Errorf("Error downloading AlphaMissense CSV for UniProt ID %s: %v", uniprotId, err)
		return nil, false
	}

	rows, err := ParseMissenseCsv(bytes.NewReader(csvBody))
	if err != nil {
		as.Logger.Errorf("Unexpected error processing data for UniProt ID %s: %v", uniprotId, err)
		return nil, false
	}

	as.Logger.Infof("Successfully downloaded AlphaMissense CSV for UniProt ID %s", uniprotId)
	return rows, true
}

// FindAnnotationsUrl picks the amAnnotationsUrl of the first
// prediction entry carrying one.
func FindAnnotationsUrl(body []byte) (string, bool) {
	jsonParsed, err := gabs.ParseJSON(body)
	if err != nil {
		return "", false
	}
	if _, isList := jsonParsed.Data().([]interface{}); !isList {
		return "", false
	}

	entries, err := jsonParsed.Children()
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if _, isObject := entry.Data().(map[string]interface{}); !isObject {
			continue
		}
		if !entry.Exists(annotationsUrlKey) {
			continue
		}
		csvUrl, _ := entry.Search(annotationsUrlKey).Data().(string)
		return csvUrl, csvUrl != ""
	}
	return "", false
}

// ParseMissenseCsv loads an AlphaMissense table. Scores that are
// missing or not numeric come back as NaN.
func ParseMissenseCsv(r io.Reader) ([]models.VariantRow, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			ColAmPathogenicity: series.Float,
		}))
	if df.Err != nil {
		return nil, df.Err
	}

	names := df.Names()
	for _, col := range RequiredColumns {
		if !utils.StringInSlice(col, names) {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var (
		variants = df.Col(ColProteinVariant).Records()
		classes  = df.Col(ColAmClass).Records()
		scores   = df.Col(ColAmPathogenicity).Float()
	)

	rows := make([]models.VariantRow, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		rows = append(rows, models.VariantRow{
			ProteinVariant:  variants[i],
			AmClass:         amClass.CastToAmClass(classes[i]),
			AmPathogenicity: scores[i],
		})
	}
	return rows, nil
}
