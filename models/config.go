package models

import "time"

type Config struct {
	Debug bool `envconfig:"MISSENSE_DEBUG" yaml:"debug"`

	Api struct {
		Port string `envconfig:"MISSENSE_API_PORT" default:"5000" yaml:"port"`
	} `yaml:"api"`
	Pdbe struct {
		MappingsUrl string `envconfig:"MISSENSE_PDBE_MAPPINGS_URL" default:"https://www.ebi.ac.uk/pdbe/api/mappings/uniprot" yaml:"mappingsUrl"`
	} `yaml:"pdbe"`
	AlphaFold struct {
		PredictionUrl string `envconfig:"MISSENSE_ALPHAFOLD_PREDICTION_URL" default:"https://alphafold.ebi.ac.uk/api/prediction" yaml:"predictionUrl"`
	} `yaml:"alphafold"`
	Http struct {
		// zero leaves the request unbounded
		Timeout time.Duration `envconfig:"MISSENSE_HTTP_TIMEOUT" default:"0s" yaml:"timeout"`
	} `yaml:"http"`
}
