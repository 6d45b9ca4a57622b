package biogrid

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// InteractionQuery is the parameter set for the interactions endpoint.
type InteractionQuery struct {
	GeneList             string `url:"geneList"`
	SearchNames          bool   `url:"searchNames,omitempty"`
	SearchIDs            bool   `url:"searchIds,omitempty"`
	SearchBiogridIDs     bool   `url:"searchBiogridIds,omitempty"`
	IncludeInteractors   bool   `url:"includeInteractors"`
	TaxID                string `url:"taxId,omitempty"`
	SystemType           string `url:"experimentalSystemType,omitempty"`
	InterSpeciesExcluded bool   `url:"interSpeciesExcluded,omitempty"`
	Max                  int    `url:"max"`
}

// GeneQuery is the parameter set for the gene endpoint.
type GeneQuery struct {
	GeneList       string `url:"geneList"`
	SearchNames    bool   `url:"searchNames,omitempty"`
	SearchSynonyms bool   `url:"searchSynonyms,omitempty"`
	TaxID          string `url:"taxId,omitempty"`
	Max            int    `url:"max"`
}

func (q InteractionQuery) Values() (url.Values, error) { return query.Values(q) }
func (q GeneQuery) Values() (url.Values, error)        { return query.Values(q) }
