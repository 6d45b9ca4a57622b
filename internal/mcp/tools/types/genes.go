package types

type Gene struct {
	BiogridID string   `json:"biogrid_id"`
	Symbol    string   `json:"symbol"`
	Synonyms  []string `json:"synonyms"`
	TaxonID   string   `json:"taxon_id"`
	Organism  string   `json:"organism"`
}

type GenesResult struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Genes []Gene `json:"genes"`
}
